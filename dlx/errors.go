package dlx

import "errors"

// ErrColumnOutOfRange is the value AddRow panics with when a column
// index falls outside [0, C). A well-formed encoder never triggers this; it
// signals a programmer error in the caller, not a recoverable solver
// condition.
var ErrColumnOutOfRange = errors.New("dlx: column index out of range")
