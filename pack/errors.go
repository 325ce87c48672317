package pack

import "errors"

// Sentinel errors for packing.
var (
	// ErrEmptySolution indicates a decompose.Solution with no placements was passed to Pack.
	ErrEmptySolution = errors.New("pack: decomposition solution has no placements")
)
