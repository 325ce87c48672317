package part

import "errors"

// Sentinel errors for part construction.
var (
	// ErrInvalidSize indicates a non-positive part dimension was requested.
	ErrInvalidSize = errors.New("part: dimensions must be > 0")

	// ErrNoOrientations indicates an orientation's point list would be
	// empty, which never happens for a well-formed rectangle/box but is
	// guarded against defensively in NewOrientation.
	ErrNoOrientations = errors.New("part: orientation has no points")
)
