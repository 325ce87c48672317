package world

import "errors"

// Sentinel errors for world construction and lookup.
var (
	// ErrEmptyPoints indicates a World was constructed with no points.
	ErrEmptyPoints = errors.New("world: point set must not be empty")

	// ErrDuplicatePoint indicates the same point appeared twice in the
	// input list, which would break the point↔index bijection.
	ErrDuplicatePoint = errors.New("world: duplicate point in input")

	// ErrPointNotFound indicates a lookup referenced a point absent from
	// the world.
	ErrPointNotFound = errors.New("world: point not found")

	// ErrIndexOutOfRange indicates a lookup referenced an index outside
	// [0, N).
	ErrIndexOutOfRange = errors.New("world: index out of range")
)
