package grade

import "errors"

// Sentinel errors for grading.
var (
	// ErrEmptyInput indicates Grade was called with no results to rank.
	ErrEmptyInput = errors.New("grade: no results to rank")

	// ErrInvalidWeights indicates the bounding-box and part-count weights don't sum to 1.
	ErrInvalidWeights = errors.New("grade: weights must sum to 1")
)
