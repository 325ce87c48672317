package decompose

import "errors"

// Sentinel errors for decomposition.
var (
	// ErrInvalidPercent indicates a part_size_percent_of_world outside (0, 100].
	ErrInvalidPercent = errors.New("decompose: part_size_percent_of_world must be in (0, 100]")
)
