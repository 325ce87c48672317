package pack

import (
	"math"

	"github.com/kvantos/dfpack/encode"
)

// Result is the outcome of packing one decomposition solution: the
// placement list inside the chosen box, the box's dimensions, and its
// bounding-box area (width*height; depth is tracked but not
// multiplied in, per the ranking rule). Area is +Inf when no box up to
// the original world's dimensions could fit the parts; see
// NoPackingFound.
type Result struct {
	Placements           []encode.Placement
	Width, Height, Depth int
	Area                 float64
}

// NoPackingFound returns the sentinel result for a decomposition whose
// parts never fit inside a box bounded by the original world's
// dimensions, however far the candidate box was grown.
func NoPackingFound() Result {
	return Result{Area: math.Inf(1)}
}

// Found reports whether r represents an actual packing (as opposed to
// the NoPackingFound sentinel).
func (r Result) Found() bool {
	return !math.IsInf(r.Area, 1)
}
