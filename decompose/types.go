package decompose

import (
	"github.com/kvantos/dfpack/encode"
	"github.com/kvantos/dfpack/part"
)

// PartsCount maps a part id to how many times it occurs in a solution.
type PartsCount map[part.ID]int

// Solution is one exact decomposition of the original world: a count
// of how many instances of each part it uses, and the full placement
// list (every instance's orientation and anchor).
type Solution struct {
	PartsCount PartsCount
	Placements []encode.Placement
}

// Result is an ordered collection of alternative exact decompositions
// of the same world, discovered across the part_size iterations of
// Decomposer.Decompose.
type Result struct {
	Solutions []Solution
}

// mergeCounts returns a new PartsCount with a's and b's occurrence
// counts summed.
func mergeCounts(a, b PartsCount) PartsCount {
	out := make(PartsCount, len(a)+len(b))
	for id, n := range a {
		out[id] += n
	}
	for id, n := range b {
		out[id] += n
	}
	return out
}
