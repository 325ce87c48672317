package pack

import (
	"math"
	"sort"

	"github.com/kvantos/dfpack/decompose"
	"github.com/kvantos/dfpack/dlx"
	"github.com/kvantos/dfpack/encode"
	"github.com/kvantos/dfpack/part"
	"github.com/kvantos/dfpack/world"
)

// Packer repacks decomposition solutions into minimal bounding boxes.
// World is the original object's world: its dimensions bound how far
// a candidate box may grow before packing is declared impossible, and
// its point count seeds the initial box-side guess.
type Packer struct {
	World  *world.World
	ThreeD bool
}

// New builds a Packer bounded by w's dimensions.
func New(w *world.World, threeD bool) *Packer {
	return &Packer{World: w, ThreeD: threeD}
}

// Pack probes increasing square (2D) or cube (3D) boxes, encoding
// sol's parts into each with their exact occurrence counts respected,
// until one box admits a solution. Growth stops, and NoPackingFound is
// returned, once a candidate side would exceed the original world's
// corresponding dimension.
func (p *Packer) Pack(sol decompose.Solution) (Result, error) {
	if len(sol.Placements) == 0 {
		return Result{}, ErrEmptySolution
	}

	parts, counts := distinctParts(sol)

	n := p.World.NumPoints()
	var side int
	if p.ThreeD {
		side = ceilCbrt(n)
	} else {
		side = int(math.Ceil(math.Sqrt(float64(n))))
	}
	if side < 1 {
		side = 1
	}

	width, height, depth := side, side, 1
	if p.ThreeD {
		depth = side
	}

	for {
		if width > p.World.Width() || height > p.World.Height() || (p.ThreeD && depth > p.World.Depth()) {
			return NoPackingFound(), nil
		}

		box, err := world.Box(width, height, depth)
		if err != nil {
			return Result{}, err
		}

		placements, ok, err := encodeAndSolve(box, parts, counts)
		if err != nil {
			return Result{}, err
		}
		if ok {
			return Result{
				Placements: placements,
				Width:      width,
				Height:     height,
				Depth:      depth,
				Area:       float64(width) * float64(height),
			}, nil
		}

		width = int(math.Ceil(1.1 * float64(width)))
		height = int(math.Ceil(1.1 * float64(height)))
		if p.ThreeD {
			depth = int(math.Ceil(1.1 * float64(depth)))
		}
	}
}

// encodeAndSolve builds one DLX instance for box: box cells optional,
// one mandatory identity column per part occurrence (the counted
// encoding, see encode.EncodePart), and returns the first solution's
// decoded placements, if any.
func encodeAndSolve(box *world.World, parts []*part.Part, counts map[part.ID]int) ([]encode.Placement, bool, error) {
	total := 0
	for _, p := range parts {
		total += counts[p.ID]
	}

	solver := dlx.New(box.NumPoints(), total)
	enc := encode.New(solver)

	offset := 0
	for _, p := range parts {
		n := counts[p.ID]
		identityCols := make([]int, n)
		for k := 0; k < n; k++ {
			identityCols[k] = box.NumPoints() + offset + k
		}
		offset += n
		enc.EncodePart(box, p, identityCols)
	}

	sols := solver.Solve()
	if len(sols) == 0 {
		return nil, false, nil
	}

	placements := make([]encode.Placement, 0, len(sols[0]))
	for _, row := range sols[0] {
		pl, ok := enc.Decode(row)
		if !ok {
			continue
		}
		placements = append(placements, pl)
	}
	return placements, true, nil
}

// distinctParts extracts sol's distinct parts (by id, in ascending id
// order for determinism) and their occurrence counts.
func distinctParts(sol decompose.Solution) ([]*part.Part, map[part.ID]int) {
	seen := make(map[part.ID]*part.Part)
	for _, pl := range sol.Placements {
		seen[pl.Part.ID] = pl.Part
	}

	ids := make([]part.ID, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	parts := make([]*part.Part, len(ids))
	counts := make(map[part.ID]int, len(ids))
	for i, id := range ids {
		parts[i] = seen[id]
		counts[id] = sol.PartsCount[id]
	}
	return parts, counts
}

// ceilCbrt returns ceil(n^(1/3)) for n >= 0, computed by integer
// search to avoid floating-point rounding errors near perfect cubes.
func ceilCbrt(n int) int {
	if n <= 0 {
		return 0
	}
	side := 1
	for side*side*side < n {
		side++
	}
	return side
}
