package decompose

import (
	"math"

	"github.com/kvantos/dfpack/dlx"
	"github.com/kvantos/dfpack/encode"
	"github.com/kvantos/dfpack/part"
	"github.com/kvantos/dfpack/world"
)

// Decomposer covers one world with rectilinear parts, largest-first.
//
// PartSizePercent sets the starting part_size as a percentage of
// min(width, height): min_edge = max(1, round(min(w,h) * P / 100)).
// ThreeD switches part generation between rectangles and boxes.
type Decomposer struct {
	World           *world.World
	PartSizePercent int
	ThreeD          bool
}

// New builds a Decomposer for w. partSizePercent must lie in (0, 100].
func New(w *world.World, partSizePercent int, threeD bool) (*Decomposer, error) {
	if partSizePercent <= 0 || partSizePercent > 100 {
		return nil, ErrInvalidPercent
	}
	return &Decomposer{World: w, PartSizePercent: partSizePercent, ThreeD: threeD}, nil
}

// Decompose iterates part_size from min_edge down to 1, extending the
// solutions found at each size by solving the residual world (what
// prior iterations' parts left uncovered) with the next, smaller part
// pack. The part_size == 1 iteration always succeeds (unit parts cover
// anything), so Decompose always returns a non-nil, non-empty Result.
//
// A branch stops extending the moment its residual becomes empty: that
// existing solution is already an exact cover and is carried forward
// unchanged, and no further existing solutions at that part_size are
// extended either.
// This first-exact-wins quirk is preserved deliberately (see DESIGN.md).
func (d *Decomposer) Decompose() (*Result, error) {
	minEdge := minEdge(d.World.Width(), d.World.Height(), d.PartSizePercent)

	// One allocator for the whole run, so part ids stay distinct across
	// part_size iterations and merged PartsCount entries never collide.
	alloc := part.NewPrimeAllocator()

	var result *Result
	for partSize := minEdge; partSize >= 1; partSize-- {
		partial := partSize > 1

		parts, err := d.buildParts(partSize, partial, alloc)
		if err != nil {
			return nil, err
		}

		if result == nil {
			sols, err := solveWorld(d.World, parts, partial)
			if err != nil {
				return nil, err
			}
			// A zero-solution attempt at this size means no prior result
			// exists yet: leave result nil and retry from scratch at the
			// next, smaller part_size rather than locking in an empty
			// result; part_size == 1 is guaranteed to succeed.
			if len(sols) > 0 {
				result = &Result{Solutions: sols}
			}
		} else {
			next := &Result{}
			for _, sol := range result.Solutions {
				extended, exact, err := extendSolution(d.World, parts, sol, partial)
				if err != nil {
					return nil, err
				}
				if exact {
					break
				}
				next.Solutions = append(next.Solutions, extended...)
			}
			if len(next.Solutions) > 0 {
				result = next
			}
		}

		if partSize == 1 {
			break
		}
	}

	return result, nil
}

// buildParts returns the standard part pack for partSize, or the
// single unit part when the iteration has fallen back to part_size 1.
func (d *Decomposer) buildParts(partSize int, partial bool, alloc *part.PrimeAllocator) ([]*part.Part, error) {
	if !partial {
		u, err := part.UnitPart(d.ThreeD, alloc)
		if err != nil {
			return nil, err
		}
		return []*part.Part{u}, nil
	}
	return part.StandardPack(partSize, d.ThreeD, alloc)
}

// minEdge computes max(1, round(min(width,height) * percent / 100)).
func minEdge(width, height, percent int) int {
	m := width
	if height < m {
		m = height
	}
	e := int(math.Round(float64(m) * float64(percent) / 100))
	if e < 1 {
		e = 1
	}
	return e
}

// extendSolution subtracts sol's placements from w to get the residual
// world, then re-decomposes the residual with parts. If the residual
// is empty, sol is already an exact cover: extendSolution reports
// exact=true and no extension is produced. Otherwise every alternative
// residual covering is merged onto sol to produce one extended
// Solution per alternative.
func extendSolution(w *world.World, parts []*part.Part, sol Solution, partial bool) (extended []Solution, exact bool, err error) {
	placed := make(map[world.Point]struct{}, len(sol.Placements)*2)
	for _, pl := range sol.Placements {
		for _, off := range pl.Orientation.Points {
			placed[pl.Anchor.Add(off)] = struct{}{}
		}
	}

	residual, err := w.Subtract(placed)
	if err != nil {
		return nil, true, nil // ErrEmptyPoints: residual is empty, sol is an exact cover.
	}

	subSols, err := solveWorld(residual, parts, partial)
	if err != nil {
		return nil, false, err
	}

	extended = make([]Solution, 0, len(subSols))
	for _, sub := range subSols {
		merged := Solution{
			PartsCount: mergeCounts(sol.PartsCount, sub.PartsCount),
			Placements: append(append([]encode.Placement(nil), sol.Placements...), sub.Placements...),
		}
		extended = append(extended, merged)
	}
	return extended, false, nil
}

// solveWorld runs one exact-cover (partial=false) or partial-cover
// (partial=true) solve of w against parts, with no per-occurrence
// identity constraint: DLX alone decides how many of each part appear.
//
// In partial mode, world cells that no candidate placement of parts
// can reach are marked optional rather than mandatory, since otherwise
// a single unreachable cell (common at the edges of an irregular
// world, when parts are still larger than the thinnest feature) would
// make every mandatory column's "must be covered" requirement
// unsatisfiable and the solve would always return zero solutions. Only
// the reachable cells, the ones some placement could actually cover,
// must be covered exactly once.
func solveWorld(w *world.World, parts []*part.Part, partial bool) ([]Solution, error) {
	if !partial {
		solver := dlx.NewFullCover(w.NumPoints())
		enc := encode.New(solver)
		for _, p := range parts {
			enc.EncodePart(w, p, nil)
		}
		return decodeSolutions(solver, enc), nil
	}

	reachable := encode.ReachableIndices(w, parts)
	optional, mandatory := make([]int, 0, w.NumPoints()), make([]int, 0, w.NumPoints())
	for i := 0; i < w.NumPoints(); i++ {
		if reachable[i] {
			mandatory = append(mandatory, i)
		} else {
			optional = append(optional, i)
		}
	}

	colOf := make(map[int]int, w.NumPoints())
	for newCol, orig := range optional {
		colOf[orig] = newCol
	}
	offset := len(optional)
	for i, orig := range mandatory {
		colOf[orig] = offset + i
	}

	solver := dlx.New(len(optional), len(mandatory))
	enc := encode.NewWithColumnMap(solver, func(i int) int { return colOf[i] })
	for _, p := range parts {
		enc.EncodePart(w, p, nil)
	}
	return decodeSolutions(solver, enc), nil
}

func decodeSolutions(solver *dlx.Solver, enc *encode.Encoder) []Solution {
	dlxSols := solver.Solve()
	out := make([]Solution, 0, len(dlxSols))
	for _, dsol := range dlxSols {
		counts := make(PartsCount)
		placements := make([]encode.Placement, 0, len(dsol))
		for _, row := range dsol {
			pl, ok := enc.Decode(row)
			if !ok {
				continue
			}
			counts[pl.Part.ID]++
			placements = append(placements, pl)
		}
		out = append(out, Solution{PartsCount: counts, Placements: placements})
	}
	return out
}
