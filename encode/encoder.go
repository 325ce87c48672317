package encode

import (
	"github.com/kvantos/dfpack/dlx"
	"github.com/kvantos/dfpack/part"
	"github.com/kvantos/dfpack/world"
)

// Placement is a (orientation, anchor) pair: one part instance
// situated in a world.
type Placement struct {
	Part        *part.Part
	Orientation *part.Orientation
	Anchor      world.Point
}

// Encoder owns the row-id → Placement decode map built while
// encoding parts into a dlx.Solver, so a solver's row selections can be
// translated back into placements after Solve.
type Encoder struct {
	solver *dlx.Solver
	decode map[dlx.RowID]Placement

	// columnOf remaps a world index to the solver column that
	// represents it. Nil means identity (world index == column id),
	// which is the common case: only a decomposer repartitioning world
	// cells into optional/mandatory ranges needs a non-identity map.
	columnOf func(worldIndex int) int
}

// New wraps solver with a fresh, empty decode map and an identity
// world-index-to-column mapping.
func New(solver *dlx.Solver) *Encoder {
	return &Encoder{solver: solver, decode: make(map[dlx.RowID]Placement)}
}

// NewWithColumnMap is like New, but every world index produced while
// encoding is passed through columnOf before becoming a solver column.
// Used when the solver's column layout doesn't match world-index order
// (e.g. world cells partitioned into optional/mandatory ranges).
func NewWithColumnMap(solver *dlx.Solver, columnOf func(int) int) *Encoder {
	return &Encoder{solver: solver, decode: make(map[dlx.RowID]Placement), columnOf: columnOf}
}

// Decode returns the placement that produced row, if row was emitted
// by this Encoder.
func (e *Encoder) Decode(row dlx.RowID) (Placement, bool) {
	p, ok := e.decode[row]
	return p, ok
}

// EncodePart visits every point of w as a candidate anchor for p, in
// every one of p's orientations, and emits one DLX row per fitting
// placement (step 1-3 of the encoding procedure).
//
// If identityCols is non-empty, each fitting placement is instead
// emitted once per entry of identityCols, each copy carrying that entry
// as an extra column (no copy without one): len(identityCols) mandatory
// "part occurs here" columns, one per desired occurrence, so the
// solver is forced to select exactly len(identityCols) rows for p
// (step 4: the multi-occurrence identity-column mechanism). An empty
// identityCols leaves the part's count unconstrained.
func (e *Encoder) EncodePart(w *world.World, p *part.Part, identityCols []int) {
	visitor := &fitVisitor{enc: e, part: p, identityCols: identityCols}
	w.Accept(visitor)
}

// fitVisitor implements world.Visitor: at every anchor point, it tries
// every orientation of its part and emits a row for each one that fits
// entirely inside the world.
type fitVisitor struct {
	enc          *Encoder
	part         *part.Part
	identityCols []int
}

func (v *fitVisitor) Visit(w *world.World, anchor world.Point) {
	for _, orient := range v.part.Orientations {
		cols, ok := coveredIndices(w, anchor, orient)
		if !ok {
			continue
		}
		if m := v.enc.columnOf; m != nil {
			for i, c := range cols {
				cols[i] = m(c)
			}
		}

		if len(v.identityCols) == 0 {
			row := v.enc.solver.AddRow(cols)
			v.enc.decode[row] = Placement{Part: v.part, Orientation: orient, Anchor: anchor}
			continue
		}

		for _, idCol := range v.identityCols {
			rowCols := append(append([]int(nil), cols...), idCol)
			row := v.enc.solver.AddRow(rowCols)
			v.enc.decode[row] = Placement{Part: v.part, Orientation: orient, Anchor: anchor}
		}
	}
}

// ReachableIndices returns the set of world indices that at least one
// (part, orientation) placed at some anchor in w would cover. A
// decomposer uses this to tell which world cells any candidate part
// could possibly reach at the current part size, so it can mark the
// rest optional rather than dooming the whole solve to zero solutions.
func ReachableIndices(w *world.World, parts []*part.Part) map[int]bool {
	reachable := make(map[int]bool)
	for _, p := range parts {
		for _, orient := range p.Orientations {
			for _, anchor := range w.Points() {
				cols, ok := coveredIndices(w, anchor, orient)
				if !ok {
					continue
				}
				for _, c := range cols {
					reachable[c] = true
				}
			}
		}
	}
	return reachable
}

// coveredIndices computes the world-indices an orientation placed at
// anchor would cover, rejecting the placement if any covered point is
// absent from the world (steps 1-3 of the encoding procedure).
func coveredIndices(w *world.World, anchor world.Point, orient *part.Orientation) ([]int, bool) {
	cols := make([]int, 0, len(orient.Points))
	for _, off := range orient.Points {
		p := anchor.Add(off)
		idx, err := w.IndexOf(p)
		if err != nil {
			return nil, false
		}
		cols = append(cols, idx)
	}
	return cols, true
}
