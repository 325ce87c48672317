package dlx

// RowID identifies a row added via AddRow, in the order rows were
// added (0-based).
type RowID int

// Solution is an ordered list of the rows selected during one
// successful Algorithm X search, in the order they were chosen
// (depth-first order).
type Solution []RowID

// nodeRef is an arena index into Solver.nodes. Index 0 is always the
// sentinel master header.
type nodeRef int32

const sentinelRef nodeRef = 0

// dlxNode is one element of the toroidal doubly linked matrix: either
// a column header (row == headerRow) or a data node belonging to a
// specific row and column.
type dlxNode struct {
	up, down, left, right nodeRef
	row                    int32 // headerRow for header nodes
	col                    int32 // column id; -1 for the master sentinel
}

const headerRow int32 = -1

// Solver holds one exact/partial-cover problem instance: its column
// headers, data nodes, and per-column sizes. A Solver is built once,
// mutated during AddRow/Solve, and discarded after use. It owns no
// state beyond its own arena.
type Solver struct {
	optionalCols  int
	mandatoryCols int

	nodes   []dlxNode // nodes[0] = master sentinel; nodes[1..C] = column headers
	colSize []int32   // colSize[col], sized totalCols()

	rowCols [][]int // rowCols[rowID] = sorted column set, for fingerprinting
	nextRow int32
}

// totalCols returns O+M, the total column count.
func (s *Solver) totalCols() int { return s.optionalCols + s.mandatoryCols }

// headerRef returns the arena index of column col's header.
func (s *Solver) headerRef(col int) nodeRef { return nodeRef(col + 1) }

// isMandatory reports whether col lies in the mandatory suffix.
func (s *Solver) isMandatory(col int) bool { return col >= s.optionalCols }

// New constructs a partial-cover solver: optionalCols columns indexed
// first [0, optionalCols), then mandatoryCols columns
// [optionalCols, optionalCols+mandatoryCols). Only the mandatory
// columns must be covered by a solution.
func New(optionalCols, mandatoryCols int) *Solver {
	total := optionalCols + mandatoryCols
	s := &Solver{
		optionalCols:  optionalCols,
		mandatoryCols: mandatoryCols,
		nodes:         make([]dlxNode, total+1, total+1+64),
		colSize:       make([]int32, total),
	}

	// nodes[0] is the master sentinel; its row/right ring links every
	// column header, cyclically.
	s.nodes[0] = dlxNode{row: headerRow, col: -1}
	prev := sentinelRef
	for c := 0; c < total; c++ {
		ref := s.headerRef(c)
		s.nodes[ref] = dlxNode{
			up: ref, down: ref, // empty column: header points to itself vertically
			left: prev, col: int32(c), row: headerRow,
		}
		s.nodes[prev].right = ref
		prev = ref
	}
	s.nodes[prev].right = sentinelRef
	s.nodes[sentinelRef].left = prev

	return s
}

// NewFullCover constructs a full-cover solver: every column is
// mandatory (optionalCols = 0, mandatoryCols = numberOfColumns).
func NewFullCover(numberOfColumns int) *Solver {
	return New(0, numberOfColumns)
}

// RowColumns returns the sorted column set that row was added with,
// for fingerprinting and round-trip decoding.
func (s *Solver) RowColumns(row RowID) []int {
	return s.rowCols[row]
}
