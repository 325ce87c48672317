package dlx

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func sortedSolutions(sols []Solution, s *Solver) [][]int {
	out := make([][]int, len(sols))
	for i, sol := range sols {
		var cols []int
		for _, r := range sol {
			cols = append(cols, s.RowColumns(r)...)
		}
		sort.Ints(cols)
		out[i] = cols
	}
	sort.Slice(out, func(i, j int) bool {
		return lessIntSlice(out[i], out[j])
	})
	return out
}

func lessIntSlice(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

func TestSolve_Trivial(t *testing.T) {
	s := NewFullCover(3)
	s.AddRow([]int{0, 1})
	s.AddRow([]int{1, 2})
	s.AddRow([]int{0, 2})
	s.AddRow([]int{0, 1, 2})

	sols := s.Solve()
	require.Len(t, sols, 1)
	require.Len(t, sols[0], 1)
	require.ElementsMatch(t, []int{0, 1, 2}, s.RowColumns(sols[0][0]))
}

func TestSolve_Overlapping(t *testing.T) {
	s := NewFullCover(4)
	s.AddRow([]int{0, 1})
	s.AddRow([]int{2, 3})
	s.AddRow([]int{0, 2})
	s.AddRow([]int{1, 3})

	sols := s.Solve()
	require.Len(t, sols, 2)

	got := sortedSolutions(sols, s)
	want := [][]int{{0, 1, 2, 3}, {0, 1, 2, 3}}
	require.Equal(t, want, got)

	// Distinguish the two solutions by their row pairs, not just the
	// flattened column union (both unions are {0,1,2,3}).
	var rowPairs [][2][]int
	for _, sol := range sols {
		require.Len(t, sol, 2)
		a, b := s.RowColumns(sol[0]), s.RowColumns(sol[1])
		rowPairs = append(rowPairs, [2][]int{a, b})
	}
	foundFirst, foundSecond := false, false
	for _, pair := range rowPairs {
		if (equalInts(pair[0], []int{0, 1}) && equalInts(pair[1], []int{2, 3})) ||
			(equalInts(pair[1], []int{0, 1}) && equalInts(pair[0], []int{2, 3})) {
			foundFirst = true
		}
		if (equalInts(pair[0], []int{0, 2}) && equalInts(pair[1], []int{1, 3})) ||
			(equalInts(pair[1], []int{0, 2}) && equalInts(pair[0], []int{1, 3})) {
			foundSecond = true
		}
	}
	require.True(t, foundFirst)
	require.True(t, foundSecond)
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSolve_PartialCover(t *testing.T) {
	// optional = {0,1}, mandatory = {2,3} (encoded as columns 2,3).
	// Only row sets that cover both mandatory columns exactly once
	// qualify: {r2} alone, or {r0,r1} together. {r0} or {r1} alone each
	// leave one mandatory column uncovered and are not solutions.
	s := New(2, 2)
	r0 := s.AddRow([]int{0, 2})
	r1 := s.AddRow([]int{1, 3})
	r2 := s.AddRow([]int{2, 3})

	sols := s.Solve()
	require.Len(t, sols, 2)

	var found0, found1 bool
	for _, sol := range sols {
		switch {
		case len(sol) == 1 && sol[0] == r2:
			found0 = true
		case len(sol) == 2 && containsRow(sol, r0) && containsRow(sol, r1):
			found1 = true
		}
	}
	require.True(t, found0, "solution {2,3} alone")
	require.True(t, found1, "solution {0,2}+{1,3}")
}

func containsRow(sol Solution, r RowID) bool {
	for _, x := range sol {
		if x == r {
			return true
		}
	}
	return false
}

func TestAddRow_EmptyIsNoOp(t *testing.T) {
	s := NewFullCover(2)
	r := s.AddRow(nil)
	require.Equal(t, RowID(-1), r)
	require.Equal(t, int32(0), s.colSize[0])
}

func TestAddRow_OutOfRangePanics(t *testing.T) {
	s := NewFullCover(2)
	require.Panics(t, func() {
		s.AddRow([]int{0, 5})
	})
}

func TestCoverUncover_RoundTrip(t *testing.T) {
	s := NewFullCover(4)
	s.AddRow([]int{0, 1})
	s.AddRow([]int{2, 3})
	s.AddRow([]int{0, 2})
	s.AddRow([]int{1, 3})

	before := snapshot(s)
	s.cover(0)
	s.uncover(0)
	after := snapshot(s)

	require.Equal(t, before, after)
}

func TestCoverUncover_NestedRoundTrip(t *testing.T) {
	s := NewFullCover(4)
	s.AddRow([]int{0, 1})
	s.AddRow([]int{2, 3})
	s.AddRow([]int{0, 2})
	s.AddRow([]int{1, 3})

	before := snapshot(s)
	s.cover(0)
	s.cover(2)
	s.uncover(2)
	s.uncover(0)
	after := snapshot(s)

	require.Equal(t, before, after)
}

// snapshot captures every node's links and every column's size, for
// bit-identity comparison across cover/uncover pairs (see spec
// invariant: cover(c) followed by uncover(c) restores the matrix
// exactly).
func snapshot(s *Solver) matrixState {
	return matrixState{
		nodes:   append([]dlxNode(nil), s.nodes...),
		colSize: append([]int32(nil), s.colSize...),
	}
}

type matrixState struct {
	nodes   []dlxNode
	colSize []int32
}

func TestSolve_NoSolution(t *testing.T) {
	s := NewFullCover(2)
	s.AddRow([]int{0})
	// Column 1 has no rows at all: a mandatory column with size 0 is a
	// dead end on the very first branch.
	sols := s.Solve()
	require.Empty(t, sols)
}
