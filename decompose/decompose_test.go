package decompose

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kvantos/dfpack/world"
)

func TestDecompose_2x2World(t *testing.T) {
	w, err := world.Box(2, 2, 1)
	require.NoError(t, err)

	d, err := New(w, 100, false)
	require.NoError(t, err)

	result, err := d.Decompose()
	require.NoError(t, err)
	require.NotNil(t, result)

	// One full 2x2 part, one pair of horizontal 1x2 parts, one pair of
	// vertical 1x2 parts: three distinct exact covers of a 2x2 world.
	require.Len(t, result.Solutions, 3)

	for _, sol := range result.Solutions {
		assertExactCover(t, w, sol)
	}
}

func TestDecompose_LShapeFallsBackToUnitParts(t *testing.T) {
	// An L of 3 points: (0,0), (1,0), (0,1). No 1x2/2x2 placement tiles
	// it exactly (the lone horizontal and vertical dominoes both
	// straddle (0,0) and conflict), so only part_size == 1 succeeds.
	pts := []world.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	w, err := world.New(pts)
	require.NoError(t, err)

	d, err := New(w, 100, false)
	require.NoError(t, err)

	result, err := d.Decompose()
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotEmpty(t, result.Solutions)

	for _, sol := range result.Solutions {
		assertExactCover(t, w, sol)
		// Only the unit part is used, once per cell of the L.
		require.Len(t, sol.PartsCount, 1)
		for _, n := range sol.PartsCount {
			require.Equal(t, 3, n, "every cell of the L needs its own unit part")
		}
		require.Len(t, sol.Placements, 3)
	}
}

func TestNew_RejectsInvalidPercent(t *testing.T) {
	w, err := world.Box(2, 2, 1)
	require.NoError(t, err)

	_, err = New(w, 0, false)
	require.ErrorIs(t, err, ErrInvalidPercent)

	_, err = New(w, 101, false)
	require.ErrorIs(t, err, ErrInvalidPercent)
}

// assertExactCover checks spec invariant 3: every placement lies
// inside w, placements are pairwise point-disjoint, and their union is
// exactly w's point set.
func assertExactCover(t *testing.T, w *world.World, sol Solution) {
	t.Helper()

	covered := make(map[world.Point]int)
	for _, pl := range sol.Placements {
		for _, off := range pl.Orientation.Points {
			p := pl.Anchor.Add(off)
			require.True(t, w.Contains(p), "placement %v exits the world", p)
			covered[p]++
		}
	}

	require.Len(t, covered, w.NumPoints(), "union of placements must equal the world's point set")
	for p, n := range covered {
		require.Equal(t, 1, n, "point %v covered more than once", p)
	}
}
