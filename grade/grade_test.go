package grade

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGrade_RankingScenario(t *testing.T) {
	// (B,K) = (4,4), (4,2), (9,2); weights 0.6/0.4.
	// r0 = 0.6*1 + 0.4*0.5 = 0.8
	// r1 = 0.6*1 + 0.4*1   = 1.0
	// r2 = 0.6*(4/9) + 0.4*1 ≈ 0.667
	candidates := []Candidate{
		{Area: 4, PartCount: 4},
		{Area: 4, PartCount: 2},
		{Area: 9, PartCount: 2},
	}

	results, err := Grade(candidates, DefaultBoundingBoxWeight, DefaultNumOfPartsWeight)
	require.NoError(t, err)
	require.Len(t, results, 3)

	require.InDelta(t, 0.8, results[0].Grade, 1e-9)
	require.InDelta(t, 1.0, results[1].Grade, 1e-9)
	require.InDelta(t, 0.6*(4.0/9.0)+0.4, results[2].Grade, 1e-9)

	order := Rank(results)
	require.Equal(t, []int{1, 0, 2}, order)
}

func TestGrade_TiesBreakByOriginalIndex(t *testing.T) {
	candidates := []Candidate{
		{Area: 4, PartCount: 2},
		{Area: 4, PartCount: 2},
		{Area: 4, PartCount: 2},
	}
	results, err := Grade(candidates, DefaultBoundingBoxWeight, DefaultNumOfPartsWeight)
	require.NoError(t, err)

	order := Rank(results)
	require.Equal(t, []int{0, 1, 2}, order)
}

func TestGrade_RejectsEmptyInput(t *testing.T) {
	_, err := Grade(nil, DefaultBoundingBoxWeight, DefaultNumOfPartsWeight)
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestGrade_RejectsBadWeights(t *testing.T) {
	_, err := Grade([]Candidate{{Area: 1, PartCount: 1}}, 0.5, 0.6)
	require.ErrorIs(t, err, ErrInvalidWeights)
}
