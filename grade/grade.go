package grade

import "sort"

// Grade computes grade[i] = weightB*(min_B/B[i]) + weightK*(min_K/K[i])
// for every candidate, where min_B and min_K are the smallest area and
// part count across all candidates. weightB and weightK must sum to 1.
//
// Returns ErrEmptyInput if candidates is empty, ErrInvalidWeights if
// the weights don't sum to 1 (within floating-point tolerance).
func Grade(candidates []Candidate, weightB, weightK float64) ([]Result, error) {
	if len(candidates) == 0 {
		return nil, ErrEmptyInput
	}
	if diff := weightB + weightK - 1; diff > 1e-9 || diff < -1e-9 {
		return nil, ErrInvalidWeights
	}

	minB, minK := candidates[0].Area, candidates[0].PartCount
	for _, c := range candidates[1:] {
		if c.Area < minB {
			minB = c.Area
		}
		if c.PartCount < minK {
			minK = c.PartCount
		}
	}

	out := make([]Result, len(candidates))
	for i, c := range candidates {
		g := weightB*(minB/c.Area) + weightK*(float64(minK)/float64(c.PartCount))
		out[i] = Result{Index: i, Grade: g}
	}
	return out, nil
}

// Rank returns results' indices sorted by descending grade, ties
// broken by ascending original index (spec invariant: the grader is
// order-stable for equal grades).
func Rank(results []Result) []int {
	ordered := make([]Result, len(results))
	copy(ordered, results)

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Grade > ordered[j].Grade
	})

	idx := make([]int, len(ordered))
	for i, r := range ordered {
		idx[i] = r.Index
	}
	return idx
}
