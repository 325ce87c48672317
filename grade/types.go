package grade

// DefaultBoundingBoxWeight and DefaultNumOfPartsWeight are the
// grader's default weights (w_B, w_K), matching the configured
// default of roughly 60/40 in favor of bounding-box area.
const (
	DefaultBoundingBoxWeight = 0.6
	DefaultNumOfPartsWeight  = 0.4
)

// Candidate is one (decompose, pack) result pair's graded inputs: the
// packed bounding-box area and the part count the decomposition used.
type Candidate struct {
	Area      float64
	PartCount int
}

// Result pairs a candidate's original index with its computed grade.
type Result struct {
	Index int
	Grade float64
}
