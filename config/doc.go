// Package config loads and validates the tunable parameters of a
// decompose/pack run: the decomposer's part-size percentage and the
// grader's bounding-box/part-count weights.
package config
