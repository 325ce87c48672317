// Package grade ranks (decompose, pack) result pairs, given as
// Candidate values, by a weighted score of bounding-box area and part
// count, both relative to the best (smallest) value seen across the set.
package grade
