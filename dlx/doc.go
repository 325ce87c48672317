// Package dlx implements Knuth's Dancing Links over a toroidal doubly
// linked sparse matrix, solving the exact (and partial) cover problem
// via Algorithm X with the minimum-size-column heuristic.
//
// Unlike a shared-pointer node graph, the matrix here is a single
// growable arena ([]dlxNode): every neighbor link and every row/column
// identifier is an arena index, not a pointer. This keeps the hot
// cover/uncover loop free of allocation and cache-friendly, and makes
// the matrix trivially discardable (drop the Solver value) once a
// Solve call completes.
package dlx
