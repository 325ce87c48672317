// Package encode turns (part, orientation, anchor) placements that fit
// inside a world into rows of a dlx.Solver, and remembers how to
// decode a solver's row selections back into placements.
//
// Two encoding modes are supported, mirroring the two places the
// original pipeline encodes parts:
//
//   - Unconstrained (used by decompose): a part may be placed any
//     number of times; no part-identity column is added, so DLX alone
//     decides how many placements of each shape appear in a solution.
//   - Counted (used by pack): a part must be placed exactly
//     occurrences times, matching a decomposition's already-chosen
//     part counts. Each occurrence gets its own mandatory identity
//     column, so a solution is forced to pick exactly that many rows
//     for the part; the rows themselves may be any fitting
//     orientation/anchor, since which physical occurrence lands on
//     which identity column carries no meaning.
package encode
