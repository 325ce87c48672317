// Package decompose covers a world.World with rectilinear parts,
// largest-first, falling back to unit parts so every world is
// eventually covered exactly.
//
// Each part_size iteration builds the standard part pack for that size
// (part.StandardPack), encodes it into a dlx.Solver via encode, and
// solves. The first iteration solves the whole world directly; every
// later iteration extends each solution already found by solving the
// residual world (what the parts-so-far didn't cover) with the next,
// smaller part pack. A branch stops growing the moment its residual is
// fully covered; see Decomposer.Decompose for the exact first-exact-
// wins semantics this preserves.
package decompose
