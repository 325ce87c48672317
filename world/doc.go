// Package world defines the lattice-point universe that parts are
// decomposed from and packed into.
//
// A World holds an ordered, immutable set of integer points and a
// bijection between each point and a dense index in [0, N). Decompose
// and pack both work purely in terms of indices; World is the only
// place that translates between points and indices.
package world
