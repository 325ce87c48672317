// Package part defines the rigid, rectilinear shapes placed into a
// world during decomposition and packing.
//
// A Part owns the list of its distinct Orientations (its images under
// the rotations/reflections that preserve a rectilinear shape); an
// Orientation is a canonical set of offset points relative to a
// part-local origin. Part ids come from a strictly increasing sequence
// of distinct primes (PrimeAllocator), kept only because a downstream
// interface might someday want the multiplicative fingerprint
// property, but every algorithm in this module counts parts with a
// plain map[ID]int instead.
package part
