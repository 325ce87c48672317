package part

import (
	"sort"

	"github.com/kvantos/dfpack/world"
)

// ID uniquely identifies a Part. Ids are assigned from a strictly
// increasing sequence of distinct primes by PrimeAllocator.
type ID int

// Orientation is a canonical set of offset points relative to a
// part-local origin: the point set's own minimum corner sits at
// (0,0,0). Two orientations are equal iff their normalized point sets
// are equal.
type Orientation struct {
	// Points are offsets from the orientation's local origin, sorted in
	// a fixed (z,y,x) order so equal orientations always compare equal
	// point-by-point.
	Points []world.Point
}

// NewOrientation builds a canonical Orientation from a raw offset set:
// it translates the set so its minimum corner is the origin, then
// sorts points into a deterministic order.
func NewOrientation(points []world.Point) (*Orientation, error) {
	if len(points) == 0 {
		return nil, ErrNoOrientations
	}

	minX, minY, minZ := points[0].X, points[0].Y, points[0].Z
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Z < minZ {
			minZ = p.Z
		}
	}

	norm := make([]world.Point, len(points))
	origin := world.Point{X: minX, Y: minY, Z: minZ}
	for i, p := range points {
		norm[i] = p.Sub(origin)
	}
	sortPoints(norm)

	return &Orientation{Points: norm}, nil
}

// Equal reports whether o and other cover the same canonical point set.
func (o *Orientation) Equal(other *Orientation) bool {
	if len(o.Points) != len(other.Points) {
		return false
	}
	for i, p := range o.Points {
		if p != other.Points[i] {
			return false
		}
	}
	return true
}

func sortPoints(pts []world.Point) {
	sort.Slice(pts, func(i, j int) bool {
		a, b := pts[i], pts[j]
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
}

// Part is a rectilinear shape identified by ID, carrying the list of
// its distinct orientations.
type Part struct {
	ID           ID
	Orientations []*Orientation
}

// New builds a Part from a prime id and a deduplicated orientation
// list (callers that generate orientations via the rotation helpers in
// orientations.go already get deduplication for free).
func New(id ID, orientations []*Orientation) *Part {
	return &Part{ID: id, Orientations: orientations}
}
