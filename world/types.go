package world

import "fmt"

// Point is an integer lattice coordinate. Equality is structural, so
// Point is safe to use as a map key and in value comparisons.
type Point struct {
	X, Y, Z int
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns the component-wise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// String renders p as "(x,y,z)", handy in test failure messages.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// World is a finite set of integer lattice points: the universe to be
// decomposed (covered by parts) or inhabited (packed into). It is
// immutable once constructed; Points and the point↔index maps never
// change after New returns.
//
// Dimensions bound the coordinate ranges actually observed at
// construction time: Width = max(X)-min(X)+1, and similarly for
// Height/Depth. Width/Height/Depth do not imply every cell within the
// bounds is present: World is a sparse point set, not a dense grid.
type World struct {
	points     []Point
	pointIndex map[Point]int

	width, height, depth int
}

// New builds a World from a point list. Points must be pairwise
// distinct; order is preserved and becomes the index assignment (the
// i-th element of points gets index i).
//
// Returns ErrEmptyPoints if points is empty, ErrDuplicatePoint if any
// point repeats.
//
// Complexity: O(N).
func New(points []Point) (*World, error) {
	if len(points) == 0 {
		return nil, ErrEmptyPoints
	}

	idx := make(map[Point]int, len(points))
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	minZ, maxZ := points[0].Z, points[0].Z
	cp := make([]Point, len(points))
	for i, p := range points {
		if _, exists := idx[p]; exists {
			return nil, ErrDuplicatePoint
		}
		idx[p] = i
		cp[i] = p

		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
		if p.Z < minZ {
			minZ = p.Z
		}
		if p.Z > maxZ {
			maxZ = p.Z
		}
	}

	return &World{
		points:     cp,
		pointIndex: idx,
		width:      maxX - minX + 1,
		height:     maxY - minY + 1,
		depth:      maxZ - minZ + 1,
	}, nil
}

// Box builds a fully-populated rectangular (2D) or box-shaped (3D)
// World of the given dimensions, with depth=1 meaning a 2D box. Every
// lattice point in [0,width)×[0,height)×[0,depth) is present. Used by
// the packer to build candidate bounding boxes.
func Box(width, height, depth int) (*World, error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, ErrEmptyPoints
	}
	points := make([]Point, 0, width*height*depth)
	for z := 0; z < depth; z++ {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				points = append(points, Point{X: x, Y: y, Z: z})
			}
		}
	}

	return New(points)
}

// NumPoints returns N, the number of points in the world.
func (w *World) NumPoints() int { return len(w.points) }

// Width returns the world's X-extent.
func (w *World) Width() int { return w.width }

// Height returns the world's Y-extent.
func (w *World) Height() int { return w.height }

// Depth returns the world's Z-extent.
func (w *World) Depth() int { return w.depth }

// Points returns the world's points in index order. The returned
// slice is owned by World and must not be mutated.
func (w *World) Points() []Point { return w.points }

// Contains reports whether p is a point of the world.
func (w *World) Contains(p Point) bool {
	_, ok := w.pointIndex[p]
	return ok
}

// IndexOf returns the dense index of p, or ErrPointNotFound.
func (w *World) IndexOf(p Point) (int, error) {
	idx, ok := w.pointIndex[p]
	if !ok {
		return 0, ErrPointNotFound
	}
	return idx, nil
}

// PointAt returns the point stored at idx, or ErrIndexOutOfRange.
func (w *World) PointAt(idx int) (Point, error) {
	if idx < 0 || idx >= len(w.points) {
		return Point{}, ErrIndexOutOfRange
	}
	return w.points[idx], nil
}

// Subtract returns a new World containing every point of w not present
// in the given set of placed points. Returns ErrEmptyPoints if the
// result would be empty (a full, exact cover was achieved).
func (w *World) Subtract(placed map[Point]struct{}) (*World, error) {
	remaining := make([]Point, 0, len(w.points)-len(placed))
	for _, p := range w.points {
		if _, gone := placed[p]; !gone {
			remaining = append(remaining, p)
		}
	}
	if len(remaining) == 0 {
		return nil, ErrEmptyPoints
	}
	return New(remaining)
}
