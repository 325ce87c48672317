package part

import "github.com/kvantos/dfpack/world"

// RectangleOrientations builds the distinct orientations of a solid
// w×h rectangle. A solid rectangle's point set is invariant under
// reflection, so its only distinct isometries are the axis-permutations
// of (w,h): the w×h rectangle itself and, when w≠h, its 90°-rotated
// h×w counterpart.
func RectangleOrientations(w, h int) ([]*Orientation, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidSize
	}

	orients := make([]*Orientation, 0, 2)
	seen := func(o *Orientation) bool {
		for _, existing := range orients {
			if existing.Equal(o) {
				return true
			}
		}
		return false
	}

	for _, dims := range [][2]int{{w, h}, {h, w}} {
		o, err := rectanglePoints(dims[0], dims[1])
		if err != nil {
			return nil, err
		}
		if !seen(o) {
			orients = append(orients, o)
		}
	}

	return orients, nil
}

func rectanglePoints(w, h int) (*Orientation, error) {
	pts := make([]world.Point, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pts = append(pts, world.Point{X: x, Y: y, Z: 0})
		}
	}
	return NewOrientation(pts)
}

// BoxOrientations builds the distinct orientations of a solid w×h×d
// box. As with RectangleOrientations, a solid box's point set is
// invariant under reflection, so the distinct isometries are exactly
// the distinct assignments of (w,h,d) to the three axes, up to 6 of
// them, fewer when dimensions repeat.
func BoxOrientations(w, h, d int) ([]*Orientation, error) {
	if w <= 0 || h <= 0 || d <= 0 {
		return nil, ErrInvalidSize
	}

	perms := [][3]int{
		{w, h, d}, {w, d, h},
		{h, w, d}, {h, d, w},
		{d, w, h}, {d, h, w},
	}

	orients := make([]*Orientation, 0, 6)
	seen := func(o *Orientation) bool {
		for _, existing := range orients {
			if existing.Equal(o) {
				return true
			}
		}
		return false
	}

	for _, dims := range perms {
		o, err := boxPoints(dims[0], dims[1], dims[2])
		if err != nil {
			return nil, err
		}
		if !seen(o) {
			orients = append(orients, o)
		}
	}

	return orients, nil
}

func boxPoints(w, h, d int) (*Orientation, error) {
	pts := make([]world.Point, 0, w*h*d)
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				pts = append(pts, world.Point{X: x, Y: y, Z: z})
			}
		}
	}
	return NewOrientation(pts)
}
