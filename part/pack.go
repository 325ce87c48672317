package part

// StandardPack builds the standard library of rectilinear part shapes
// for a given maximum part size: every axis-aligned rectangle (2D) or
// box (3D) whose sides are all in [1, partSize], excluding the bare
// 1×1 (1×1×1) unit shape, which callers add separately as the
// always-available fallback part of the final iteration.
//
// In 2D mode (threeD=false) this enumerates w×h for 1≤w,h≤partSize. In
// 3D mode it enumerates w×h×d for 1≤w,h,d≤partSize. Shapes are
// deduplicated by dimension multiset before orientation expansion
// (a 2×3 and a 3×2 request would otherwise produce the same Part
// twice), and each surviving shape gets a fresh id from alloc.
func StandardPack(partSize int, threeD bool, alloc *PrimeAllocator) ([]*Part, error) {
	if partSize <= 0 {
		return nil, ErrInvalidSize
	}

	if threeD {
		return standardPack3D(partSize, alloc)
	}
	return standardPack2D(partSize, alloc)
}

func standardPack2D(partSize int, alloc *PrimeAllocator) ([]*Part, error) {
	type dims struct{ w, h int }
	seen := make(map[dims]bool)

	var parts []*Part
	for w := 1; w <= partSize; w++ {
		for h := 1; h <= partSize; h++ {
			if w*h <= 1 {
				continue // unit part is the separate always-available fallback
			}
			key := dims{w, h}
			if w > h {
				key = dims{h, w}
			}
			if seen[key] {
				continue
			}
			seen[key] = true

			orients, err := RectangleOrientations(w, h)
			if err != nil {
				return nil, err
			}
			parts = append(parts, New(alloc.Next(), orients))
		}
	}

	return parts, nil
}

func standardPack3D(partSize int, alloc *PrimeAllocator) ([]*Part, error) {
	type dims struct{ w, h, d int }
	normalize := func(w, h, d int) dims {
		a, b, c := w, h, d
		if a > b {
			a, b = b, a
		}
		if b > c {
			b, c = c, b
		}
		if a > b {
			a, b = b, a
		}
		return dims{a, b, c}
	}
	seen := make(map[dims]bool)

	var parts []*Part
	for w := 1; w <= partSize; w++ {
		for h := 1; h <= partSize; h++ {
			for d := 1; d <= partSize; d++ {
				if w*h*d <= 1 {
					continue
				}
				key := normalize(w, h, d)
				if seen[key] {
					continue
				}
				seen[key] = true

				orients, err := BoxOrientations(w, h, d)
				if err != nil {
					return nil, err
				}
				parts = append(parts, New(alloc.Next(), orients))
			}
		}
	}

	return parts, nil
}

// UnitPart builds the single-cell fallback part (1×1 in 2D, 1×1×1 in
// 3D) that guarantees every decomposition iteration eventually reaches
// an exact cover.
func UnitPart(threeD bool, alloc *PrimeAllocator) (*Part, error) {
	var orients []*Orientation
	var err error
	if threeD {
		orients, err = BoxOrientations(1, 1, 1)
	} else {
		orients, err = RectangleOrientations(1, 1)
	}
	if err != nil {
		return nil, err
	}
	return New(alloc.Next(), orients), nil
}
