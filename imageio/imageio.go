package imageio

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	_ "golang.org/x/image/bmp"

	"github.com/kvantos/dfpack/world"
)

// LoadWorld decodes the image at path (PNG, JPEG, GIF, or BMP,
// auto-detected from its header) and converts it to a world.World:
// every pixel that is not pure white becomes a world point, the point
// set is cropped to its tight bounding box, and translated so the
// minimum corner sits at the origin.
//
// threeD has no effect on the loaded points (an image is inherently
// flat, every point's Z is 0) but is accepted for symmetry with the
// rest of the pipeline's 2D/3D switch.
func LoadWorld(path string, threeD bool) (*world.World, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputUnreadable, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputUnreadable, err)
	}

	bounds := img.Bounds()
	var raw []world.Point
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if isWhite(img.At(x, y)) {
				continue
			}
			raw = append(raw, world.Point{X: x, Y: y})
		}
	}

	if len(raw) == 0 {
		return nil, ErrInputEmpty
	}

	minX, minY := raw[0].X, raw[0].Y
	for _, p := range raw[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
	}

	points := make([]world.Point, len(raw))
	for i, p := range raw {
		points[i] = world.Point{X: p.X - minX, Y: p.Y - minY}
	}

	return world.New(points)
}

// isWhite reports whether c is pure white in straight (non-
// premultiplied) RGB, regardless of alpha.
func isWhite(c color.Color) bool {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return nc.R == 0xff && nc.G == 0xff && nc.B == 0xff
}

// SaveWorld renders w as a PNG at path: world points are black pixels
// on a white background, sized to w's width/height (depth is ignored;
// a 3D world's z=0 slice is rendered).
func SaveWorld(path string, w *world.World) error {
	img := image.NewRGBA(image.Rect(0, 0, w.Width(), w.Height()))
	for y := 0; y < w.Height(); y++ {
		for x := 0; x < w.Width(); x++ {
			img.Set(x, y, color.White)
		}
	}
	for _, p := range w.Points() {
		if p.Z != 0 {
			continue
		}
		img.Set(p.X, p.Y, color.Black)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInputUnreadable, err)
	}
	defer f.Close()

	return png.Encode(f, img)
}
