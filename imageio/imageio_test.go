package imageio

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kvantos/dfpack/world"
)

func writePNG(t *testing.T, path string, set func(img *image.RGBA)) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.White)
		}
	}
	set(img)

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestLoadWorld_CropsAndTranslates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shape.png")
	writePNG(t, path, func(img *image.RGBA) {
		// An L at (1,1),(2,1),(1,2) within a 4x4 white canvas.
		img.Set(1, 1, color.Black)
		img.Set(2, 1, color.Black)
		img.Set(1, 2, color.Black)
	})

	w, err := LoadWorld(path, false)
	require.NoError(t, err)
	require.Equal(t, 3, w.NumPoints())

	for _, p := range []world.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}} {
		require.True(t, w.Contains(p), "expected cropped/translated point %v", p)
	}
}

func TestLoadWorld_RejectsAllWhiteImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blank.png")
	writePNG(t, path, func(img *image.RGBA) {})

	_, err := LoadWorld(path, false)
	require.ErrorIs(t, err, ErrInputEmpty)
}

func TestLoadWorld_MissingFile(t *testing.T) {
	_, err := LoadWorld(filepath.Join(t.TempDir(), "missing.png"), false)
	require.ErrorIs(t, err, ErrInputUnreadable)
}

func TestSaveWorld_RoundTrips(t *testing.T) {
	w, err := world.New([]world.Point{{X: 0, Y: 0}, {X: 1, Y: 0}})
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	require.NoError(t, SaveWorld(path, w))

	loaded, err := LoadWorld(path, false)
	require.NoError(t, err)
	require.Equal(t, w.NumPoints(), loaded.NumPoints())
}
