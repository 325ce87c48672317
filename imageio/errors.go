package imageio

import "errors"

// Sentinel errors for image loading.
var (
	// ErrInputEmpty indicates an image had zero non-white pixels.
	ErrInputEmpty = errors.New("imageio: image has no non-white pixels")

	// ErrInputUnreadable wraps an underlying I/O or decode failure.
	ErrInputUnreadable = errors.New("imageio: unable to read image")
)
