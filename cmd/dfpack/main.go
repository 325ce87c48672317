// Command dfpack decomposes a pixelated object into rectangular parts
// and repacks them into a minimal bounding box.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/kvantos/dfpack/config"
	"github.com/kvantos/dfpack/imageio"
)

func main() {
	root := &cobra.Command{
		Use:   "dfpack",
		Short: "Decompose a raster shape into parts and repack them into a minimal box",
	}
	root.AddCommand(newRunCmd())

	if err := root.Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps a pipeline error to the exit code documented for
// dfpack run: 1 for an unreadable image, 2 for an empty (all-white)
// image, 3 for an invalid configuration, 1 for anything else.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, imageio.ErrInputUnreadable):
		return 1
	case errors.Is(err, imageio.ErrInputEmpty):
		return 2
	case errors.Is(err, config.ErrInvalidConfig):
		return 3
	default:
		return 1
	}
}
