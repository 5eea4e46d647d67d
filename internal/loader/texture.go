package loader

import (
	"fmt"
	"os"

	"github.com/kestrelrender/go-pathtracer/internal/core"
	"github.com/kestrelrender/go-pathtracer/internal/material"
)

// debugColour is the fixed cyan stand-in spec.md §7 mandates whenever
// an image-texture load fails.
var debugColour = core.New(0, 1, 1)

// LoadTexture loads an image file and wraps it as an ImageTexture. On
// any failure it reports to standard error and returns a 1x1 texture
// that samples as the fixed debug colour for every lookup, rather than
// failing the scene build (spec.md §7's "image texture load failure"
// degrade path).
func LoadTexture(path string) *material.ImageTexture {
	data, err := LoadImage(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "image texture %q failed to load, using debug colour: %v\n", path, err)
		return material.NewImageTexture(1, 1, []core.Colour{debugColour})
	}
	return material.NewImageTexture(data.Width, data.Height, data.Pixels)
}
