// Package loader decodes on-disk image files into the RGB pixel
// buffers internal/material's ImageTexture consumes.
package loader

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"golang.org/x/image/bmp"

	"github.com/kestrelrender/go-pathtracer/internal/core"
)

// ImageData is a decoded image's pixels as floating-point colours,
// row-major with row 0 at the top of the file.
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Colour
}

// LoadImage loads a PNG, JPEG, or BMP file and converts it to a
// top-left-origin Colour buffer (spec.md §7's image-texture loader).
// The format is auto-detected from the file's magic bytes; importing
// x/image/bmp registers BMP alongside PNG and JPEG. If image.Decode
// fails, an explicit BMP decode is tried before giving up.
func LoadImage(path string) (*ImageData, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		if _, seekErr := file.Seek(0, 0); seekErr != nil {
			return nil, fmt.Errorf("decode image: %w", err)
		}
		img, err = bmp.Decode(file)
		if err != nil {
			return nil, fmt.Errorf("decode image: %w", err)
		}
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Colour, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pixels[y*width+x] = core.New(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{Width: width, Height: height, Pixels: pixels}, nil
}
