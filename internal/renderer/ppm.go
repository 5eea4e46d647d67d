package renderer

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/kestrelrender/go-pathtracer/internal/core"
)

// gamma is the fixed display gamma applied to linear accumulated colour
// before quantizing to 8 bits (spec.md §4.1).
const gamma = 2.0

// WritePPM writes frame to w as a plain PPM (P3), rows top to bottom,
// columns left to right, gamma-corrected per spec.md §4.1. Progress is
// not reported here; callers that want scanline progress should wrap w
// or report separately since Render already has the whole frame buffered.
func WritePPM(w io.Writer, frame *Frame) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", frame.Width, frame.Height); err != nil {
		return err
	}

	for row := 0; row < frame.Height; row++ {
		for col := 0; col < frame.Width; col++ {
			r, g, b := quantize(frame.Pixels[row][col])
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// quantize applies gamma correction (gamma=2.0, i.e. a square root) to a
// linear colour, clamps to [0, 0.999], and scales to an 8-bit integer.
func quantize(c core.Colour) (int, int, int) {
	return quantizeChannel(c.X), quantizeChannel(c.Y), quantizeChannel(c.Z)
}

func quantizeChannel(v float64) int {
	if v < 0 {
		v = 0
	}
	corrected := math.Pow(v, 1.0/gamma)
	if corrected > 0.999 {
		corrected = 0.999
	}
	return int(256 * corrected)
}
