package material

import "github.com/kestrelrender/go-pathtracer/internal/core"

// ImageTexture samples colour from a decoded image buffer using
// nearest-neighbour filtering. Stateless beyond the captured pixels, so
// it is safe to share across every BVH node and worker goroutine that
// references it.
type ImageTexture struct {
	Width, Height int
	Pixels        []core.Colour // row-major: Pixels[y*Width+x], row 0 at the top
}

// NewImageTexture wraps a decoded pixel buffer as a texture.
func NewImageTexture(width, height int, pixels []core.Colour) *ImageTexture {
	return &ImageTexture{Width: width, Height: height, Pixels: pixels}
}

// Value samples the texture at (u,v), wrapping outside [0,1] and
// flipping v so v=1 is the top of the image.
func (t *ImageTexture) Value(u, v float64, p core.Point3) core.Colour {
	if t.Width <= 0 || t.Height <= 0 || len(t.Pixels) == 0 {
		return core.Colour{}
	}

	u = wrapUnit(u)
	v = wrapUnit(v)

	x := int(u * float64(t.Width))
	y := int((1.0 - v) * float64(t.Height))

	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	return t.Pixels[y*t.Width+x]
}

func wrapUnit(x float64) float64 {
	if x >= 0 && x <= 1 {
		return x
	}
	x -= float64(int(x))
	if x < 0 {
		x += 1.0
	}
	return x
}
