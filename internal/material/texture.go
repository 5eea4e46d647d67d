// Package material implements the BRDF variants (diffuse, metallic,
// dielectric, isotropic, diffuse emitter) and the textures that feed
// their albedo/emission.
package material

import (
	"math"

	"github.com/kestrelrender/go-pathtracer/internal/core"
)

// SolidColor is a texture of uniform colour, ignoring (u,v,p).
type SolidColor struct {
	Color core.Colour
}

// NewSolidColor creates a solid colour texture.
func NewSolidColor(c core.Colour) *SolidColor {
	return &SolidColor{Color: c}
}

// Value returns the solid colour.
func (s *SolidColor) Value(u, v float64, p core.Point3) core.Colour {
	return s.Color
}

// Checker alternates between two textures in a 3D grid, so the pattern
// is stable regardless of the surface's UV parameterisation.
type Checker struct {
	Odd, Even core.Texture
	Scale     float64
}

// NewChecker creates a checker texture with the given scale and two
// alternating colours. scale multiplies the world coordinates inside the
// sines, so each check is pi/scale world units wide.
func NewChecker(scale float64, even, odd core.Colour) *Checker {
	return &Checker{Odd: NewSolidColor(odd), Even: NewSolidColor(even), Scale: scale}
}

// Value implements the classic sin(x)*sin(y)*sin(z) parity test: the
// sign of the product alternates the two sub-textures in a 3D grid that
// is independent of UV mapping.
func (c *Checker) Value(u, v float64, p core.Point3) core.Colour {
	sines := math.Sin(c.Scale*p.X) * math.Sin(c.Scale*p.Y) * math.Sin(c.Scale*p.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, p)
	}
	return c.Even.Value(u, v, p)
}
