package material

import (
	"math/rand"

	"github.com/kestrelrender/go-pathtracer/internal/core"
)

// DiffuseLight never scatters incoming rays; it only emits.
type DiffuseLight struct {
	Emit core.Texture
}

// NewDiffuseLight creates a diffuse light emitting a solid colour.
func NewDiffuseLight(emission core.Colour) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emission)}
}

// NewDiffuseLightTexture creates a diffuse light emitting from a texture.
func NewDiffuseLightTexture(emit core.Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter implements core.Material; diffuse lights absorb every ray.
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit core.HitRecord, rnd *rand.Rand) (core.Colour, core.Ray, bool) {
	return core.Colour{}, core.Ray{}, false
}

// Emitted implements core.Material.
func (d *DiffuseLight) Emitted(u, v float64, p core.Point3) core.Colour {
	return d.Emit.Value(u, v, p)
}
