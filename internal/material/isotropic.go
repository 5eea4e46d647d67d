package material

import (
	"math/rand"

	"github.com/kestrelrender/go-pathtracer/internal/core"
)

// Isotropic scatters into a uniformly random direction regardless of
// the incoming ray or the surface normal. It is the phase function used
// by ConstantMedium, but is a regular material in its own right.
type Isotropic struct {
	Albedo core.Texture
}

// NewIsotropic creates an isotropic material from a solid colour.
func NewIsotropic(albedo core.Colour) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// NewIsotropicTexture creates an isotropic material from any texture.
func NewIsotropicTexture(albedo core.Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter implements core.Material.
func (i *Isotropic) Scatter(rayIn core.Ray, hit core.HitRecord, rnd *rand.Rand) (core.Colour, core.Ray, bool) {
	scattered := core.NewRayAt(hit.Point, core.RandomInUnitSphere(rnd), rayIn.Time)
	attenuation := i.Albedo.Value(hit.U, hit.V, hit.Point)
	return attenuation, scattered, true
}

// Emitted implements core.Material; isotropic media do not emit.
func (i *Isotropic) Emitted(u, v float64, p core.Point3) core.Colour {
	return core.Colour{}
}
