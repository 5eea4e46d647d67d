package material

import (
	"math"
	"math/rand"

	"github.com/kestrelrender/go-pathtracer/internal/core"
)

// Dielectric is a clear refractive material (glass, water, diamond)
// that either reflects or refracts each incoming ray, chosen
// stochastically by the Schlick-approximated Fresnel reflectance. A
// negative-radius sphere using this material produces the classic
// "hollow glass" shell.
type Dielectric struct {
	RefractiveIndex float64
}

// NewDielectric creates a dielectric material with the given index of
// refraction (e.g. 1.5 for glass).
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements core.Material.
func (d *Dielectric) Scatter(rayIn core.Ray, hit core.HitRecord, rnd *rand.Rand) (core.Colour, core.Ray, bool) {
	attenuation := core.New(1, 1, 1)

	eta := d.RefractiveIndex
	if hit.FrontFace {
		eta = 1.0 / d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Unit()
	cosTheta := math.Min(-unitDirection.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := eta*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || core.Schlick(cosTheta, eta) > rnd.Float64() {
		direction = core.Reflect(unitDirection, hit.Normal)
	} else {
		direction = core.Refract(unitDirection, hit.Normal, eta)
	}

	scattered := core.NewRayAt(hit.Point, direction, rayIn.Time)
	return attenuation, scattered, true
}

// Emitted implements core.Material; glass does not emit.
func (d *Dielectric) Emitted(u, v float64, p core.Point3) core.Colour {
	return core.Colour{}
}
