package material

import (
	"math/rand"

	"github.com/kestrelrender/go-pathtracer/internal/core"
)

// Metal is a specular reflector with an optional fuzz factor that
// perturbs the reflected direction; fuzz=0 is a perfect mirror.
type Metal struct {
	Albedo core.Colour
	Fuzz   float64
}

// NewMetal creates a metal material, clamping fuzz to [0,1].
func NewMetal(albedo core.Colour, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter implements core.Material. Returns false if the fuzzed
// reflection points into the surface (absorbed).
func (m *Metal) Scatter(rayIn core.Ray, hit core.HitRecord, rnd *rand.Rand) (core.Colour, core.Ray, bool) {
	reflected := core.Reflect(rayIn.Direction.Unit(), hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(rnd).Mul(m.Fuzz))
	}

	scattered := core.NewRayAt(hit.Point, reflected, rayIn.Time)
	if scattered.Direction.Dot(hit.Normal) <= 0 {
		return core.Colour{}, core.Ray{}, false
	}
	return m.Albedo, scattered, true
}

// Emitted implements core.Material; metal does not emit.
func (m *Metal) Emitted(u, v float64, p core.Point3) core.Colour {
	return core.Colour{}
}
