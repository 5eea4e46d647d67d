package material

import (
	"math/rand"

	"github.com/kestrelrender/go-pathtracer/internal/core"
)

// Lambertian is a perfectly diffuse material: the scattered direction is
// the surface normal perturbed by a random unit vector.
type Lambertian struct {
	Albedo core.Texture
}

// NewLambertian creates a Lambertian material from a solid colour.
func NewLambertian(albedo core.Colour) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewLambertianTexture creates a Lambertian material from any texture.
func NewLambertianTexture(albedo core.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements core.Material.
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, rnd *rand.Rand) (core.Colour, core.Ray, bool) {
	direction := hit.Normal.Add(core.RandomUnitVector(rnd))

	// Catch the degenerate case where the random unit vector is nearly
	// opposite the normal, which would otherwise produce a near-zero
	// scatter direction.
	if direction.NearZero() {
		direction = hit.Normal
	}

	scattered := core.NewRayAt(hit.Point, direction, rayIn.Time)
	attenuation := l.Albedo.Value(hit.U, hit.V, hit.Point)
	return attenuation, scattered, true
}

// Emitted implements core.Material; Lambertian surfaces do not emit.
func (l *Lambertian) Emitted(u, v float64, p core.Point3) core.Colour {
	return core.Colour{}
}
