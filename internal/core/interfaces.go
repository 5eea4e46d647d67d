package core

import "math/rand"

// HitRecord is populated by a successful intersection.
type HitRecord struct {
	T         float64
	Point     Point3
	Normal    Vec3 // oriented against the incoming ray
	FrontFace bool
	U, V      float64
	Material  Material
}

// SetFaceNormal orients Normal against the incoming ray and records
// which side was hit. After this call dot(ray.Direction, Normal) <= 0.
func (h *HitRecord) SetFaceNormal(r Ray, outwardNormal Vec3) {
	h.FrontFace = r.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Neg()
	}
}

// Hittable is the uniform intersection contract satisfied by every
// primitive, transform decorator, the constant medium, and the BVH. rnd
// is threaded through every Hit call (rather than read from a global) so
// that the one stochastic implementor, ConstantMedium, stays deterministic
// per render worker; every analytic primitive simply ignores it.
type Hittable interface {
	Hit(r Ray, tMin, tMax float64, rnd *rand.Rand) (HitRecord, bool)
	BoundingBox(t0, t1 float64) (AABB, bool)
}

// Material is the scattering contract. Scatter returns the attenuated
// outgoing ray, or false if the incoming ray is absorbed.
type Material interface {
	Scatter(rayIn Ray, hit HitRecord, rnd *rand.Rand) (attenuation Colour, scattered Ray, ok bool)
	Emitted(u, v float64, p Point3) Colour
}

// Texture maps a surface location to a colour.
type Texture interface {
	Value(u, v float64, p Point3) Colour
}
