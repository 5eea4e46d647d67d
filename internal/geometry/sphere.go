// Package geometry implements the ray/primitive intersection layer:
// spheres, axis-aligned rectangles and boxes, affine instancing, and the
// bounding-volume hierarchy that prunes them.
package geometry

import (
	"math"
	"math/rand"

	"github.com/kestrelrender/go-pathtracer/internal/core"
)

// Sphere is a static sphere. A negative Radius is a legal modelling
// trick ("hollow glass"): the intersection math is unchanged but the
// outward normal inverts, producing an inward-facing surface.
type Sphere struct {
	Center   core.Point3
	Radius   float64
	Material core.Material
}

// NewSphere creates a sphere.
func NewSphere(center core.Point3, radius float64, material core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: material}
}

// Hit solves |A + tB - C|^2 = r^2 for the smallest root in (tMin, tMax).
func (s *Sphere) Hit(r core.Ray, tMin, tMax float64, rnd *rand.Rand) (core.HitRecord, bool) {
	oc := r.Origin.Sub(s.Center)
	a := r.Direction.Dot(r.Direction)
	halfB := oc.Dot(r.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return core.HitRecord{}, false
		}
	}

	point := r.At(root)
	outwardNormal := point.Sub(s.Center).Mul(1 / s.Radius)
	u, v := sphereUV(outwardNormal)

	rec := core.HitRecord{T: root, Point: point, U: u, V: v, Material: s.Material}
	rec.SetFaceNormal(r, outwardNormal)
	return rec, true
}

// sphereUV maps a point on the unit sphere to (u,v) texture coordinates:
// phi = atan2(-z, x) + pi, theta = acos(-y), u = phi/2pi, v = theta/pi.
func sphereUV(p core.Vec3) (u, v float64) {
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	theta := math.Acos(-p.Y)
	return phi / (2 * math.Pi), theta / math.Pi
}

// BoundingBox returns the sphere's axis-aligned bounds, independent of
// the sign of Radius.
func (s *Sphere) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	r := math.Abs(s.Radius)
	rad := core.Vec3{X: r, Y: r, Z: r}
	return core.NewAABB(s.Center.Sub(rad), s.Center.Add(rad)), true
}
