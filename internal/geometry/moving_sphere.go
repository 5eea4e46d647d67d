package geometry

import (
	"math"
	"math/rand"

	"github.com/kestrelrender/go-pathtracer/internal/core"
)

// MovingSphere linearly interpolates its center between two key centers
// over [Time0, Time1] by the ray's time; intersection is otherwise
// identical to Sphere.
type MovingSphere struct {
	Center0, Center1 core.Point3
	Time0, Time1     float64
	Radius           float64
	Material         core.Material
}

// NewMovingSphere creates a motion-blurred sphere.
func NewMovingSphere(center0, center1 core.Point3, time0, time1, radius float64, material core.Material) *MovingSphere {
	return &MovingSphere{Center0: center0, Center1: center1, Time0: time0, Time1: time1, Radius: radius, Material: material}
}

// CenterAt returns the sphere's center at the given ray time.
func (s *MovingSphere) CenterAt(time float64) core.Point3 {
	t := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Sub(s.Center0).Mul(t))
}

// Hit is identical to Sphere.Hit but against the time-interpolated center.
func (s *MovingSphere) Hit(r core.Ray, tMin, tMax float64, rnd *rand.Rand) (core.HitRecord, bool) {
	center := s.CenterAt(r.Time)
	oc := r.Origin.Sub(center)
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
	outwardNormal := point.Sub(center).Mul(1 / s.Radius)
	u, v := sphereUV(outwardNormal)

	rec := core.HitRecord{T: root, Point: point, U: u, V: v, Material: s.Material}
	rec.SetFaceNormal(r, outwardNormal)
	return rec, true
}

// BoundingBox is the union of the bounding boxes at t0 and t1.
func (s *MovingSphere) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	r := core.Vec3{X: s.Radius, Y: s.Radius, Z: s.Radius}
	c0 := s.CenterAt(t0)
	c1 := s.CenterAt(t1)
	box0 := core.NewAABB(c0.Sub(r), c0.Add(r))
	box1 := core.NewAABB(c1.Sub(r), c1.Add(r))
	return box0.Union(box1), true
}
