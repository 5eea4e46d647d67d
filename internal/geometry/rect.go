package geometry

import (
	"math/rand"

	"github.com/kestrelrender/go-pathtracer/internal/core"
)

// Rect is an axis-aligned rectangle lying on the plane Axis = K, bounded
// by [A0,A1] along the first in-plane axis and [B0,B1] along the second.
// For Axis=0 (X-constant) and Axis=2 (Z-constant) the in-plane axes are
// the cyclic pair (Axis+1)%3, (Axis+2)%3. Axis=1 (Y-constant) is
// special-cased to (X, Z) rather than the cyclic (Z, X), so A maps to X
// and B maps to Z as NewXZRect's parameter names promise.
type Rect struct {
	Axis     int
	K        float64
	A0, A1   float64
	B0, B1   float64
	Material core.Material
}

// NewXYRect creates a rectangle on the plane z = k.
func NewXYRect(x0, x1, y0, y1, k float64, material core.Material) *Rect {
	return &Rect{Axis: 2, K: k, A0: x0, A1: x1, B0: y0, B1: y1, Material: material}
}

// NewXZRect creates a rectangle on the plane y = k.
func NewXZRect(x0, x1, z0, z1, k float64, material core.Material) *Rect {
	return &Rect{Axis: 1, K: k, A0: x0, A1: x1, B0: z0, B1: z1, Material: material}
}

// NewYZRect creates a rectangle on the plane x = k.
func NewYZRect(y0, y1, z0, z1, k float64, material core.Material) *Rect {
	return &Rect{Axis: 0, K: k, A0: y0, A1: y1, B0: z0, B1: z1, Material: material}
}

func (rc *Rect) inPlaneAxes() (a, b int) {
	if rc.Axis == 1 {
		return 0, 2
	}
	return (rc.Axis + 1) % 3, (rc.Axis + 2) % 3
}

// Hit solves t = (k - A_axis)/B_axis, then checks the two in-plane
// coordinates against the rectangle's extents.
func (rc *Rect) Hit(r core.Ray, tMin, tMax float64, rnd *rand.Rand) (core.HitRecord, bool) {
	dAxis := r.Direction.At(rc.Axis)
	if dAxis == 0 {
		return core.HitRecord{}, false
	}

	t := (rc.K - r.Origin.At(rc.Axis)) / dAxis
	if t < tMin || t > tMax {
		return core.HitRecord{}, false
	}

	axisA, axisB := rc.inPlaneAxes()
	a := r.Origin.At(axisA) + t*r.Direction.At(axisA)
	b := r.Origin.At(axisB) + t*r.Direction.At(axisB)
	if a < rc.A0 || a > rc.A1 || b < rc.B0 || b > rc.B1 {
		return core.HitRecord{}, false
	}

	var outwardNormal core.Vec3
	switch rc.Axis {
	case 0:
		outwardNormal = core.Vec3{X: 1}
	case 1:
		outwardNormal = core.Vec3{Y: 1}
	default:
		outwardNormal = core.Vec3{Z: 1}
	}

	rec := core.HitRecord{
		T:        t,
		Point:    r.At(t),
		U:        (a - rc.A0) / (rc.A1 - rc.A0),
		V:        (b - rc.B0) / (rc.B1 - rc.B0),
		Material: rc.Material,
	}
	rec.SetFaceNormal(r, outwardNormal)
	return rec, true
}

// BoundingBox pads the box by 1e-4 on every axis, so the plane-normal
// axis never gives the slab test a degenerate (zero-thickness) slab.
func (rc *Rect) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	var min, max core.Vec3
	axisA, axisB := rc.inPlaneAxes()
	setAxis := func(v *core.Vec3, axis int, value float64) {
		switch axis {
		case 0:
			v.X = value
		case 1:
			v.Y = value
		default:
			v.Z = value
		}
	}
	setAxis(&min, rc.Axis, rc.K)
	setAxis(&max, rc.Axis, rc.K)
	setAxis(&min, axisA, rc.A0)
	setAxis(&max, axisA, rc.A1)
	setAxis(&min, axisB, rc.B0)
	setAxis(&max, axisB, rc.B1)
	return core.NewAABB(min, max).Pad(1e-4), true
}
