package core

import "math"

// AABB is an axis-aligned bounding box with Min.i <= Max.i on every
// axis.
type AABB struct {
	Min, Max Point3
}

// NewAABB creates an AABB from two corner points, sorting each axis so
// Min <= Max regardless of argument order.
func NewAABB(a, b Point3) AABB {
	return AABB{
		Min: Vec3{math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)},
		Max: Vec3{math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)},
	}
}

// Hit tests a ray against the box using the slab method.
func (b AABB) Hit(r Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		invD := 1.0 / r.Direction.At(axis)
		t0 := (b.Min.At(axis) - r.Origin.At(axis)) * invD
		t1 := (b.Max.At(axis) - r.Origin.At(axis)) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}

// Union returns the smallest AABB containing both boxes.
func (b AABB) Union(o AABB) AABB {
	return AABB{
		Min: Vec3{math.Min(b.Min.X, o.Min.X), math.Min(b.Min.Y, o.Min.Y), math.Min(b.Min.Z, o.Min.Z)},
		Max: Vec3{math.Max(b.Max.X, o.Max.X), math.Max(b.Max.Y, o.Max.Y), math.Max(b.Max.Z, o.Max.Z)},
	}
}

// Center returns the box's center point.
func (b AABB) Center() Point3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the box's extent along each axis.
func (b AABB) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the greatest extent.
func (b AABB) LongestAxis() int {
	size := b.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// Pad returns a copy of the box expanded by amount along every axis,
// used to keep an analytically flat primitive (a rectangle) from
// producing a degenerate slab axis.
func (b AABB) Pad(amount float64) AABB {
	e := Vec3{amount, amount, amount}
	return AABB{Min: b.Min.Sub(e), Max: b.Max.Add(e)}
}
