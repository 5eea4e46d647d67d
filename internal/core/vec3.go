// Package core provides the vector algebra, ray, bounding box, RNG
// helpers, and hit/material/texture contracts shared by every other
// package in the renderer.
package core

import (
	"fmt"
	"math"
)

// Vec3 is a 3-component double precision vector. Point3 and Colour are
// aliases that carry intent only; all three share the same operations.
type Vec3 struct {
	X, Y, Z float64
}

// Point3 names a Vec3 used as a position.
type Point3 = Vec3

// Colour names a Vec3 used as an RGB colour/attenuation.
type Colour = Vec3

// New creates a new Vec3.
func New(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) String() string {
	return fmt.Sprintf("{%.4g, %.4g, %.4g}", v.X, v.Y, v.Z)
}

// Add returns the sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Mul returns the vector scaled by a scalar.
func (v Vec3) Mul(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// MulVec returns the componentwise product of two vectors, used to carry
// colour attenuation along a traced path.
func (v Vec3) MulVec(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// Neg returns the negation of the vector.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product of two vectors.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// LengthSquared returns the squared magnitude of the vector.
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the magnitude of the vector.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Unit returns a unit vector in the same direction. The zero vector maps
// to itself.
func (v Vec3) Unit() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// NearZero reports whether every component has magnitude below epsilon.
func (v Vec3) NearZero() bool {
	const eps = 1e-8
	return math.Abs(v.X) < eps && math.Abs(v.Y) < eps && math.Abs(v.Z) < eps
}

// At returns the indexed axis (0=X, 1=Y, 2=Z) for axis-generic code such
// as the AABB slab test and the BVH split.
func (v Vec3) At(axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Clamp returns a vector with components clamped to [lo, hi].
func (v Vec3) Clamp(lo, hi float64) Vec3 {
	clamp := func(x float64) float64 {
		if x < lo {
			return lo
		}
		if x > hi {
			return hi
		}
		return x
	}
	return Vec3{clamp(v.X), clamp(v.Y), clamp(v.Z)}
}
