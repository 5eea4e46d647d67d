package geometry

import (
	"math/rand"

	"github.com/kestrelrender/go-pathtracer/internal/core"
)

// Box is an axis-aligned box built from its six rectangular faces;
// intersection delegates to a List of the sides (spec.md §4.2: "Box is
// the list of its six axis-aligned faces; intersection delegates to
// the list").
type Box struct {
	Min, Max core.Point3
	sides    *List
}

// NewBox creates a box spanning the two corner points.
func NewBox(p0, p1 core.Point3, material core.Material) *Box {
	min := core.Vec3{X: minF(p0.X, p1.X), Y: minF(p0.Y, p1.Y), Z: minF(p0.Z, p1.Z)}
	max := core.Vec3{X: maxF(p0.X, p1.X), Y: maxF(p0.Y, p1.Y), Z: maxF(p0.Z, p1.Z)}

	sides := NewList(
		NewXYRect(min.X, max.X, min.Y, max.Y, max.Z, material),
		NewXYRect(min.X, max.X, min.Y, max.Y, min.Z, material),
		NewXZRect(min.X, max.X, min.Z, max.Z, max.Y, material),
		NewXZRect(min.X, max.X, min.Z, max.Z, min.Y, material),
		NewYZRect(min.Y, max.Y, min.Z, max.Z, max.X, material),
		NewYZRect(min.Y, max.Y, min.Z, max.Z, min.X, material),
	)

	return &Box{Min: min, Max: max, sides: sides}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Hit delegates to the face list.
func (b *Box) Hit(r core.Ray, tMin, tMax float64, rnd *rand.Rand) (core.HitRecord, bool) {
	return b.sides.Hit(r, tMin, tMax, rnd)
}

// BoundingBox returns the box's exact bounds.
func (b *Box) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}
