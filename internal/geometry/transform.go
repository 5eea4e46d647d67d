package geometry

import (
	"math"
	"math/rand"

	"github.com/kestrelrender/go-pathtracer/internal/core"
)

// Translate decorates an inner hittable with a constant offset, without
// copying the underlying geometry.
type Translate struct {
	Inner  core.Hittable
	Offset core.Vec3
}

// NewTranslate wraps inner, displaced by offset.
func NewTranslate(inner core.Hittable, offset core.Vec3) *Translate {
	return &Translate{Inner: inner, Offset: offset}
}

// Hit transforms the ray into the inner object's space, intersects, and
// transforms the hit point back.
func (tr *Translate) Hit(r core.Ray, tMin, tMax float64, rnd *rand.Rand) (core.HitRecord, bool) {
	moved := core.NewRayAt(r.Origin.Sub(tr.Offset), r.Direction, r.Time)

	rec, ok := tr.Inner.Hit(moved, tMin, tMax, rnd)
	if !ok {
		return core.HitRecord{}, false
	}

	rec.Point = rec.Point.Add(tr.Offset)
	rec.SetFaceNormal(moved, rec.Normal)
	return rec, true
}

// BoundingBox translates the inner object's bounding box.
func (tr *Translate) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	box, ok := tr.Inner.BoundingBox(t0, t1)
	if !ok {
		return core.AABB{}, false
	}
	return core.NewAABB(box.Min.Add(tr.Offset), box.Max.Add(tr.Offset)), true
}

// RotateY rotates an inner hittable about the Y axis by a fixed angle
// (degrees). Because a rotated AABB is not itself axis-aligned, the
// bounding box is precomputed at construction time as the axis-aligned
// envelope of the rotated inner box's eight corners — slightly loose,
// but correct.
type RotateY struct {
	Inner             core.Hittable
	SinTheta, CosTheta float64
	HasBox            bool
	Box               core.AABB
}

// NewRotateY wraps inner, rotated by angleDegrees about the Y axis.
func NewRotateY(inner core.Hittable, angleDegrees float64) *RotateY {
	radians := angleDegrees * math.Pi / 180
	sinTheta := math.Sin(radians)
	cosTheta := math.Cos(radians)

	box, hasBox := inner.BoundingBox(0, 1)

	min := core.Vec3{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	max := core.Vec3{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}

	if hasBox {
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				for k := 0; k < 2; k++ {
					x := float64(i)*box.Max.X + float64(1-i)*box.Min.X
					y := float64(j)*box.Max.Y + float64(1-j)*box.Min.Y
					z := float64(k)*box.Max.Z + float64(1-k)*box.Min.Z

					newX := cosTheta*x + sinTheta*z
					newZ := -sinTheta*x + cosTheta*z

					test := core.Vec3{X: newX, Y: y, Z: newZ}
					min = core.Vec3{X: minF(min.X, test.X), Y: minF(min.Y, test.Y), Z: minF(min.Z, test.Z)}
					max = core.Vec3{X: maxF(max.X, test.X), Y: maxF(max.Y, test.Y), Z: maxF(max.Z, test.Z)}
				}
			}
		}
		box = core.AABB{Min: min, Max: max}
	}

	return &RotateY{Inner: inner, SinTheta: sinTheta, CosTheta: cosTheta, HasBox: hasBox, Box: box}
}

// Hit rotates the ray into the inner object's space, intersects, then
// rotates the hit point and normal back.
func (rt *RotateY) Hit(r core.Ray, tMin, tMax float64, rnd *rand.Rand) (core.HitRecord, bool) {
	origin := core.Vec3{
		X: rt.CosTheta*r.Origin.X - rt.SinTheta*r.Origin.Z,
		Y: r.Origin.Y,
		Z: rt.SinTheta*r.Origin.X + rt.CosTheta*r.Origin.Z,
	}
	direction := core.Vec3{
		X: rt.CosTheta*r.Direction.X - rt.SinTheta*r.Direction.Z,
		Y: r.Direction.Y,
		Z: rt.SinTheta*r.Direction.X + rt.CosTheta*r.Direction.Z,
	}
	rotated := core.NewRayAt(origin, direction, r.Time)

	rec, ok := rt.Inner.Hit(rotated, tMin, tMax, rnd)
	if !ok {
		return core.HitRecord{}, false
	}

	point := core.Vec3{
		X: rt.CosTheta*rec.Point.X + rt.SinTheta*rec.Point.Z,
		Y: rec.Point.Y,
		Z: -rt.SinTheta*rec.Point.X + rt.CosTheta*rec.Point.Z,
	}
	normal := core.Vec3{
		X: rt.CosTheta*rec.Normal.X + rt.SinTheta*rec.Normal.Z,
		Y: rec.Normal.Y,
		Z: -rt.SinTheta*rec.Normal.X + rt.CosTheta*rec.Normal.Z,
	}

	rec.Point = point
	rec.SetFaceNormal(rotated, normal)
	return rec, true
}

// BoundingBox returns the precomputed axis-aligned envelope.
func (rt *RotateY) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return rt.Box, rt.HasBox
}
