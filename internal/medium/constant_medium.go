// Package medium implements participating media: volumes of constant
// density that scatter rays stochastically along their path length
// rather than at an analytic surface.
package medium

import (
	"math"
	"math/rand"

	"github.com/kestrelrender/go-pathtracer/internal/core"
	"github.com/kestrelrender/go-pathtracer/internal/material"
)

// ConstantMedium wraps a boundary shape (typically a Box) with a
// homogeneous fog/smoke of the given density. A ray passing through is
// scattered at a depth sampled from an exponential (Beer-Lambert)
// distribution; rays that exit before that depth pass through unaffected.
type ConstantMedium struct {
	Boundary      core.Hittable
	NegInvDensity float64
	PhaseFunction core.Material
}

// NewConstantMedium creates a medium of the given density bounded by
// boundary, scattering with an isotropic phase function of colour albedo.
func NewConstantMedium(boundary core.Hittable, density float64, albedo core.Colour) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		NegInvDensity: -1.0 / density,
		PhaseFunction: material.NewIsotropic(albedo),
	}
}

// Hit implements core.Hittable. It finds the ray's two intersections with
// the boundary, then samples an exponentially-distributed distance
// through the medium; if that distance falls within the boundary segment
// the ray is treated as scattering at that point, otherwise the medium is
// transparent to this ray.
func (m *ConstantMedium) Hit(r core.Ray, tMin, tMax float64, rnd *rand.Rand) (core.HitRecord, bool) {
	rec1, ok := m.Boundary.Hit(r, math.Inf(-1), math.Inf(1), rnd)
	if !ok {
		return core.HitRecord{}, false
	}

	rec2, ok := m.Boundary.Hit(r, rec1.T+0.0001, math.Inf(1), rnd)
	if !ok {
		return core.HitRecord{}, false
	}

	if rec1.T < tMin {
		rec1.T = tMin
	}
	if rec2.T > tMax {
		rec2.T = tMax
	}

	if rec1.T >= rec2.T {
		return core.HitRecord{}, false
	}
	if rec1.T < 0 {
		rec1.T = 0
	}

	rayLength := r.Direction.Length()
	distanceInsideBoundary := (rec2.T - rec1.T) * rayLength
	hitDistance := m.NegInvDensity * math.Log(rnd.Float64())

	if hitDistance > distanceInsideBoundary {
		return core.HitRecord{}, false
	}

	t := rec1.T + hitDistance/rayLength
	point := r.At(t)

	return core.HitRecord{
		T:         t,
		Point:     point,
		Normal:    core.New(1, 0, 0), // arbitrary; isotropic phase function ignores it
		FrontFace: true,
		Material:  m.PhaseFunction,
	}, true
}

// BoundingBox implements core.Hittable, delegating to the boundary shape.
func (m *ConstantMedium) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return m.Boundary.BoundingBox(t0, t1)
}
