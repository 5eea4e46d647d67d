// Package camera builds the rays a render worker fires into the scene:
// a thin-lens, shutter-motion-blurred pinhole model.
package camera

import (
	"math"
	"math/rand"

	"github.com/kestrelrender/go-pathtracer/internal/core"
)

// Camera holds the precomputed viewport basis for a given look-from,
// look-at, field of view, aspect ratio, aperture and shutter interval.
// Immutable after construction, so a single Camera is shared read-only
// across every render worker goroutine.
type Camera struct {
	origin          core.Point3
	lowerLeftCorner core.Point3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
	time0, time1    float64
}

// Config collects the parameters needed to build a Camera.
type Config struct {
	LookFrom      core.Point3
	LookAt        core.Point3
	ViewUp        core.Vec3
	VerticalFOV   float64 // degrees
	AspectRatio   float64
	Aperture      float64
	FocusDistance float64
	Time0, Time1  float64 // shutter open/close
}

// New builds a camera from cfg.
func New(cfg Config) *Camera {
	theta := degreesToRadians(cfg.VerticalFOV)
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := cfg.AspectRatio * viewportHeight

	w := cfg.LookFrom.Sub(cfg.LookAt).Unit()
	u := cfg.ViewUp.Cross(w).Unit()
	v := w.Cross(u)

	origin := cfg.LookFrom
	horizontal := u.Mul(viewportWidth * cfg.FocusDistance)
	vertical := v.Mul(viewportHeight * cfg.FocusDistance)
	lowerLeftCorner := origin.
		Sub(horizontal.Mul(0.5)).
		Sub(vertical.Mul(0.5)).
		Sub(w.Mul(cfg.FocusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      cfg.Aperture / 2,
		time0:           cfg.Time0,
		time1:           cfg.Time1,
	}
}

// Ray generates a ray for normalized screen coordinates (s,t) in
// [0,1]x[0,1], sampling the lens disk for depth of field and the
// shutter interval for motion blur. rnd must be a per-worker generator.
func (c *Camera) Ray(s, t float64, rnd *rand.Rand) core.Ray {
	rd := core.RandomInUnitDisk(rnd).Mul(c.lensRadius)
	offset := c.u.Mul(rd.X).Add(c.v.Mul(rd.Y))

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Mul(s)).
		Add(c.vertical.Mul(t)).
		Sub(origin)

	time := core.RandomFloat(rnd, c.time0, c.time1)
	return core.NewRayAt(origin, direction, time)
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
