package camera

import (
	"math/rand"
	"testing"

	"github.com/kestrelrender/go-pathtracer/internal/core"
)

func simpleConfig() Config {
	return Config{
		LookFrom:      core.New(0, 0, 0),
		LookAt:        core.New(0, 0, -1),
		ViewUp:        core.New(0, 1, 0),
		VerticalFOV:   90,
		AspectRatio:   1.0,
		Aperture:      0,
		FocusDistance: 1.0,
		Time0:         0,
		Time1:         1,
	}
}

func TestCameraCenterRayPointsAtLookAt(t *testing.T) {
	c := New(simpleConfig())
	rnd := rand.New(rand.NewSource(1))
	r := c.Ray(0.5, 0.5, rnd)

	if r.Origin != (core.Point3{X: 0, Y: 0, Z: 0}) {
		t.Errorf("zero-aperture origin = %v, want look-from", r.Origin)
	}
	dir := r.Direction.Unit()
	want := core.New(0, 0, -1)
	if dir.Sub(want).Length() > 1e-9 {
		t.Errorf("center ray direction = %v, want %v", dir, want)
	}
}

func TestCameraZeroApertureHasNoLensJitter(t *testing.T) {
	c := New(simpleConfig())
	rnd := rand.New(rand.NewSource(2))
	for i := 0; i < 20; i++ {
		r := c.Ray(0.3, 0.7, rnd)
		if r.Origin != (core.Point3{X: 0, Y: 0, Z: 0}) {
			t.Errorf("zero-aperture ray origin drifted: %v", r.Origin)
		}
	}
}

func TestCameraApertureJittersOrigin(t *testing.T) {
	cfg := simpleConfig()
	cfg.Aperture = 2.0
	c := New(cfg)
	rnd := rand.New(rand.NewSource(3))

	sawJitter := false
	for i := 0; i < 50; i++ {
		r := c.Ray(0.5, 0.5, rnd)
		if r.Origin != (core.Point3{X: 0, Y: 0, Z: 0}) {
			sawJitter = true
			break
		}
	}
	if !sawJitter {
		t.Error("expected a nonzero aperture to jitter ray origins")
	}
}

func TestCameraTimeStaysWithinShutterInterval(t *testing.T) {
	cfg := simpleConfig()
	cfg.Time0, cfg.Time1 = 0.25, 0.75
	c := New(cfg)
	rnd := rand.New(rand.NewSource(4))

	for i := 0; i < 100; i++ {
		r := c.Ray(0.5, 0.5, rnd)
		if r.Time < cfg.Time0 || r.Time > cfg.Time1 {
			t.Errorf("ray time %v out of shutter range [%v,%v]", r.Time, cfg.Time0, cfg.Time1)
		}
	}
}

func TestCameraCornersSpanExpectedFOV(t *testing.T) {
	// A 90-degree vertical FOV with aspect 1 means the viewport half-height
	// at the focus plane equals the focus distance (tan(45)=1).
	c := New(simpleConfig())
	rnd := rand.New(rand.NewSource(5))

	top := c.Ray(0.5, 1.0, rnd)
	bottom := c.Ray(0.5, 0.0, rnd)

	if top.Direction.Y <= 0 {
		t.Errorf("top-edge ray should point upward, got %v", top.Direction)
	}
	if bottom.Direction.Y >= 0 {
		t.Errorf("bottom-edge ray should point downward, got %v", bottom.Direction)
	}
}
