// Package scene assembles geometry, materials, and a camera into the
// five named scenes spec.md §6 requires, wrapped in a BVH root.
package scene

import (
	"github.com/kestrelrender/go-pathtracer/internal/camera"
	"github.com/kestrelrender/go-pathtracer/internal/config"
	"github.com/kestrelrender/go-pathtracer/internal/core"
	"github.com/kestrelrender/go-pathtracer/internal/integrator"
)

// Scene is the immutable, read-only graph a renderer draws from: a BVH
// root, a camera, and the background shown on ray miss. It implements
// renderer.Renderable.
type Scene struct {
	root   core.Hittable
	camCfg camera.Config
	cam    *camera.Camera
	bg     integrator.Background
}

// Root implements renderer.Renderable.
func (s *Scene) Root() core.Hittable { return s.root }

// Camera implements renderer.Renderable.
func (s *Scene) Camera() *camera.Camera { return s.cam }

// Background implements renderer.Renderable.
func (s *Scene) Background() integrator.Background { return s.bg }

// ApplyCameraOverrides rebuilds the scene's camera from its original
// configuration with any non-nil fields of o.Camera overlaid, letting
// a -scene-config file retarget a built-in scene's camera without
// recompiling (spec.md §6, SPEC_FULL.md §10). A nil o is a no-op.
func (s *Scene) ApplyCameraOverrides(o *config.Overrides) {
	s.camCfg = o.ApplyCamera(s.camCfg)
	s.cam = camera.New(s.camCfg)
}


// defaultCamera matches the look_from(13,2,3)/look_at(0,0,0) composition
// original_source's main.cpp uses for both the "one weekend" scenes
// (HollowGlass, Random); aspectRatio is supplied per-render.
func defaultCamera(aspectRatio float64) camera.Config {
	lookFrom := core.New(13, 2, 3)
	lookAt := core.New(0, 0, 0)
	return camera.Config{
		LookFrom:      lookFrom,
		LookAt:        lookAt,
		ViewUp:        core.New(0, 1, 0),
		VerticalFOV:   20,
		AspectRatio:   aspectRatio,
		Aperture:      0.1,
		FocusDistance: 10.0,
		Time0:         0,
		Time1:         1,
	}
}

// cornellCamera matches the canonical Cornell box camera (teacher's
// pkg/scene/cornell.go): positioned outside the 555-unit box looking in.
func cornellCamera(aspectRatio float64) camera.Config {
	return camera.Config{
		LookFrom:      core.New(278, 278, -800),
		LookAt:        core.New(278, 278, 0),
		ViewUp:        core.New(0, 1, 0),
		VerticalFOV:   40,
		AspectRatio:   aspectRatio,
		Aperture:      0,
		FocusDistance: 800,
		Time0:         0,
		Time1:         1,
	}
}

// skyBackground is the shared "one weekend" horizon-to-zenith gradient.
func skyBackground() integrator.Background {
	return integrator.SkyBackground(core.New(0.5, 0.7, 1.0))
}

// blackBackground is the Cornell box's miss colour: the box is lit
// only by its ceiling light, so anything that escapes contributes nothing.
func blackBackground() integrator.Background {
	return integrator.SolidBackground(core.Colour{})
}
