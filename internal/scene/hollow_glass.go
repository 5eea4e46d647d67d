package scene

import (
	"github.com/kestrelrender/go-pathtracer/internal/camera"
	"github.com/kestrelrender/go-pathtracer/internal/core"
	"github.com/kestrelrender/go-pathtracer/internal/geometry"
	"github.com/kestrelrender/go-pathtracer/internal/material"
)

// NewHollowGlass builds the "one weekend" hollow-glass demo (spec.md
// §6): a ground sphere and three 0.5-radius feature spheres, the left
// one a dielectric shell made hollow by a nested negative-radius sphere
// — grounded on original_source's scenes.hpp `hollow_glass_scene`.
func NewHollowGlass(aspectRatio float64) (*Scene, error) {
	ground := material.NewLambertian(core.New(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.New(0.1, 0.2, 0.5))
	left := material.NewDielectric(1.5)
	right := material.NewMetal(core.New(0.8, 0.6, 0.2), 0.0)

	shapes := []core.Hittable{
		geometry.NewSphere(core.New(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.New(0, 0, -1), 0.5, center),
		geometry.NewSphere(core.New(-1, 0, -1), 0.5, left),
		geometry.NewSphere(core.New(-1, 0, -1), -0.45, left),
		geometry.NewSphere(core.New(1, 0, -1), 0.5, right),
	}

	root, err := geometry.NewBVH(shapes, 0, 1)
	if err != nil {
		return nil, err
	}

	camCfg := defaultCamera(aspectRatio)
	return &Scene{
		root:   root,
		camCfg: camCfg,
		cam:    camera.New(camCfg),
		bg:     skyBackground(),
	}, nil
}
