package scene

import (
	"math/rand"

	"github.com/kestrelrender/go-pathtracer/internal/camera"
	"github.com/kestrelrender/go-pathtracer/internal/core"
	"github.com/kestrelrender/go-pathtracer/internal/geometry"
	"github.com/kestrelrender/go-pathtracer/internal/material"
)

const (
	randomDiffuseThreshold = 0.8
	randomMetalThreshold   = 0.95
)

// NewRandom builds the "one weekend" final scene (spec.md §6): a
// checkered ground plane and a 22x22 grid of small spheres with
// material chosen stochastically, plus three large feature spheres —
// grounded on original_source's scenes.hpp `random_scene`.
func NewRandom(aspectRatio float64, rnd *rand.Rand) (*Scene, error) {
	checker := material.NewChecker(10, core.New(0.2, 0.3, 0.1), core.New(0.9, 0.9, 0.9))
	groundMat := material.NewLambertianTexture(checker)

	shapes := []core.Hittable{
		geometry.NewSphere(core.New(0, -1000, 0), 1000, groundMat),
	}

	excluded := core.New(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.New(float64(a)+0.9*rnd.Float64(), 0.2, float64(b)+0.9*rnd.Float64())
			if center.Sub(excluded).Length() <= 0.9 {
				continue
			}

			choose := rnd.Float64()
			switch {
			case choose < randomDiffuseThreshold:
				albedo := core.RandomVec3(rnd, 0, 1).MulVec(core.RandomVec3(rnd, 0, 1))
				mat := material.NewLambertian(albedo)
				endCenter := center.Add(core.New(0, core.RandomFloat(rnd, 0, 0.5), 0))
				shapes = append(shapes, geometry.NewMovingSphere(center, endCenter, 0, 1, 0.2, mat))
			case choose < randomMetalThreshold:
				albedo := core.RandomVec3(rnd, 0.5, 1)
				fuzz := core.RandomFloat(rnd, 0, 0.5)
				mat := material.NewMetal(albedo, fuzz)
				shapes = append(shapes, geometry.NewSphere(center, 0.2, mat))
			default:
				mat := material.NewDielectric(1.5)
				shapes = append(shapes, geometry.NewSphere(center, 0.2, mat))
			}
		}
	}

	shapes = append(shapes,
		geometry.NewSphere(core.New(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.New(-4, 1, 0), 1.0, material.NewLambertian(core.New(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.New(4, 1, 0), 1.0, material.NewMetal(core.New(0.7, 0.6, 0.5), 0.0)),
	)

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
