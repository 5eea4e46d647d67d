package scene

import (
	"github.com/kestrelrender/go-pathtracer/internal/camera"
	"github.com/kestrelrender/go-pathtracer/internal/core"
	"github.com/kestrelrender/go-pathtracer/internal/geometry"
	"github.com/kestrelrender/go-pathtracer/internal/material"
	"github.com/kestrelrender/go-pathtracer/internal/medium"
)

// NewSmokeCornellBox builds the Cornell box with the two blocks replaced
// by ConstantMedium fog of densities 0.01, coloured black and white
// respectively, and an enlarged light (spec.md §6 `SmokeCornellBox`).
func NewSmokeCornellBox(aspectRatio float64) (*Scene, error) {
	placeholder := material.NewLambertian(core.New(1, 1, 1))

	shapes := cornellWalls(113, 443, 127, 432)
	blocks := cornellBlocks(placeholder, placeholder)

	shapes = append(shapes,
		medium.NewConstantMedium(blocks[0], 0.01, core.Colour{}),
		medium.NewConstantMedium(blocks[1], 0.01, core.New(1, 1, 1)),
	)

	root, err := geometry.NewBVH(shapes, 0, 1)
	if err != nil {
		return nil, err
	}

	camCfg := cornellCamera(aspectRatio)
	return &Scene{
		root:   root,
		camCfg: camCfg,
		cam:    camera.New(camCfg),
		bg:     blackBackground(),
	}, nil
}
