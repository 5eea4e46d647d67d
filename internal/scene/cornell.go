package scene

import (
	"github.com/kestrelrender/go-pathtracer/internal/camera"
	"github.com/kestrelrender/go-pathtracer/internal/core"
	"github.com/kestrelrender/go-pathtracer/internal/geometry"
	"github.com/kestrelrender/go-pathtracer/internal/material"
)

// cornellWalls builds the five fixed walls plus the ceiling light common
// to both Cornell box variants (spec.md §6), grounded on
// original_source's `empty_cornell_box` and the teacher's cornell.go's
// 555-unit box / wall colour conventions, with the light rectangle
// enlarged for SmokeCornellBox per the Next Week book.
func cornellWalls(lightMinX, lightMaxX, lightMinZ, lightMaxZ float64) []core.Hittable {
	red := material.NewLambertian(core.New(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.New(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.New(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.New(15, 15, 15))

	return []core.Hittable{
		geometry.NewYZRect(0, 555, 0, 555, 555, green),
		geometry.NewYZRect(0, 555, 0, 555, 0, red),
		geometry.NewXZRect(lightMinX, lightMaxX, lightMinZ, lightMaxZ, 554, light),
		geometry.NewXZRect(0, 555, 0, 555, 0, white),
		geometry.NewXZRect(0, 555, 0, 555, 555, white),
		geometry.NewXYRect(0, 555, 0, 555, 555, white),
	}
}

// cornellBlocks builds the two canonical blocks at their book-standard
// rotation/translation (spec.md §6's "canonical rotations/translations"):
// a tall box rotated 15° and a short box rotated -18°, wrapped in
// Translate+RotateY affine instancing.
func cornellBlocks(tallMaterial, shortMaterial core.Material) []core.Hittable {
	tall := geometry.NewBox(core.New(0, 0, 0), core.New(165, 330, 165), tallMaterial)
	tallInstance := geometry.NewTranslate(geometry.NewRotateY(tall, 15), core.New(265, 0, 295))

	short := geometry.NewBox(core.New(0, 0, 0), core.New(165, 165, 165), shortMaterial)
	shortInstance := geometry.NewTranslate(geometry.NewRotateY(short, -18), core.New(130, 0, 65))

	return []core.Hittable{tallInstance, shortInstance}
}

// NewClassicCornellBox builds the Cornell box with two solid white
// blocks (spec.md §6 `ClassicCornellBox`).
func NewClassicCornellBox(aspectRatio float64) (*Scene, error) {
	white := material.NewLambertian(core.New(0.73, 0.73, 0.73))

	shapes := cornellWalls(213, 343, 227, 332)
	shapes = append(shapes, cornellBlocks(white, white)...)

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
