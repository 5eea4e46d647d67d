package scene

import (
	"math/rand"

	"github.com/kestrelrender/go-pathtracer/internal/camera"
	"github.com/kestrelrender/go-pathtracer/internal/core"
	"github.com/kestrelrender/go-pathtracer/internal/geometry"
	"github.com/kestrelrender/go-pathtracer/internal/material"
	"github.com/kestrelrender/go-pathtracer/internal/medium"
)

// NewNextWeekFinal builds the "Ray Tracing: The Next Week" closing
// scene (spec.md §6 `NextWeekFinal`): a field of randomly-heightened
// ground boxes, a moving diffuse sphere, dielectric/metal feature
// spheres, a coloured volume nested in a glass sphere, a sparse ambient
// mist enclosing the whole scene, an earth-textured sphere, a
// Perlin-marble sphere, and a BVH cluster of 1000 small white spheres
// translated inside a rotated+translated instance.
func NewNextWeekFinal(aspectRatio float64, rnd *rand.Rand, earthTexture *material.ImageTexture) (*Scene, error) {
	shapes := make([]core.Hittable, 0, 64)

	groundBoxes, err := groundBoxField(rnd)
	if err != nil {
		return nil, err
	}
	shapes = append(shapes, groundBoxes)

	light := material.NewDiffuseLight(core.New(7, 7, 7))
	shapes = append(shapes, geometry.NewXZRect(123, 423, 147, 412, 554, light))

	movingCenter0 := core.New(400, 400, 200)
	movingCenter1 := movingCenter0.Add(core.New(30, 0, 0))
	movingSphereMat := material.NewLambertian(core.New(0.7, 0.3, 0.1))
	shapes = append(shapes, geometry.NewMovingSphere(movingCenter0, movingCenter1, 0, 1, 50, movingSphereMat))

	shapes = append(shapes,
		geometry.NewSphere(core.New(260, 150, 45), 50, material.NewDielectric(1.5)),
		geometry.NewSphere(core.New(0, 150, 145), 50, material.NewMetal(core.New(0.8, 0.8, 0.9), 1.0)),
	)

	// A blue volume nested inside a glass sphere.
	boundary := geometry.NewSphere(core.New(360, 150, 145), 70, material.NewDielectric(1.5))
	shapes = append(shapes, boundary, medium.NewConstantMedium(boundary, 0.2, core.New(0.2, 0.4, 0.9)))

	// A sparse mist enclosing the whole scene.
	mistBoundary := geometry.NewSphere(core.New(0, 0, 0), 5000, material.NewDielectric(1.5))
	shapes = append(shapes, medium.NewConstantMedium(mistBoundary, 0.0001, core.New(1, 1, 1)))

	var earthMat core.Material
	if earthTexture != nil {
		earthMat = material.NewLambertianTexture(earthTexture)
	} else {
		earthMat = material.NewLambertian(core.New(0.6, 0.6, 0.6))
	}
	shapes = append(shapes, geometry.NewSphere(core.New(400, 200, 400), 100, earthMat))

	perlin := material.NewPerlin(rnd)
	noiseTexture := material.NewNoiseTexture(perlin, 0.1, core.New(1, 1, 1))
	shapes = append(shapes, geometry.NewSphere(core.New(220, 280, 300), 80, material.NewLambertianTexture(noiseTexture)))

	sphereCluster, err := whiteSphereCluster(rnd)
	if err != nil {
		return nil, err
	}
	shapes = append(shapes, sphereCluster)

	root, err := geometry.NewBVH(shapes, 0, 1)
	if err != nil {
		return nil, err
	}

	camCfg := camera.Config{
		LookFrom:      core.New(478, 278, -600),
		LookAt:        core.New(278, 278, 0),
		ViewUp:        core.New(0, 1, 0),
		VerticalFOV:   40,
		AspectRatio:   aspectRatio,
		Aperture:      0,
		FocusDistance: 800,
		Time0:         0,
		Time1:         1,
	}
	return &Scene{
		root:   root,
		camCfg: camCfg,
		cam:    camera.New(camCfg),
		bg:     blackBackground(),
	}, nil
}

// groundBoxField builds the 20x20 grid of randomly-heightened ground
// boxes wrapped in their own BVH sub-tree.
func groundBoxField(rnd *rand.Rand) (core.Hittable, error) {
	const boxesPerSide = 20
	ground := material.NewLambertian(core.New(0.48, 0.83, 0.53))

	boxes := make([]core.Hittable, 0, boxesPerSide*boxesPerSide)
	const w = 100.0
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y0 := 0.0
			x1 := x0 + w
			y1 := core.RandomFloat(rnd, 1, 101)
			z1 := z0 + w
			boxes = append(boxes, geometry.NewBox(core.New(x0, y0, z0), core.New(x1, y1, z1), ground))
		}
	}

	return geometry.NewBVH(boxes, 0, 1)
}

// whiteSphereCluster builds 1000 small white spheres scattered in a
// cube, assembled into their own BVH, then rotated and translated as a
// single instance.
func whiteSphereCluster(rnd *rand.Rand) (core.Hittable, error) {
	const count = 1000
	white := material.NewLambertian(core.New(0.73, 0.73, 0.73))

	spheres := make([]core.Hittable, count)
	for i := range spheres {
		center := core.RandomVec3(rnd, 0, 165)
		spheres[i] = geometry.NewSphere(center, 10, white)
	}

	cluster, err := geometry.NewBVH(spheres, 0, 1)
	if err != nil {
		return nil, err
	}

	rotated := geometry.NewRotateY(cluster, 15)
	return geometry.NewTranslate(rotated, core.New(-100, 270, 395)), nil
}
