// Package integrator implements the recursive radiance estimator that
// turns a camera ray into a pixel colour.
package integrator

import (
	"math"
	"math/rand"

	"github.com/kestrelrender/go-pathtracer/internal/core"
)

// shadowAcneEpsilon is the lower intersection bound that keeps a
// scattered ray from re-hitting the surface it just left.
const shadowAcneEpsilon = 0.001

var posInf = math.Inf(1)

// Background computes the colour returned on a ray miss; it is a
// function of the ray rather than a fixed colour so that scenes can use
// either a sky gradient (the default scenes) or a constant colour (the
// Cornell box scenes).
type Background func(r core.Ray) core.Colour

// SolidBackground returns a Background that ignores the ray and always
// answers the same colour.
func SolidBackground(c core.Colour) Background {
	return func(core.Ray) core.Colour { return c }
}

// SkyBackground returns the classic "Ray Tracing in One Weekend" sky
// gradient: a vertical lerp between white at the horizon and horizonTop
// looking straight up.
func SkyBackground(horizonTop core.Colour) Background {
	white := core.New(1, 1, 1)
	return func(r core.Ray) core.Colour {
		unitDir := r.Direction.Unit()
		t := 0.5 * (unitDir.Y + 1.0)
		return white.Mul(1 - t).Add(horizonTop.Mul(t))
	}
}

// Estimate recursively traces ray through world, accumulating emitted
// light and material attenuation, until it misses (returning bg(ray)),
// is absorbed, or depth is exhausted. Termination is by recursion depth
// alone; there is no Russian-roulette cutoff.
func Estimate(ray core.Ray, bg Background, world core.Hittable, depth int, rnd *rand.Rand) core.Colour {
	if depth <= 0 {
		return core.Colour{}
	}

	hit, ok := world.Hit(ray, shadowAcneEpsilon, posInf, rnd)
	if !ok {
		return bg(ray)
	}

	emitted := hit.Material.Emitted(hit.U, hit.V, hit.Point)

	attenuation, scattered, didScatter := hit.Material.Scatter(ray, hit, rnd)
	if !didScatter {
		return emitted
	}

	incoming := Estimate(scattered, bg, world, depth-1, rnd)
	return emitted.Add(attenuation.MulVec(incoming))
}
