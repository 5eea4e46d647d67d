package integrator

import (
	"math/rand"
	"testing"

	"github.com/kestrelrender/go-pathtracer/internal/core"
	"github.com/kestrelrender/go-pathtracer/internal/geometry"
	"github.com/kestrelrender/go-pathtracer/internal/material"
)

func TestEstimateZeroDepthReturnsBlack(t *testing.T) {
	world := geometry.NewList()
	rnd := rand.New(rand.NewSource(1))
	r := core.NewRay(core.New(0, 0, 0), core.New(0, 0, -1))

	got := Estimate(r, SolidBackground(core.New(1, 1, 1)), world, 0, rnd)
	if got != (core.Colour{}) {
		t.Errorf("Estimate at depth 0 = %v, want black", got)
	}
}

func TestEstimateMissReturnsBackground(t *testing.T) {
	world := geometry.NewList()
	rnd := rand.New(rand.NewSource(1))
	r := core.NewRay(core.New(0, 0, 0), core.New(0, 0, -1))

	bg := core.New(0.2, 0.3, 0.4)
	got := Estimate(r, SolidBackground(bg), world, 10, rnd)
	if got != bg {
		t.Errorf("Estimate miss = %v, want background %v", got, bg)
	}
}

func TestEstimateAbsorbedReturnsEmittedOnly(t *testing.T) {
	light := material.NewDiffuseLight(core.New(4, 4, 4))
	sphere := geometry.NewSphere(core.New(0, 0, -1), 0.5, light)
	world := geometry.NewList(sphere)
	rnd := rand.New(rand.NewSource(1))
	r := core.NewRay(core.New(0, 0, 0), core.New(0, 0, -1))

	got := Estimate(r, SolidBackground(core.Colour{}), world, 10, rnd)
	if got != (core.Colour{4, 4, 4}) {
		t.Errorf("Estimate on a pure emitter = %v, want (4,4,4)", got)
	}
}

func TestEstimateScattersAndAttenuates(t *testing.T) {
	albedo := core.New(0.5, 0.5, 0.5)
	diffuse := material.NewLambertian(albedo)
	ground := geometry.NewSphere(core.New(0, -100.5, -1), 100, diffuse)
	sphere := geometry.NewSphere(core.New(0, 0, -1), 0.5, diffuse)
	world := geometry.NewList(sphere, ground)
	rnd := rand.New(rand.NewSource(7))
	r := core.NewRay(core.New(0, 0, 0), core.New(0, 0, -1))

	got := Estimate(r, SkyBackground(core.New(0.5, 0.7, 1.0)), world, 50, rnd)
	if got.X < 0 || got.Y < 0 || got.Z < 0 {
		t.Errorf("Estimate produced a negative channel: %v", got)
	}
}

func TestSkyBackgroundLerpsByDirection(t *testing.T) {
	bg := SkyBackground(core.New(0.5, 0.7, 1.0))

	up := bg(core.NewRay(core.New(0, 0, 0), core.New(0, 1, 0)))
	down := bg(core.NewRay(core.New(0, 0, 0), core.New(0, -1, 0)))

	if up.Z-up.X < 0.2 {
		t.Errorf("looking up should be mostly blue: %v", up)
	}
	if down != (core.Colour{1, 1, 1}) {
		t.Errorf("looking down should be white: %v", down)
	}
}
