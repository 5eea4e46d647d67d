package material

import (
	"math/rand"
	"testing"

	"github.com/kestrelrender/go-pathtracer/internal/core"
)

func TestDiffuseLightNeverScatters(t *testing.T) {
	d := NewDiffuseLight(core.New(4, 4, 4))
	hit := core.HitRecord{Point: core.New(0, 0, 0), Normal: core.New(0, 1, 0)}
	rnd := rand.New(rand.NewSource(1))

	_, _, ok := d.Scatter(core.Ray{}, hit, rnd)
	if ok {
		t.Error("diffuse light should never scatter")
	}
}

func TestDiffuseLightEmitsConfiguredColour(t *testing.T) {
	d := NewDiffuseLight(core.New(4, 4, 4))
	got := d.Emitted(0, 0, core.New(0, 0, 0))
	if got != (core.Colour{4, 4, 4}) {
		t.Errorf("Emitted = %v, want (4,4,4)", got)
	}
}
