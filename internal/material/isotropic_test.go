package material

import (
	"math/rand"
	"testing"

	"github.com/kestrelrender/go-pathtracer/internal/core"
)

func TestIsotropicScatterIsUnitSphereDirection(t *testing.T) {
	iso := NewIsotropic(core.New(0.2, 0.3, 0.4))
	hit := core.HitRecord{Point: core.New(1, 1, 1), Normal: core.New(0, 1, 0)}
	rnd := rand.New(rand.NewSource(3))

	for i := 0; i < 50; i++ {
		atten, scattered, ok := iso.Scatter(core.Ray{}, hit, rnd)
		if !ok {
			t.Fatal("isotropic scatter should never fail")
		}
		if atten != (core.Colour{0.2, 0.3, 0.4}) {
			t.Errorf("attenuation = %v, want albedo", atten)
		}
		if scattered.Direction.Length() > 1.0 {
			t.Errorf("direction %v should be within the unit sphere", scattered.Direction)
		}
		if scattered.Origin != hit.Point {
			t.Error("scattered ray should originate at the hit point")
		}
	}
}

func TestIsotropicEmitsNothing(t *testing.T) {
	iso := NewIsotropic(core.New(1, 1, 1))
	if iso.Emitted(0, 0, core.Vec3{}) != (core.Colour{}) {
		t.Error("isotropic should not emit")
	}
}
