package material

import (
	"math/rand"
	"testing"

	"github.com/kestrelrender/go-pathtracer/internal/core"
)

func TestLambertianScatterAlwaysSucceeds(t *testing.T) {
	l := NewLambertian(core.New(0.5, 0.5, 0.5))
	hit := core.HitRecord{Point: core.New(0, 0, 0), Normal: core.New(0, 1, 0)}
	rnd := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		atten, scattered, ok := l.Scatter(core.Ray{}, hit, rnd)
		if !ok {
			t.Fatal("lambertian scatter should never fail")
		}
		if atten != (core.Colour{0.5, 0.5, 0.5}) {
			t.Errorf("attenuation = %v, want albedo", atten)
		}
		if scattered.Origin != hit.Point {
			t.Errorf("scattered ray should originate at the hit point")
		}
	}
}

func TestLambertianDegenerateDirectionFallsBackToNormal(t *testing.T) {
	l := NewLambertian(core.New(1, 1, 1))
	normal := core.New(0, 0, 1)
	hit := core.HitRecord{Point: core.New(0, 0, 0), Normal: normal}

	// No seed reliably produces the degenerate case, so the fallback
	// branch itself is not reached here; this checks the outcome it
	// guarantees: Scatter succeeds and never returns a near-zero direction.
	rnd := rand.New(rand.NewSource(99))
	_, scattered, ok := l.Scatter(core.Ray{}, hit, rnd)
	if !ok {
		t.Fatal("expected scatter to succeed")
	}
	if scattered.Direction.NearZero() {
		t.Error("scattered direction should never be near-zero")
	}
}

func TestLambertianEmitsNothing(t *testing.T) {
	l := NewLambertian(core.New(1, 1, 1))
	if l.Emitted(0, 0, core.Vec3{}) != (core.Colour{}) {
		t.Error("lambertian should not emit")
	}
}
