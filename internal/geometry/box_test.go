package geometry

import (
	"math"
	"testing"

	"github.com/kestrelrender/go-pathtracer/internal/core"
)

func TestBoxHitsNearFace(t *testing.T) {
	b := NewBox(core.New(0, 0, 0), core.New(1, 1, 1), dummyMaterial{})
	r := core.NewRay(core.New(0.5, 0.5, 5), core.New(0, 0, -1))

	rec, ok := b.Hit(r, 0.001, math.MaxFloat64, testRnd())
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(rec.T-4) > 1e-9 {
		t.Errorf("t = %v, want 4", rec.T)
	}
}

func TestBoxMiss(t *testing.T) {
	b := NewBox(core.New(0, 0, 0), core.New(1, 1, 1), dummyMaterial{})
	r := core.NewRay(core.New(10, 10, 10), core.New(1, 0, 0))
	if _, ok := b.Hit(r, 0.001, math.MaxFloat64, testRnd()); ok {
		t.Error("expected miss")
	}
}

func TestBoxBoundingBoxExact(t *testing.T) {
	b := NewBox(core.New(-1, -2, -3), core.New(1, 2, 3), dummyMaterial{})
	box, ok := b.BoundingBox(0, 1)
	if !ok {
		t.Fatal("expected bounding box")
	}
	if box.Min != (core.Vec3{-1, -2, -3}) || box.Max != (core.Vec3{1, 2, 3}) {
		t.Errorf("box = %v", box)
	}
}
