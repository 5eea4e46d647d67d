package core

import (
	"math"
	"testing"
)

func TestAABBHitOriginInside(t *testing.T) {
	box := NewAABB(New(-1, -1, -1), New(1, 1, 1))
	r := NewRay(New(0, 0, 0), New(1, 0, 0))
	if !box.Hit(r, 0, math.MaxFloat64) {
		t.Error("ray with origin inside box should hit")
	}
}

func TestAABBMissWhenPointingAway(t *testing.T) {
	box := NewAABB(New(5, 5, 5), New(6, 6, 6))
	r := NewRay(New(0, 0, 0), New(-1, -1, -1))
	if box.Hit(r, 0, 1000) {
		t.Error("ray pointing away from box should miss")
	}
}

func TestAABBUnionCoversBoth(t *testing.T) {
	a := NewAABB(New(0, 0, 0), New(1, 1, 1))
	b := NewAABB(New(2, -1, 0), New(3, 2, 5))
	u := a.Union(b)
	if u.Min != (Vec3{0, -1, 0}) || u.Max != (Vec3{3, 2, 5}) {
		t.Errorf("union = %v, want min {0,-1,0} max {3,2,5}", u)
	}
}

func TestAABBLongestAxis(t *testing.T) {
	box := NewAABB(New(0, 0, 0), New(1, 10, 2))
	if axis := box.LongestAxis(); axis != 1 {
		t.Errorf("longest axis = %d, want 1 (Y)", axis)
	}
}
