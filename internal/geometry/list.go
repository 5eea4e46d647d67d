package geometry

import (
	"math/rand"

	"github.com/kestrelrender/go-pathtracer/internal/core"
)

// List is a linear collection of hittables, used as the raw primitive
// list a BVH is built over and as a fallback composite when a BVH isn't
// warranted (an empty or single-primitive scene).
type List struct {
	Items []core.Hittable
}

// NewList creates a list from the given hittables.
func NewList(items ...core.Hittable) *List {
	return &List{Items: items}
}

// Add appends a hittable to the list.
func (l *List) Add(h core.Hittable) {
	l.Items = append(l.Items, h)
}

// Hit returns the closest hit among all items in (tMin, tMax).
func (l *List) Hit(r core.Ray, tMin, tMax float64, rnd *rand.Rand) (core.HitRecord, bool) {
	var closest core.HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, item := range l.Items {
		if rec, ok := item.Hit(r, tMin, closestSoFar, rnd); ok {
			hitAnything = true
			closestSoFar = rec.T
			closest = rec
		}
	}

	return closest, hitAnything
}

// BoundingBox returns the union of every item's bounding box. A missing
// bounding box on any item is a construction error (spec.md §7): the
// caller must not place such a primitive inside a BVH.
func (l *List) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	if len(l.Items) == 0 {
		return core.AABB{}, false
	}

	var result core.AABB
	first := true
	for _, item := range l.Items {
		box, ok := item.BoundingBox(t0, t1)
		if !ok {
			return core.AABB{}, false
		}
		if first {
			result = box
			first = false
		} else {
			result = result.Union(box)
		}
	}
	return result, true
}
