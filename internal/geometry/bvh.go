package geometry

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/kestrelrender/go-pathtracer/internal/core"
)

// BVHNode is an interior node of the bounding-volume hierarchy: Left and
// Right cover disjoint-ish subsets of the primitive list and Box is
// their precomputed union, valid across the whole shutter interval.
type BVHNode struct {
	Left, Right core.Hittable
	Box         core.AABB
}

// NewBVH builds a BVH over shapes for the shutter interval [t0, t1].
// A primitive with no bounding box is a construction error (spec.md §7)
// and is returned as such rather than silently dropped.
func NewBVH(shapes []core.Hittable, t0, t1 float64) (*BVHNode, error) {
	items := make([]core.Hittable, len(shapes))
	copy(items, shapes)
	return buildBVH(items, t0, t1)
}

func buildBVH(shapes []core.Hittable, t0, t1 float64) (*BVHNode, error) {
	boxes := make([]core.AABB, len(shapes))
	for i, s := range shapes {
		box, ok := s.BoundingBox(t0, t1)
		if !ok {
			return nil, fmt.Errorf("bvh: primitive %T has no bounding box", s)
		}
		boxes[i] = box
	}

	switch len(shapes) {
	case 0:
		return nil, fmt.Errorf("bvh: cannot build from an empty shape list")
	case 1:
		return &BVHNode{Left: shapes[0], Right: shapes[0], Box: boxes[0]}, nil
	case 2:
		return &BVHNode{Left: shapes[0], Right: shapes[1], Box: boxes[0].Union(boxes[1])}, nil
	}

	union := boxes[0]
	for _, b := range boxes[1:] {
		union = union.Union(b)
	}
	axis := union.LongestAxis()

	type indexed struct {
		shape core.Hittable
		box   core.AABB
	}
	ordered := make([]indexed, len(shapes))
	for i, s := range shapes {
		ordered[i] = indexed{s, boxes[i]}
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].box.Center().At(axis) < ordered[j].box.Center().At(axis)
	})

	mid := len(ordered) / 2
	leftShapes := make([]core.Hittable, mid)
	rightShapes := make([]core.Hittable, len(ordered)-mid)
	for i := 0; i < mid; i++ {
		leftShapes[i] = ordered[i].shape
	}
	for i := mid; i < len(ordered); i++ {
		rightShapes[i-mid] = ordered[i].shape
	}

	left, err := buildBVH(leftShapes, t0, t1)
	if err != nil {
		return nil, err
	}
	right, err := buildBVH(rightShapes, t0, t1)
	if err != nil {
		return nil, err
	}

	leftBox, _ := left.BoundingBox(t0, t1)
	rightBox, _ := right.BoundingBox(t0, t1)
	return &BVHNode{Left: left, Right: right, Box: leftBox.Union(rightBox)}, nil
}

// Hit tests the node's box first; on a hit it recurses into Left with
// the original tMax, then into Right with tMax shrunk to the left hit's
// t, returning the closer of the two — the canonical tightest-closest
// answer without any additional sorting.
func (n *BVHNode) Hit(r core.Ray, tMin, tMax float64, rnd *rand.Rand) (core.HitRecord, bool) {
	if !n.Box.Hit(r, tMin, tMax) {
		return core.HitRecord{}, false
	}

	leftRec, hitLeft := n.Left.Hit(r, tMin, tMax, rnd)
	rightBound := tMax
	if hitLeft {
		rightBound = leftRec.T
	}
	rightRec, hitRight := n.Right.Hit(r, tMin, rightBound, rnd)

	if hitRight {
		return rightRec, true
	}
	if hitLeft {
		return leftRec, true
	}
	return core.HitRecord{}, false
}

// BoundingBox returns the node's precomputed union box.
func (n *BVHNode) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return n.Box, true
}
