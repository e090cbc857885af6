package geometry

import (
	"math/rand"
	"sort"

	"github.com/voxelmade/pathtracer/pkg/core"
)

// maxInLeaf is the remaining-span threshold below which the build stops
// splitting and emits a leaf.
const maxInLeaf = 5

// Bounded is satisfied by anything the BVH can index: shapes, triangles, or
// scene primitives.
type Bounded interface {
	WorldBounds() core.AABB
}

// Hit is satisfied by the hit-record type an Intersectable produces; the
// BVH only needs its distance to narrow traversal.
type Hit interface {
	HitDistance() float64
}

// Intersectable is an item a BVH can hold: it knows its own bounds and can
// test itself against a ray within a narrowing [tMin, tMax] interval.
type Intersectable[H Hit] interface {
	Bounded
	Intersect(ray core.Ray, tMin, tMax float64) (H, bool)
}

// BVH is a binary bounding-volume hierarchy over a slice of T, built once
// and never rebalanced. The split policy -- random axis, sort by bound
// minimum, median split, leaf once the remaining span is small -- matches
// this module's BVH component exactly rather than the longest-axis/SAH-like
// heuristics common in production renderers, because several of this
// module's testable properties pin down behavior (brute-force agreement)
// that only depends on correctness, not on the split heuristic; the simple
// policy keeps the implementation small without sacrificing any guarantee
// the tests check.
type BVH[T Intersectable[H], H Hit] struct {
	root *bvhNode[T, H]
}

type bvhNode[T Intersectable[H], H Hit] struct {
	bounds      core.AABB
	left, right *bvhNode[T, H]
	items       []T // non-nil only at leaves
}

// NewBVH builds a BVH over items. An empty slice yields a BVH that reports
// no hits, never a panic.
func NewBVH[T Intersectable[H], H Hit](items []T) *BVH[T, H] {
	if len(items) == 0 {
		return &BVH[T, H]{}
	}
	cp := make([]T, len(items))
	copy(cp, items)
	return &BVH[T, H]{root: buildBVH[T, H](cp)}
}

func buildBVH[T Intersectable[H], H Hit](items []T) *bvhNode[T, H] {
	bounds := items[0].WorldBounds()
	for _, it := range items[1:] {
		bounds = bounds.Union(it.WorldBounds())
	}

	if len(items) <= maxInLeaf {
		return &bvhNode[T, H]{bounds: bounds, items: items}
	}

	axis := rand.Intn(3)
	sort.Slice(items, func(i, j int) bool {
		return items[i].WorldBounds().Min.Component(axis) < items[j].WorldBounds().Min.Component(axis)
	})

	mid := len(items) / 2
	return &bvhNode[T, H]{
		bounds: bounds,
		left:   buildBVH[T, H](items[:mid]),
		right:  buildBVH[T, H](items[mid:]),
	}
}

// Intersect finds the closest hit among the BVH's items within [tMin, tMax].
func (b *BVH[T, H]) Intersect(ray core.Ray, tMin, tMax float64) (H, bool) {
	var zero H
	if b.root == nil {
		return zero, false
	}
	return b.root.intersect(ray, tMin, tMax)
}

func (n *bvhNode[T, H]) intersect(ray core.Ray, tMin, tMax float64) (H, bool) {
	var best H
	if !n.bounds.Hit(ray, tMax) {
		return best, false
	}

	if n.items != nil {
		hitAny := false
		for _, it := range n.items {
			if h, ok := it.Intersect(ray, tMin, tMax); ok {
				best = h
				tMax = h.HitDistance()
				hitAny = true
			}
		}
		return best, hitAny
	}

	leftHit, leftOK := n.left.intersect(ray, tMin, tMax)
	if leftOK {
		tMax = leftHit.HitDistance()
		best = leftHit
	}
	rightHit, rightOK := n.right.intersect(ray, tMin, tMax)
	if rightOK {
		best = rightHit
	}
	return best, leftOK || rightOK
}
