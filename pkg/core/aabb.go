package core

import "math"

// AABB is an axis-aligned bounding box with inclusive min/max corners.
type AABB struct {
	Min, Max Vec3
}

// EmptyAABB returns a degenerate box that Expand/Union can grow from.
func EmptyAABB() AABB {
	return AABB{Min: Splat(Infinity), Max: Splat(-Infinity)}
}

// NewAABB creates a box from two corners, without assuming an ordering.
func NewAABB(a, b Vec3) AABB {
	return AABB{Min: a.Min(b), Max: a.Max(b)}
}

// Expand grows the box to include p, returning the result.
func (b AABB) Expand(p Vec3) AABB {
	return AABB{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// Union returns the smallest box containing both b and o.
func (b AABB) Union(o AABB) AABB {
	return AABB{Min: b.Min.Min(o.Min), Max: b.Max.Max(o.Max)}
}

// Center returns the box's centroid.
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the box's extent along each axis.
func (b AABB) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// SurfaceArea returns the box's surface area; used by tests and diagnostics,
// not by the BVH build policy (which splits by a random axis, not SAH cost).
func (b AABB) SurfaceArea() float64 {
	d := b.Size()
	return 2 * (d.X*d.Y + d.Y*d.Z + d.Z*d.X)
}

// LongestAxis returns 0, 1, or 2 for the axis (X, Y, Z) with the largest extent.
func (b AABB) LongestAxis() int {
	d := b.Size()
	if d.X > d.Y && d.X > d.Z {
		return 0
	}
	if d.Y > d.Z {
		return 1
	}
	return 2
}

// BoundingSphere returns a sphere (center, radius) guaranteed to contain
// the box: its center and the distance to the farthest corner. Shared by
// every light whose Preprocess step needs the scene's world bounding
// sphere (directional and environment lights).
func (b AABB) BoundingSphere() (center Vec3, radius float64) {
	center = b.Center()
	radius = center.Sub(b.Max).Length()
	return
}

// IsValid reports whether the box is non-degenerate in every axis.
func (b AABB) IsValid() bool {
	return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y && b.Min.Z <= b.Max.Z
}

// Hit performs the standard slab test against [ray.TMin, tmax], returning
// whether the ray intersects the box within that interval. It does not
// mutate the ray; callers pass the current best tmax explicitly so the same
// box can be tested against a narrowing interval during traversal.
func (b AABB) Hit(ray Ray, tmax float64) bool {
	tMin, tMax := ray.TMin, tmax

	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin.Component(axis)
		dir := ray.Direction.Component(axis)
		lo := b.Min.Component(axis)
		hi := b.Max.Component(axis)

		if dir == 0 {
			if origin < lo || origin > hi {
				return false
			}
			continue
		}

		invD := 1 / dir
		t0 := (lo - origin) * invD
		t1 := (hi - origin) * invD
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tMin = math.Max(tMin, t0)
		tMax = math.Min(tMax, t1)
		if tMax < tMin {
			return false
		}
	}

	return true
}
