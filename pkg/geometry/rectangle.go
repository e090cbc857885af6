package geometry

import "github.com/voxelmade/pathtracer/pkg/core"

// Rectangle is a planar convex quadrilateral:
//
//	p0------------p3
//	 |            |
//	 |            |
//	p1------------p2
//
// Intersect's containment test is an or-of-sign-agreement across four edge
// cross-products and depends on exactly this vertex winding
// (p0 top-left -> p1 bottom-left -> p2 bottom-right -> p3 top-right); see
// DESIGN.md for how this was confirmed against the reference renderer.
type Rectangle struct {
	P0, P1, P2, P3 core.Vec3
	Normal         core.Vec3
}

// NewRectangle creates a rectangle from four coplanar, correctly-wound corners.
func NewRectangle(p0, p1, p2, p3 core.Vec3, flipNormal bool) *Rectangle {
	n := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
	if flipNormal {
		n = n.Neg()
	}
	return &Rectangle{P0: p0, P1: p1, P2: p2, P3: p3, Normal: n}
}

func (r *Rectangle) WorldBounds() core.AABB {
	b := core.NewAABB(r.P0, r.P1)
	b = b.Expand(r.P2)
	b = b.Expand(r.P3)
	return b
}

func (r *Rectangle) Area() float64 {
	return r.P0.Sub(r.P1).Cross(r.P2.Sub(r.P1)).Length()
}

func (r *Rectangle) Intersect(ray core.Ray, tMin, tMax float64) (Intersection, bool) {
	oa := r.P0.Sub(ray.Origin)
	ob := r.P1.Sub(ray.Origin)
	oc := r.P2.Sub(ray.Origin)
	od := r.P3.Sub(ray.Origin)

	v0 := oc.Cross(ob)
	v1 := ob.Cross(oa)
	v2 := oa.Cross(od)
	v3 := od.Cross(oc)

	v0d := v0.Dot(ray.Direction)
	v1d := v1.Dot(ray.Direction)
	v2d := v2.Dot(ray.Direction)
	v3d := v3.Dot(ray.Direction)

	allNeg := v0d < 0 && v1d < 0 && v2d < 0 && v3d < 0
	allPos := v0d >= 0 && v1d >= 0 && v2d >= 0 && v3d >= 0
	if !allNeg && !allPos {
		return Intersection{}, false
	}

	denom := r.Normal.Dot(ray.Direction)
	if denom == 0 {
		return Intersection{}, false
	}
	dist := r.Normal.Dot(oa) / denom
	if dist <= tMin || dist >= tMax {
		return Intersection{}, false
	}

	p := ray.At(dist)
	n := r.Normal
	if r.Normal.Dot(ray.Direction) > 0 {
		n = r.Normal.Neg()
	}
	return Intersection{P: p, N: n, Wo: ray.Direction.Neg(), T: dist}, true
}

func (r *Rectangle) SamplePosition(u1, u2 float64) (p, n core.Vec3, pdf float64) {
	p = r.P1.Add(r.P0.Sub(r.P1).Mul(u1)).Add(r.P2.Sub(r.P1).Mul(u2))
	n = r.Normal
	pdf = 1 / r.Area()
	return
}

func (r *Rectangle) SampleDirection(refP, refN core.Vec3, u1, u2 float64) (core.Vec3, float64, bool) {
	return defaultSampleDirection(r, refP, u1, u2)
}

func (r *Rectangle) PdfDirection(refP, refN, wi core.Vec3) float64 {
	return defaultPdfDirection(r, refP, refN, wi)
}
