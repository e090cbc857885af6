package geometry

import "github.com/voxelmade/pathtracer/pkg/core"

// Triangle is a flat-shaded triangle with a normal computed once from its
// own edges at construction, not interpolated per-vertex.
type Triangle struct {
	P0, P1, P2 core.Vec3
	Normal     core.Vec3
}

// NewTriangle creates a triangle, computing its flat normal from (p1-p0)x(p2-p0).
func NewTriangle(p0, p1, p2 core.Vec3, flipNormal bool) *Triangle {
	n := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
	if flipNormal {
		n = n.Neg()
	}
	return &Triangle{P0: p0, P1: p1, P2: p2, Normal: n}
}

func (t *Triangle) WorldBounds() core.AABB {
	return core.NewAABB(t.P0, t.P1).Expand(t.P2)
}

func (t *Triangle) Area() float64 {
	return 0.5 * t.P1.Sub(t.P0).Cross(t.P2.Sub(t.P0)).Length()
}

// Intersect uses the sign-agreement-of-edge-cross-products test (rather
// than barycentric division), matching the reference renderer's triangle
// intersection routine.
func (t *Triangle) Intersect(ray core.Ray, tMin, tMax float64) (Intersection, bool) {
	oa := t.P0.Sub(ray.Origin)
	ob := t.P1.Sub(ray.Origin)
	oc := t.P2.Sub(ray.Origin)

	v0 := oc.Cross(ob)
	v1 := ob.Cross(oa)
	v2 := oa.Cross(oc)

	v0d := v0.Dot(ray.Direction)
	v1d := v1.Dot(ray.Direction)
	v2d := v2.Dot(ray.Direction)

	allNeg := v0d < 0 && v1d < 0 && v2d < 0
	allPos := v0d >= 0 && v1d >= 0 && v2d >= 0
	if !allNeg && !allPos {
		return Intersection{}, false
	}

	denom := t.Normal.Dot(ray.Direction)
	if denom == 0 {
		return Intersection{}, false
	}
	dist := t.Normal.Dot(oa) / denom
	if dist <= tMin || dist >= tMax {
		return Intersection{}, false
	}

	p := ray.At(dist)
	return Intersection{P: p, N: t.Normal, Wo: ray.Direction.Neg(), T: dist}, true
}

func (t *Triangle) SamplePosition(u1, u2 float64) (p, n core.Vec3, pdf float64) {
	b0, b1 := core.UniformSampleTriangle(u1, u2)
	b2 := 1 - b0 - b1
	p = t.P0.Mul(b0).Add(t.P1.Mul(b1)).Add(t.P2.Mul(b2))
	n = t.Normal
	pdf = 1 / t.Area()
	return
}

func (t *Triangle) SampleDirection(refP, refN core.Vec3, u1, u2 float64) (core.Vec3, float64, bool) {
	return defaultSampleDirection(t, refP, u1, u2)
}

func (t *Triangle) PdfDirection(refP, refN, wi core.Vec3) float64 {
	return defaultPdfDirection(t, refP, refN, wi)
}
