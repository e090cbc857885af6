// Package geometry implements the ray/scene intersection primitives: the
// Shape union (Sphere, Disk, Triangle, Rectangle) and the bounding-volume
// hierarchy that accelerates queries against collections of them.
package geometry

import "github.com/voxelmade/pathtracer/pkg/core"

// Intersection records where a ray hit a Shape: position, shading normal,
// the outgoing direction back toward the ray's origin, and the hit distance.
// It carries no back-reference to an owning primitive -- that association is
// layered on top by pkg/scene, keeping this package free of a dependency on
// materials or lights.
type Intersection struct {
	P  core.Vec3
	N  core.Vec3
	Wo core.Vec3
	T  float64
}

// HitDistance satisfies geometry.Hit, letting Intersection (and any type
// that embeds it) be used as the hit-record type parameter of a BVH.
func (i Intersection) HitDistance() float64 { return i.T }

// Shape is the polymorphic surface-geometry contract. Sphere, Disk,
// Triangle, and Rectangle are the only implementations named by this
// module's data model.
type Shape interface {
	// WorldBounds returns the shape's axis-aligned bounding box.
	WorldBounds() core.AABB

	// Intersect narrows [tMin, tMax] to the nearest hit, if any.
	Intersect(ray core.Ray, tMin, tMax float64) (Intersection, bool)

	// Area returns the shape's surface area.
	Area() float64

	// SamplePosition draws a point uniformly over the shape's surface,
	// returning the point, its outward normal, and the area-measure pdf
	// (1/Area for a uniform sample).
	SamplePosition(u1, u2 float64) (p, n core.Vec3, pdf float64)

	// SampleDirection draws a direction from refP toward the shape, in
	// solid-angle measure as seen from refP. refN is the reference point's
	// own shading normal, needed by Sphere's inside-sphere fallback. ok is
	// false when the sample is degenerate (e.g. refP coincides with the
	// sampled point).
	SampleDirection(refP, refN core.Vec3, u1, u2 float64) (wi core.Vec3, pdf float64, ok bool)

	// PdfDirection returns the solid-angle density of direction wi from
	// refP toward the shape, consistent with SampleDirection.
	PdfDirection(refP, refN, wi core.Vec3) float64
}

// defaultSampleDirection implements the area-to-solid-angle conversion
// shared by every Shape except Sphere (which samples within the cone it
// subtends instead of its full area when the reference point is outside
// it). Shapes delegate to this from their own SampleDirection.
func defaultSampleDirection(s Shape, refP core.Vec3, u1, u2 float64) (core.Vec3, float64, bool) {
	p, n, areaPdf := s.SamplePosition(u1, u2)
	d := p.Sub(refP)
	distSq := d.LengthSquared()
	if distSq == 0 {
		return core.Vec3{}, 0, false
	}
	wi := d.Normalize()
	denom := n.AbsDot(wi.Neg())
	if denom == 0 {
		return core.Vec3{}, 0, false
	}
	pdf := areaPdf * distSq / denom
	if isInfOrNaN(pdf) {
		pdf = 0
	}
	return wi, pdf, true
}

// defaultPdfDirection implements the re-intersection-based pdf shared by
// every Shape except Sphere, matching defaultSampleDirection's conversion.
func defaultPdfDirection(s Shape, refP core.Vec3, refN core.Vec3, wi core.Vec3) float64 {
	ray := core.NewRay(refP, wi)
	isect, ok := s.Intersect(ray, ray.TMin, core.Infinity)
	if !ok {
		return 0
	}
	distSq := isect.P.Sub(refP).LengthSquared()
	denom := isect.N.AbsDot(wi.Neg()) * s.Area()
	if denom == 0 {
		return 0
	}
	pdf := distSq / denom
	if isInfOrNaN(pdf) {
		pdf = 0
	}
	return pdf
}

func isInfOrNaN(f float64) bool {
	return f != f || f > 1e300 || f < -1e300
}
