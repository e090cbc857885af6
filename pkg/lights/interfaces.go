// Package lights implements the Light union (Point, Directional, Area,
// Environment) and a uniform light-selection policy over a scene's lights.
package lights

import (
	"github.com/voxelmade/pathtracer/pkg/core"
	"github.com/voxelmade/pathtracer/pkg/geometry"
)

// Flags classifies a light's delta/finite character; integrators branch on
// these rather than type-switching on the concrete light type.
type Flags int

const (
	DeltaPosition Flags = 1 << iota
	DeltaDirection
	Area
	Infinite
)

// IsDelta reports whether a light has a delta (point-mass) distribution in
// position or direction, and so can never be hit by a scattered ray.
func (f Flags) IsDelta() bool {
	return f&(DeltaPosition|DeltaDirection) != 0
}

// Sample is the result of drawing one Sample_Li: a position on the light,
// the direction toward it, its solid-angle pdf, and the incident radiance.
type Sample struct {
	Pos core.Vec3
	Wi  core.Vec3
	Pdf float64
	Li  core.Vec3
}

// Light is the polymorphic light-source contract. Point, Directional,
// Area, and Environment are the only implementations this module's light
// union names.
type Light interface {
	Flags() Flags

	// Preprocess finalizes parameters that depend on the scene's bounding
	// volume -- directional and environment lights size their "sun disk"/
	// far-sphere emission geometry from it. Takes the world bound directly
	// rather than a *scene.Scene to avoid a package-import cycle between
	// lights and scene.
	Preprocess(worldBound core.AABB)

	Power() core.Vec3

	// Le returns emitted radiance for a ray that escapes the scene;
	// non-infinite lights return black.
	Le(ray core.Ray) core.Vec3

	SampleLi(refP, refN core.Vec3, u1, u2 float64) Sample
	PdfLi(refP, refN, wi core.Vec3) float64
}

// AreaShape is the subset of geometry.Shape an area light needs to sample
// its own surface and re-locate the sampled point to evaluate emission.
type AreaShape interface {
	SampleDirection(refP, refN core.Vec3, u1, u2 float64) (wi core.Vec3, pdf float64, ok bool)
	PdfDirection(refP, refN, wi core.Vec3) float64
	Intersect(ray core.Ray, tMin, tMax float64) (geometry.Intersection, bool)
	Area() float64
}
