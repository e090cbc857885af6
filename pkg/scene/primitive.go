// Package scene owns the aggregate scene graph -- shapes, materials,
// lights, and the primitives that bind them together -- and the BVH built
// over it once construction is complete.
package scene

import (
	"github.com/voxelmade/pathtracer/pkg/bsdf"
	"github.com/voxelmade/pathtracer/pkg/core"
	"github.com/voxelmade/pathtracer/pkg/geometry"
	"github.com/voxelmade/pathtracer/pkg/lights"
	"github.com/voxelmade/pathtracer/pkg/material"
	"github.com/voxelmade/pathtracer/pkg/sampler"
)

// Primitive is the triple (shape, material, area-light?) the spec names:
// every piece of visible geometry owns exactly one shape and material, and
// optionally carries the area light it also happens to be the emitter for.
type Primitive struct {
	Shape     geometry.Shape
	Material  material.Material
	AreaLight *lights.AreaLight
}

// NewPrimitive creates a primitive with no associated light.
func NewPrimitive(shape geometry.Shape, mat material.Material) *Primitive {
	return &Primitive{Shape: shape, Material: mat}
}

// WorldBounds satisfies geometry.Bounded, letting a BVH index primitives.
func (p *Primitive) WorldBounds() core.AABB {
	return p.Shape.WorldBounds()
}

// Intersect satisfies geometry.Intersectable[Intersection], wrapping the
// shape's own intersection with a back-reference to this primitive.
func (p *Primitive) Intersect(ray core.Ray, tMin, tMax float64) (Intersection, bool) {
	gi, ok := p.Shape.Intersect(ray, tMin, tMax)
	if !ok {
		return Intersection{}, false
	}
	return Intersection{Intersection: gi, Primitive: p}, true
}

// Intersection extends geometry.Intersection with the owning primitive, so
// an integrator can ask for a BSDF or emitted radiance without the
// geometry package itself depending on materials or lights.
type Intersection struct {
	geometry.Intersection
	Primitive *Primitive
}

// GetBSDF builds a freshly-scoped BSDF for this hit, using s for any
// stochastic lobe choice the material makes.
func (i Intersection) GetBSDF(s sampler.Sampler) *bsdf.BSDF {
	if i.Primitive == nil || i.Primitive.Material == nil {
		return nil
	}
	return i.Primitive.Material.Scattering(i.Intersection, s)
}

// GetLe returns the radiance this hit emits toward wo, zero unless the
// primitive is itself an area light's surface.
func (i Intersection) GetLe(wo core.Vec3) core.Vec3 {
	if i.Primitive == nil || i.Primitive.AreaLight == nil {
		return core.Vec3{}
	}
	return i.Primitive.AreaLight.L(i.N, wo)
}
