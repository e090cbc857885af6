package scene

import (
	"github.com/voxelmade/pathtracer/pkg/core"
	"github.com/voxelmade/pathtracer/pkg/geometry"
	"github.com/voxelmade/pathtracer/pkg/lights"
)

// Scene owns every shape, material, light, and primitive added to it, plus
// the BVH and world bounds built once by Preprocess. After Preprocess
// returns, a Scene is immutable and safe to share read-only across any
// number of rendering goroutines.
type Scene struct {
	Shapes     []geometry.Shape
	Lights     []lights.Light
	Primitives []*Primitive

	// LightSampler picks one of Lights for next-event estimation. Built by
	// Preprocess; nil before then.
	LightSampler *lights.LightSampler

	environment *lights.Environment

	bvh        *geometry.BVH[*Primitive, Intersection]
	worldBound core.AABB
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{worldBound: core.EmptyAABB()}
}

// AddPrimitive registers a primitive (and its area light, if any).
func (s *Scene) AddPrimitive(p *Primitive) {
	s.Shapes = append(s.Shapes, p.Shape)
	s.Primitives = append(s.Primitives, p)
	if p.AreaLight != nil {
		s.AddLight(p.AreaLight)
	}
}

// AddLight registers a light that is not tied to a primitive (point,
// directional, environment).
func (s *Scene) AddLight(l lights.Light) {
	s.Lights = append(s.Lights, l)
	if env, ok := l.(*lights.Environment); ok {
		s.environment = env
	}
}

// Preprocess finalizes the world bound, lets every light size itself
// against it, and builds the BVH over all primitives. Must be called
// exactly once, after every shape/light/primitive has been added and
// before the first call to Intersect.
func (s *Scene) Preprocess() {
	s.worldBound = core.EmptyAABB()
	for _, p := range s.Primitives {
		s.worldBound = s.worldBound.Union(p.WorldBounds())
	}

	for _, l := range s.Lights {
		l.Preprocess(s.worldBound)
	}

	s.bvh = geometry.NewBVH[*Primitive, Intersection](s.Primitives)
	s.LightSampler = lights.NewUniformLightSampler(s.Lights)
}

// WorldBound returns the scene's precomputed world bounds.
func (s *Scene) WorldBound() core.AABB { return s.worldBound }

// Intersect finds the closest hit along ray within [ray.TMin, ray.TMax].
func (s *Scene) Intersect(ray core.Ray) (Intersection, bool) {
	if s.bvh == nil {
		return Intersection{}, false
	}
	return s.bvh.Intersect(ray, ray.TMin, ray.TMax)
}

// Occluded casts a shadow ray from pos toward dir and reports whether
// anything blocks it before dist. A dist of core.Infinity (or <= 0) tests
// the full ray. Bounding tmax to just short of dist keeps geometry behind
// the target point (the light itself, or surfaces beyond it) from being
// mistaken for an occluder -- the reference renderer's equivalent overload
// ignores dist entirely and does not have this guard.
func (s *Scene) Occluded(pos, normal, dir core.Vec3, dist float64) bool {
	ray := core.NewRay(pos, dir)
	if dist > 0 {
		ray.TMax = dist * (1 - core.ShadowEpsilon)
	}
	_, hit := s.Intersect(ray)
	return hit
}

// OccludedToPoint tests visibility between isect and a world-space target
// point (e.g. a light sample's position).
func (s *Scene) OccludedToPoint(isect Intersection, target core.Vec3) bool {
	d := target.Sub(isect.P)
	dist := d.Length()
	if dist == 0 {
		return false
	}
	return s.Occluded(isect.P, isect.N, d.Div(dist), dist)
}

// OccludedBetween tests visibility between two intersections.
func (s *Scene) OccludedBetween(isect1, isect2 Intersection) bool {
	return s.OccludedToPoint(isect1, isect2.P)
}

// EnvironmentLighting returns the scene's environment light's emitted
// radiance along ray, or black if the scene has none.
func (s *Scene) EnvironmentLighting(ray core.Ray) core.Vec3 {
	if s.environment == nil {
		return core.Vec3{}
	}
	return s.environment.Le(ray)
}

// InfiniteLe sums Le over every infinite light in the scene (environment
// lights only, in this module's light union) for a ray that escaped all
// geometry.
func (s *Scene) InfiniteLe(ray core.Ray) core.Vec3 {
	total := core.Vec3{}
	for _, l := range s.Lights {
		if l.Flags()&lights.Infinite != 0 {
			total = total.Add(l.Le(ray))
		}
	}
	return total
}
