package scene

import (
	"testing"

	"github.com/voxelmade/pathtracer/pkg/core"
	"github.com/voxelmade/pathtracer/pkg/geometry"
	"github.com/voxelmade/pathtracer/pkg/lights"
	"github.com/voxelmade/pathtracer/pkg/material"
)

func buildTestScene() *Scene {
	s := New()
	sphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 1)
	mat := material.NewMatte(core.Splat(0.8))
	s.AddPrimitive(NewPrimitive(sphere, mat))
	s.AddLight(lights.NewEnvironment(core.Splat(1)))
	s.Preprocess()
	return s
}

func TestScene_IntersectFindsClosestHit(t *testing.T) {
	s := buildTestScene()
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	isect, ok := s.Intersect(ray)
	if !ok {
		t.Fatal("expected the ray to hit the sphere")
	}
	if isect.T <= 0 || isect.T >= 5 {
		t.Errorf("expected a hit distance near 4, got %v", isect.T)
	}
	if isect.Primitive == nil {
		t.Error("expected the intersection to carry its primitive")
	}
}

func TestScene_IntersectMissesEmptyRegion(t *testing.T) {
	s := buildTestScene()
	ray := core.NewRay(core.NewVec3(10, 10, -5), core.NewVec3(0, 0, 1))
	if _, ok := s.Intersect(ray); ok {
		t.Error("expected a ray far from the sphere to miss")
	}
}

func TestScene_SelfIntersectionAvoidedAtSpawn(t *testing.T) {
	s := buildTestScene()
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	isect, ok := s.Intersect(ray)
	if !ok {
		t.Fatal("expected initial hit")
	}

	spawned := core.NewRay(isect.P, isect.N)
	if _, hit := s.Intersect(spawned); hit {
		t.Error("expected a ray spawned along its own normal with default tmin not to re-hit the same surface at t=0")
	}
}

func TestScene_OccludedBoundsByDistance(t *testing.T) {
	s := New()
	sphere := geometry.NewSphere(core.NewVec3(0, 0, 10), 1)
	mat := material.NewMatte(core.Splat(0.8))
	s.AddPrimitive(NewPrimitive(sphere, mat))
	s.Preprocess()

	pos := core.NewVec3(0, 0, 0)
	dir := core.NewVec3(0, 0, 1)

	if s.Occluded(pos, core.Vec3{}, dir, 5) {
		t.Error("expected no occlusion for a target closer than the sphere")
	}
	if !s.Occluded(pos, core.Vec3{}, dir, 20) {
		t.Error("expected occlusion for a target beyond the sphere")
	}
}

func TestScene_PreprocessBuildsLightSamplerOverEveryLight(t *testing.T) {
	s := buildTestScene()
	if s.LightSampler == nil {
		t.Fatal("expected Preprocess to populate LightSampler")
	}
	light, pdf, ok := s.LightSampler.Sample(0.5)
	if !ok || light == nil {
		t.Fatal("expected a light sampler with one registered light to return it")
	}
	if pdf != 1 {
		t.Errorf("expected selection pdf 1 for a single light, got %v", pdf)
	}
}

func TestScene_WorldBoundCoversAllPrimitives(t *testing.T) {
	s := buildTestScene()
	b := s.WorldBound()
	if !b.IsValid() {
		t.Error("expected a valid world bound")
	}
	if b.Min.X > -1 || b.Max.X < 1 {
		t.Errorf("expected world bound to cover the unit sphere, got %v", b)
	}
}
