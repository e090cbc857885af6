package integrator

import (
	"testing"

	"github.com/voxelmade/pathtracer/pkg/core"
	"github.com/voxelmade/pathtracer/pkg/geometry"
	"github.com/voxelmade/pathtracer/pkg/lights"
	"github.com/voxelmade/pathtracer/pkg/material"
	"github.com/voxelmade/pathtracer/pkg/sampler"
	"github.com/voxelmade/pathtracer/pkg/scene"
)

func whiteFurnace(t *testing.T) *scene.Scene {
	t.Helper()
	sc := scene.New()
	sphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 1)
	sc.AddPrimitive(scene.NewPrimitive(sphere, material.NewMatte(core.Splat(0.99))))
	sc.AddLight(lights.NewEnvironment(core.Splat(1)))
	sc.Preprocess()
	return sc
}

// cornellBox builds a fully enclosed room -- unlike whiteFurnace's convex
// sphere, a diffuse bounce off any wall here can only ever hit another
// wall, so a path reliably runs past depth 3 and into Russian roulette
// before it terminates.
func cornellBox(t *testing.T) *scene.Scene {
	t.Helper()
	sc := scene.New()

	white := material.NewMatte(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewMatte(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewMatte(core.NewVec3(0.12, 0.45, 0.15))

	floor := geometry.NewRectangle(
		core.NewVec3(-3, 0, -3), core.NewVec3(-3, 0, 3),
		core.NewVec3(3, 0, 3), core.NewVec3(3, 0, -3), false)
	ceiling := geometry.NewRectangle(
		core.NewVec3(-3, 4, -3), core.NewVec3(3, 4, -3),
		core.NewVec3(3, 4, 3), core.NewVec3(-3, 4, 3), false)
	back := geometry.NewRectangle(
		core.NewVec3(-3, 0, -3), core.NewVec3(3, 0, -3),
		core.NewVec3(3, 4, -3), core.NewVec3(-3, 4, -3), false)
	front := geometry.NewRectangle(
		core.NewVec3(-3, 0, 3), core.NewVec3(3, 0, 3),
		core.NewVec3(3, 4, 3), core.NewVec3(-3, 4, 3), true)
	leftWall := geometry.NewRectangle(
		core.NewVec3(-3, 0, 3), core.NewVec3(-3, 0, -3),
		core.NewVec3(-3, 4, -3), core.NewVec3(-3, 4, 3), false)
	rightWall := geometry.NewRectangle(
		core.NewVec3(3, 0, -3), core.NewVec3(3, 0, 3),
		core.NewVec3(3, 4, 3), core.NewVec3(3, 4, -3), false)

	sc.AddPrimitive(scene.NewPrimitive(floor, white))
	sc.AddPrimitive(scene.NewPrimitive(ceiling, white))
	sc.AddPrimitive(scene.NewPrimitive(back, white))
	sc.AddPrimitive(scene.NewPrimitive(front, white))
	sc.AddPrimitive(scene.NewPrimitive(leftWall, red))
	sc.AddPrimitive(scene.NewPrimitive(rightWall, green))

	lightShape := geometry.NewRectangle(
		core.NewVec3(-0.75, 3.99, -0.75), core.NewVec3(0.75, 3.99, -0.75),
		core.NewVec3(0.75, 3.99, 0.75), core.NewVec3(-0.75, 3.99, 0.75), true)
	lightPrim := scene.NewPrimitive(lightShape, material.NewMatte(core.Vec3{}))
	lightPrim.AreaLight = lights.NewAreaLight(core.NewVec3(15, 15, 15), lightShape)
	sc.AddPrimitive(lightPrim)

	sc.Preprocess()
	return sc
}

func TestRussianRoulette_NeverKillsBeforeDepth3(t *testing.T) {
	beta := core.Splat(0.01)
	for depth := 0; depth < 3; depth++ {
		got, alive := russianRoulette(beta, depth, 0.999999)
		if !alive {
			t.Errorf("depth %d: expected roulette to be a no-op before depth 3", depth)
		}
		if got != beta {
			t.Errorf("depth %d: expected beta unchanged, got %v", depth, got)
		}
	}
}

func TestRussianRoulette_SurvivorsAreRescaled(t *testing.T) {
	beta := core.Splat(0.5)
	got, alive := russianRoulette(beta, 3, 0.0)
	if !alive {
		t.Fatal("expected survival when u is below every plausible q")
	}
	if got.X <= beta.X {
		t.Errorf("expected a surviving path to be rescaled upward, got %v from %v", got, beta)
	}
}

func TestWhitted_MissReturnsEnvironmentRadiance(t *testing.T) {
	sc := whiteFurnace(t)
	w := NewWhitted(5)
	samp := sampler.NewRandomSampler(1, 1)

	ray := core.NewRay(core.NewVec3(10, 10, -10), core.NewVec3(0, 0, 1))
	l := w.Li(ray, sc, samp)
	if l.X != 1 || l.Y != 1 || l.Z != 1 {
		t.Errorf("expected a ray missing all geometry to return the environment's constant radiance, got %v", l)
	}
}

func TestWhitted_HitReturnsNonNegativeRadiance(t *testing.T) {
	sc := whiteFurnace(t)
	w := NewWhitted(5)
	samp := sampler.NewRandomSampler(1, 7)

	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	l := w.Li(ray, sc, samp)
	if l.X < 0 || l.Y < 0 || l.Z < 0 {
		t.Errorf("expected non-negative radiance, got %v", l)
	}
}

func TestIterativePath_AgreesWithRecursivePathOnFixedSeed(t *testing.T) {
	sc := cornellBox(t)
	ray := core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, 0, -1))

	rp := NewRecursivePath(12)
	ip := NewIterativePath(12)

	for seed := uint64(1); seed <= 16; seed++ {
		gotR := rp.Li(ray, sc, sampler.NewRandomSampler(1, seed))
		gotI := ip.Li(ray, sc, sampler.NewRandomSampler(1, seed))
		if !closeVec(gotR, gotI, 1e-9) {
			t.Errorf("seed %d: recursive and iterative path disagree: %v vs %v", seed, gotR, gotI)
		}
	}
}

func TestIterativePath_EmptySceneReturnsEnvironmentRadiance(t *testing.T) {
	sc := scene.New()
	sc.AddLight(lights.NewEnvironment(core.Splat(0.2)))
	sc.Preprocess()

	ip := NewIterativePath(8)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	l := ip.Li(ray, sc, sampler.NewRandomSampler(1, 42))
	if l.X != 0.2 {
		t.Errorf("expected an empty scene's miss radiance to equal the environment constant, got %v", l)
	}
}

func closeVec(a, b core.Vec3, eps float64) bool {
	return absf(a.X-b.X) < eps && absf(a.Y-b.Y) < eps && absf(a.Z-b.Z) < eps
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
