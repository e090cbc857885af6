package bsdf

import (
	"math"
	"testing"

	"github.com/voxelmade/pathtracer/pkg/core"
)

func TestFresnelDielectric_NormalIncidence(t *testing.T) {
	f := FresnelDielectric(1, 1.0, 1.5)
	expected := math.Pow((1.5-1.0)/(1.5+1.0), 2)
	if math.Abs(f-expected) > 1e-9 {
		t.Errorf("expected %v, got %v", expected, f)
	}
}

func TestFresnelDielectric_TotalInternalReflection(t *testing.T) {
	// Exiting glass at a grazing angle past the critical angle must reflect
	// everything back.
	cosThetaC := math.Sqrt(1 - 1/(1.5*1.5))
	f := FresnelDielectric(cosThetaC*0.5, 1.5, 1.0)
	if f != 1 {
		t.Errorf("expected total internal reflection to return 1, got %v", f)
	}
}

func TestFresnelDielectric_EnterExitSymmetric(t *testing.T) {
	enter := FresnelDielectric(0.8, 1.0, 1.5)
	exit := FresnelDielectric(-0.8, 1.5, 1.0)
	if math.Abs(enter-exit) > 1e-9 {
		t.Errorf("expected entering/exiting symmetry, got %v vs %v", enter, exit)
	}
}

func TestFresnelConductor_BoundedReflectance(t *testing.T) {
	r := FresnelConductor(0.6, core.Splat(1), core.NewVec3(0.2, 0.9, 1.2), core.NewVec3(3, 2.5, 2.2))
	for _, c := range []float64{r.X, r.Y, r.Z} {
		if c < 0 || c > 1 {
			t.Errorf("conductor reflectance out of [0,1]: %v", c)
		}
	}
}

func TestRefract_TotalInternalReflection(t *testing.T) {
	n := core.NewVec3(0, 0, 1)
	wi := core.NewVec3(0.999, 0, 0.0447).Normalize() // near-grazing
	_, ok := Refract(wi, n, 1.5/1.0)
	if ok {
		t.Errorf("expected total internal reflection at a steep eta ratio")
	}
}

func TestReflect_MirrorsAboutNormal(t *testing.T) {
	n := core.NewVec3(0, 0, 1)
	wo := core.NewVec3(1, 0, 1).Normalize()
	wi := Reflect(wo, n)
	if math.Abs(wi.Z-wo.Z) > 1e-9 || math.Abs(wi.X+wo.X) > 1e-9 {
		t.Errorf("expected mirror reflection, got %v from %v", wi, wo)
	}
}
