package bsdf

import (
	"math"
	"testing"

	"github.com/voxelmade/pathtracer/pkg/core"
)

func TestBSDF_SampleConsistentWithF(t *testing.T) {
	b := NewBSDF(core.NewVec3(0, 0, 1))
	b.Add(LambertianReflection{R: core.NewVec3(0.8, 0.3, 0.2)})

	wo := core.NewVec3(0, 0, 1)
	wi, f, pdf, specular, ok := b.Sample(wo, 0.4, 0.2, 0.6)
	if !ok {
		t.Fatal("expected a valid sample")
	}
	if specular {
		t.Error("lambertian lobe should not report specular")
	}
	if pdf <= 0 {
		t.Errorf("expected positive pdf, got %v", pdf)
	}
	direct := b.F(wo, wi)
	if math.Abs(direct.X-f.X) > 1e-9 {
		t.Errorf("Sample's f and F disagree: %v vs %v", f, direct)
	}
}

func TestBSDF_TwoLobesPdfAverages(t *testing.T) {
	b := NewBSDF(core.NewVec3(0, 0, 1))
	b.Add(LambertianReflection{R: core.Splat(0.5)})
	b.Add(LambertianReflection{R: core.Splat(0.5)})

	wo := core.NewVec3(0, 0, 1)
	wi := core.NewVec3(0.1, 0.1, 0.98).Normalize()
	if b.Pdf(wo, wi) <= 0 {
		t.Errorf("expected positive combined pdf across two lobes")
	}
}

func TestBSDF_NoLobesIsInert(t *testing.T) {
	b := NewBSDF(core.NewVec3(0, 0, 1))
	wo := core.NewVec3(0, 0, 1)
	wi := core.NewVec3(0, 0, 1)
	if !b.F(wo, wi).IsBlack() {
		t.Error("expected zero contribution with no lobes added")
	}
	if _, _, _, _, ok := b.Sample(wo, 0.5, 0.5, 0.5); ok {
		t.Error("expected Sample to fail with no lobes added")
	}
}
