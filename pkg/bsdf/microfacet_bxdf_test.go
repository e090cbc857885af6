package bsdf

import (
	"math"
	"testing"

	"github.com/voxelmade/pathtracer/pkg/core"
)

func TestMicrofacetTransmission_PdfIntegratesToOne(t *testing.T) {
	dist := NewTrowbridgeReitzDistribution(0.2, 0.2, true)
	b := NewMicrofacetTransmission(core.Splat(1), dist, 1.0, 1.5)
	wo := core.NewVec3(0.05, 0.02, 0.999).Normalize()

	total := integrateSpherePdf(func(wi core.Vec3) float64 { return b.Pdf(wo, wi) })
	if math.Abs(total-1) > 0.15 {
		t.Errorf("expected the transmission lobe's pdf to integrate to ~1 over the opposite hemisphere, got %v", total)
	}
}

func TestMicrofacetTransmission_SampleMatchesFAndIsNonNegative(t *testing.T) {
	dist := NewTrowbridgeReitzDistribution(0.25, 0.25, true)
	b := NewMicrofacetTransmission(core.NewVec3(0.9, 0.9, 0.9), dist, 1.0, 1.5)
	wo := core.NewVec3(0.1, -0.05, 0.98).Normalize()

	found := 0
	for i := 0; i < 40; i++ {
		u1 := float64(i) / 40
		u2 := float64((i*11)%40) / 40
		wi, f, pdf, ok := b.Sample(wo, u1, u2)
		if !ok {
			continue
		}
		found++
		if core.SameHemisphere(wo, wi) {
			t.Errorf("expected a transmitted direction on the opposite side of wo, got %v", wi)
		}
		if f.X < -1e-12 || f.Y < -1e-12 || f.Z < -1e-12 {
			t.Errorf("expected non-negative f, got %v", f)
		}
		if pdf <= 0 {
			t.Errorf("expected a positive pdf for a successful sample, got %v", pdf)
		}
		if got := b.F(wo, wi); math.Abs(got.X-f.X) > 1e-9 {
			t.Errorf("F and Sample disagree: %v vs %v", got, f)
		}
	}
	if found == 0 {
		t.Fatal("expected at least one successful transmission sample")
	}
}

func TestMicrofacetTransmission_ZeroAcrossSameHemisphere(t *testing.T) {
	dist := NewTrowbridgeReitzDistribution(0.2, 0.2, true)
	b := NewMicrofacetTransmission(core.Splat(1), dist, 1.0, 1.5)
	wo := core.NewVec3(0, 0, 1)
	wi := core.NewVec3(0.1, 0, 0.99).Normalize()
	if !b.F(wo, wi).IsBlack() {
		t.Errorf("expected zero F for a same-hemisphere pair")
	}
	if b.Pdf(wo, wi) != 0 {
		t.Errorf("expected zero pdf for a same-hemisphere pair")
	}
}
