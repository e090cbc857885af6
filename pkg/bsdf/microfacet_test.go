package bsdf

import (
	"math"
	"testing"

	"github.com/voxelmade/pathtracer/pkg/core"
)

func TestRoughnessToAlpha_Monotonic(t *testing.T) {
	prev := 0.0
	for _, r := range []float64{0.01, 0.05, 0.1, 0.3, 0.6, 1.0} {
		a := TrowbridgeReitzRoughnessToAlpha(r)
		if a <= prev {
			t.Errorf("expected RoughnessToAlpha to increase with roughness, got %v at r=%v (prev %v)", a, r, prev)
		}
		prev = a
	}
}

func TestTrowbridgeReitzD_PeaksAtNormal(t *testing.T) {
	d := NewTrowbridgeReitzDistribution(0.2, 0.2, true)
	atNormal := d.D(core.NewVec3(0, 0, 1))
	atGrazing := d.D(core.NewVec3(0, 0, 1).Lerp(core.NewVec3(1, 0, 0.2).Normalize(), 0.9).Normalize())
	if atNormal <= atGrazing {
		t.Errorf("expected D to peak near the surface normal: normal=%v grazing=%v", atNormal, atGrazing)
	}
}

func TestMicrofacetDistribution_G1Bounded(t *testing.T) {
	dists := []MicrofacetDistribution{
		NewBeckmannDistribution(0.3, 0.3, true),
		NewTrowbridgeReitzDistribution(0.3, 0.3, true),
	}
	w := core.NewVec3(0.3, 0.2, 0.9).Normalize()
	for _, d := range dists {
		g1 := d.G1(w)
		if g1 < 0 || g1 > 1 {
			t.Errorf("expected G1 in [0,1], got %v", g1)
		}
	}
}

func TestMicrofacetDistribution_SampleWhIsUnitNormal(t *testing.T) {
	dists := []MicrofacetDistribution{
		NewBeckmannDistribution(0.4, 0.4, true),
		NewTrowbridgeReitzDistribution(0.4, 0.4, true),
	}
	wo := core.NewVec3(0.1, 0.2, 0.97).Normalize()
	for _, d := range dists {
		for i := 0; i < 10; i++ {
			u1 := float64(i) / 10
			u2 := float64(i*3%10) / 10
			wh := d.SampleWh(wo, u1, u2)
			if math.Abs(wh.Length()-1) > 1e-6 {
				t.Errorf("expected a unit-length microfacet normal, got length %v", wh.Length())
			}
		}
	}
}
