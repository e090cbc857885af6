package material

import (
	"github.com/voxelmade/pathtracer/pkg/bsdf"
	"github.com/voxelmade/pathtracer/pkg/core"
	"github.com/voxelmade/pathtracer/pkg/geometry"
	"github.com/voxelmade/pathtracer/pkg/sampler"
)

// Plastic mixes a diffuse lobe and a glossy dielectric microfacet lobe,
// choosing between them stochastically per intersection weighted by their
// relative luminance so that neither lobe is systematically undersampled.
type Plastic struct {
	Kd, Ks         core.Vec3
	Roughness      float64
	RemapRoughness bool
}

// NewPlastic creates a plastic material.
func NewPlastic(kd, ks core.Vec3, roughness float64, remapRoughness bool) *Plastic {
	return &Plastic{Kd: kd, Ks: ks, Roughness: roughness, RemapRoughness: remapRoughness}
}

func (m *Plastic) Scattering(isect geometry.Intersection, s sampler.Sampler) *bsdf.BSDF {
	ld := m.Kd.Luminance()
	ls := m.Ks.Luminance()
	luminance := ld + ls
	qd := 0.5
	if luminance > 0 {
		qd = ld / luminance
	}

	b := bsdf.NewBSDF(isect.N)
	if s.Get1D() < qd {
		b.Add(bsdf.LambertianReflection{R: m.Kd.Div(qd)})
		return b
	}

	alpha := m.Roughness
	if m.RemapRoughness {
		alpha = bsdf.TrowbridgeReitzRoughnessToAlpha(m.Roughness)
	}
	distrib := bsdf.NewTrowbridgeReitzDistribution(alpha, alpha, true)
	fresnel := bsdf.FresnelDielectricFn{EtaI: 1.5, EtaT: 1.0}
	b.Add(bsdf.MicrofacetReflection{
		R:       m.Ks.Div(1 - qd),
		Distrib: distrib,
		Fresnel: fresnel,
	})
	return b
}
