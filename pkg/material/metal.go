package material

import (
	"github.com/voxelmade/pathtracer/pkg/bsdf"
	"github.com/voxelmade/pathtracer/pkg/core"
	"github.com/voxelmade/pathtracer/pkg/geometry"
	"github.com/voxelmade/pathtracer/pkg/sampler"
)

// Metal is a conducting microfacet reflector with a complex index of
// refraction and an optionally anisotropic roughness.
type Metal struct {
	Eta, K                 core.Vec3
	RoughnessU, RoughnessV float64
	RemapRoughness         bool
}

// NewMetal creates a metal material.
func NewMetal(eta, k core.Vec3, roughnessU, roughnessV float64, remapRoughness bool) *Metal {
	return &Metal{Eta: eta, K: k, RoughnessU: roughnessU, RoughnessV: roughnessV, RemapRoughness: remapRoughness}
}

func (m *Metal) Scattering(isect geometry.Intersection, s sampler.Sampler) *bsdf.BSDF {
	uRough, vRough := m.RoughnessU, m.RoughnessV
	if m.RemapRoughness {
		uRough = bsdf.TrowbridgeReitzRoughnessToAlpha(uRough)
		vRough = bsdf.TrowbridgeReitzRoughnessToAlpha(vRough)
	}
	distrib := bsdf.NewTrowbridgeReitzDistribution(uRough, vRough, true)
	fresnel := bsdf.FresnelConductorFn{EtaI: core.Splat(1), EtaT: m.Eta, K: m.K}

	b := bsdf.NewBSDF(isect.N)
	b.Add(bsdf.MicrofacetReflection{
		R:       core.Splat(1),
		Distrib: distrib,
		Fresnel: fresnel,
	})
	return b
}
