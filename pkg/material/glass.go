package material

import (
	"github.com/voxelmade/pathtracer/pkg/bsdf"
	"github.com/voxelmade/pathtracer/pkg/core"
	"github.com/voxelmade/pathtracer/pkg/geometry"
	"github.com/voxelmade/pathtracer/pkg/sampler"
)

// Glass is a smooth dielectric that both reflects and transmits, chosen
// stochastically per sample by the Fresnel-specular lobe itself.
type Glass struct {
	Eta    float64
	Kr, Kt core.Vec3
}

// NewGlass creates a glass material with the given index of refraction and
// reflect/transmit tints (white by default in the reference renderer).
func NewGlass(eta float64, kr, kt core.Vec3) *Glass {
	return &Glass{Eta: eta, Kr: kr, Kt: kt}
}

func (m *Glass) Scattering(isect geometry.Intersection, s sampler.Sampler) *bsdf.BSDF {
	b := bsdf.NewBSDF(isect.N)
	b.Add(bsdf.FresnelSpecular{R: m.Kr, T: m.Kt, EtaA: 1, EtaB: m.Eta})
	return b
}
