package material

import (
	"github.com/voxelmade/pathtracer/pkg/bsdf"
	"github.com/voxelmade/pathtracer/pkg/core"
	"github.com/voxelmade/pathtracer/pkg/geometry"
	"github.com/voxelmade/pathtracer/pkg/sampler"
)

// Mirror is an ideal specular reflector.
type Mirror struct {
	Kr core.Vec3
}

// NewMirror creates a mirror material with the given specular tint.
func NewMirror(kr core.Vec3) *Mirror {
	return &Mirror{Kr: kr}
}

func (m *Mirror) Scattering(isect geometry.Intersection, s sampler.Sampler) *bsdf.BSDF {
	b := bsdf.NewBSDF(isect.N)
	b.Add(bsdf.SpecularReflection{R: m.Kr, Fresnel: bsdf.FresnelNoOp{}})
	return b
}
