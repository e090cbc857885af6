package material

import (
	"github.com/voxelmade/pathtracer/pkg/bsdf"
	"github.com/voxelmade/pathtracer/pkg/core"
	"github.com/voxelmade/pathtracer/pkg/geometry"
	"github.com/voxelmade/pathtracer/pkg/sampler"
)

// Matte is a perfectly diffuse surface.
type Matte struct {
	Kd core.Vec3
}

// NewMatte creates a matte material with the given diffuse color.
func NewMatte(kd core.Vec3) *Matte {
	return &Matte{Kd: kd}
}

func (m *Matte) Scattering(isect geometry.Intersection, s sampler.Sampler) *bsdf.BSDF {
	b := bsdf.NewBSDF(isect.N)
	b.Add(bsdf.LambertianReflection{R: m.Kd})
	return b
}
