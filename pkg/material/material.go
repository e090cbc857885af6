package material

import (
	"github.com/voxelmade/pathtracer/pkg/bsdf"
	"github.com/voxelmade/pathtracer/pkg/geometry"
	"github.com/voxelmade/pathtracer/pkg/sampler"
)

// Material produces a freshly built BSDF for a given intersection, using
// the sampler only when the choice between lobes is itself stochastic.
type Material interface {
	Scattering(isect geometry.Intersection, s sampler.Sampler) *bsdf.BSDF
}
