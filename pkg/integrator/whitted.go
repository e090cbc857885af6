package integrator

import (
	"github.com/voxelmade/pathtracer/pkg/bsdf"
	"github.com/voxelmade/pathtracer/pkg/core"
	"github.com/voxelmade/pathtracer/pkg/sampler"
	"github.com/voxelmade/pathtracer/pkg/scene"
)

// Whitted is the closed-form direct-lighting integrator with bounded
// specular recursion for mirrors and glass. It does not importance-sample
// glossy lobes and so is noisier than the path integrators on rough
// surfaces, but is cheap and deterministic at low depth -- useful as a
// sanity check against the path integrators on delta-only scenes.
type Whitted struct {
	MaxDepth int
}

// NewWhitted creates a Whitted integrator bounded to maxDepth specular
// bounces.
func NewWhitted(maxDepth int) *Whitted {
	return &Whitted{MaxDepth: maxDepth}
}

func (w *Whitted) Li(ray core.Ray, sc *scene.Scene, samp sampler.Sampler) core.Vec3 {
	return w.li(ray, sc, samp, 0)
}

func (w *Whitted) li(ray core.Ray, sc *scene.Scene, samp sampler.Sampler, depth int) core.Vec3 {
	isect, hit := sc.Intersect(ray)
	if !hit {
		return sc.InfiniteLe(ray)
	}

	bs := isect.GetBSDF(samp)
	if bs == nil {
		// A medium boundary with no scattering function: pass straight
		// through rather than terminating the path.
		return w.li(core.NewRay(isect.P, ray.Direction), sc, samp, depth)
	}

	l := isect.GetLe(isect.Wo)

	for _, light := range sc.Lights {
		l = l.Add(estimateDirect(isect, bs, light, sc, samp))
	}

	if depth+1 < w.MaxDepth {
		l = l.Add(w.specularBounce(ray, isect, bs, sc, samp, depth))
	}

	return l
}

// specularBounce samples the BSDF once and, if the sampled lobe turned out
// to be a delta (mirror or Fresnel-specular) lobe, recurses along it. Non-
// specular samples are discarded: their contribution is already accounted
// for by estimateDirect's light sampling above.
func (w *Whitted) specularBounce(ray core.Ray, isect scene.Intersection, bs *bsdf.BSDF, sc *scene.Scene, samp sampler.Sampler, depth int) core.Vec3 {
	u1, u2, u3 := samp.Get1D(), samp.Get1D(), samp.Get1D()
	wi, f, pdf, specular, ok := bs.Sample(isect.Wo, u1, u2, u3)
	if !ok || !specular || pdf == 0 || f.IsBlack() {
		return core.Vec3{}
	}

	li := w.li(core.NewRay(isect.P, wi), sc, samp, depth+1)
	return f.MulVec(li).Mul(wi.AbsDot(isect.N) / pdf)
}
