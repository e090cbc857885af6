// Package integrator implements the light-transport estimators that turn a
// primary ray into a radiance value: Whitted (closed-form direct lighting
// plus bounded specular recursion), a recursive path tracer with Russian
// roulette, and the iterative path tracer that actually drives rendering.
package integrator

import (
	"math"

	"github.com/voxelmade/pathtracer/pkg/bsdf"
	"github.com/voxelmade/pathtracer/pkg/core"
	"github.com/voxelmade/pathtracer/pkg/lights"
	"github.com/voxelmade/pathtracer/pkg/sampler"
	"github.com/voxelmade/pathtracer/pkg/scene"
)

// Integrator estimates the radiance arriving at the ray's origin from along
// its direction.
type Integrator interface {
	Li(ray core.Ray, sc *scene.Scene, samp sampler.Sampler) core.Vec3
}

// uniformSampleOneLight draws one light from the scene's LightSampler and
// returns an unbiased estimate of its direct contribution at isect, divided
// by the light's own selection pdf to compensate for sampling only one.
func uniformSampleOneLight(isect scene.Intersection, bs *bsdf.BSDF, sc *scene.Scene, samp sampler.Sampler) core.Vec3 {
	if bs == nil || sc.LightSampler == nil {
		return core.Vec3{}
	}

	light, pdf, ok := sc.LightSampler.Sample(samp.Get1D())
	if !ok || pdf == 0 {
		return core.Vec3{}
	}

	return estimateDirect(isect, bs, light, sc, samp).Div(pdf)
}

// estimateDirect samples light once and returns its single-sample
// contribution divided by the light sample's own pdf. The light-selection
// pdf is applied by the caller.
func estimateDirect(isect scene.Intersection, bs *bsdf.BSDF, light lights.Light, sc *scene.Scene, samp sampler.Sampler) core.Vec3 {
	u1, u2 := samp.Get2D()
	ls := light.SampleLi(isect.P, isect.N, u1, u2)
	if ls.Pdf == 0 || ls.Li.IsBlack() {
		return core.Vec3{}
	}

	f := bs.F(isect.Wo, ls.Wi).Mul(ls.Wi.AbsDot(isect.N))
	if f.IsBlack() {
		return core.Vec3{}
	}

	if sc.OccludedToPoint(isect, ls.Pos) {
		return core.Vec3{}
	}

	return f.MulVec(ls.Li).Div(ls.Pdf)
}

// russianRoulette applies the standard max-component survival test to a
// throughput beginning at depth 3, returning the (possibly rescaled)
// throughput and whether the path survives. beta is unchanged (and the path
// always survives) below that depth. u is the caller's uniform sample
// driving the stop/continue decision: the path stops when u >= 1-q, which
// happens with probability q.
func russianRoulette(beta core.Vec3, depth int, u float64) (core.Vec3, bool) {
	if depth < 3 {
		return beta, true
	}
	q := math.Max(0.05, 1-beta.MaxComponent())
	if u >= 1-q {
		return beta, false
	}
	return beta.Div(1 - q), true
}
