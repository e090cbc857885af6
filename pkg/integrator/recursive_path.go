package integrator

import (
	"github.com/voxelmade/pathtracer/pkg/core"
	"github.com/voxelmade/pathtracer/pkg/sampler"
	"github.com/voxelmade/pathtracer/pkg/scene"
)

// RecursivePath is a textbook unidirectional path tracer with one-sample
// next-event estimation and Russian-roulette termination, expressed as a
// direct call-stack recursion. It exists mainly as a reference the
// iterative integrator is checked against: production rendering uses
// IterativePath so that deep paths don't grow the call stack.
type RecursivePath struct {
	MaxDepth int
}

// NewRecursivePath creates a recursive path integrator bounded to maxDepth
// bounces.
func NewRecursivePath(maxDepth int) *RecursivePath {
	return &RecursivePath{MaxDepth: maxDepth}
}

func (p *RecursivePath) Li(ray core.Ray, sc *scene.Scene, samp sampler.Sampler) core.Vec3 {
	return p.li(ray, sc, samp, 0, true, core.Splat(1))
}

// li returns the radiance along ray. specularBounce reports whether the
// bounce that produced ray was a delta lobe (or this is the camera ray),
// which gates whether hit-surface emission is counted here -- emission
// reached through a non-specular bounce was already folded into the
// parent's light-sampling estimate. beta is the running product of
// BSDF*|cosθ|/pdf accumulated over every bounce so far; every contribution
// at this vertex is weighted by it, and Russian roulette is keyed on it
// (not on this bounce's local factor alone) so this matches IterativePath's
// survival probabilities exactly.
func (p *RecursivePath) li(ray core.Ray, sc *scene.Scene, samp sampler.Sampler, depth int, specularBounce bool, beta core.Vec3) core.Vec3 {
	isect, hit := sc.Intersect(ray)
	if !hit {
		if depth == 0 || specularBounce {
			return beta.MulVec(sc.InfiniteLe(ray))
		}
		return core.Vec3{}
	}

	l := core.Vec3{}
	if depth == 0 || specularBounce {
		l = beta.MulVec(isect.GetLe(isect.Wo))
	}

	if depth >= p.MaxDepth {
		return l
	}

	bs := isect.GetBSDF(samp)
	if bs == nil {
		return l.Add(p.li(core.NewRay(isect.P, ray.Direction), sc, samp, depth, specularBounce, beta))
	}

	l = l.Add(beta.MulVec(uniformSampleOneLight(isect, bs, sc, samp)))

	u1, u2, u3 := samp.Get1D(), samp.Get1D(), samp.Get1D()
	wi, f, pdf, specular, ok := bs.Sample(isect.Wo, u1, u2, u3)
	if !ok || pdf == 0 || f.IsBlack() {
		return l
	}

	beta = beta.MulVec(f).Mul(wi.AbsDot(isect.N) / pdf)
	beta, alive := russianRoulette(beta, depth, samp.Get1D())
	if !alive {
		return l
	}

	return l.Add(p.li(core.NewRay(isect.P, wi), sc, samp, depth+1, specular, beta))
}
