package integrator

import (
	"github.com/voxelmade/pathtracer/pkg/core"
	"github.com/voxelmade/pathtracer/pkg/sampler"
	"github.com/voxelmade/pathtracer/pkg/scene"
)

// IterativePath is logically equivalent to RecursivePath but walks its
// bounces in a loop carrying an explicit throughput beta, so a render with
// a deep maxDepth never grows the goroutine's call stack. This is the
// integrator the CLI's render command uses by default.
type IterativePath struct {
	MaxDepth int
}

// NewIterativePath creates an iterative path integrator bounded to maxDepth
// bounces.
func NewIterativePath(maxDepth int) *IterativePath {
	return &IterativePath{MaxDepth: maxDepth}
}

func (p *IterativePath) Li(ray core.Ray, sc *scene.Scene, samp sampler.Sampler) core.Vec3 {
	l := core.Vec3{}
	beta := core.Splat(1)
	specularBounce := true

	// A medium boundary that returns no BSDF doesn't consume a bounce, so
	// in the worst case (every surface hit is such a boundary) this loop
	// could run unboundedly; maxDepth*4 caps it while leaving enormous
	// headroom for the legitimate case of a handful of such boundaries
	// along an otherwise normal path.
	hardCap := p.MaxDepth * 4
	if hardCap <= 0 {
		hardCap = 1
	}

	depth := 0
	for iter := 0; iter < hardCap; iter++ {
		isect, hit := sc.Intersect(ray)
		if !hit {
			if depth == 0 || specularBounce {
				l = l.Add(beta.MulVec(sc.InfiniteLe(ray)))
			}
			break
		}

		if depth == 0 || specularBounce {
			l = l.Add(beta.MulVec(isect.GetLe(isect.Wo)))
		}

		if depth >= p.MaxDepth {
			break
		}

		bs := isect.GetBSDF(samp)
		if bs == nil {
			ray = core.NewRay(isect.P, ray.Direction)
			continue
		}

		l = l.Add(beta.MulVec(uniformSampleOneLight(isect, bs, sc, samp)))

		u1, u2, u3 := samp.Get1D(), samp.Get1D(), samp.Get1D()
		wi, f, pdf, specular, ok := bs.Sample(isect.Wo, u1, u2, u3)
		if !ok || pdf == 0 || f.IsBlack() {
			break
		}

		beta = beta.MulVec(f).Mul(wi.AbsDot(isect.N) / pdf)
		specularBounce = specular

		var alive bool
		beta, alive = russianRoulette(beta, depth, samp.Get1D())
		if !alive {
			break
		}
		depth++

		ray = core.NewRay(isect.P, wi)
	}

	return l
}
