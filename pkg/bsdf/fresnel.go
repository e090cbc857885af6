package bsdf

import (
	"math"

	"github.com/voxelmade/pathtracer/pkg/core"
)

// FresnelDielectric evaluates the unpolarized Fresnel reflectance at a
// smooth dielectric interface, automatically swapping etaI/etaT when the
// ray is exiting rather than entering (cosThetaI < 0). Returns 1 (total
// internal reflection) when sin^2(thetaT) >= 1.
func FresnelDielectric(cosThetaI, etaI, etaT float64) float64 {
	cosThetaI = core.Clamp(cosThetaI, -1, 1)
	if cosThetaI < 0 {
		etaI, etaT = etaT, etaI
		cosThetaI = -cosThetaI
	}

	sin2ThetaI := math.Max(0, 1-cosThetaI*cosThetaI)
	sin2ThetaT := etaI * etaI / (etaT * etaT) * sin2ThetaI
	if sin2ThetaT >= 1 {
		return 1
	}

	cosThetaT := math.Sqrt(math.Max(0, 1-sin2ThetaT))

	rParl := (etaT*cosThetaI - etaI*cosThetaT) / (etaT*cosThetaI + etaI*cosThetaT)
	rPerp := (etaI*cosThetaI - etaT*cosThetaT) / (etaI*cosThetaI + etaT*cosThetaT)
	return (rParl*rParl + rPerp*rPerp) / 2
}

// FresnelConductor evaluates the unpolarized Fresnel reflectance at a
// conducting interface with complex index of refraction etaT + i*k, per
// channel, using the standard closed form for unpolarized light.
func FresnelConductor(cosThetaI float64, etaI, etaT, k core.Vec3) core.Vec3 {
	cosThetaI = core.Clamp(cosThetaI, -1, 1)
	cos2ThetaI := cosThetaI * cosThetaI
	sin2ThetaI := 1 - cos2ThetaI

	eval := func(etaIv, etaTv, kv float64) float64 {
		eta := etaTv / etaIv
		etaK := kv / etaIv

		eta2 := eta * eta
		etaK2 := etaK * etaK

		t0 := eta2 - etaK2 - sin2ThetaI
		a2plusb2 := math.Sqrt(math.Max(0, t0*t0+4*eta2*etaK2))
		t1 := a2plusb2 + cos2ThetaI
		a := math.Sqrt(math.Max(0, 0.5*(a2plusb2+t0)))
		t2 := 2 * a * cosThetaI
		rs := (t1 - t2) / (t1 + t2)

		t3 := cos2ThetaI*a2plusb2 + sin2ThetaI*sin2ThetaI
		t4 := t2 * sin2ThetaI
		rp := rs * (t3 - t4) / (t3 + t4)

		return 0.5 * (rp + rs)
	}

	return core.Vec3{
		X: eval(etaI.X, etaT.X, k.X),
		Y: eval(etaI.Y, etaT.Y, k.Y),
		Z: eval(etaI.Z, etaT.Z, k.Z),
	}
}

// Fresnel is the interface every BxDF that needs a reflectance coefficient
// depends on, so microfacet reflection can be parameterized by dielectric,
// conductor, or a no-op reflectance without branching on a type tag.
type Fresnel interface {
	Evaluate(cosThetaI float64) core.Vec3
}

// FresnelDielectricFn wraps FresnelDielectric as a Fresnel.
type FresnelDielectricFn struct {
	EtaI, EtaT float64
}

func (f FresnelDielectricFn) Evaluate(cosThetaI float64) core.Vec3 {
	return core.Splat(FresnelDielectric(cosThetaI, f.EtaI, f.EtaT))
}

// FresnelConductorFn wraps FresnelConductor as a Fresnel.
type FresnelConductorFn struct {
	EtaI, EtaT, K core.Vec3
}

func (f FresnelConductorFn) Evaluate(cosThetaI float64) core.Vec3 {
	return FresnelConductor(cosThetaI, f.EtaI, f.EtaT, f.K)
}

// FresnelNoOp always returns full reflectance, used where a BxDF needs the
// Fresnel interface but the material supplies its own constant tint.
type FresnelNoOp struct{}

func (FresnelNoOp) Evaluate(cosThetaI float64) core.Vec3 { return core.Splat(1) }

// Refract computes the refracted direction of wi about normal n (both in
// the same hemisphere convention, n on the incident side) given the ratio
// eta = etaI/etaT. Returns ok=false on total internal reflection.
func Refract(wi, n core.Vec3, eta float64) (core.Vec3, bool) {
	cosThetaI := n.Dot(wi)
	sin2ThetaI := math.Max(0, 1-cosThetaI*cosThetaI)
	sin2ThetaT := eta * eta * sin2ThetaI
	if sin2ThetaT >= 1 {
		return core.Vec3{}, false
	}
	cosThetaT := math.Sqrt(1 - sin2ThetaT)
	wt := wi.Neg().Mul(eta).Add(n.Mul(eta*cosThetaI - cosThetaT))
	return wt, true
}

// Reflect computes the mirror reflection of wo about normal n.
func Reflect(wo, n core.Vec3) core.Vec3 {
	return wo.Neg().Add(n.Mul(2 * wo.Dot(n)))
}
