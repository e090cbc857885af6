package bsdf

import (
	"math"

	"github.com/voxelmade/pathtracer/pkg/core"
)

// MicrofacetReflection is a rough reflective lobe: a microfacet
// distribution of mirror facets, each weighted by a Fresnel term.
type MicrofacetReflection struct {
	R       core.Vec3
	Distrib MicrofacetDistribution
	Fresnel Fresnel
}

func (b MicrofacetReflection) F(wo, wi core.Vec3) core.Vec3 {
	cosThetaO := core.AbsCosTheta(wo)
	cosThetaI := core.AbsCosTheta(wi)
	wh := wi.Add(wo)
	if cosThetaI == 0 || cosThetaO == 0 || wh.IsBlack() {
		return core.Vec3{}
	}
	wh = wh.Normalize()
	whFaceForward := wh.FaceForward(core.Vec3{X: 0, Y: 0, Z: 1})
	fr := b.Fresnel.Evaluate(wi.Dot(whFaceForward))

	d := b.Distrib.D(wh)
	g := b.Distrib.G(wo, wi)
	return b.R.MulVec(fr).Mul(d * g / (4 * cosThetaI * cosThetaO))
}

func (b MicrofacetReflection) Sample(wo core.Vec3, u1, u2 float64) (core.Vec3, core.Vec3, float64, bool) {
	if wo.Z == 0 {
		return core.Vec3{}, core.Vec3{}, 0, false
	}
	wh := b.Distrib.SampleWh(wo, u1, u2)
	wi := Reflect(wo, wh)
	if !core.SameHemisphere(wo, wi) {
		return core.Vec3{}, core.Vec3{}, 0, false
	}
	pdf := b.Distrib.Pdf(wo, wh) / (4 * wo.Dot(wh))
	return wi, b.F(wo, wi), pdf, true
}

func (b MicrofacetReflection) Pdf(wo, wi core.Vec3) float64 {
	if !core.SameHemisphere(wo, wi) {
		return 0
	}
	wh := wo.Add(wi).Normalize()
	return b.Distrib.Pdf(wo, wh) / (4 * wo.Dot(wh))
}

func (b MicrofacetReflection) IsSpecular() bool { return false }

// MicrofacetTransmission is a rough transmissive lobe through a dielectric
// interface with indices EtaA (outside) and EtaB (inside).
type MicrofacetTransmission struct {
	T          core.Vec3
	Distrib    MicrofacetDistribution
	EtaA, EtaB float64
	Fresnel    FresnelDielectricFn
}

// NewMicrofacetTransmission builds a transmission lobe with its Fresnel
// term wired to the same EtaA/EtaB pair.
func NewMicrofacetTransmission(t core.Vec3, distrib MicrofacetDistribution, etaA, etaB float64) MicrofacetTransmission {
	return MicrofacetTransmission{T: t, Distrib: distrib, EtaA: etaA, EtaB: etaB, Fresnel: FresnelDielectricFn{EtaI: etaA, EtaT: etaB}}
}

func (b MicrofacetTransmission) F(wo, wi core.Vec3) core.Vec3 {
	if core.SameHemisphere(wo, wi) {
		return core.Vec3{}
	}

	cosThetaO := core.CosTheta(wo)
	cosThetaI := core.CosTheta(wi)
	if cosThetaI == 0 || cosThetaO == 0 {
		return core.Vec3{}
	}

	eta := b.EtaA / b.EtaB
	if cosThetaO > 0 {
		eta = b.EtaB / b.EtaA
	}
	wh := wo.Add(wi.Mul(eta)).Normalize()
	if wh.Z < 0 {
		wh = wh.Neg()
	}

	if wo.Dot(wh)*wi.Dot(wh) > 0 {
		return core.Vec3{}
	}

	fr := FresnelDielectric(wo.Dot(wh), b.EtaA, b.EtaB)
	sqrtDenom := wo.Dot(wh) + eta*wi.Dot(wh)
	factor := 1 / eta

	d := b.Distrib.D(wh)
	g := b.Distrib.G(wo, wi)
	numer := d * g * eta * eta * wi.AbsDot(wh) * wo.AbsDot(wh)
	denom := cosThetaI * cosThetaO * sqrtDenom * sqrtDenom
	return b.T.Mul((1 - fr) * math.Abs(numer/denom) * factor * factor)
}

func (b MicrofacetTransmission) Sample(wo core.Vec3, u1, u2 float64) (core.Vec3, core.Vec3, float64, bool) {
	if wo.Z == 0 {
		return core.Vec3{}, core.Vec3{}, 0, false
	}
	wh := b.Distrib.SampleWh(wo, u1, u2)
	if wo.Dot(wh) < 0 {
		return core.Vec3{}, core.Vec3{}, 0, false
	}

	eta := b.EtaA / b.EtaB
	if core.CosTheta(wo) < 0 {
		eta = b.EtaB / b.EtaA
	}
	wi, ok := Refract(wo, wh, eta)
	if !ok {
		return core.Vec3{}, core.Vec3{}, 0, false
	}
	pdf := b.Pdf(wo, wi)
	if pdf == 0 {
		return core.Vec3{}, core.Vec3{}, 0, false
	}
	return wi, b.F(wo, wi), pdf, true
}

func (b MicrofacetTransmission) Pdf(wo, wi core.Vec3) float64 {
	if core.SameHemisphere(wo, wi) {
		return 0
	}

	eta := b.EtaA / b.EtaB
	if core.CosTheta(wo) > 0 {
		eta = b.EtaB / b.EtaA
	}
	wh := wo.Add(wi.Mul(eta)).Normalize()

	if wo.Dot(wh)*wi.Dot(wh) > 0 {
		return 0
	}

	sqrtDenom := wo.Dot(wh) + eta*wi.Dot(wh)
	dwhDwi := math.Abs((eta * eta * wi.Dot(wh)) / (sqrtDenom * sqrtDenom))
	return b.Distrib.Pdf(wo, wh) * dwhDwi
}

func (b MicrofacetTransmission) IsSpecular() bool { return false }
