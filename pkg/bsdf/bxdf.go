package bsdf

import (
	"math"

	"github.com/voxelmade/pathtracer/pkg/core"
)

// BxDF is a single scattering lobe expressed entirely in local shading
// space: wo and wi both have N = +Z. Delta lobes (mirror, Fresnel-specular)
// report zero from F and Pdf and only produce energy through Sample.
type BxDF interface {
	F(wo, wi core.Vec3) core.Vec3
	Sample(wo core.Vec3, u1, u2 float64) (wi core.Vec3, f core.Vec3, pdf float64, ok bool)
	Pdf(wo, wi core.Vec3) float64
	IsSpecular() bool
}

// LambertianReflection is a perfectly diffuse lobe with reflectance R.
type LambertianReflection struct {
	R core.Vec3
}

func (b LambertianReflection) F(wo, wi core.Vec3) core.Vec3 {
	return b.R.Mul(core.InvPi)
}

func (b LambertianReflection) Sample(wo core.Vec3, u1, u2 float64) (core.Vec3, core.Vec3, float64, bool) {
	wi := core.CosineSampleHemisphere(u1, u2)
	if wo.Z < 0 {
		wi.Z = -wi.Z
	}
	pdf := b.Pdf(wo, wi)
	if pdf == 0 {
		return core.Vec3{}, core.Vec3{}, 0, false
	}
	return wi, b.F(wo, wi), pdf, true
}

func (b LambertianReflection) Pdf(wo, wi core.Vec3) float64 {
	if !core.SameHemisphere(wo, wi) {
		return 0
	}
	return core.CosineHemispherePdf(core.AbsCosTheta(wi))
}

func (b LambertianReflection) IsSpecular() bool { return false }

// SpecularReflection is an ideal mirror lobe tinted by R and weighted by a
// Fresnel term (FresnelNoOp for a plain mirror).
type SpecularReflection struct {
	R       core.Vec3
	Fresnel Fresnel
}

func (b SpecularReflection) F(wo, wi core.Vec3) core.Vec3 { return core.Vec3{} }
func (b SpecularReflection) Pdf(wo, wi core.Vec3) float64 { return 0 }
func (b SpecularReflection) IsSpecular() bool             { return true }

func (b SpecularReflection) Sample(wo core.Vec3, u1, u2 float64) (core.Vec3, core.Vec3, float64, bool) {
	wi := core.Vec3{X: -wo.X, Y: -wo.Y, Z: wo.Z}
	fr := b.Fresnel.Evaluate(core.CosTheta(wi))
	f := b.R.MulVec(fr).Div(core.AbsCosTheta(wi))
	return wi, f, 1, true
}

// FresnelSpecular models a smooth dielectric interface that both reflects
// and transmits, choosing one branch per sample with probability equal to
// the Fresnel reflectance.
type FresnelSpecular struct {
	R, T       core.Vec3
	EtaA, EtaB float64
}

func (b FresnelSpecular) F(wo, wi core.Vec3) core.Vec3 { return core.Vec3{} }
func (b FresnelSpecular) Pdf(wo, wi core.Vec3) float64 { return 0 }
func (b FresnelSpecular) IsSpecular() bool             { return true }

func (b FresnelSpecular) Sample(wo core.Vec3, u1, u2 float64) (core.Vec3, core.Vec3, float64, bool) {
	f := FresnelDielectric(core.CosTheta(wo), b.EtaA, b.EtaB)
	if u1 < f {
		wi := core.Vec3{X: -wo.X, Y: -wo.Y, Z: wo.Z}
		fv := b.R.Mul(f / core.AbsCosTheta(wi))
		return wi, fv, f, true
	}

	entering := core.CosTheta(wo) > 0
	etaI, etaT := b.EtaA, b.EtaB
	if !entering {
		etaI, etaT = b.EtaB, b.EtaA
	}

	n := core.Vec3{X: 0, Y: 0, Z: 1}
	if core.CosTheta(wo) < 0 {
		n = n.Neg()
	}
	wt, ok := Refract(wo, n, etaI/etaT)
	if !ok {
		return core.Vec3{}, core.Vec3{}, 0, false
	}

	ft := b.T.Mul(1 - f)
	ft = ft.Mul((etaI * etaI) / (etaT * etaT))
	ft = ft.Div(core.AbsCosTheta(wt))
	return wt, ft, 1 - f, true
}

// ModifiedPhong is an empirical glossy reflection lobe, kept for shapes of
// material that want a closed-form specular highlight without the cost of
// a full microfacet distribution.
type ModifiedPhong struct {
	Ks       core.Vec3
	Exponent float64
}

func (b ModifiedPhong) F(wo, wi core.Vec3) core.Vec3 {
	if !core.SameHemisphere(wo, wi) {
		return core.Vec3{}
	}
	r := core.Vec3{X: -wo.X, Y: -wo.Y, Z: wo.Z}
	cosAlpha := core.Clamp(r.Dot(wi), 0, 1)
	norm := (b.Exponent + 2) * core.Inv2Pi
	return b.Ks.Mul(norm * pow(cosAlpha, b.Exponent))
}

func (b ModifiedPhong) Pdf(wo, wi core.Vec3) float64 {
	if !core.SameHemisphere(wo, wi) {
		return 0
	}
	r := core.Vec3{X: -wo.X, Y: -wo.Y, Z: wo.Z}
	cosAlpha := math.Max(0, r.Dot(wi))
	return (b.Exponent + 1) * pow(cosAlpha, b.Exponent) * core.Inv2Pi
}

func (b ModifiedPhong) IsSpecular() bool { return false }

// Sample draws a direction from the Phong lobe centered on wr, the mirror
// reflection of wo about the local normal: cosθ = u1^(1/(n+1)), φ = 2π·u2
// around wr taken in the upper hemisphere, then flip onto wo's own
// hemisphere when wo.Z < 0.
func (b ModifiedPhong) Sample(wo core.Vec3, u1, u2 float64) (core.Vec3, core.Vec3, float64, bool) {
	phi := core.TwoPi * u2
	cosTheta := math.Pow(u1, 1/(b.Exponent+1))
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))
	local := core.Vec3{X: math.Cos(phi) * sinTheta, Y: math.Sin(phi) * sinTheta, Z: cosTheta}

	r := core.Vec3{X: -wo.X, Y: -wo.Y, Z: math.Abs(wo.Z)}
	wi := core.NewFrame(r).ToWorld(local)
	if wo.Z < 0 {
		wi.Z = -wi.Z
	}

	pdf := b.Pdf(wo, wi)
	if pdf == 0 {
		return core.Vec3{}, core.Vec3{}, 0, false
	}
	return wi, b.F(wo, wi), pdf, true
}

func pow(base, exp float64) float64 {
	if base <= 0 {
		return 0
	}
	return math.Pow(base, exp)
}
