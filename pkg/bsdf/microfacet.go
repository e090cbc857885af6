package bsdf

import (
	"math"

	"github.com/voxelmade/pathtracer/pkg/core"
)

// MicrofacetDistribution is a microfacet normal distribution function: it
// knows the density D(wh) of microfacet normals, the Smith masking term
// Lambda(w), and how to importance-sample normals for BxDF::Sample_f.
type MicrofacetDistribution interface {
	D(wh core.Vec3) float64
	Lambda(w core.Vec3) float64
	G1(w core.Vec3) float64
	G(wo, wi core.Vec3) float64
	SampleWh(wo core.Vec3, u1, u2 float64) core.Vec3
	Pdf(wo, wh core.Vec3) float64
}

// distBase carries the visible-area-vs-full-distribution switch used by Pdf.
// The shared G1/G/Pdf formulas in terms of D and Lambda are the g1, g and
// pdfFromDist helpers below.
type distBase struct {
	sampleVisibleArea bool
}

func g1(d interface{ Lambda(core.Vec3) float64 }, w core.Vec3) float64 {
	return 1 / (1 + d.Lambda(w))
}

func g(d interface{ Lambda(core.Vec3) float64 }, wo, wi core.Vec3) float64 {
	return 1 / (1 + d.Lambda(wo) + d.Lambda(wi))
}

func pdfFromDist(d MicrofacetDistribution, sampleVisibleArea bool, wo, wh core.Vec3) float64 {
	if sampleVisibleArea {
		return d.D(wh) * d.G1(wo) * wo.AbsDot(wh) / core.AbsCosTheta(wo)
	}
	return d.D(wh) * core.AbsCosTheta(wh)
}

// BeckmannDistribution is the Beckmann-Spizzichino microfacet distribution.
type BeckmannDistribution struct {
	distBase
	AlphaX, AlphaY float64
}

// NewBeckmannDistribution builds a Beckmann distribution, floor-clamping
// alpha values to avoid a degenerate delta distribution at alpha=0.
func NewBeckmannDistribution(alphaX, alphaY float64, sampleVisibleArea bool) *BeckmannDistribution {
	return &BeckmannDistribution{
		distBase: distBase{sampleVisibleArea: sampleVisibleArea},
		AlphaX:   math.Max(0.001, alphaX),
		AlphaY:   math.Max(0.001, alphaY),
	}
}

// BeckmannRoughnessToAlpha maps a perceptually-linear roughness in [0,1] to
// the Beckmann alpha parameter via the standard log-polynomial fit.
func BeckmannRoughnessToAlpha(roughness float64) float64 {
	roughness = math.Max(roughness, 1e-3)
	x := math.Log(roughness)
	return 1.62142 + 0.819955*x + 0.1734*x*x + 0.0171201*x*x*x + 0.000640711*x*x*x*x
}

func (d *BeckmannDistribution) D(wh core.Vec3) float64 {
	tan2Theta := core.Tan2Theta(wh)
	if math.IsInf(tan2Theta, 1) {
		return 0
	}
	cos4Theta := core.Cos2Theta(wh) * core.Cos2Theta(wh)
	e := math.Exp(-tan2Theta * (cosPhi2(wh)/(d.AlphaX*d.AlphaX) + sinPhi2(wh)/(d.AlphaY*d.AlphaY)))
	return e / (core.Pi * d.AlphaX * d.AlphaY * cos4Theta)
}

func (d *BeckmannDistribution) Lambda(w core.Vec3) float64 {
	absTanTheta := math.Abs(core.TanTheta(w))
	if math.IsInf(absTanTheta, 1) {
		return 0
	}
	alpha := math.Sqrt(cosPhi2(w)*d.AlphaX*d.AlphaX + sinPhi2(w)*d.AlphaY*d.AlphaY)
	a := 1 / (alpha * absTanTheta)
	if a >= 1.6 {
		return 0
	}
	return (1 - 1.259*a + 0.396*a*a) / (3.535*a + 2.181*a*a)
}

func (d *BeckmannDistribution) G1(w core.Vec3) float64     { return g1(d, w) }
func (d *BeckmannDistribution) G(wo, wi core.Vec3) float64 { return g(d, wo, wi) }

func (d *BeckmannDistribution) SampleWh(wo core.Vec3, u1, u2 float64) core.Vec3 {
	if !d.sampleVisibleArea {
		var tan2Theta, phi float64
		if d.AlphaX == d.AlphaY {
			logSample := math.Log(1 - u1)
			tan2Theta = -d.AlphaX * d.AlphaX * logSample
			phi = u2 * core.TwoPi
		} else {
			logSample := math.Log(1 - u1)
			phi = math.Atan(d.AlphaY / d.AlphaX * math.Tan(core.TwoPi*u2+0.5*core.Pi))
			if u2 > 0.5 {
				phi += core.Pi
			}
			sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)
			ax2, ay2 := d.AlphaX*d.AlphaX, d.AlphaY*d.AlphaY
			tan2Theta = -logSample / (cosPhi*cosPhi/ax2 + sinPhi*sinPhi/ay2)
		}
		cosTheta := 1 / math.Sqrt(1+tan2Theta)
		sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))
		wh := sphericalDirectionLocal(sinTheta, cosTheta, phi)
		if !core.SameHemisphere(wo, wh) {
			wh = wh.Neg()
		}
		return wh
	}

	flip := wo.Z < 0
	woIn := wo
	if flip {
		woIn = wo.Neg()
	}
	wh := beckmannSample(woIn, d.AlphaX, d.AlphaY, u1, u2)
	if flip {
		wh = wh.Neg()
	}
	return wh
}

func (d *BeckmannDistribution) Pdf(wo, wh core.Vec3) float64 {
	return pdfFromDist(d, d.sampleVisibleArea, wo, wh)
}

// TrowbridgeReitzDistribution is the GGX microfacet distribution.
type TrowbridgeReitzDistribution struct {
	distBase
	AlphaX, AlphaY float64
}

// NewTrowbridgeReitzDistribution builds a GGX distribution.
func NewTrowbridgeReitzDistribution(alphaX, alphaY float64, sampleVisibleArea bool) *TrowbridgeReitzDistribution {
	return &TrowbridgeReitzDistribution{
		distBase: distBase{sampleVisibleArea: sampleVisibleArea},
		AlphaX:   math.Max(0.001, alphaX),
		AlphaY:   math.Max(0.001, alphaY),
	}
}

// TrowbridgeReitzRoughnessToAlpha maps perceptually-linear roughness to the
// GGX alpha parameter, via the same log-polynomial fit used for Beckmann.
func TrowbridgeReitzRoughnessToAlpha(roughness float64) float64 {
	roughness = math.Max(roughness, 1e-3)
	x := math.Log(roughness)
	return 1.62142 + 0.819955*x + 0.1734*x*x + 0.0171201*x*x*x + 0.000640711*x*x*x*x
}

func (d *TrowbridgeReitzDistribution) D(wh core.Vec3) float64 {
	tan2Theta := core.Tan2Theta(wh)
	if math.IsInf(tan2Theta, 1) {
		return 0
	}
	cos4Theta := core.Cos2Theta(wh) * core.Cos2Theta(wh)
	e := (cosPhi2(wh)/(d.AlphaX*d.AlphaX) + sinPhi2(wh)/(d.AlphaY*d.AlphaY)) * tan2Theta
	return 1 / (core.Pi * d.AlphaX * d.AlphaY * cos4Theta * (1 + e) * (1 + e))
}

func (d *TrowbridgeReitzDistribution) Lambda(w core.Vec3) float64 {
	absTanTheta := math.Abs(core.TanTheta(w))
	if math.IsInf(absTanTheta, 1) {
		return 0
	}
	alpha := math.Sqrt(cosPhi2(w)*d.AlphaX*d.AlphaX + sinPhi2(w)*d.AlphaY*d.AlphaY)
	alpha2Tan2Theta := (alpha * absTanTheta) * (alpha * absTanTheta)
	return (-1 + math.Sqrt(1+alpha2Tan2Theta)) / 2
}

func (d *TrowbridgeReitzDistribution) G1(w core.Vec3) float64     { return g1(d, w) }
func (d *TrowbridgeReitzDistribution) G(wo, wi core.Vec3) float64 { return g(d, wo, wi) }

func (d *TrowbridgeReitzDistribution) SampleWh(wo core.Vec3, u1, u2 float64) core.Vec3 {
	if !d.sampleVisibleArea {
		cosTheta, phi := 0.0, core.TwoPi*u2
		if d.AlphaX == d.AlphaY {
			tanTheta2 := d.AlphaX * d.AlphaX * u1 / (1 - u1)
			cosTheta = 1 / math.Sqrt(1+tanTheta2)
		} else {
			phi = math.Atan(d.AlphaY / d.AlphaX * math.Tan(core.TwoPi*u2+0.5*core.Pi))
			if u2 > 0.5 {
				phi += core.Pi
			}
			sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)
			ax2, ay2 := d.AlphaX*d.AlphaX, d.AlphaY*d.AlphaY
			alpha2 := 1 / (cosPhi*cosPhi/ax2 + sinPhi*sinPhi/ay2)
			tanTheta2 := alpha2 * u1 / (1 - u1)
			cosTheta = 1 / math.Sqrt(1+tanTheta2)
		}
		sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))
		wh := sphericalDirectionLocal(sinTheta, cosTheta, phi)
		if !core.SameHemisphere(wo, wh) {
			wh = wh.Neg()
		}
		return wh
	}

	flip := wo.Z < 0
	woIn := wo
	if flip {
		woIn = wo.Neg()
	}
	wh := trowbridgeReitzSample(woIn, d.AlphaX, d.AlphaY, u1, u2)
	if flip {
		wh = wh.Neg()
	}
	return wh
}

func (d *TrowbridgeReitzDistribution) Pdf(wo, wh core.Vec3) float64 {
	return pdfFromDist(d, d.sampleVisibleArea, wo, wh)
}

func cosPhi2(w core.Vec3) float64 { c := core.CosPhi(w); return c * c }
func sinPhi2(w core.Vec3) float64 { s := core.SinPhi(w); return s * s }

func sphericalDirectionLocal(sinTheta, cosTheta, phi float64) core.Vec3 {
	return core.Vec3{X: sinTheta * math.Cos(phi), Y: sinTheta * math.Sin(phi), Z: cosTheta}
}

// beckmannSample11 draws a slope pair from the Beckmann P22 distribution at
// normal incidence via numerical CDF inversion, per Heitz & d'Eon's visible
// normal sampling technique.
func beckmannSample11(cosThetaI, u1, u2 float64) (slopeX, slopeY float64) {
	if cosThetaI > 0.9999 {
		r := math.Sqrt(-math.Log(1 - u1))
		phi := core.TwoPi * u2
		return r * math.Cos(phi), r * math.Sin(phi)
	}

	sinThetaI := math.Sqrt(math.Max(0, 1-cosThetaI*cosThetaI))
	tanThetaI := sinThetaI / cosThetaI
	cotThetaI := 1 / tanThetaI

	a, c := -1.0, erf(cotThetaI)
	sampleX := math.Max(u1, 1e-6)

	thetaI := math.Acos(cosThetaI)
	fit := 1 + thetaI*(-0.876+thetaI*(0.4265-0.0594*thetaI))
	b := c - (1+c)*math.Pow(1-sampleX, fit)

	const sqrtPiInv = 1 / 1.7724538509055159
	normalization := 1 / (1 + c + sqrtPiInv*tanThetaI*math.Exp(-cotThetaI*cotThetaI))

	for it := 0; it < 10; it++ {
		if !(b >= a && b <= c) {
			b = 0.5 * (a + c)
		}
		invErf := erfInv(b)
		value := normalization*(1+b+sqrtPiInv*tanThetaI*math.Exp(-invErf*invErf)) - sampleX
		derivative := normalization * (1 - invErf*tanThetaI)
		if math.Abs(value) < 1e-5 {
			break
		}
		if value > 0 {
			c = b
		} else {
			a = b
		}
		b -= value / derivative
	}

	slopeX = erfInv(b)
	slopeY = erfInv(2*math.Max(u2, 1e-6) - 1)
	return
}

func beckmannSample(wi core.Vec3, alphaX, alphaY, u1, u2 float64) core.Vec3 {
	wiStretched := core.Vec3{X: alphaX * wi.X, Y: alphaY * wi.Y, Z: wi.Z}.Normalize()

	slopeX, slopeY := beckmannSample11(core.CosTheta(wiStretched), u1, u2)

	cosPhi, sinPhi := core.CosPhi(wiStretched), core.SinPhi(wiStretched)
	tmp := cosPhi*slopeX - sinPhi*slopeY
	slopeY = sinPhi*slopeX + cosPhi*slopeY
	slopeX = tmp

	slopeX *= alphaX
	slopeY *= alphaY

	return core.Vec3{X: -slopeX, Y: -slopeY, Z: 1}.Normalize()
}

func trowbridgeReitzSample11(cosTheta, u1, u2 float64) (slopeX, slopeY float64) {
	if cosTheta > 0.9999 {
		r := math.Sqrt(u1 / (1 - u1))
		phi := core.TwoPi * u2
		return r * math.Cos(phi), r * math.Sin(phi)
	}

	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))
	tanTheta := sinTheta / cosTheta
	a := 1 / tanTheta
	g1 := 2 / (1 + math.Sqrt(1+1/(a*a)))

	aCoef := 2*u1/g1 - 1
	tmp := 1 / (aCoef*aCoef - 1)
	if tmp > 1e10 {
		tmp = 1e10
	}
	bCoef := tanTheta
	d := math.Sqrt(math.Max(bCoef*bCoef*tmp*tmp-(aCoef*aCoef-bCoef*bCoef)*tmp, 0))
	slopeX1 := bCoef*tmp - d
	slopeX2 := bCoef*tmp + d
	if aCoef < 0 || slopeX2 > 1/tanTheta {
		slopeX = slopeX1
	} else {
		slopeX = slopeX2
	}

	var s float64
	if u2 > 0.5 {
		s = 1
		u2 = 2 * (u2 - 0.5)
	} else {
		s = -1
		u2 = 2 * (0.5 - u2)
	}
	z := (u2 * (u2*(u2*0.27385-0.73369) + 0.46341)) /
		(u2*(u2*(u2*0.093073+0.309420)-1.0) + 0.597999)
	slopeY = s * z * math.Sqrt(1+slopeX*slopeX)
	return
}

func trowbridgeReitzSample(wi core.Vec3, alphaX, alphaY, u1, u2 float64) core.Vec3 {
	wiStretched := core.Vec3{X: alphaX * wi.X, Y: alphaY * wi.Y, Z: wi.Z}.Normalize()

	slopeX, slopeY := trowbridgeReitzSample11(core.CosTheta(wiStretched), u1, u2)

	cosPhi, sinPhi := core.CosPhi(wiStretched), core.SinPhi(wiStretched)
	tmp := cosPhi*slopeX - sinPhi*slopeY
	slopeY = sinPhi*slopeX + cosPhi*slopeY
	slopeX = tmp

	slopeX *= alphaX
	slopeY *= alphaY

	return core.Vec3{X: -slopeX, Y: -slopeY, Z: 1}.Normalize()
}

// erf and erfInv are the numerical approximations the visible-normal
// sampling inversion relies on; neither needs more precision than a
// renderer's importance sampling actually consumes.
func erf(x float64) float64 {
	const a1, a2, a3, a4, a5, p = 0.254829592, -0.284496736, 1.421413741, -1.453152027, 1.061405429, 0.3275911
	sign := 1.0
	if x < 0 {
		sign = -1
	}
	x = math.Abs(x)
	t := 1 / (1 + p*x)
	y := 1 - (((((a5*t+a4)*t)+a3)*t+a2)*t+a1)*t*math.Exp(-x*x)
	return sign * y
}

func erfInv(x float64) float64 {
	x = core.Clamp(x, -0.99999, 0.99999)
	w := -math.Log((1 - x) * (1 + x))
	var p float64
	if w < 5 {
		w -= 2.5
		p = 2.81022636e-08
		p = 3.43273939e-07 + p*w
		p = -3.5233877e-06 + p*w
		p = -4.39150654e-06 + p*w
		p = 0.00021858087 + p*w
		p = -0.00125372503 + p*w
		p = -0.00417768164 + p*w
		p = 0.246640727 + p*w
		p = 1.50140941 + p*w
	} else {
		w = math.Sqrt(w) - 3
		p = -0.000200214257
		p = 0.000100950558 + p*w
		p = 0.00134934322 + p*w
		p = -0.00367342844 + p*w
		p = 0.00573950773 + p*w
		p = -0.0076224613 + p*w
		p = 0.00943887047 + p*w
		p = 1.00167406 + p*w
		p = 2.83297682 + p*w
	}
	return p * x
}
