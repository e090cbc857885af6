package geometry

import (
	"math"

	"github.com/voxelmade/pathtracer/pkg/core"
)

// Sphere is a shape centered at Center with radius Radius. Its direction
// sampling distinguishes a reference point inside the sphere (falls back to
// area-measure sampling, converted to solid angle using the reference
// point's own normal) from one outside (uniform sampling within the
// subtended cone, with a small-angle Taylor fallback).
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a sphere shape.
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

func (s *Sphere) WorldBounds() core.AABB {
	half := core.Splat(s.Radius)
	return core.NewAABB(s.Center.Sub(half), s.Center.Add(half))
}

func (s *Sphere) Area() float64 {
	return 4 * core.Pi * s.Radius * s.Radius
}

func (s *Sphere) Intersect(ray core.Ray, tMin, tMax float64) (Intersection, bool) {
	oc := ray.Origin.Sub(s.Center)
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius
	discriminant := halfB*halfB - a*c
	if discriminant <= 0 {
		return Intersection{}, false
	}

	root := math.Sqrt(discriminant)
	t := (-halfB - root) / a
	if t <= tMin || t >= tMax {
		t = (-halfB + root) / a
		if t <= tMin || t >= tMax {
			return Intersection{}, false
		}
	}

	p := ray.At(t)
	n := p.Sub(s.Center).Normalize()
	return Intersection{P: p, N: n, Wo: ray.Direction.Neg(), T: t}, true
}

func (s *Sphere) SamplePosition(u1, u2 float64) (p, n core.Vec3, pdf float64) {
	dir := core.UniformSampleSphere(u1, u2)
	p = s.Center.Add(dir.Mul(s.Radius))
	n = dir.Normalize()
	pdf = 1 / s.Area()
	return
}

// insideSphere reports whether a reference point lies inside (or on) the
// sphere, which selects the direction-sampling branch.
func (s *Sphere) insideSphere(refP core.Vec3) bool {
	return refP.Sub(s.Center).LengthSquared() <= s.Radius*s.Radius
}

// SampleDirection resolves the spec's sphere open question: when refP is
// inside the sphere, the area-measure sample is converted to a solid-angle
// pdf using the *reference point's own normal* (refN), not the sampled
// point's normal that defaultSampleDirection uses for the other shapes.
func (s *Sphere) SampleDirection(refP, refN core.Vec3, u1, u2 float64) (core.Vec3, float64, bool) {
	if s.insideSphere(refP) {
		p, _, areaPdf := s.SamplePosition(u1, u2)
		d := p.Sub(refP)
		distSq := d.LengthSquared()
		if distSq == 0 {
			return core.Vec3{}, 0, false
		}
		wi := d.Normalize()
		denom := refN.AbsDot(wi.Neg())
		if denom == 0 {
			return core.Vec3{}, 0, false
		}
		pdf := areaPdf * distSq / denom
		if isInfOrNaN(pdf) {
			pdf = 0
		}
		return wi, pdf, true
	}

	dist := refP.Sub(s.Center).Length()
	invDist := 1 / dist

	sinThetaMax := s.Radius * invDist
	sinThetaMaxSq := sinThetaMax * sinThetaMax
	invSinThetaMax := 1 / sinThetaMax
	cosThetaMax := math.Sqrt(math.Max(0, 1-sinThetaMaxSq))

	cosTheta := (cosThetaMax-1)*u1 + 1
	sinThetaSq := 1 - cosTheta*cosTheta

	const sinMaxAngleSq = 0.00068523 // sin^2(1.5 degrees)
	if sinThetaMaxSq < sinMaxAngleSq {
		sinThetaSq = sinThetaMaxSq * u1
		cosTheta = math.Sqrt(1 - sinThetaSq)
	}

	cosAlpha := sinThetaSq*invSinThetaMax + cosTheta*math.Sqrt(math.Max(0, 1-sinThetaSq*invSinThetaMax*invSinThetaMax))
	sinAlpha := math.Sqrt(math.Max(0, 1-cosAlpha*cosAlpha))
	phi := u2 * core.TwoPi

	wc := s.Center.Sub(refP).Mul(invDist) // points from ref toward center
	frame := core.NewFrame(wc)

	worldNormal := sphericalDirection(sinAlpha, cosAlpha, phi, frame.S.Neg(), frame.T.Neg(), frame.N.Neg())
	worldPosition := s.Center.Add(worldNormal.Mul(s.Radius))

	wi := worldPosition.Sub(refP).Normalize()
	pdf := core.UniformConePdf(cosThetaMax)
	return wi, pdf, true
}

// PdfDirection mirrors SampleDirection's inside/outside split, including
// the inside branch's conversion through refN.
func (s *Sphere) PdfDirection(refP, refN, wi core.Vec3) float64 {
	if s.insideSphere(refP) {
		isect, ok := s.Intersect(core.NewRay(refP, wi), core.DefaultTMin, core.Infinity)
		if !ok {
			return 0
		}
		denom := refN.AbsDot(wi.Neg()) * s.Area()
		if denom == 0 {
			return 0
		}
		pdf := isect.P.Sub(refP).LengthSquared() / denom
		if isInfOrNaN(pdf) {
			pdf = 0
		}
		return pdf
	}

	distSq := refP.Sub(s.Center).LengthSquared()
	sinThetaMaxSq := s.Radius * s.Radius / distSq
	cosThetaMax := math.Sqrt(math.Max(0, 1-sinThetaMaxSq))
	return core.UniformConePdf(cosThetaMax)
}

func sphericalDirection(sinTheta, cosTheta, phi float64, x, y, z core.Vec3) core.Vec3 {
	return x.Mul(sinTheta * math.Cos(phi)).Add(y.Mul(sinTheta * math.Sin(phi))).Add(z.Mul(cosTheta))
}
