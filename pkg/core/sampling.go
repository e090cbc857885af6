package core

import "math"

// This file collects the Monte Carlo sampling-distribution helpers shared by
// the BSDF and light packages: mapping a pair of uniform [0,1) numbers to a
// direction or point on a canonical domain, plus the matching density. The
// formulas follow the standard 2D-sampling-with-multidimensional-transforms
// derivations used by the reference renderer's sampling routines.

// ConcentricSampleDisk maps (u,v) in [0,1)^2 to a point in the unit disk
// using Shirley's concentric mapping, which avoids the distortion a naive
// polar mapping introduces near the disk's center.
func ConcentricSampleDisk(u, v float64) (float64, float64) {
	ox := 2*u - 1
	oy := 2*v - 1
	if ox == 0 && oy == 0 {
		return 0, 0
	}

	var radius, theta float64
	if math.Abs(ox) > math.Abs(oy) {
		radius = ox
		theta = PiOver4 * (oy / ox)
	} else {
		radius = oy
		theta = PiOver2 - PiOver4*(ox/oy)
	}
	return radius * math.Cos(theta), radius * math.Sin(theta)
}

// CosineSampleHemisphere draws a direction in the local +Z hemisphere with
// density cos(theta)/pi, the optimal importance-sampling distribution for a
// Lambertian lobe.
func CosineSampleHemisphere(u, v float64) Vec3 {
	x, y := ConcentricSampleDisk(u, v)
	z := math.Sqrt(math.Max(0, 1-x*x-y*y))
	return Vec3{X: x, Y: y, Z: z}
}

// CosineHemispherePdf returns the density of CosineSampleHemisphere at the
// given cosine.
func CosineHemispherePdf(cosTheta float64) float64 {
	return cosTheta * InvPi
}

// UniformSampleSphere draws a direction uniformly over the full sphere.
func UniformSampleSphere(u, v float64) Vec3 {
	z := 1 - 2*u
	r := math.Sqrt(math.Max(0, 1-z*z))
	phi := TwoPi * v
	return Vec3{X: r * math.Cos(phi), Y: r * math.Sin(phi), Z: z}
}

// UniformSpherePdf returns the density of UniformSampleSphere: 1/4pi.
func UniformSpherePdf() float64 { return Inv4Pi }

// UniformSampleCone draws a direction within a cone of half-angle
// arccos(cosThetaMax), centered on local +Z.
func UniformSampleCone(u, v, cosThetaMax float64) Vec3 {
	cosTheta := (1-u)*1 + u*cosThetaMax
	sinTheta := math.Sqrt(1 - cosTheta*cosTheta)
	phi := v * TwoPi
	return Vec3{X: math.Cos(phi) * sinTheta, Y: math.Sin(phi) * sinTheta, Z: cosTheta}
}

// UniformConePdf returns the density of UniformSampleCone.
func UniformConePdf(cosThetaMax float64) float64 {
	return 1 / (TwoPi * (1 - cosThetaMax))
}

// UniformSampleTriangle draws barycentric coordinates (b0, b1) uniformly
// over a triangle; b2 = 1 - b0 - b1.
func UniformSampleTriangle(u, v float64) (float64, float64) {
	su0 := math.Sqrt(u)
	return 1 - su0, v * su0
}
