package lights

import (
	"math"

	"github.com/voxelmade/pathtracer/pkg/core"
)

// Environment is a constant-radiance infinite light, simulated as a
// distant sphere of radius worldRadius surrounding the whole scene.
type Environment struct {
	Radiance core.Vec3

	worldRadius float64
	power       core.Vec3
}

// NewEnvironment creates a constant environment light.
func NewEnvironment(radiance core.Vec3) *Environment {
	return &Environment{Radiance: radiance}
}

func (l *Environment) Flags() Flags { return Infinite }

func (l *Environment) Preprocess(worldBound core.AABB) {
	_, radius := worldBound.BoundingSphere()
	l.worldRadius = radius
	area := core.Pi * radius * radius
	l.power = l.Radiance.Mul(area)
}

func (l *Environment) Power() core.Vec3 { return l.power }

func (l *Environment) Le(ray core.Ray) core.Vec3 { return l.Radiance }

func (l *Environment) SampleLi(refP, refN core.Vec3, u1, u2 float64) Sample {
	theta := u2 * core.Pi
	phi := u1 * core.TwoPi
	cosTheta, sinTheta := math.Cos(theta), math.Sin(theta)
	sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)

	wi := core.NewVec3(sinTheta*cosPhi, sinTheta*sinPhi, cosTheta)
	pos := refP.Add(wi.Mul(2 * l.worldRadius))

	pdf := 0.0
	if sinTheta != 0 {
		pdf = 1 / (2 * core.Pi * core.Pi * sinTheta)
	}

	return Sample{Pos: pos, Wi: wi, Pdf: pdf, Li: l.Radiance}
}

func (l *Environment) PdfLi(refP, refN, wi core.Vec3) float64 {
	theta := core.SphericalTheta(wi)
	sinTheta := math.Sin(theta)
	if sinTheta == 0 {
		return 0
	}
	return 1 / (2 * core.Pi * core.Pi * sinTheta)
}
