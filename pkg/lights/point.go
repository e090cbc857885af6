package lights

import "github.com/voxelmade/pathtracer/pkg/core"

// Point is a delta-position light radiating intensity uniformly in all
// directions from a fixed world position.
type Point struct {
	WorldPos  core.Vec3
	Intensity core.Vec3
}

// NewPoint creates a point light.
func NewPoint(worldPos, intensity core.Vec3) *Point {
	return &Point{WorldPos: worldPos, Intensity: intensity}
}

func (l *Point) Flags() Flags { return DeltaPosition }

func (l *Point) Preprocess(worldBound core.AABB) {}

func (l *Point) Power() core.Vec3 { return l.Intensity.Mul(4 * core.Pi) }

func (l *Point) Le(ray core.Ray) core.Vec3 { return core.Vec3{} }

func (l *Point) SampleLi(refP, refN core.Vec3, u1, u2 float64) Sample {
	d := l.WorldPos.Sub(refP)
	distSq := d.LengthSquared()
	wi := d.Normalize()
	li := l.Intensity
	if distSq > 0 {
		li = l.Intensity.Div(distSq)
	}
	return Sample{Pos: l.WorldPos, Wi: wi, Pdf: 1, Li: li}
}

func (l *Point) PdfLi(refP, refN, wi core.Vec3) float64 { return 0 }
