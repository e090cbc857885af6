package lights

import "github.com/voxelmade/pathtracer/pkg/core"

// Directional is a delta-direction infinite light, simulated as a distant
// disk of radius worldRadius emitting irradiance uniformly along WorldDir.
type Directional struct {
	Irradiance core.Vec3
	WorldDir   core.Vec3

	worldRadius float64
	power       core.Vec3
}

// NewDirectional creates a directional light.
func NewDirectional(irradiance, worldDir core.Vec3) *Directional {
	return &Directional{Irradiance: irradiance, WorldDir: worldDir.Normalize()}
}

func (l *Directional) Flags() Flags { return DeltaDirection }

func (l *Directional) Preprocess(worldBound core.AABB) {
	_, radius := worldBound.BoundingSphere()
	l.worldRadius = radius
	area := core.Pi * radius * radius
	l.power = l.Irradiance.Mul(area)
}

func (l *Directional) Power() core.Vec3 { return l.power }

func (l *Directional) Le(ray core.Ray) core.Vec3 { return core.Vec3{} }

func (l *Directional) SampleLi(refP, refN core.Vec3, u1, u2 float64) Sample {
	wi := l.WorldDir.Neg()
	pos := refP.Add(wi.Mul(2 * l.worldRadius))
	return Sample{Pos: pos, Wi: wi, Pdf: 1, Li: l.Irradiance}
}

func (l *Directional) PdfLi(refP, refN, wi core.Vec3) float64 { return 0 }
