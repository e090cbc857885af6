package geometry

import (
	"math"

	"github.com/voxelmade/pathtracer/pkg/core"
)

// Disk is a flat circular shape lying in the plane through Center
// perpendicular to Normal.
type Disk struct {
	Center core.Vec3
	Normal core.Vec3
	Radius float64

	frame core.Frame
}

// NewDisk creates a disk shape.
func NewDisk(center, normal core.Vec3, radius float64) *Disk {
	n := normal.Normalize()
	return &Disk{Center: center, Normal: n, Radius: radius, frame: core.NewFrame(n)}
}

func (d *Disk) WorldBounds() core.AABB {
	rb := d.frame.S.Mul(d.Radius)
	rt := d.frame.T.Mul(d.Radius)
	b := core.NewAABB(d.Center.Add(rb).Add(rt), d.Center.Add(rb).Sub(rt))
	b = b.Expand(d.Center.Sub(rb).Sub(rt))
	b = b.Expand(d.Center.Sub(rb).Add(rt))
	return b
}

func (d *Disk) Area() float64 { return core.Pi * d.Radius * d.Radius }

func (d *Disk) Intersect(ray core.Ray, tMin, tMax float64) (Intersection, bool) {
	denom := ray.Direction.Dot(d.Normal)
	if math.Abs(denom) < 1e-9 {
		return Intersection{}, false
	}

	op := d.Center.Sub(ray.Origin)
	t := d.Normal.Dot(op) / denom
	if t <= tMin || t >= tMax {
		return Intersection{}, false
	}

	p := ray.At(t)
	if p.Sub(d.Center).Length() > d.Radius {
		return Intersection{}, false
	}

	return Intersection{P: p, N: d.Normal, Wo: ray.Direction.Neg(), T: t}, true
}

func (d *Disk) SamplePosition(u1, u2 float64) (p, n core.Vec3, pdf float64) {
	x, y := core.ConcentricSampleDisk(u1, u2)
	p = d.Center.Add(d.frame.S.Mul(d.Radius * x)).Add(d.frame.T.Mul(d.Radius * y))
	n = d.Normal
	pdf = 1 / d.Area()
	return
}

func (d *Disk) SampleDirection(refP, refN core.Vec3, u1, u2 float64) (core.Vec3, float64, bool) {
	return defaultSampleDirection(d, refP, u1, u2)
}

func (d *Disk) PdfDirection(refP, refN, wi core.Vec3) float64 {
	return defaultPdfDirection(d, refP, refN, wi)
}
