package lights

import "github.com/voxelmade/pathtracer/pkg/core"

// AreaLight wraps a shape with a constant two-sided-cutoff emission: a
// point on the shape emits Radiance toward directions on the side its
// normal faces, and nothing on the other side.
type AreaLight struct {
	Radiance core.Vec3
	Shape    AreaShape

	power core.Vec3
}

// NewAreaLight creates an area light bound to the given shape.
func NewAreaLight(radiance core.Vec3, shape AreaShape) *AreaLight {
	l := &AreaLight{Radiance: radiance, Shape: shape}
	l.power = radiance.Mul(shape.Area() * core.Pi)
	return l
}

func (l *AreaLight) Flags() Flags { return Area }

func (l *AreaLight) Preprocess(worldBound core.AABB) {}

func (l *AreaLight) Power() core.Vec3 { return l.power }

func (l *AreaLight) Le(ray core.Ray) core.Vec3 { return core.Vec3{} }

// L returns the emitted radiance of a point on the light's surface with
// outward normal n, seen along direction wo.
func (l *AreaLight) L(n, wo core.Vec3) core.Vec3 {
	if n.Dot(wo) > 0 {
		return l.Radiance
	}
	return core.Vec3{}
}

func (l *AreaLight) SampleLi(refP, refN core.Vec3, u1, u2 float64) Sample {
	wi, pdf, ok := l.Shape.SampleDirection(refP, refN, u1, u2)
	if !ok || pdf == 0 {
		return Sample{}
	}

	ray := core.NewRay(refP, wi)
	isect, hit := l.Shape.Intersect(ray, ray.TMin, core.Infinity)
	if !hit {
		return Sample{}
	}

	return Sample{Pos: isect.P, Wi: wi, Pdf: pdf, Li: l.L(isect.N, wi.Neg())}
}

func (l *AreaLight) PdfLi(refP, refN, wi core.Vec3) float64 {
	return l.Shape.PdfDirection(refP, refN, wi)
}
