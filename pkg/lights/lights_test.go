package lights

import (
	"math"
	"testing"

	"github.com/voxelmade/pathtracer/pkg/core"
	"github.com/voxelmade/pathtracer/pkg/geometry"
)

func TestPoint_InverseSquareFalloff(t *testing.T) {
	l := NewPoint(core.NewVec3(0, 10, 0), core.Splat(1))
	near := l.SampleLi(core.NewVec3(0, 9, 0), core.Vec3{}, 0, 0)
	far := l.SampleLi(core.NewVec3(0, 5, 0), core.Vec3{}, 0, 0)
	if near.Li.X <= far.Li.X {
		t.Errorf("expected closer point to receive more irradiance: near=%v far=%v", near.Li, far.Li)
	}
	if l.PdfLi(core.Vec3{}, core.Vec3{}, core.Vec3{}) != 0 {
		t.Error("expected a delta light to report zero pdf")
	}
}

func TestDirectional_PreprocessSetsPower(t *testing.T) {
	l := NewDirectional(core.Splat(2), core.NewVec3(0, -1, 0))
	bound := core.NewAABB(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1))
	l.Preprocess(bound)
	if l.Power().IsBlack() {
		t.Error("expected non-zero power after preprocess")
	}
	sample := l.SampleLi(core.NewVec3(0, 0, 0), core.Vec3{}, 0, 0)
	if sample.Pdf != 1 {
		t.Errorf("expected delta pdf of 1, got %v", sample.Pdf)
	}
}

func TestEnvironment_ZeroPdfAtPoles(t *testing.T) {
	l := NewEnvironment(core.Splat(1))
	pole := core.NewVec3(0, 0, 1)
	if pdf := l.PdfLi(core.Vec3{}, core.Vec3{}, pole); pdf != 0 {
		t.Errorf("expected zero pdf at the pole, got %v", pdf)
	}
	equator := core.NewVec3(1, 0, 0)
	if pdf := l.PdfLi(core.Vec3{}, core.Vec3{}, equator); pdf <= 0 {
		t.Errorf("expected positive pdf away from the poles, got %v", pdf)
	}
}

func TestEnvironment_LeReturnsConstantRadiance(t *testing.T) {
	l := NewEnvironment(core.NewVec3(0.1, 0.2, 0.3))
	le := l.Le(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0)))
	if le.X != 0.1 || le.Y != 0.2 || le.Z != 0.3 {
		t.Errorf("expected Le to return the constant radiance, got %v", le)
	}
}

func TestAreaLight_EmitsOnlyFromFrontFace(t *testing.T) {
	disk := geometry.NewDisk(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0), 1)
	al := NewAreaLight(core.Splat(3), disk)

	below := al.SampleLi(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 0.5, 0.5)
	if below.Li.IsBlack() {
		t.Error("expected emission toward a point below the downward-facing disk")
	}

	above := al.SampleLi(core.NewVec3(0, 10, 0), core.NewVec3(0, -1, 0), 0.5, 0.5)
	if !above.Li.IsBlack() {
		t.Errorf("expected no emission toward a point above the disk's back face, got %v", above.Li)
	}
}

func TestLightSampler_UniformPdf(t *testing.T) {
	a := NewPoint(core.Vec3{}, core.Splat(1))
	b := NewPoint(core.Vec3{}, core.Splat(1))
	s := NewUniformLightSampler([]Light{a, b})

	_, pdf, ok := s.Sample(0.1)
	if !ok || math.Abs(pdf-0.5) > 1e-9 {
		t.Errorf("expected uniform pdf of 0.5, got %v (ok=%v)", pdf, ok)
	}
}

func TestLightSampler_EmptyIsNotOk(t *testing.T) {
	s := NewUniformLightSampler(nil)
	if _, _, ok := s.Sample(0.5); ok {
		t.Error("expected sampling an empty light list to fail")
	}
}
