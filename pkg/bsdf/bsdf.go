package bsdf

import "github.com/voxelmade/pathtracer/pkg/core"

// maxBxDFs bounds how many lobes a single BSDF stacks; every material in
// this renderer adds at most two.
const maxBxDFs = 2

// BSDF wraps a small stack of local-space BxDF lobes together with the
// shading frame needed to convert world-space directions in and out of
// local space before evaluating them.
type BSDF struct {
	frame core.Frame
	ns    core.Vec3
	bxdfs [maxBxDFs]BxDF
	n     int
}

// NewBSDF builds a BSDF for a surface point with shading normal ns.
func NewBSDF(ns core.Vec3) *BSDF {
	return &BSDF{frame: core.NewFrame(ns), ns: ns}
}

// Add appends a lobe to the stack.
func (b *BSDF) Add(bx BxDF) {
	if b.n < maxBxDFs {
		b.bxdfs[b.n] = bx
		b.n++
	}
}

// NumComponents reports how many lobes are stacked.
func (b *BSDF) NumComponents() int { return b.n }

// F evaluates the sum of every non-specular lobe for world-space wo, wi.
// Lobes are only summed when wo and wi lie on the same side of the shading
// normal; a pair straddling the surface evaluates to zero.
func (b *BSDF) F(woW, wiW core.Vec3) core.Vec3 {
	wo, wi := b.frame.ToLocal(woW), b.frame.ToLocal(wiW)
	if wo.Z == 0 {
		return core.Vec3{}
	}
	reflect := wiW.Dot(b.ns)*woW.Dot(b.ns) > 0
	f := core.Vec3{}
	for i := 0; i < b.n; i++ {
		if b.bxdfs[i].IsSpecular() {
			continue
		}
		if reflect {
			f = f.Add(b.bxdfs[i].F(wo, wi))
		}
	}
	return f
}

// Pdf returns the sampling density the BSDF would use for wiW, averaged
// uniformly over every lobe, matching Sample's uniform lobe choice;
// specular lobes contribute zero density but still count in the average.
func (b *BSDF) Pdf(woW, wiW core.Vec3) float64 {
	if b.n == 0 {
		return 0
	}
	wo, wi := b.frame.ToLocal(woW), b.frame.ToLocal(wiW)
	if wo.Z == 0 {
		return 0
	}
	pdf := 0.0
	matching := 0
	for i := 0; i < b.n; i++ {
		pdf += b.bxdfs[i].Pdf(wo, wi)
		matching++
	}
	if matching == 0 {
		return 0
	}
	return pdf / float64(matching)
}

// Sample draws a lobe uniformly at random, samples a direction from it, and
// returns the combined f/pdf/specular flag in world space. u1 selects the
// lobe, u2/u3 drive the lobe's own sampling.
func (b *BSDF) Sample(woW core.Vec3, u1, u2, u3 float64) (wiW core.Vec3, f core.Vec3, pdf float64, specular bool, ok bool) {
	if b.n == 0 {
		return core.Vec3{}, core.Vec3{}, 0, false, false
	}

	comp := int(u1 * float64(b.n))
	if comp == b.n {
		comp = b.n - 1
	}
	bx := b.bxdfs[comp]

	wo := b.frame.ToLocal(woW)
	if wo.Z == 0 {
		return core.Vec3{}, core.Vec3{}, 0, false, false
	}

	wi, fLocal, pdfLocal, sok := bx.Sample(wo, u2, u3)
	if !sok || pdfLocal == 0 {
		return core.Vec3{}, core.Vec3{}, 0, false, false
	}

	wiW = b.frame.ToWorld(wi)
	specular = bx.IsSpecular()

	if specular || b.n == 1 {
		pdf = pdfLocal / float64(b.n)
		return wiW, fLocal, pdf, specular, true
	}

	pdf = pdfLocal
	for i := 0; i < b.n; i++ {
		if i != comp {
			pdf += b.bxdfs[i].Pdf(wo, wi)
		}
	}
	pdf /= float64(b.n)

	reflect := wiW.Dot(b.ns)*woW.Dot(b.ns) > 0
	fTotal := core.Vec3{}
	for i := 0; i < b.n; i++ {
		if b.bxdfs[i].IsSpecular() {
			continue
		}
		if reflect {
			fTotal = fTotal.Add(b.bxdfs[i].F(wo, wi))
		}
	}
	return wiW, fTotal, pdf, false, true
}
