package geometry

import "github.com/voxelmade/pathtracer/pkg/core"

// TriangleMesh aggregates many flat-shaded triangles behind their own BVH,
// so a loaded model intersects in sub-linear time the same way the scene's
// top-level primitive BVH does over whole primitives -- the same generic
// BVH type parameterizes both.
type TriangleMesh struct {
	triangles []*Triangle
	bvh       *BVH[*Triangle, Intersection]
	bounds    core.AABB
	area      float64
}

// NewTriangleMesh builds the sub-BVH and caches total bounds/area.
func NewTriangleMesh(triangles []*Triangle) *TriangleMesh {
	bounds := core.EmptyAABB()
	area := 0.0
	for _, tri := range triangles {
		bounds = bounds.Union(tri.WorldBounds())
		area += tri.Area()
	}

	return &TriangleMesh{
		triangles: triangles,
		bvh:       NewBVH[*Triangle, Intersection](triangles),
		bounds:    bounds,
		area:      area,
	}
}

func (m *TriangleMesh) WorldBounds() core.AABB { return m.bounds }
func (m *TriangleMesh) Area() float64          { return m.area }

func (m *TriangleMesh) Intersect(ray core.Ray, tMin, tMax float64) (Intersection, bool) {
	return m.bvh.Intersect(ray, tMin, tMax)
}

// SamplePosition picks a constituent triangle with probability proportional
// to its own area, then samples uniformly within it, so the draw is
// uniform over the mesh's combined surface.
func (m *TriangleMesh) SamplePosition(u1, u2 float64) (p, n core.Vec3, pdf float64) {
	if len(m.triangles) == 0 || m.area == 0 {
		return core.Vec3{}, core.Vec3{}, 0
	}

	idx, remapped := m.pickTriangle(u1)
	p, n, _ = m.triangles[idx].SamplePosition(remapped, u2)
	return p, n, 1 / m.area
}

// pickTriangle maps u linearly onto the mesh's cumulative area distribution
// and returns the chosen triangle's index along with u remapped back into
// [0,1) for that triangle's own SamplePosition.
func (m *TriangleMesh) pickTriangle(u float64) (int, float64) {
	target := u * m.area
	cum := 0.0
	for i, tri := range m.triangles {
		a := tri.Area()
		if i == len(m.triangles)-1 || target < cum+a {
			if a == 0 {
				return i, 0.5
			}
			return i, core.Clamp((target-cum)/a, 0, 1)
		}
		cum += a
	}
	return len(m.triangles) - 1, 0.5
}

func (m *TriangleMesh) SampleDirection(refP, refN core.Vec3, u1, u2 float64) (core.Vec3, float64, bool) {
	return defaultSampleDirection(m, refP, u1, u2)
}

func (m *TriangleMesh) PdfDirection(refP, refN, wi core.Vec3) float64 {
	return defaultPdfDirection(m, refP, refN, wi)
}
