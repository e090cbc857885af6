// Package loaders reads external mesh files into this module's own
// geometry types, degrading to an empty mesh (rather than panicking) when a
// file can't be found or parsed.
package loaders

import (
	"github.com/mwindels/gwob"

	"github.com/voxelmade/pathtracer/pkg/core"
	"github.com/voxelmade/pathtracer/pkg/geometry"
	"github.com/voxelmade/pathtracer/pkg/log"
)

var logger = log.New("loaders")

// Options controls how a loaded mesh's raw vertex positions are transformed
// before triangles are built, and whether the loader trusts the file's own
// orientation.
type Options struct {
	// FlipNormals negates every triangle's computed flat normal.
	FlipNormals bool
	// FlipHandedness swaps each face's winding order (v1, v2 for v2, v1),
	// for files authored in a right-handed convention this module doesn't
	// otherwise share.
	FlipHandedness bool
	// Scale multiplies every vertex position uniformly. Zero is treated as 1.
	Scale float64
	// Offset is added to every vertex position after scaling.
	Offset core.Vec3
}

// DefaultOptions is the identity transform: no flipping, unit scale, zero offset.
func DefaultOptions() Options {
	return Options{Scale: 1}
}

// LoadOBJ reads a Wavefront OBJ file at path and builds one flat-shaded
// triangle per face, discarding the file's own vertex normals -- every
// triangle's normal comes from its own edges, matching the flat-shaded
// convention every other shape in this module uses. A missing or
// unparsable file logs the error and returns an empty mesh rather than an
// error, so a scene-construction pass can continue past one bad asset.
func LoadOBJ(path string, opts Options) *geometry.TriangleMesh {
	if opts.Scale == 0 {
		opts.Scale = 1
	}

	parserOpts := gwob.ObjParserOptions{
		LogStats: false,
		Logger:   func(s string) { logger.Debug(s) },
	}

	obj, err := gwob.NewObjFromFile(path, &parserOpts)
	if err != nil {
		logger.Errorf("load mesh %q: %v", path, err)
		return geometry.NewTriangleMesh(nil)
	}

	stride := obj.StrideSize / 4
	posOffset := obj.StrideOffsetPosition / 4

	vertex := func(index int) core.Vec3 {
		base := stride*obj.Indices[index] + posOffset
		p := core.NewVec3(
			float64(obj.Coord64(base)),
			float64(obj.Coord64(base+1)),
			float64(obj.Coord64(base+2)),
		)
		return p.Mul(opts.Scale).Add(opts.Offset)
	}

	var triangles []*geometry.Triangle
	for _, g := range obj.Groups {
		faceCount := g.IndexCount / 3
		for f := 0; f < faceCount; f++ {
			i0 := g.IndexBegin + 3*f
			v0, v1, v2 := vertex(i0), vertex(i0+1), vertex(i0+2)
			if opts.FlipHandedness {
				v1, v2 = v2, v1
			}
			triangles = append(triangles, geometry.NewTriangle(v0, v1, v2, opts.FlipNormals))
		}
	}

	if len(triangles) == 0 {
		logger.Warningf("mesh %q loaded with no triangles", path)
	}

	return geometry.NewTriangleMesh(triangles)
}
