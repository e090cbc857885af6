// Package camera turns a film-plane sample into a primary ray through a
// pinhole camera.
package camera

import (
	"math"

	"github.com/voxelmade/pathtracer/pkg/core"
	"github.com/voxelmade/pathtracer/pkg/sampler"
)

// Camera is a pinhole camera positioned and oriented in world space, with
// its field of view baked into the length of its right/up basis vectors so
// GenerateRay needs no further trigonometry per call.
type Camera struct {
	pos   core.Vec3
	front core.Vec3
	right core.Vec3
	up    core.Vec3

	resX, resY float64
}

// New builds a camera at pos looking along front (need not be unit length),
// with the given world-up hint, vertical field of view in degrees, and film
// resolution in pixels.
func New(pos, front, worldUp core.Vec3, fovDegrees float64, resX, resY int) *Camera {
	f := front.Normalize()
	up := worldUp.Normalize()

	aspect := float64(resX) / float64(resY)
	tanFov := math.Tan(fovDegrees * math.Pi / 180 / 2)

	right := up.Cross(f).Normalize().Mul(tanFov * aspect)
	up = f.Cross(right).Normalize().Mul(tanFov)

	return &Camera{
		pos:   pos,
		front: f,
		right: right,
		up:    up,
		resX:  float64(resX),
		resY:  float64(resY),
	}
}

// GenerateRay casts a primary ray through a jittered film-plane position.
func (c *Camera) GenerateRay(cs sampler.CameraSample) core.Ray {
	dir := c.front.
		Add(c.right.Mul(2*cs.FilmX/c.resX - 1)).
		Add(c.up.Mul(1 - 2*cs.FilmY/c.resY))

	return core.NewRay(c.pos, dir.Normalize())
}
