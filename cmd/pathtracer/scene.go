package main

import (
	"github.com/voxelmade/pathtracer/pkg/core"
	"github.com/voxelmade/pathtracer/pkg/geometry"
	"github.com/voxelmade/pathtracer/pkg/lights"
	"github.com/voxelmade/pathtracer/pkg/loaders"
	"github.com/voxelmade/pathtracer/pkg/material"
	"github.com/voxelmade/pathtracer/pkg/scene"
)

// buildDemoScene assembles a small enclosed box with a ceiling area light
// and one sphere of each represented material family, standing in for an
// external scene description format this module doesn't define. When
// meshPath is non-empty, a loaded mesh replaces the rightmost sphere.
func buildDemoScene(meshPath string) *scene.Scene {
	sc := scene.New()

	white := core.NewVec3(0.73, 0.73, 0.73)
	red := core.NewVec3(0.65, 0.05, 0.05)
	green := core.NewVec3(0.12, 0.45, 0.15)

	floor := geometry.NewRectangle(
		core.NewVec3(-3, 0, -3), core.NewVec3(-3, 0, 3),
		core.NewVec3(3, 0, 3), core.NewVec3(3, 0, -3), false)
	ceiling := geometry.NewRectangle(
		core.NewVec3(-3, 4, -3), core.NewVec3(3, 4, -3),
		core.NewVec3(3, 4, 3), core.NewVec3(-3, 4, 3), false)
	back := geometry.NewRectangle(
		core.NewVec3(-3, 0, -3), core.NewVec3(3, 0, -3),
		core.NewVec3(3, 4, -3), core.NewVec3(-3, 4, -3), false)
	leftWall := geometry.NewRectangle(
		core.NewVec3(-3, 0, 3), core.NewVec3(-3, 0, -3),
		core.NewVec3(-3, 4, -3), core.NewVec3(-3, 4, 3), false)
	rightWall := geometry.NewRectangle(
		core.NewVec3(3, 0, -3), core.NewVec3(3, 0, 3),
		core.NewVec3(3, 4, 3), core.NewVec3(3, 4, -3), false)

	sc.AddPrimitive(scene.NewPrimitive(floor, material.NewMatte(white)))
	sc.AddPrimitive(scene.NewPrimitive(ceiling, material.NewMatte(white)))
	sc.AddPrimitive(scene.NewPrimitive(back, material.NewMatte(white)))
	sc.AddPrimitive(scene.NewPrimitive(leftWall, material.NewMatte(red)))
	sc.AddPrimitive(scene.NewPrimitive(rightWall, material.NewMatte(green)))

	lightShape := geometry.NewRectangle(
		core.NewVec3(-0.75, 3.99, -0.75), core.NewVec3(0.75, 3.99, -0.75),
		core.NewVec3(0.75, 3.99, 0.75), core.NewVec3(-0.75, 3.99, 0.75), true)
	lightPrim := scene.NewPrimitive(lightShape, material.NewMatte(core.Vec3{}))
	lightPrim.AreaLight = lights.NewAreaLight(core.NewVec3(15, 15, 15), lightShape)
	sc.AddPrimitive(lightPrim)

	matteSphere := geometry.NewSphere(core.NewVec3(-1.4, 0.9, -0.5), 0.9)
	sc.AddPrimitive(scene.NewPrimitive(matteSphere, material.NewMatte(core.NewVec3(0.2, 0.3, 0.7))))

	mirrorSphere := geometry.NewSphere(core.NewVec3(0, 0.9, 1), 0.9)
	sc.AddPrimitive(scene.NewPrimitive(mirrorSphere, material.NewMirror(core.NewVec3(0.95, 0.95, 0.95))))

	if meshPath != "" {
		mesh := loaders.LoadOBJ(meshPath, loaders.Options{Scale: 0.6, Offset: core.NewVec3(1.4, 0.9, -0.5)})
		sc.AddPrimitive(scene.NewPrimitive(mesh, material.NewPlastic(
			core.NewVec3(0.6, 0.5, 0.1), core.NewVec3(0.2, 0.2, 0.2), 0.05, true)))
	} else {
		glassSphere := geometry.NewSphere(core.NewVec3(1.4, 0.9, -0.5), 0.9)
		sc.AddPrimitive(scene.NewPrimitive(glassSphere, material.NewGlass(
			1.5, core.NewVec3(1, 1, 1), core.NewVec3(1, 1, 1))))
	}

	sc.Preprocess()
	return sc
}
