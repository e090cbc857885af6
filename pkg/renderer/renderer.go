// Package renderer drives an integrator across a film, either on the
// calling goroutine or fanned out across a parallel.System.
package renderer

import (
	"github.com/voxelmade/pathtracer/pkg/camera"
	"github.com/voxelmade/pathtracer/pkg/core"
	"github.com/voxelmade/pathtracer/pkg/film"
	"github.com/voxelmade/pathtracer/pkg/integrator"
	"github.com/voxelmade/pathtracer/pkg/parallel"
	"github.com/voxelmade/pathtracer/pkg/sampler"
	"github.com/voxelmade/pathtracer/pkg/scene"
)

// stripeHeight is the number of scanlines each render task covers.
const stripeHeight = 16

// Render evaluates integ for every pixel of f, casting primary rays through
// cam. numThreads < 1 renders on the calling goroutine; otherwise the film
// is split into horizontal stripes, each dispatched as its own task over a
// parallel.System with numThreads workers. Each pixel is written by exactly
// one worker, so no further synchronization is needed.
func Render(sc *scene.Scene, cam *camera.Camera, samp sampler.Sampler, integ integrator.Integrator, f *film.Film, numThreads int) {
	if numThreads < 1 {
		renderView(sc, cam, samp, integ, f.View(0, f.Height()))
		return
	}

	sys := parallel.NewSystem()
	sys.Start(numThreads)

	taskIndex := 0
	for y := 0; y < f.Height(); y += stripeHeight {
		end := y + stripeHeight
		if end > f.Height() {
			end = f.Height()
		}

		sys.AddTask(&renderTask{
			scene:      sc,
			camera:     cam,
			sampler:    samp.Clone(taskIndex),
			integrator: integ,
			view:       f.View(y, end),
		})
		taskIndex++
	}

	sys.WaitForFinish()
}

// renderTask covers one horizontal stripe and satisfies parallel.Task.
type renderTask struct {
	scene      *scene.Scene
	camera     *camera.Camera
	sampler    sampler.Sampler
	integrator integrator.Integrator
	view       *film.View
}

func (t *renderTask) Execute() {
	renderView(t.scene, t.camera, t.sampler, t.integrator, t.view)
}

// renderView walks every pixel in view, drawing samp.SamplesPerPixel()
// camera samples per pixel and averaging their estimated radiance before
// clamping to [0,1] and adding it to the film.
func renderView(sc *scene.Scene, cam *camera.Camera, samp sampler.Sampler, integ integrator.Integrator, view *film.View) {
	startY, endY := view.Bounds()
	width := view.Width()
	ratio := 1.0 / float64(samp.SamplesPerPixel())

	for y := startY; y < endY; y++ {
		for x := 0; x < width; x++ {
			l := core.Vec3{}
			samp.StartPixel()

			for {
				cs := samp.GetCameraSample(float64(x), float64(y))
				ray := cam.GenerateRay(cs)
				l = l.Add(integ.Li(ray, sc, samp).Mul(ratio))

				if !samp.NextSample() {
					break
				}
			}

			view.AddColor(x, y, l.Clamp(0, 1))
		}
	}
}
