package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/voxelmade/pathtracer/pkg/camera"
	"github.com/voxelmade/pathtracer/pkg/core"
	"github.com/voxelmade/pathtracer/pkg/film"
	"github.com/voxelmade/pathtracer/pkg/integrator"
	"github.com/voxelmade/pathtracer/pkg/renderer"
	"github.com/voxelmade/pathtracer/pkg/sampler"
)

func renderAction(ctx *cli.Context) error {
	setupLogging(ctx)

	width := ctx.Int("width")
	height := ctx.Int("height")
	maxDepth := ctx.Int("depth")

	integ, err := buildIntegrator(ctx.String("integrator"), maxDepth)
	if err != nil {
		return err
	}

	fmtID, err := parseFormat(ctx.String("format"))
	if err != nil {
		return err
	}

	sc := buildDemoScene(ctx.String("mesh"))

	cam := camera.New(
		core.NewVec3(0, 2, 6.5), core.NewVec3(0, -0.1, -1), core.NewVec3(0, 1, 0),
		ctx.Float64("fov"), width, height)

	samp := sampler.NewRandomSampler(ctx.Int("spp"), uint64(ctx.Int64("seed")))
	f := film.New(width, height)

	logger.Infof("rendering %dx%d at %d spp, max depth %d, %d threads", width, height, ctx.Int("spp"), maxDepth, ctx.Int("threads"))
	renderer.Render(sc, cam, samp, integ, f, ctx.Int("threads"))

	out := ctx.String("out")
	if err := f.Save(out, fmtID); err != nil {
		return fmt.Errorf("save image: %w", err)
	}
	logger.Infof("wrote %s (%s)", out, ctx.String("format"))
	return nil
}

func buildIntegrator(name string, maxDepth int) (integrator.Integrator, error) {
	switch name {
	case "whitted":
		return integrator.NewWhitted(maxDepth), nil
	case "recursive-path":
		return integrator.NewRecursivePath(maxDepth), nil
	case "path":
		return integrator.NewIterativePath(maxDepth), nil
	default:
		return nil, fmt.Errorf("unknown integrator %q (want whitted, recursive-path, or path)", name)
	}
}

func parseFormat(name string) (film.Format, error) {
	switch name {
	case "ppm":
		return film.PPM, nil
	case "bmp":
		return film.BMP, nil
	case "hdr":
		return film.HDR, nil
	default:
		return 0, fmt.Errorf("unknown output format %q (want ppm, bmp, or hdr)", name)
	}
}
