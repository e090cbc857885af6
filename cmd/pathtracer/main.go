package main

import (
	"os"

	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "pathtracer"
	app.Usage = "render scenes with an offline Monte Carlo path tracer"
	app.Version = "0.1.0"

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable debug-level logging",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "render",
			Usage:     "render the built-in demo scene to an image file",
			ArgsUsage: " ",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "width", Value: 640, Usage: "image width in pixels"},
				cli.IntFlag{Name: "height", Value: 480, Usage: "image height in pixels"},
				cli.IntFlag{Name: "spp", Value: 32, Usage: "samples per pixel"},
				cli.IntFlag{Name: "depth", Value: 8, Usage: "maximum path depth"},
				cli.IntFlag{Name: "threads", Value: 0, Usage: "worker goroutines (0 renders on the calling goroutine)"},
				cli.Float64Flag{Name: "fov", Value: 60, Usage: "vertical field of view in degrees"},
				cli.StringFlag{Name: "integrator", Value: "path", Usage: "whitted, recursive-path, or path"},
				cli.StringFlag{Name: "format", Value: "ppm", Usage: "output format: ppm, bmp, or hdr"},
				cli.StringFlag{Name: "out, o", Value: "render", Usage: "output file path, without extension"},
				cli.StringFlag{Name: "mesh", Usage: "optional Wavefront OBJ file to place in the demo scene"},
				cli.Int64Flag{Name: "seed", Value: 1, Usage: "sampler seed"},
			},
			Action: renderAction,
		},
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
