package main

import (
	logging "github.com/op/go-logging"
	"github.com/urfave/cli"

	"github.com/voxelmade/pathtracer/pkg/log"
)

var logger = log.New("pathtracer")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(logging.INFO)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(logging.DEBUG)
	}
}
