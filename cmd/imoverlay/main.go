// SPDX-License-Identifier: Unlicense OR MIT

// Command imoverlay renders imgui frames through the overlay host
// without a display.
package main

import (
	"os"

	"github.com/urfave/cli"

	"imoverlay.org/internal/log"
)

var logger = log.New("imoverlay")

func main() {
	app := cli.NewApp()
	app.Name = "imoverlay"
	app.Usage = "render imgui overlays headlessly"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "logging verbosity (debug, info, notice, warning, error)",
		},
		cli.StringSliceFlag{
			Name:  "log-module",
			Usage: "override the verbosity of one logger, as name=level",
		},
		cli.BoolFlag{
			Name:  "no-color",
			Usage: "disable colored log output",
		},
		cli.StringFlag{
			Name:  "config, c",
			Usage: "TOML file with the overlay context settings",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a demo frame to PNG",
			Description: `
Create a host with one window presenting an overlay, run the demo user
interface for a number of frames and rasterize every host window.

Windows placed outside the primary display open their own host window;
each additional window is written next to the main image with its index
appended to the file name.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 800,
					Usage: "main window width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 600,
					Usage: "main window height",
				},
				cli.IntFlag{
					Name:  "frames",
					Value: 2,
					Usage: "number of frames to run before rasterizing",
				},
				cli.BoolFlag{
					Name:  "detached",
					Usage: "also show a window outside the primary display",
				},
				cli.BoolFlag{
					Name:  "log-text",
					Usage: "capture the demo text to the configured log file",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the main window",
				},
			},
			Action: renderFrame,
		},
		{
			Name:  "atlas",
			Usage: "write the font atlas texture to PNG",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "out, o",
					Value: "atlas.png",
					Usage: "image filename for the atlas",
				},
			},
			Action: dumpAtlas,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func setupLogging(ctx *cli.Context) error {
	if ctx.GlobalBool("no-color") {
		log.SetSink(os.Stderr, false)
	}

	if name := ctx.GlobalString("log-level"); name != "" {
		l, err := log.ParseLevel(name)
		if err != nil {
			return err
		}
		log.SetLevel(l)
	}

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}

	return log.ParseModuleLevels(ctx.GlobalStringSlice("log-module"))
}
