// Package main provides the entry point for the Disco Grid application.
package main

import (
	"io"
	"log"
	"os"

	"disco-grid/internal/app"
	"disco-grid/internal/grid"
	"disco-grid/internal/version"
	"disco-grid/ui/mainwindow"
	"disco-grid/ui/prefs"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/urfave/cli/v2"
)

const (
	appID    = "io.github.discogrid"
	appTitle = "Disco Grid"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cliApp := &cli.App{
		Name:    "disco-grid",
		Usage:   "click tiles to cycle their colors",
		Version: version.String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "preset",
				Value: "small",
				Usage: "starting configuration: small (10x10 over 450) or large (50x50 circle over 1000)",
			},
			&cli.IntFlag{Name: "cols", Usage: "grid columns"},
			&cli.IntFlag{Name: "rows", Usage: "grid rows"},
			&cli.IntFlag{Name: "width", Usage: "canvas width in pixels"},
			&cli.IntFlag{Name: "height", Usage: "canvas height in pixels"},
			&cli.StringFlag{Name: "shape", Usage: "rect or circle"},
			&cli.BoolFlag{Name: "drag", Usage: "paint tiles while dragging"},
			&cli.BoolFlag{Name: "labels", Usage: "show the hovered tile's coordinate (circle grids)"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log render timings"},
		},
		Action: run,
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// configFromFlags starts from the preset and applies explicitly set flags.
func configFromFlags(c *cli.Context) (app.Config, error) {
	cfg, err := app.Preset(c.String("preset"))
	if err != nil {
		return cfg, err
	}
	if c.IsSet("cols") {
		cfg.Cols = c.Int("cols")
	}
	if c.IsSet("rows") {
		cfg.Rows = c.Int("rows")
	}
	if c.IsSet("width") {
		cfg.CanvasWidth = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.CanvasHeight = c.Int("height")
	}
	if c.IsSet("shape") {
		shape, err := grid.ParseShape(c.String("shape"))
		if err != nil {
			return cfg, err
		}
		cfg.Shape = shape
		cfg.Labels = shape == grid.ShapeCircle
	}
	if c.IsSet("drag") {
		cfg.Drag = grid.DragOff
		if c.Bool("drag") {
			cfg.Drag = grid.DragPaint
		}
	}
	if c.IsSet("labels") {
		cfg.Labels = c.Bool("labels")
	}
	cfg.Verbose = c.Bool("verbose")
	return cfg, cfg.Validate()
}

func run(c *cli.Context) error {
	cfg, err := configFromFlags(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.Verbose {
		logger = log.New(os.Stderr, "", log.LstdFlags|log.Lmicroseconds)
	}
	log.Printf("Starting %s v%s: %s", appTitle, version.Version, cfg)

	state, err := app.NewState(cfg, logger)
	if err != nil {
		return cli.Exit(err, 1)
	}

	fyneApp := fyneapp.NewWithID(appID)
	fyneApp.Settings().SetTheme(&app.DiscoTheme{})

	win := mainwindow.New(fyneApp, state, prefs.Load())
	win.SetTitle(appTitle)
	win.ShowAndRun()
	return nil
}
