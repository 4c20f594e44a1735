// Command gglab draws with the gglab tools and saves the canvas as PNG or
// BMP.
//
// The line mode replays device clicks through the two-click line tool, the
// conic mode draws one conic over a grid, and the curve mode places control
// points in the curve editor:
//
//	gglab -mode line -strategy wu -clicks "40,40 360,200"
//	gglab -mode conic -shape hyperbola -p1 40 -p2 30 -output hyperbola.bmp
//	gglab -mode curve -kind bspline -clicks "100,100 300,80 320,300 120,320"
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/gglab"
	"github.com/gogpu/gglab/status"
)

// Conic sizes used when the given ones are rejected.
const (
	defaultP1 = 100
	defaultP2 = 50
)

type config struct {
	mode     string
	width    int
	height   int
	output   string
	zoom     float64
	lang     string
	debug    time.Duration
	verbose  bool
	labels   bool
	strategy string
	shape    string
	kind     string
	clicks   string
	drag     string
	center   string
	p1, p2   int
	extent   int
	grid     int
	samples  int
}

func main() {
	var cfg config
	flag.StringVar(&cfg.mode, "mode", "line", "tool: line, conic or curve")
	flag.IntVar(&cfg.width, "width", 400, "canvas width in pixels")
	flag.IntVar(&cfg.height, "height", 300, "canvas height in pixels")
	flag.StringVar(&cfg.output, "output", "gglab.png", "output file (.png or .bmp)")
	flag.Float64Var(&cfg.zoom, "zoom", 1, "zoom factor of the line tool; clicks are de-scaled by it")
	flag.StringVar(&cfg.lang, "lang", "en", "status message language (en or ru)")
	flag.DurationVar(&cfg.debug, "debug", 0, "pause between plotted pixels (0 disables debug mode)")
	flag.BoolVar(&cfg.verbose, "v", false, "log engine diagnostics to stderr")
	flag.BoolVar(&cfg.labels, "labels", true, "draw the status line onto the canvas")
	flag.StringVar(&cfg.strategy, "strategy", "bresenham", "line strategy: dda, bresenham or wu")
	flag.StringVar(&cfg.shape, "shape", "circle", "conic: circle, ellipse, hyperbola or parabola")
	flag.StringVar(&cfg.kind, "kind", "bezier", "curve kind: hermite, bezier or bspline")
	flag.StringVar(&cfg.clicks, "clicks", "", "space separated x,y clicks in device coordinates")
	flag.StringVar(&cfg.drag, "drag", "", "curve mode: drags as x0,y0>x1,y1, space separated")
	flag.StringVar(&cfg.center, "center", "", "conic center as x,y (canvas center by default)")
	flag.IntVar(&cfg.p1, "p1", defaultP1, "radius, semi-axis a or focal parameter p")
	flag.IntVar(&cfg.p2, "p2", defaultP2, "semi-axis b")
	flag.IntVar(&cfg.extent, "extent", 200, "walk limit of hyperbolas and parabolas")
	flag.IntVar(&cfg.grid, "grid", 20, "grid step of the conic tool (0 disables the grid)")
	flag.IntVar(&cfg.samples, "samples", 100, "samples per curve segment")
	flag.Parse()

	if cfg.verbose {
		gglab.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	rep, err := status.Parse(cfg.lang)
	if err != nil {
		log.Fatalf("Invalid language: %v", err)
	}

	var tool func(context.Context, config, *status.Reporter) (*gglab.Pixmap, int, []string, error)
	switch cfg.mode {
	case "line":
		tool = runLine
	case "conic":
		tool = runConic
	case "curve":
		tool = runCurve
	default:
		log.Fatalf("Unknown mode %q", cfg.mode)
	}

	pm, factor, lines, err := tool(context.Background(), cfg, rep)
	for _, l := range lines {
		log.Print(l)
	}
	if err != nil {
		log.Fatalf("Failed to draw: %v", err)
	}

	if cfg.labels && len(lines) > 0 {
		if err := pm.DrawLabel(4, pm.Height()-4, lines[len(lines)-1], gglab.White); err != nil {
			log.Fatalf("Failed to draw label: %v", err)
		}
	}
	if err := pm.Save(cfg.output, factor); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Canvas saved to %s (%dx%d, zoom %d)\n", cfg.output, pm.Width(), pm.Height(), factor)
}
