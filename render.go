package gglab

import (
	"cmp"
	"context"
	"iter"
	"log/slog"
	"slices"
	"time"
)

// Plotter is the pixel sink the rasterizers draw into.
// Intensity is the pixel coverage in [0, 1].
type Plotter interface {
	Plot(x, y int, intensity float64)
}

// PlotterFunc adapts an ordinary function to the Plotter interface.
type PlotterFunc func(x, y int, intensity float64)

// Plot calls f(x, y, intensity).
func (f PlotterFunc) Plot(x, y int, intensity float64) {
	f(x, y, intensity)
}

// PixmapPlotter plots pixels into a Pixmap with a pen color, blending the
// color over the existing pixel by the pixel intensity.
type PixmapPlotter struct {
	Pixmap *Pixmap
	Color  RGBA
}

// NewPixmapPlotter returns a plotter drawing c into pm.
func NewPixmapPlotter(pm *Pixmap, c RGBA) *PixmapPlotter {
	return &PixmapPlotter{Pixmap: pm, Color: c}
}

// Plot implements Plotter.
func (p *PixmapPlotter) Plot(x, y int, intensity float64) {
	p.Pixmap.BlendPixel(x, y, p.Color, intensity)
}

// RenderOption configures a Render call.
type RenderOption func(*renderOptions)

type renderOptions struct {
	pacing time.Duration
}

// WithPacing makes Render wait interval after every emitted pixel, for
// step-by-step visual debugging. The wait is interrupted by the context.
// Pacing never changes which pixels are emitted or their order.
// A non-positive interval disables pacing.
func WithPacing(interval time.Duration) RenderOption {
	return func(o *renderOptions) {
		o.pacing = interval
	}
}

// Render drains seq into p and returns the number of pixels plotted.
//
// Intensities are clamped to [0, 1] before they reach the plotter. The
// context is checked between successive pixels, so a long conic or curve
// walk can be interrupted; in that case Render stops the walk and returns
// ctx.Err() together with the number of pixels already plotted.
func Render(ctx context.Context, seq iter.Seq[Pixel], p Plotter, opts ...RenderOption) (int, error) {
	var o renderOptions
	for _, opt := range opts {
		opt(&o)
	}

	var timer *time.Timer
	if o.pacing > 0 {
		timer = time.NewTimer(o.pacing)
		timer.Stop()
		defer timer.Stop()
	}

	log := Logger()
	n := 0
	for px := range seq {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		px = px.Clamp()
		p.Plot(px.X, px.Y, px.Intensity)
		n++

		if timer == nil {
			continue
		}
		log.Debug("plot", slog.Int("x", px.X), slog.Int("y", px.Y), slog.Float64("intensity", px.Intensity))
		timer.Reset(o.pacing)
		select {
		case <-ctx.Done():
			return n, ctx.Err()
		case <-timer.C:
		}
	}
	return n, nil
}

// Collect drains seq into a slice. Intensities are clamped.
func Collect(seq iter.Seq[Pixel]) []Pixel {
	var out []Pixel
	for px := range seq {
		out = append(out, px.Clamp())
	}
	return out
}

// Sorted returns a copy of pixels in row-major order (y, then x), for
// comparing pixel sets independent of emission order.
func Sorted(pixels []Pixel) []Pixel {
	out := slices.Clone(pixels)
	slices.SortFunc(out, func(a, b Pixel) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		if a.X != b.X {
			return a.X - b.X
		}
		return cmp.Compare(a.Intensity, b.Intensity)
	})
	return out
}
