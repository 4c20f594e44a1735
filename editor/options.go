package editor

import (
	"github.com/gogpu/gglab"
	"github.com/gogpu/gglab/curve"
)

// Option configures a Model during creation.
type Option func(*options)

type options struct {
	kind       curve.Kind
	threshold  float64
	tie        TiePolicy
	samples    int
	radius     float64
	pointColor gglab.RGBA
	colors     map[curve.Kind]gglab.RGBA
}

func defaultOptions() options {
	return options{
		kind:       curve.Hermite,
		threshold:  DefaultThreshold,
		tie:        TieFirst,
		samples:    curve.DefaultSamples,
		radius:     DefaultPointRadius,
		pointColor: gglab.Blue,
		colors: map[curve.Kind]gglab.RGBA{
			curve.Hermite: gglab.Orange,
			curve.Bezier:  gglab.Purple,
			curve.BSpline: gglab.Cyan,
		},
	}
}

func (o options) curveColor(k curve.Kind) gglab.RGBA {
	if c, ok := o.colors[k]; ok {
		return c
	}
	return gglab.Black
}

// WithKind sets the initial curve kind (Hermite by default).
func WithKind(k curve.Kind) Option {
	return func(o *options) {
		o.kind = k
	}
}

// WithThreshold sets the hit-test distance in pixels. A press closer than
// the threshold to a point selects it.
func WithThreshold(px float64) Option {
	return func(o *options) {
		o.threshold = px
	}
}

// WithTiePolicy sets how hit tests resolve several points in range.
func WithTiePolicy(p TiePolicy) Option {
	return func(o *options) {
		o.tie = p
	}
}

// WithSamples sets how many samples each curve segment is evaluated at.
func WithSamples(n int) Option {
	return func(o *options) {
		o.samples = n
	}
}

// WithPointRadius sets the marker radius of new control points.
func WithPointRadius(r float64) Option {
	return func(o *options) {
		o.radius = r
	}
}

// WithCurveColor overrides the segment color used for kind k.
func WithCurveColor(k curve.Kind, c gglab.RGBA) Option {
	return func(o *options) {
		o.colors[k] = c
	}
}
