// Package conic rasterizes conic sections around a center point.
//
// Each rasterizer walks one octant or quadrant of the boundary with an
// incremental decision variable and reflects every computed point through
// the center. Parameters are validated up front; the returned sequences are
// lazy and stop as soon as the consumer stops.
//
// The hyperbola and parabola have no natural end, so their walks are bounded
// by a maximum extent from the center (see WithMaxExtent).
package conic

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"strings"

	"github.com/gogpu/gglab"
)

var (
	// ErrInvalidParameter is returned for a non-positive radius, semi-axis,
	// focal parameter or walk extent.
	ErrInvalidParameter = errors.New("conic: invalid geometric parameter")

	// ErrUnknownShape is returned when a shape name or value is not
	// recognized.
	ErrUnknownShape = errors.New("conic: unknown shape")
)

// DefaultMaxExtent is the default walk limit, in pixels from the center,
// of the hyperbola and parabola rasterizers.
const DefaultMaxExtent = 200

// Option configures the unbounded rasterizers.
type Option func(*options)

type options struct {
	maxExtent int
}

func buildOptions(opts []Option) (options, error) {
	o := options{maxExtent: DefaultMaxExtent}
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxExtent <= 0 {
		return o, fmt.Errorf("%w: max extent %d", ErrInvalidParameter, o.maxExtent)
	}
	return o, nil
}

// WithMaxExtent bounds the hyperbola and parabola walks to n pixels from the
// center along either axis. It is the radius of the viewport the curve is
// rendered into.
func WithMaxExtent(n int) Option {
	return func(o *options) {
		o.maxExtent = n
	}
}

// Shape selects a conic rasterizer.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeEllipse
	ShapeHyperbola
	ShapeParabola
)

var shapeNames = [...]string{
	ShapeCircle:    "circle",
	ShapeEllipse:   "ellipse",
	ShapeHyperbola: "hyperbola",
	ShapeParabola:  "parabola",
}

// String returns the lowercase shape name.
func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// ParseShape parses a shape name, ignoring case.
func ParseShape(name string) (Shape, error) {
	for i, n := range shapeNames {
		if strings.EqualFold(name, n) {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// Draw dispatches to the rasterizer for shape. p1 is the radius, the
// semi-axis a or the focal parameter p; p2 is the semi-axis b and is ignored
// by the circle and the parabola.
func Draw(shape Shape, cx, cy, p1, p2 int, opts ...Option) (iter.Seq[gglab.Pixel], error) {
	gglab.Logger().Debug("conic: draw",
		slog.String("shape", shape.String()),
		slog.Int("cx", cx), slog.Int("cy", cy),
		slog.Int("p1", p1), slog.Int("p2", p2))

	switch shape {
	case ShapeCircle:
		return Circle(cx, cy, p1)
	case ShapeEllipse:
		return Ellipse(cx, cy, p1, p2)
	case ShapeHyperbola:
		return Hyperbola(cx, cy, p1, p2, opts...)
	case ShapeParabola:
		return Parabola(cx, cy, p1, opts...)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownShape, shape)
	}
}

// emitter is the point-emission primitive shared by all rasterizers:
// it translates offsets from the center and reflects them.
type emitter struct {
	cx, cy int
	yield  func(gglab.Pixel) bool
}

func (e emitter) emit(dx, dy int) bool {
	return e.yield(gglab.Px(e.cx+dx, e.cy+dy))
}

// emit4 reflects (x, y) into the four quadrants. Points on an axis are
// their own reflection and are emitted once.
func (e emitter) emit4(x, y int) bool {
	if !e.emit(x, y) {
		return false
	}
	if x != 0 && !e.emit(-x, y) {
		return false
	}
	if y == 0 {
		return true
	}
	return e.emit(x, -y) && (x == 0 || e.emit(-x, -y))
}

// emit8 reflects (x, y) into the eight octants, each distinct point once.
func (e emitter) emit8(x, y int) bool {
	if !e.emit4(x, y) {
		return false
	}
	return x == y || e.emit4(y, x)
}

func sq(v float64) float64 { return v * v }
