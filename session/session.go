// Package session holds the tool state of the line and conic drawing tools:
// the selected strategy and shape, the pen color, the zoom factor, the
// debug pacing, and the pending start point of a two-click line.
//
// A Session is not safe for concurrent use.
package session

import (
	"context"
	"errors"
	"iter"
	"log/slog"
	"math"
	"time"

	"github.com/gogpu/gglab"
	"github.com/gogpu/gglab/conic"
	"github.com/gogpu/gglab/line"
)

// ErrNoStrategy is returned by a line tool click before a line strategy was
// selected.
var ErrNoStrategy = errors.New("session: no line strategy selected")

// Zoom limits of the line tool.
const (
	DefaultScale = 4.0
	MinScale     = 1.0
)

// DefaultDebugInterval is the pause between plotted pixels in debug mode.
const DefaultDebugInterval = 250 * time.Millisecond

// Session is the state of one drawing surface.
type Session struct {
	target *gglab.Pixmap

	strategy    line.Strategy
	hasStrategy bool
	shape       conic.Shape
	color       gglab.RGBA
	scale       float64
	debug       bool
	interval    time.Duration
	conicOpts   []conic.Option

	start    [2]int
	hasStart bool
}

// New returns a session drawing into target.
func New(target *gglab.Pixmap, opts ...Option) *Session {
	s := &Session{
		target:   target,
		shape:    conic.ShapeCircle,
		color:    gglab.Black,
		scale:    DefaultScale,
		interval: DefaultDebugInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Target returns the pixmap the session draws into.
func (s *Session) Target() *gglab.Pixmap { return s.target }

// SelectStrategy chooses the line strategy and drops a pending start point.
func (s *Session) SelectStrategy(st line.Strategy) {
	s.strategy = st
	s.hasStrategy = true
	s.hasStart = false
	gglab.Logger().Info("session: line strategy selected", slog.String("strategy", st.String()))
}

// Strategy returns the selected line strategy.
func (s *Session) Strategy() (line.Strategy, bool) {
	return s.strategy, s.hasStrategy
}

// SelectShape chooses the conic drawn by DrawConic.
func (s *Session) SelectShape(sh conic.Shape) {
	s.shape = sh
	gglab.Logger().Info("session: shape selected", slog.String("shape", sh.String()))
}

// Shape returns the selected conic.
func (s *Session) Shape() conic.Shape { return s.shape }

// SetColor sets the pen color.
func (s *Session) SetColor(c gglab.RGBA) { s.color = c }

// Color returns the pen color.
func (s *Session) Color() gglab.RGBA { return s.color }

// SetDebug turns step-by-step drawing on or off. While on, every plotted
// pixel is followed by a pause of interval and a debug log record.
// A non-positive interval keeps the current one.
func (s *Session) SetDebug(on bool, interval time.Duration) {
	s.debug = on
	if interval > 0 {
		s.interval = interval
	}
	gglab.Logger().Info("session: debug mode",
		slog.Bool("on", on),
		slog.Duration("interval", s.interval))
}

// Debug reports whether debug pacing is on and its interval.
func (s *Session) Debug() (bool, time.Duration) {
	return s.debug, s.interval
}

// Scale returns the zoom factor.
func (s *Session) Scale() float64 { return s.scale }

// ZoomIn doubles the zoom factor.
func (s *Session) ZoomIn() float64 {
	s.scale *= 2
	return s.scale
}

// ZoomOut halves the zoom factor unless it is already at MinScale.
func (s *Session) ZoomOut() float64 {
	if s.scale > MinScale {
		s.scale = max(s.scale/2, MinScale)
	}
	return s.scale
}

// Descale converts device coordinates into canvas pixel coordinates by
// dividing by the zoom factor and rounding half away from zero.
func (s *Session) Descale(x, y float64) (int, int) {
	return int(math.Round(x / s.scale)), int(math.Round(y / s.scale))
}

// ExportFactor returns the integer magnification used to export the canvas
// at the current zoom.
func (s *Session) ExportFactor() int {
	return max(1, int(math.Round(s.scale)))
}

// Pending returns the stored start point of the line tool.
func (s *Session) Pending() (x, y int, ok bool) {
	return s.start[0], s.start[1], s.hasStart
}

// Reset drops a pending start point.
func (s *Session) Reset() { s.hasStart = false }

// ClickResult describes what a line tool click did.
type ClickResult struct {
	// X0, Y0 is the start point; X1, Y1 the end point once Drawn.
	X0, Y0, X1, Y1 int
	Drawn          bool
	Pixels         int
}

// Click handles a line tool click at device coordinates (x, y).
//
// The first click stores the de-scaled start point, the second draws the
// segment with the selected strategy and clears the start point. A click
// before a strategy is selected fails with ErrNoStrategy.
func (s *Session) Click(ctx context.Context, x, y float64) (ClickResult, error) {
	if !s.hasStrategy {
		return ClickResult{}, ErrNoStrategy
	}
	px, py := s.Descale(x, y)
	if !s.hasStart {
		s.start = [2]int{px, py}
		s.hasStart = true
		return ClickResult{X0: px, Y0: py}, nil
	}

	res := ClickResult{X0: s.start[0], Y0: s.start[1], X1: px, Y1: py, Drawn: true}
	s.hasStart = false
	n, err := s.DrawLine(ctx, res.X0, res.Y0, res.X1, res.Y1)
	res.Pixels = n
	return res, err
}

// DrawLine rasterizes a segment with the selected strategy.
func (s *Session) DrawLine(ctx context.Context, x0, y0, x1, y1 int) (int, error) {
	if !s.hasStrategy {
		return 0, ErrNoStrategy
	}
	seq, err := line.Draw(s.strategy, x0, y0, x1, y1)
	if err != nil {
		return 0, err
	}
	return s.render(ctx, seq)
}

// DrawConic rasterizes the selected conic centered at (cx, cy).
// p1 and p2 are the radius, semi-axes or focal parameter as conic.Draw
// documents.
func (s *Session) DrawConic(ctx context.Context, cx, cy, p1, p2 int) (int, error) {
	seq, err := conic.Draw(s.shape, cx, cy, p1, p2, s.conicOpts...)
	if err != nil {
		return 0, err
	}
	return s.render(ctx, seq)
}

func (s *Session) render(ctx context.Context, seq iter.Seq[gglab.Pixel]) (int, error) {
	var opts []gglab.RenderOption
	if s.debug {
		opts = append(opts, gglab.WithPacing(s.interval))
	}
	return gglab.Render(ctx, seq, gglab.NewPixmapPlotter(s.target, s.color), opts...)
}

// Clear fills the target with bg and drops a pending start point.
func (s *Session) Clear(bg gglab.RGBA) {
	s.target.Clear(bg)
	s.hasStart = false
	gglab.Logger().Info("session: cleared")
}
