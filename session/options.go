package session

import (
	"time"

	"github.com/gogpu/gglab"
	"github.com/gogpu/gglab/conic"
	"github.com/gogpu/gglab/line"
)

// Option configures a Session during creation.
type Option func(*Session)

// WithStrategy preselects the line strategy.
func WithStrategy(st line.Strategy) Option {
	return func(s *Session) {
		s.strategy = st
		s.hasStrategy = true
	}
}

// WithShape preselects the conic shape (circle by default).
func WithShape(sh conic.Shape) Option {
	return func(s *Session) {
		s.shape = sh
	}
}

// WithColor sets the pen color (black by default).
func WithColor(c gglab.RGBA) Option {
	return func(s *Session) {
		s.color = c
	}
}

// WithScale sets the initial zoom factor. Values below MinScale are raised
// to MinScale.
func WithScale(scale float64) Option {
	return func(s *Session) {
		s.scale = max(scale, MinScale)
	}
}

// WithDebug enables debug pacing with the given interval.
func WithDebug(interval time.Duration) Option {
	return func(s *Session) {
		s.debug = true
		if interval > 0 {
			s.interval = interval
		}
	}
}

// WithMaxExtent bounds the hyperbola and parabola walks.
func WithMaxExtent(n int) Option {
	return func(s *Session) {
		s.conicOpts = append(s.conicOpts, conic.WithMaxExtent(n))
	}
}
