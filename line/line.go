// Package line rasterizes straight segments between two integer points.
//
// Three interchangeable strategies are provided: incremental-ratio stepping
// (DDA), integer error accumulation (Bresenham) and coverage-weighted
// anti-aliasing (Wu). Each returns a lazy sequence of pixels that includes
// both endpoints; a zero-length segment yields exactly one full pixel.
package line

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"strings"

	"github.com/gogpu/gglab"
)

// ErrUnknownStrategy is returned when a strategy name or value is not
// recognized.
var ErrUnknownStrategy = errors.New("line: unknown strategy")

// Strategy selects a line rasterization algorithm.
type Strategy int

const (
	// StrategyDDA steps along the major axis by a constant ratio and rounds.
	StrategyDDA Strategy = iota
	// StrategyBresenham uses integer error accumulation.
	StrategyBresenham
	// StrategyWu emits anti-aliased pixel pairs with fractional coverage.
	StrategyWu
)

var strategyNames = [...]string{
	StrategyDDA:       "dda",
	StrategyBresenham: "bresenham",
	StrategyWu:        "wu",
}

// String returns the lowercase strategy name.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// ParseStrategy parses a strategy name, ignoring case.
func ParseStrategy(name string) (Strategy, error) {
	for i, n := range strategyNames {
		if strings.EqualFold(name, n) {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Draw returns the pixels of the segment (x0, y0)-(x1, y1) rasterized with
// strategy s.
func Draw(s Strategy, x0, y0, x1, y1 int) (iter.Seq[gglab.Pixel], error) {
	var seq iter.Seq[gglab.Pixel]
	switch s {
	case StrategyDDA:
		seq = DDA(x0, y0, x1, y1)
	case StrategyBresenham:
		seq = Bresenham(x0, y0, x1, y1)
	case StrategyWu:
		seq = Wu(x0, y0, x1, y1)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, s)
	}
	gglab.Logger().Debug("line: draw",
		slog.String("strategy", s.String()),
		slog.Int("x0", x0), slog.Int("y0", y0),
		slog.Int("x1", x1), slog.Int("y1", y1))
	return seq, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
