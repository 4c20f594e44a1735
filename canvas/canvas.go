// Package canvas provides a retained segment store that implements
// gglab.SegmentSink and flattens its live segments into a Pixmap.
package canvas

import (
	"context"
	"log/slog"
	"maps"
	"math"
	"slices"

	"github.com/gogpu/gglab"
	"github.com/gogpu/gglab/conic"
	"github.com/gogpu/gglab/line"
)

// Segment is a straight segment held by a Canvas.
type Segment struct {
	Handle gglab.SegmentHandle
	A, B   gglab.Point
	Color  gglab.RGBA
}

// Canvas stores live segments by handle.
// The zero value is not usable; create one with New.
type Canvas struct {
	next     gglab.SegmentHandle
	segments map[gglab.SegmentHandle]Segment
}

// New returns an empty canvas.
func New() *Canvas {
	return &Canvas{segments: make(map[gglab.SegmentHandle]Segment)}
}

// Line implements gglab.SegmentSink.
func (c *Canvas) Line(a, b gglab.Point, col gglab.RGBA) gglab.SegmentHandle {
	c.next++
	c.segments[c.next] = Segment{Handle: c.next, A: a, B: b, Color: col}
	return c.next
}

// Retract implements gglab.SegmentSink.
func (c *Canvas) Retract(h gglab.SegmentHandle) {
	delete(c.segments, h)
}

// Len returns the number of live segments.
func (c *Canvas) Len() int { return len(c.segments) }

// Segments returns the live segments in the order they were added.
func (c *Canvas) Segments() []Segment {
	out := make([]Segment, 0, len(c.segments))
	for _, h := range slices.Sorted(maps.Keys(c.segments)) {
		out = append(out, c.segments[h])
	}
	return out
}

// Clear drops every segment. Handles are never reused.
func (c *Canvas) Clear() {
	clear(c.segments)
}

// Render rasterizes the live segments into pm with the Bresenham strategy,
// oldest first, and returns the number of pixels plotted.
func (c *Canvas) Render(ctx context.Context, pm *gglab.Pixmap, opts ...gglab.RenderOption) (int, error) {
	total := 0
	for _, s := range c.Segments() {
		x0, y0 := s.A.Round()
		x1, y1 := s.B.Round()
		seq, err := line.Draw(line.StrategyBresenham, x0, y0, x1, y1)
		if err != nil {
			return total, err
		}
		n, err := gglab.Render(ctx, seq, gglab.NewPixmapPlotter(pm, s.Color), opts...)
		total += n
		if err != nil {
			return total, err
		}
	}
	gglab.Logger().Debug("canvas: render",
		slog.Int("segments", len(c.segments)),
		slog.Int("pixels", total))
	return total, nil
}

// DrawMarker draws a circular control-point marker of the given radius
// centered at p.
func DrawMarker(ctx context.Context, pm *gglab.Pixmap, p gglab.Point, radius float64, col gglab.RGBA) error {
	cx, cy := p.Round()
	seq, err := conic.Circle(cx, cy, int(math.Round(radius)))
	if err != nil {
		return err
	}
	_, err = gglab.Render(ctx, seq, gglab.NewPixmapPlotter(pm, col))
	return err
}
