// Package editor implements the control-point editing model of the curve
// tool.
//
// A Model owns the ordered list of control points placed by the user,
// answers hit tests, tracks the selected point while it is dragged, and
// re-evaluates the curve into a segment sink after every change. Hermite and
// Bézier curves use a fixed window of the last 4 points, so once 4 points
// exist further presses only select; B-splines grow without limit.
//
// A Model is not safe for concurrent use.
package editor

import (
	"log/slog"
	"slices"

	"github.com/gogpu/gglab"
	"github.com/gogpu/gglab/curve"
)

// Defaults of the editing model.
const (
	DefaultThreshold   = 10
	DefaultPointRadius = 5
)

// State is the interaction state of a Model.
type State int

const (
	// Idle means no point is selected.
	Idle State = iota
	// Selected means a press hit a point; the next motion starts a drag.
	Selected
	// Dragging means motion events are moving the selected point.
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Selected:
		return "selected"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// ControlPoint is a user-placed curve control point.
type ControlPoint struct {
	X, Y   float64
	Radius float64
	Color  gglab.RGBA
}

// Point returns the position of the control point.
func (c ControlPoint) Point() gglab.Point {
	return gglab.Pt(c.X, c.Y)
}

// Model is the control-point editing state machine.
type Model struct {
	sink gglab.SegmentSink
	opts options

	kind         curve.Kind
	points       []ControlPoint
	selected     int
	dragging     bool
	limitReached bool
	handles      []gglab.SegmentHandle
}

// New returns an empty model emitting curve segments into sink.
func New(sink gglab.SegmentSink, opts ...Option) *Model {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Model{
		sink:     sink,
		opts:     o,
		kind:     o.kind,
		selected: -1,
	}
}

// Kind returns the current curve kind.
func (m *Model) Kind() curve.Kind { return m.kind }

// State returns the interaction state.
func (m *Model) State() State {
	switch {
	case m.selected < 0:
		return Idle
	case m.dragging:
		return Dragging
	default:
		return Selected
	}
}

// Selected returns the index of the selected point.
func (m *Model) Selected() (int, bool) {
	return m.selected, m.selected >= 0
}

// LimitReached reports whether the 4-point window of a Hermite or Bézier
// curve is full, so presses only select.
func (m *Model) LimitReached() bool { return m.limitReached }

// Points returns a copy of the control points in creation order.
func (m *Model) Points() []ControlPoint {
	return slices.Clone(m.points)
}

// Len returns the number of control points.
func (m *Model) Len() int { return len(m.points) }

// SegmentCount returns the number of segments currently emitted.
func (m *Model) SegmentCount() int { return len(m.handles) }

// Press handles a placement press at (x, y).
//
// A press on an existing point selects it. Otherwise, unless the window of a
// Hermite or Bézier curve is full, a new point is appended and the curve is
// redrawn. A press that misses everything clears the selection.
func (m *Model) Press(x, y float64) error {
	if m.kind.Capped() && len(m.points) >= 4 {
		m.limitReached = true
	}

	if i, ok := m.HitTest(x, y); ok {
		m.selected = i
		m.dragging = false
		return nil
	}
	m.selected = -1
	m.dragging = false
	if m.limitReached {
		return nil
	}

	m.points = append(m.points, ControlPoint{
		X:      x,
		Y:      y,
		Radius: m.opts.radius,
		Color:  m.opts.pointColor,
	})
	if len(m.points) < 2 {
		return nil
	}
	if err := m.Redraw(); err != nil {
		m.points = m.points[:len(m.points)-1]
		return err
	}
	return nil
}

// Drag moves the selected point to (x, y) and redraws the curve.
// It does nothing when no point is selected. If the curve cannot be
// evaluated the point keeps its previous position.
func (m *Model) Drag(x, y float64) error {
	if m.selected < 0 {
		return nil
	}
	m.dragging = true
	p := &m.points[m.selected]
	oldX, oldY := p.X, p.Y
	p.X, p.Y = x, y
	if err := m.Redraw(); err != nil {
		p.X, p.Y = oldX, oldY
		return err
	}
	return nil
}

// Release ends a drag and clears the selection. Points are unchanged.
func (m *Model) Release() {
	m.selected = -1
	m.dragging = false
}

// SetKind switches the curve kind, keeping the points, and redraws.
// The window limit is re-evaluated on the next press.
func (m *Model) SetKind(k curve.Kind) error {
	if _, err := curve.Basis(k); err != nil {
		return err
	}
	m.kind = k
	m.limitReached = false
	gglab.Logger().Info("editor: curve kind selected", slog.String("kind", k.String()))
	return m.Redraw()
}

// Clear retracts every emitted segment and removes all points.
func (m *Model) Clear() {
	m.retract()
	m.points = nil
	m.selected = -1
	m.dragging = false
	m.limitReached = false
	gglab.Logger().Info("editor: cleared")
}

func (m *Model) retract() {
	for _, h := range m.handles {
		m.sink.Retract(h)
	}
	m.handles = m.handles[:0]
}

// Redraw evaluates the curve for the current points and kind, then replaces
// the previously emitted segments with one segment per pair of consecutive
// samples. Fewer points than the kind needs clear the curve. When evaluation
// fails the emitted segments are left untouched.
func (m *Model) Redraw() error {
	var segments [][]gglab.Point
	if len(m.points) >= m.kind.MinPoints() {
		pts := make([]gglab.Point, len(m.points))
		for i, p := range m.points {
			pts[i] = p.Point()
		}
		var err error
		if segments, err = curve.Segments(m.kind, pts, m.opts.samples); err != nil {
			return err
		}
	}

	m.retract()
	c := m.opts.curveColor(m.kind)
	for _, seg := range segments {
		for i := 1; i < len(seg); i++ {
			m.handles = append(m.handles, m.sink.Line(seg[i-1], seg[i], c))
		}
	}
	gglab.Logger().Debug("editor: redraw",
		slog.String("kind", m.kind.String()),
		slog.Int("points", len(m.points)),
		slog.Int("segments", len(m.handles)))
	return nil
}
