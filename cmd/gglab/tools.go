package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogpu/gglab"
	"github.com/gogpu/gglab/canvas"
	"github.com/gogpu/gglab/conic"
	"github.com/gogpu/gglab/curve"
	"github.com/gogpu/gglab/editor"
	"github.com/gogpu/gglab/line"
	"github.com/gogpu/gglab/session"
	"github.com/gogpu/gglab/status"
)

// runLine replays the clicks through the two-click line tool. The canvas is
// width/zoom by height/zoom pixels and is exported magnified by the zoom.
func runLine(ctx context.Context, cfg config, rep *status.Reporter) (*gglab.Pixmap, int, []string, error) {
	clicks, err := parsePoints(cfg.clicks)
	if err != nil {
		return nil, 0, nil, err
	}

	scale := max(cfg.zoom, session.MinScale)
	pm := gglab.NewPixmap(
		max(int(float64(cfg.width)/scale), 1),
		max(int(float64(cfg.height)/scale), 1))
	pm.Clear(gglab.CanvasBackground)
	sess := session.New(pm, session.WithScale(scale), session.WithColor(gglab.White))

	lines := []string{rep.Zoom(sess.Scale())}
	if cfg.debug > 0 {
		sess.SetDebug(true, cfg.debug)
		lines = append(lines, rep.DebugMode(true))
	}
	if cfg.strategy != "" {
		st, err := line.ParseStrategy(cfg.strategy)
		if err != nil {
			return pm, sess.ExportFactor(), lines, err
		}
		sess.SelectStrategy(st)
		lines = append(lines, rep.AlgorithmSelected(st))
	}

	for _, c := range clicks {
		res, err := sess.Click(ctx, c.X, c.Y)
		if err != nil {
			if errors.Is(err, session.ErrNoStrategy) {
				lines = append(lines, rep.NoAlgorithm())
			}
			return pm, sess.ExportFactor(), lines, err
		}
		if res.Drawn {
			lines = append(lines, rep.Segment(res.X0, res.Y0, res.X1, res.Y1))
		} else {
			lines = append(lines, rep.StartPoint(res.X0, res.Y0))
		}
	}
	return pm, sess.ExportFactor(), lines, nil
}

// runConic draws one conic over the background grid.
func runConic(ctx context.Context, cfg config, rep *status.Reporter) (*gglab.Pixmap, int, []string, error) {
	pm := gglab.NewPixmap(cfg.width, cfg.height)
	pm.Clear(gglab.CanvasBackground)
	pm.DrawGrid(cfg.grid, gglab.CanvasGrid)

	shape, err := conic.ParseShape(cfg.shape)
	if err != nil {
		return pm, 1, nil, err
	}
	sess := session.New(pm,
		session.WithShape(shape),
		session.WithColor(gglab.White),
		session.WithMaxExtent(cfg.extent))
	lines := []string{rep.ShapeSelected(shape)}
	if cfg.debug > 0 {
		sess.SetDebug(true, cfg.debug)
		lines = append(lines, rep.DebugMode(true))
	}

	cx, cy := cfg.width/2, cfg.height/2
	if cfg.center != "" {
		pts, err := parsePoints(cfg.center)
		if err != nil {
			return pm, 1, lines, err
		}
		if len(pts) != 1 {
			return pm, 1, lines, fmt.Errorf("center: want one x,y pair, got %d", len(pts))
		}
		cx, cy = pts[0].Round()
	}

	p1, p2 := cfg.p1, cfg.p2
	if p1 <= 0 || (p2 <= 0 && (shape == conic.ShapeEllipse || shape == conic.ShapeHyperbola)) {
		p1, p2 = defaultP1, defaultP2
		lines = append(lines, rep.InvalidSizes(p1, p2))
	}
	if _, err := sess.DrawConic(ctx, cx, cy, p1, p2); err != nil {
		return pm, 1, lines, err
	}
	return pm, 1, append(lines, rep.ShapeClick(shape, cx, cy)), nil
}

// runCurve places the clicks as control points, applies the drags, and
// renders the curve with its control-point markers.
func runCurve(ctx context.Context, cfg config, rep *status.Reporter) (*gglab.Pixmap, int, []string, error) {
	pm := gglab.NewPixmap(cfg.width, cfg.height)
	pm.Clear(gglab.CanvasBackground)

	kind, err := curve.ParseKind(cfg.kind)
	if err != nil {
		return pm, 1, nil, err
	}
	cv := canvas.New()
	model := editor.New(cv, editor.WithKind(kind), editor.WithSamples(cfg.samples))
	lines := []string{rep.CurveKindSelected(kind)}

	clicks, err := parsePoints(cfg.clicks)
	if err != nil {
		return pm, 1, lines, err
	}
	for _, c := range clicks {
		if err := model.Press(c.X, c.Y); err != nil {
			return pm, 1, lines, err
		}
		model.Release()
	}

	drags, err := parseDrags(cfg.drag)
	if err != nil {
		return pm, 1, lines, err
	}
	for _, d := range drags {
		if err := model.Press(d[0].X, d[0].Y); err != nil {
			return pm, 1, lines, err
		}
		if err := model.Drag(d[1].X, d[1].Y); err != nil {
			return pm, 1, lines, err
		}
		model.Release()
	}

	var opts []gglab.RenderOption
	if cfg.debug > 0 {
		opts = append(opts, gglab.WithPacing(cfg.debug))
		lines = append(lines, rep.DebugMode(true))
	}
	if _, err := cv.Render(ctx, pm, opts...); err != nil {
		return pm, 1, lines, err
	}
	for _, p := range model.Points() {
		if err := canvas.DrawMarker(ctx, pm, p.Point(), p.Radius, p.Color); err != nil {
			return pm, 1, lines, err
		}
	}
	return pm, 1, lines, nil
}
