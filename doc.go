// Package gglab provides the pixel model shared by the gglab drawing tools.
//
// # Overview
//
// gglab is the engine behind a set of interactive drawing tools: a line tool
// (DDA, Bresenham and Wu anti-aliased lines), a conic tool (circle, ellipse,
// hyperbola, parabola) and a curve editor (Hermite, Bézier and uniform cubic
// B-spline through user-placed control points). The window, menus and mouse
// dispatch belong to the host; the engine only turns geometry into pixels and
// polylines.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gglab"
//	    "github.com/gogpu/gglab/line"
//	)
//
//	pm := gglab.NewPixmap(200, 150)
//	pm.Clear(gglab.White)
//	pen := gglab.NewPixmapPlotter(pm, gglab.Black)
//	_, err := gglab.Render(ctx, line.Wu(10, 10, 180, 90), pen)
//
// # Architecture
//
// The module is organized into:
//   - gglab: Point, Pixel, the Plotter sink, Render, Pixmap, RGBA, logging
//   - line, conic: lazy rasterizers returning iter.Seq[Pixel]
//   - linalg, curve: matrix utilities and the cubic curve evaluator
//   - editor, canvas: the control-point editing model and its segment sink
//   - session, status: per-host tool state and localized status messages
//
// Rasterizers buffer nothing: each pixel is yielded as soon as it is
// computed, and the consumer may stop the walk at any pixel. [Render] is the
// standard consumer; it clamps intensities, honors context cancellation
// between pixels and optionally paces the walk for step-by-step debugging.
//
// # Coordinate System
//
// Uses screen coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package gglab
