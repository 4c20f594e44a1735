package conic

import (
	"fmt"
	"iter"

	"github.com/gogpu/gglab"
)

// Ellipse rasterizes an axis-aligned ellipse with semi-axes a (horizontal)
// and b (vertical) centered at (cx, cy) with the two-region midpoint
// algorithm.
//
// Region 1 starts at (0, b) and steps x while the boundary is flatter than
// 45 degrees; region 2 continues from there stepping y down to 0. On very
// flat ellipses region 2 reaches y = 0 before x = a, so the remaining run
// along the major axis is emitted up to (a, 0). Each point is reflected into
// the four quadrants.
//
// An ellipse with one zero semi-axis is degenerate and renders as the run of
// points along the other axis. Negative semi-axes, or both zero, return
// ErrInvalidParameter.
func Ellipse(cx, cy, a, b int) (iter.Seq[gglab.Pixel], error) {
	if a < 0 || b < 0 || (a == 0 && b == 0) {
		return nil, fmt.Errorf("%w: semi-axes %d, %d", ErrInvalidParameter, a, b)
	}
	if a == 0 || b == 0 {
		return axisRun(cx, cy, a, b), nil
	}
	return func(yield func(gglab.Pixel) bool) {
		e := emitter{cx: cx, cy: cy, yield: yield}
		a2, b2 := float64(a)*float64(a), float64(b)*float64(b)
		x, y := 0, b

		d1 := b2 - a2*float64(b) + 0.25*a2
		for a2*(float64(y)-0.5) > b2*float64(x+1) {
			if !e.emit4(x, y) {
				return
			}
			x++
			if d1 < 0 {
				d1 += 2*b2*float64(x) + b2
			} else {
				y--
				d1 += 2*b2*float64(x) - 2*a2*float64(y) + b2
			}
		}

		d2 := b2*sq(float64(x)+0.5) + a2*sq(float64(y)-1) - a2*b2
		end := x
		for y >= 0 {
			if !e.emit4(x, y) {
				return
			}
			if y == 0 {
				end = x
			}
			y--
			if d2 > 0 {
				d2 += a2 - 2*a2*float64(y)
			} else {
				x++
				d2 += 2*b2*float64(x) - 2*a2*float64(y) + a2
			}
		}
		for x := end + 1; x <= a; x++ {
			if !e.emit4(x, 0) {
				return
			}
		}
	}, nil
}

// axisRun emits the collapsed ellipse: a horizontal run of half-length a
// when b is zero, or a vertical run of half-length b when a is zero.
func axisRun(cx, cy, a, b int) iter.Seq[gglab.Pixel] {
	return func(yield func(gglab.Pixel) bool) {
		e := emitter{cx: cx, cy: cy, yield: yield}
		for i := 0; i <= max(a, b); i++ {
			x, y := i, 0
			if a == 0 {
				x, y = 0, i
			}
			if !e.emit(x, y) {
				return
			}
			if i != 0 && !e.emit(-x, -y) {
				return
			}
		}
	}
}
