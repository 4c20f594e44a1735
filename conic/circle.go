package conic

import (
	"fmt"
	"iter"

	"github.com/gogpu/gglab"
)

// Circle rasterizes a circle of radius r centered at (cx, cy) with the
// midpoint (Bresenham) circle algorithm.
//
// One octant is walked from (0, r) while x <= y; the integer decision
// variable starts at 3-2r and every step is reflected into all eight
// octants.
func Circle(cx, cy, r int) (iter.Seq[gglab.Pixel], error) {
	if r <= 0 {
		return nil, fmt.Errorf("%w: radius %d", ErrInvalidParameter, r)
	}
	return func(yield func(gglab.Pixel) bool) {
		e := emitter{cx: cx, cy: cy, yield: yield}
		x, y := 0, r
		delta := 3 - 2*r
		for x <= y {
			if !e.emit8(x, y) {
				return
			}
			if delta > 0 {
				y--
				delta += 4*(x-y) + 10
			} else {
				delta += 4*x + 6
			}
			x++
		}
	}, nil
}
