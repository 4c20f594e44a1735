package conic

import (
	"fmt"
	"iter"

	"github.com/gogpu/gglab"
)

// Hyperbola rasterizes the east-west hyperbola x²/a² - y²/b² = 1 centered at
// (cx, cy).
//
// The walk starts at the vertex (a, 0). While the branch is steeper than 45
// degrees it steps y and decides x at the midpoint (x+½, y+1); afterwards it
// steps x and decides y at the midpoint (x+1, y+½). Both decisions use the
// residual F(x, y) = b²x² - a²y² - a²b², which is negative between the
// branches. Points are reflected into the four quadrants.
//
// The curve is unbounded, so the walk stops when either coordinate reaches
// the maximum extent (DefaultMaxExtent unless WithMaxExtent is given). When
// b > a the branch never flattens and only the extent ends the walk.
func Hyperbola(cx, cy, a, b int, opts ...Option) (iter.Seq[gglab.Pixel], error) {
	if a <= 0 || b <= 0 {
		return nil, fmt.Errorf("%w: semi-axes %d, %d", ErrInvalidParameter, a, b)
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	limit := o.maxExtent

	return func(yield func(gglab.Pixel) bool) {
		e := emitter{cx: cx, cy: cy, yield: yield}
		a2, b2 := float64(a)*float64(a), float64(b)*float64(b)
		x, y := a, 0
		if x >= limit {
			e.emit4(x, y)
			return
		}

		d1 := b2*sq(float64(x)+0.5) - a2*sq(float64(y)+1) - a2*b2
		for b2*(float64(x)-0.5) > a2*float64(y+1) && x < limit && y < limit {
			if !e.emit4(x, y) {
				return
			}
			y++
			if d1 < 0 {
				x++
				d1 += 2*b2*float64(x) - 2*a2*float64(y) - a2
			} else {
				d1 += -2*a2*float64(y) - a2
			}
		}

		d2 := b2*sq(float64(x)+1) - a2*sq(float64(y)+0.5) - a2*b2
		for x < limit && y < limit {
			if !e.emit4(x, y) {
				return
			}
			x++
			if d2 > 0 {
				y++
				d2 += 2*b2*float64(x) + b2 - 2*a2*float64(y)
			} else {
				d2 += 2*b2*float64(x) + b2
			}
		}
	}, nil
}
