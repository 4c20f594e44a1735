package conic

import (
	"fmt"
	"iter"
	"math"

	"github.com/gogpu/gglab"
)

// Parabola rasterizes the vertical parabola y = x²/(4p) with its vertex at
// (cx, cy), opening upward on screen.
//
// Unlike the other rasterizers this is a direct evaluation: x runs from 0 to
// the maximum extent in unit steps and each rounded point is mirrored
// about the axis. The vertex is emitted once.
func Parabola(cx, cy, p int, opts ...Option) (iter.Seq[gglab.Pixel], error) {
	if p <= 0 {
		return nil, fmt.Errorf("%w: focal parameter %d", ErrInvalidParameter, p)
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	limit := o.maxExtent

	return func(yield func(gglab.Pixel) bool) {
		e := emitter{cx: cx, cy: cy, yield: yield}
		focal := 4 * float64(p)
		for x := 0; x <= limit; x++ {
			y := int(math.Round(float64(x) * float64(x) / focal))
			if !e.emit(x, -y) {
				return
			}
			if x != 0 && !e.emit(-x, -y) {
				return
			}
		}
	}, nil
}
