package line

import (
	"iter"

	"github.com/gogpu/gglab"
)

// Bresenham rasterizes a segment with integer error accumulation.
//
// The loop runs until the current point equals the end point, which it
// always reaches: every iteration moves at least one coordinate one step
// closer to the end. Endpoints are walked in canonical order (smaller x
// first, then smaller y) so reversing them yields the same pixel set.
func Bresenham(x0, y0, x1, y1 int) iter.Seq[gglab.Pixel] {
	return func(yield func(gglab.Pixel) bool) {
		if x1 < x0 || (x1 == x0 && y1 < y0) {
			x0, y0, x1, y1 = x1, y1, x0, y0
		}

		dx := abs(x1 - x0)
		dy := abs(y1 - y0)
		sx, sy := 1, 1
		if x0 > x1 {
			sx = -1
		}
		if y0 > y1 {
			sy = -1
		}
		err := dx - dy

		for {
			if !yield(gglab.Px(x0, y0)) {
				return
			}
			if x0 == x1 && y0 == y1 {
				return
			}
			e2 := 2 * err
			if e2 > -dy {
				err -= dy
				x0 += sx
			}
			if e2 < dx {
				err += dx
				y0 += sy
			}
		}
	}
}
