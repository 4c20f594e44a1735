package line

import (
	"iter"
	"math"

	"github.com/gogpu/gglab"
)

func fpart(x float64) float64  { return x - math.Floor(x) }
func rfpart(x float64) float64 { return 1 - fpart(x) }

// Wu rasterizes an anti-aliased segment with Xiaolin Wu's algorithm.
//
// Along the major axis every column gets a pair of pixels straddling the
// line with complementary intensities. Each endpoint cap is weighted by the
// endpoint gap along the major axis; integer endpoints lie exactly on pixel
// centers, so the gap is 1 and the cap pair sums to full coverage. Pixels
// with zero coverage are not emitted, so a grid-aligned line yields only
// full-intensity pixels.
func Wu(x0, y0, x1, y1 int) iter.Seq[gglab.Pixel] {
	return func(yield func(gglab.Pixel) bool) {
		if x0 == x1 && y0 == y1 {
			yield(gglab.Px(x0, y0))
			return
		}

		steep := abs(y1-y0) > abs(x1-x0)
		if steep {
			x0, y0 = y0, x0
			x1, y1 = y1, x1
		}
		if x0 > x1 {
			x0, x1 = x1, x0
			y0, y1 = y1, y0
		}

		fx0, fy0 := float64(x0), float64(y0)
		fx1, fy1 := float64(x1), float64(y1)
		dx, dy := fx1-fx0, fy1-fy0
		gradient := 1.0
		if dx != 0 {
			gradient = dy / dx
		}

		plot := func(x, y int, c float64) bool {
			if c <= 0 {
				return true
			}
			if steep {
				x, y = y, x
			}
			return yield(gglab.Pixel{X: x, Y: y, Intensity: gglab.ClampIntensity(c)})
		}
		pair := func(x int, y, gap float64) bool {
			iy := int(math.Floor(y))
			return plot(x, iy, rfpart(y)*gap) && plot(x, iy+1, fpart(y)*gap)
		}

		// First endpoint.
		xend := math.Round(fx0)
		yend := fy0 + gradient*(xend-fx0)
		xpx1 := int(xend)
		if !pair(xpx1, yend, 1-math.Abs(fx0-xend)) {
			return
		}
		intery := yend + gradient

		// Second endpoint position, plotted after the interior.
		xend2 := math.Round(fx1)
		yend2 := fy1 + gradient*(xend2-fx1)
		xpx2 := int(xend2)

		for x := xpx1 + 1; x < xpx2; x++ {
			if !pair(x, intery, 1) {
				return
			}
			intery += gradient
		}

		pair(xpx2, yend2, 1-math.Abs(fx1-xend2))
	}
}
