package line

import (
	"iter"
	"math"

	"github.com/gogpu/gglab"
)

// DDA rasterizes a segment with the digital differential analyzer.
//
// The walk takes steps = max(|dx|, |dy|) unit steps along the major axis and
// emits steps+1 pixels, each at the rounded position of the running
// coordinate. Positions are computed from the step index rather than by
// repeated addition, so the last pixel is exactly (x1, y1) and the pixel set
// does not depend on the direction of the walk.
func DDA(x0, y0, x1, y1 int) iter.Seq[gglab.Pixel] {
	return func(yield func(gglab.Pixel) bool) {
		dx, dy := x1-x0, y1-y0
		steps := max(abs(dx), abs(dy))
		if steps == 0 {
			yield(gglab.Px(x0, y0))
			return
		}

		n := float64(steps)
		for i := 0; i <= steps; i++ {
			x := float64(x0) + float64(i*dx)/n
			y := float64(y0) + float64(i*dy)/n
			if !yield(gglab.Px(int(math.Round(x)), int(math.Round(y)))) {
				return
			}
		}
	}
}
