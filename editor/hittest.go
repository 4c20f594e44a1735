package editor

import (
	"math"

	"github.com/gogpu/gglab"
)

// TiePolicy decides which point a hit test returns when several points lie
// within the threshold.
type TiePolicy int

const (
	// TieFirst returns the earliest created point in range.
	TieFirst TiePolicy = iota
	// TieLatest returns the most recently created point in range.
	TieLatest
	// TieNearest returns the point closest to the press; equal distances
	// resolve to the earliest point.
	TieNearest
)

// HitTest returns the index of the point within the threshold distance of
// (x, y), resolved by the model's tie policy.
func (m *Model) HitTest(x, y float64) (int, bool) {
	at := gglab.Pt(x, y)
	best, bestDist := -1, math.Inf(1)
	for i, p := range m.points {
		d := p.Point().Distance(at)
		if d >= m.opts.threshold {
			continue
		}
		switch m.opts.tie {
		case TieFirst:
			return i, true
		case TieLatest:
			best = i
		case TieNearest:
			if d < bestDist {
				best, bestDist = i, d
			}
		}
	}
	return best, best >= 0
}
