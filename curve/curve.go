// Package curve evaluates cubic Hermite, Bézier and uniform B-spline curves
// into dense polylines.
//
// Every curve segment is computed in matrix form: the 4×4 basis of the kind
// times the 4×2 geometry matrix of a control window gives the polynomial
// coefficients, which are then sampled at uniformly spaced t in [0, 1] as
// [t³ t² t 1] × coefficients.
package curve

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/gglab"
	"github.com/gogpu/gglab/linalg"
)

var (
	// ErrInsufficientControlPoints is returned when fewer points are given
	// than the kind's minimum window.
	ErrInsufficientControlPoints = errors.New("curve: insufficient control points")

	// ErrInvalidSamples is returned for a sample count below 1.
	ErrInvalidSamples = errors.New("curve: invalid sample count")

	// ErrUnknownKind is returned when a kind name or value is not recognized.
	ErrUnknownKind = errors.New("curve: unknown kind")
)

// DefaultSamples is the number of points each segment is sampled at.
const DefaultSamples = 100

var (
	hermiteBasis = linalg.MustNew(4, 4,
		2, -2, 1, 1,
		-3, 3, -2, -1,
		0, 0, 1, 0,
		1, 0, 0, 0,
	)
	bezierBasis = linalg.MustNew(4, 4,
		-1, 3, -3, 1,
		3, -6, 3, 0,
		-3, 3, 0, 0,
		1, 0, 0, 0,
	)
	bsplineBasis = linalg.MustNew(4, 4,
		-1.0/6, 3.0/6, -3.0/6, 1.0/6,
		3.0/6, -6.0/6, 3.0/6, 0,
		-3.0/6, 0, 3.0/6, 0,
		1.0/6, 4.0/6, 1.0/6, 0,
	)
)

// Basis returns the 4×4 basis matrix of k.
func Basis(k Kind) (linalg.Matrix, error) {
	switch k {
	case Hermite:
		return hermiteBasis, nil
	case Bezier:
		return bezierBasis, nil
	case BSpline:
		return bsplineBasis, nil
	default:
		return linalg.Matrix{}, fmt.Errorf("%w: %v", ErrUnknownKind, k)
	}
}

// geometry maps a 4-point control window to the rows of the geometry matrix.
//
// Hermite windows are (P0, P1, A, B): positions P0 and P1, tangents A-P0 and
// B-P1. Bézier windows keep the click order of the editor, (P0, P3, P1, P2):
// the first two points are the anchors and the last two the handles.
func geometry(k Kind, w []gglab.Point) [4]gglab.Point {
	switch k {
	case Hermite:
		return [4]gglab.Point{w[0], w[1], w[2].Sub(w[0]), w[3].Sub(w[1])}
	case Bezier:
		return [4]gglab.Point{w[0], w[2], w[3], w[1]}
	default:
		return [4]gglab.Point{w[0], w[1], w[2], w[3]}
	}
}

// Coefficients returns the 4×2 coefficient matrix of the segment defined by
// a 4-point window: row i holds the x and y coefficients of t^(3-i).
func Coefficients(k Kind, window []gglab.Point) (linalg.Matrix, error) {
	if len(window) != 4 {
		return linalg.Matrix{}, fmt.Errorf("%w: window of %d points, want 4",
			ErrInsufficientControlPoints, len(window))
	}
	basis, err := Basis(k)
	if err != nil {
		return linalg.Matrix{}, err
	}
	g := geometry(k, window)
	gm, err := linalg.New(4, 2,
		g[0].X, g[0].Y,
		g[1].X, g[1].Y,
		g[2].X, g[2].Y,
		g[3].X, g[3].Y,
	)
	if err != nil {
		return linalg.Matrix{}, err
	}
	return linalg.Multiply(basis, gm)
}

// sample evaluates one segment at samples uniformly spaced parameters.
func sample(k Kind, window []gglab.Point, samples int) ([]gglab.Point, error) {
	coeffs, err := Coefficients(k, window)
	if err != nil {
		return nil, err
	}
	ts := linalg.Linspace(0, 1, samples)
	powers := make([]float64, 0, 4*len(ts))
	for _, t := range ts {
		powers = append(powers, t*t*t, t*t, t, 1)
	}
	tm, err := linalg.New(len(ts), 4, powers...)
	if err != nil {
		return nil, err
	}
	xy, err := linalg.Multiply(tm, coeffs)
	if err != nil {
		return nil, err
	}
	out := make([]gglab.Point, xy.Rows())
	for i := range out {
		out[i] = gglab.Pt(xy.At(i, 0), xy.At(i, 1))
	}
	return out, nil
}

// Windows returns the control windows of a point list.
//
// Hermite and Bézier use the last 4 points. A B-spline with 4 or more points
// is closed into a loop by appending its first 3 points, giving one window
// per point; with exactly 3 points the single window repeats the last point
// and does not wrap; with 2 points there is no window.
func Windows(k Kind, points []gglab.Point) ([][]gglab.Point, error) {
	if _, err := Basis(k); err != nil {
		return nil, err
	}
	n := len(points)
	if n < k.MinPoints() {
		return nil, fmt.Errorf("%w: %v needs %d, got %d",
			ErrInsufficientControlPoints, k, k.MinPoints(), n)
	}
	if k != BSpline {
		return [][]gglab.Point{points[n-4:]}, nil
	}

	switch n {
	case 2:
		return nil, nil
	case 3:
		return [][]gglab.Point{{points[0], points[1], points[2], points[2]}}, nil
	}
	extended := make([]gglab.Point, 0, n+3)
	extended = append(extended, points...)
	extended = append(extended, points[:3]...)
	windows := make([][]gglab.Point, n)
	for i := range windows {
		windows[i] = extended[i : i+4]
	}
	return windows, nil
}

// Segments evaluates every window of points and returns one polyline of
// samples points per segment.
func Segments(k Kind, points []gglab.Point, samples int) ([][]gglab.Point, error) {
	if samples < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSamples, samples)
	}
	windows, err := Windows(k, points)
	if err != nil {
		return nil, err
	}
	segments := make([][]gglab.Point, 0, len(windows))
	for _, w := range windows {
		seg, err := sample(k, w, samples)
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}
	gglab.Logger().Debug("curve: evaluate",
		slog.String("kind", k.String()),
		slog.Int("points", len(points)),
		slog.Int("segments", len(segments)))
	return segments, nil
}

// Evaluate returns the polyline of points under kind k: the segments of
// Segments concatenated in order.
func Evaluate(k Kind, points []gglab.Point, samples int) ([]gglab.Point, error) {
	segments, err := Segments(k, points, samples)
	if err != nil {
		return nil, err
	}
	var out []gglab.Point
	for _, seg := range segments {
		out = append(out, seg...)
	}
	return out, nil
}
