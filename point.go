package gglab

import "math"

// Point represents a 2D point or vector in canvas coordinates.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Round returns the nearest integer pixel coordinates, rounding half away
// from zero.
func (p Point) Round() (x, y int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

// Pixel is one plotted pixel produced by a rasterizer.
// Intensity is the pixel coverage in [0, 1]; every rasterizer except the
// anti-aliased Wu line emits 1.
type Pixel struct {
	X, Y      int
	Intensity float64
}

// Px creates a fully covered pixel.
func Px(x, y int) Pixel {
	return Pixel{X: x, Y: y, Intensity: 1}
}

// Clamp returns the pixel with its intensity restricted to [0, 1].
// NaN intensity becomes 0.
func (p Pixel) Clamp() Pixel {
	p.Intensity = ClampIntensity(p.Intensity)
	return p
}

// ClampIntensity restricts a coverage value to [0, 1].
func ClampIntensity(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v >= 0:
		return v
	default: // negative or NaN
		return 0
	}
}
