package gglab

import (
	"image/color"
	"testing"
)

func TestRGBA_Color(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want color.NRGBA
	}{
		{"opaque black", Black, color.NRGBA{0, 0, 0, 255}},
		{"opaque white", White, color.NRGBA{255, 255, 255, 255}},
		{"opaque red", Red, color.NRGBA{255, 0, 0, 255}},
		{"transparent", Transparent, color.NRGBA{0, 0, 0, 0}},
		{"out of range clamps", RGBA{2, -1, 0, 1}, color.NRGBA{255, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Color(); got != tt.want {
				t.Errorf("Color() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#36393F", color.NRGBA{0x36, 0x39, 0x3f, 0xff}},
		{"fff", color.NRGBA{255, 255, 255, 255}},
		{"#00000080", color.NRGBA{0, 0, 0, 0x80}},
		{"bogus", color.NRGBA{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Hex(tt.in).Color(); got != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestGray(t *testing.T) {
	if got := Gray(1).Color(); got != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("Gray(1) = %v, want black", got)
	}
	if got := Gray(0).Color(); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("Gray(0) = %v, want white", got)
	}
	if got := Gray(5).Color(); got != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("Gray(5) = %v, want clamped black", got)
	}
}

func TestRGBA_Roundtrip(t *testing.T) {
	original := RGBA{0.8, 0.3, 0.5, 1}
	roundtripped := FromColor(original.Color())
	const tolerance = 0.005
	if absDiff(original.R, roundtripped.R) > tolerance ||
		absDiff(original.G, roundtripped.G) > tolerance ||
		absDiff(original.B, roundtripped.B) > tolerance ||
		absDiff(original.A, roundtripped.A) > tolerance {
		t.Errorf("roundtrip: %v → %v", original, roundtripped)
	}
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
