package gglab

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// Pixmap represents a rectangular pixel buffer.
// It is the raster target the engine's tools draw into; data is stored as
// non-premultiplied RGBA, 4 bytes per pixel.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel.
// Out-of-bounds coordinates are silently ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = uint8(clamp255(c.R * 255))
	p.data[i+1] = uint8(clamp255(c.G * 255))
	p.data[i+2] = uint8(clamp255(c.B * 255))
	p.data[i+3] = uint8(clamp255(c.A * 255))
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// BlendPixel composites c over the existing pixel with the given coverage.
// Coverage is clamped to [0, 1]; a coverage of 1 with an opaque color is
// equivalent to SetPixel.
func (p *Pixmap) BlendPixel(x, y int, c RGBA, coverage float64) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	a := c.A * ClampIntensity(coverage)
	if a <= 0 {
		return
	}
	dst := p.GetPixel(x, y)
	outA := a + dst.A*(1-a)
	if outA == 0 {
		p.SetPixel(x, y, Transparent)
		return
	}
	mix := func(s, d float64) float64 {
		return (s*a + d*dst.A*(1-a)) / outA
	}
	p.SetPixel(x, y, RGBA{
		R: mix(c.R, dst.R),
		G: mix(c.G, dst.G),
		B: mix(c.B, dst.B),
		A: outA,
	})
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	r := uint8(clamp255(c.R * 255))
	g := uint8(clamp255(c.G * 255))
	b := uint8(clamp255(c.B * 255))
	a := uint8(clamp255(c.A * 255))

	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// DrawGrid draws vertical and horizontal grid lines every step pixels,
// skipping the lines on the canvas border.
func (p *Pixmap) DrawGrid(step int, c RGBA) {
	if step <= 0 {
		return
	}
	for x := step; x < p.width; x += step {
		for y := 0; y < p.height; y++ {
			p.SetPixel(x, y, c)
		}
	}
	for y := step; y < p.height; y += step {
		for x := 0; x < p.width; x++ {
			p.SetPixel(x, y, c)
		}
	}
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// Scaled returns the pixmap magnified by an integer zoom factor with
// nearest-neighbor sampling, so every canvas pixel becomes a factor×factor
// block. Factors below 1 are treated as 1.
func (p *Pixmap) Scaled(factor int) *image.NRGBA {
	if factor < 1 {
		factor = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, p.width*factor, p.height*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), p.ToImage(), p.Bounds(), draw.Src, nil)
	return dst
}

// Encode writes the pixmap magnified by factor in the given format
// ("png" or "bmp").
func (p *Pixmap) Encode(w io.Writer, format string, factor int) error {
	img := p.Scaled(factor)
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("gglab: unsupported image format %q", format)
	}
}

// Save writes the pixmap to path, choosing PNG or BMP from the file
// extension.
func (p *Pixmap) Save(path string, factor int) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := p.Encode(f, format, factor); err != nil {
		_ = f.Close()
		return fmt.Errorf("gglab: save %s: %w", path, err)
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Set implements the draw.Image interface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.SetPixel(x, y, FromColor(c))
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
