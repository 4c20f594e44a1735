package gglab

import (
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// LabelSize is the pixel size of labels drawn by DrawLabel.
const LabelSize = 12

// labelFace is the shared Go Regular face used for canvas labels.
// Go Regular covers Latin and Cyrillic, so both status catalogs render.
var labelFace = sync.OnceValues(func() (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("gglab: parse label font: %w", err)
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    LabelSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
})

// DrawLabel draws text with its baseline origin at (x, y).
// It is used for coordinate and status annotations on exported canvases.
func (p *Pixmap) DrawLabel(x, y int, text string, c RGBA) error {
	face, err := labelFace()
	if err != nil {
		return err
	}
	d := font.Drawer{
		Dst:  p,
		Src:  image.NewUniform(c.Color()),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
	return nil
}

// MeasureLabel returns the advance width of text in whole pixels.
func MeasureLabel(text string) (int, error) {
	face, err := labelFace()
	if err != nil {
		return 0, err
	}
	return font.MeasureString(face, text).Ceil(), nil
}
