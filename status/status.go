// Package status formats the user-facing status line of the drawing tools in
// English or Russian.
package status

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. The English text doubles as the key.
const (
	keyAlgorithm   = "Algorithm selected: %s"
	keyDebugOn     = "Debug mode: ON"
	keyDebugOff    = "Debug mode: OFF"
	keyStart       = "Start point: (%d, %d)"
	keySegment     = "Segment: (%d, %d) -> (%d, %d)"
	keyZoom        = "Zoom: %.2f"
	keyNoAlgorithm = "Select a line algorithm first"
	keyShape       = "Shape selected: %s"
	keyShapeClick  = "%s: (x=%d, y=%d)"
	keyBadSizes    = "Invalid sizes, using defaults (%d, %d)"
	keyCurveKind   = "Curve kind selected: %s"
	keyCleared     = "Canvas cleared"
)

var russian = map[string]string{
	keyAlgorithm:   "Выбран алгоритм: %s",
	keyDebugOn:     "Отладочный режим: ВКЛ",
	keyDebugOff:    "Отладочный режим: ВЫКЛ",
	keyStart:       "Начальная точка: (%d, %d)",
	keySegment:     "Отрезок: (%d, %d) -> (%d, %d)",
	keyZoom:        "Масштаб: %.2f",
	keyNoAlgorithm: "Сначала выберите алгоритм построения отрезка",
	keyShape:       "Выбрана фигура: %s",
	keyShapeClick:  "%s: (x=%d, y=%d)",
	keyBadSizes:    "Некорректные размеры, используются значения по умолчанию (%d, %d)",
	keyCurveKind:   "Выбран тип кривой: %s",
	keyCleared:     "Очистка полотна",
}

// Supported lists the languages with a message catalog; the first is the
// fallback.
var Supported = []language.Tag{language.English, language.Russian}

var (
	messages = newCatalog()
	matcher  = language.NewMatcher(Supported)
)

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, ru := range russian {
		if err := b.SetString(language.English, key, key); err != nil {
			panic(fmt.Sprintf("status: %v", err))
		}
		if err := b.SetString(language.Russian, key, ru); err != nil {
			panic(fmt.Sprintf("status: %v", err))
		}
	}
	return b
}

// Reporter formats status messages for one language.
type Reporter struct {
	tag language.Tag
	p   *message.Printer
}

// New returns a reporter for the supported language closest to tag.
func New(tag language.Tag) *Reporter {
	_, i, _ := matcher.Match(tag)
	t := Supported[i]
	return &Reporter{tag: t, p: message.NewPrinter(t, message.Catalog(messages))}
}

// Parse returns a reporter for a BCP 47 language name such as "en" or
// "ru-RU".
func Parse(lang string) (*Reporter, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}
	return New(tag), nil
}

// Language returns the language the reporter formats in.
func (r *Reporter) Language() language.Tag { return r.tag }

// AlgorithmSelected reports the line strategy chosen for the line tool.
func (r *Reporter) AlgorithmSelected(s fmt.Stringer) string {
	return r.p.Sprintf(keyAlgorithm, s.String())
}

// DebugMode reports the debug mode toggle.
func (r *Reporter) DebugMode(on bool) string {
	if on {
		return r.p.Sprintf(keyDebugOn)
	}
	return r.p.Sprintf(keyDebugOff)
}

// StartPoint reports the first click of the line tool.
func (r *Reporter) StartPoint(x, y int) string {
	return r.p.Sprintf(keyStart, x, y)
}

// Segment reports a drawn line segment.
func (r *Reporter) Segment(x0, y0, x1, y1 int) string {
	return r.p.Sprintf(keySegment, x0, y0, x1, y1)
}

// Zoom reports the current zoom factor.
func (r *Reporter) Zoom(scale float64) string {
	return r.p.Sprintf(keyZoom, scale)
}

// NoAlgorithm warns about a line click before a strategy was chosen.
func (r *Reporter) NoAlgorithm() string {
	return r.p.Sprintf(keyNoAlgorithm)
}

// ShapeSelected reports the conic chosen for the conic tool.
func (r *Reporter) ShapeSelected(s fmt.Stringer) string {
	return r.p.Sprintf(keyShape, s.String())
}

// ShapeClick reports a conic drawn at (x, y).
func (r *Reporter) ShapeClick(s fmt.Stringer, x, y int) string {
	return r.p.Sprintf(keyShapeClick, s.String(), x, y)
}

// InvalidSizes reports that conic sizes were rejected and defaults used.
func (r *Reporter) InvalidSizes(p1, p2 int) string {
	return r.p.Sprintf(keyBadSizes, p1, p2)
}

// CurveKindSelected reports the curve kind chosen in the curve editor.
func (r *Reporter) CurveKindSelected(k fmt.Stringer) string {
	return r.p.Sprintf(keyCurveKind, k.String())
}

// Cleared reports a cleared canvas.
func (r *Reporter) Cleared() string {
	return r.p.Sprintf(keyCleared)
}
