package canvas

import (
	"context"
	"errors"
	"testing"

	"github.com/gogpu/gglab"
	"github.com/gogpu/gglab/conic"
	"github.com/gogpu/gglab/curve"
	"github.com/gogpu/gglab/editor"
	"github.com/google/go-cmp/cmp"
)

func TestLineAndRetract(t *testing.T) {
	c := New()
	h1 := c.Line(gglab.Pt(0, 0), gglab.Pt(5, 0), gglab.Red)
	h2 := c.Line(gglab.Pt(0, 1), gglab.Pt(5, 1), gglab.Green)
	h3 := c.Line(gglab.Pt(0, 2), gglab.Pt(5, 2), gglab.Blue)
	if h1 == h2 || h2 == h3 {
		t.Fatalf("handles not unique: %d %d %d", h1, h2, h3)
	}

	c.Retract(h2)
	c.Retract(h2)
	c.Retract(999)

	want := []Segment{
		{Handle: h1, A: gglab.Pt(0, 0), B: gglab.Pt(5, 0), Color: gglab.Red},
		{Handle: h3, A: gglab.Pt(0, 2), B: gglab.Pt(5, 2), Color: gglab.Blue},
	}
	if diff := cmp.Diff(want, c.Segments()); diff != "" {
		t.Errorf("Segments() mismatch (-want +got):\n%s", diff)
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() = %d after Clear", c.Len())
	}
	if h4 := c.Line(gglab.Pt(0, 0), gglab.Pt(1, 1), gglab.Red); h4 <= h3 {
		t.Errorf("handle %d reused after Clear", h4)
	}
}

func TestRender(t *testing.T) {
	c := New()
	c.Line(gglab.Pt(1.2, 2), gglab.Pt(7.6, 2), gglab.Red)

	pm := gglab.NewPixmap(10, 5)
	n, err := c.Render(context.Background(), pm)
	if err != nil {
		t.Fatal(err)
	}
	if n != 8 {
		t.Errorf("plotted %d pixels, want 8", n)
	}
	for x := 0; x < 10; x++ {
		want := gglab.Transparent
		if x >= 1 && x <= 8 {
			want = gglab.Red
		}
		if got := pm.GetPixel(x, 2); got != want {
			t.Errorf("pixel (%d, 2) = %v, want %v", x, got, want)
		}
	}
}

func TestRenderCanceled(t *testing.T) {
	c := New()
	c.Line(gglab.Pt(0, 0), gglab.Pt(9, 9), gglab.Red)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n, err := c.Render(ctx, gglab.NewPixmap(10, 10))
	if !errors.Is(err, context.Canceled) || n != 0 {
		t.Errorf("Render() = %d, %v; want 0, context.Canceled", n, err)
	}
}

func TestEditorIntoCanvas(t *testing.T) {
	c := New()
	m := editor.New(c, editor.WithKind(curve.Bezier), editor.WithSamples(30))
	for _, p := range []gglab.Point{
		gglab.Pt(10, 50), gglab.Pt(90, 50), gglab.Pt(30, 10), gglab.Pt(70, 10),
	} {
		if err := m.Press(p.X, p.Y); err != nil {
			t.Fatal(err)
		}
		m.Release()
	}
	if c.Len() != 29 {
		t.Fatalf("canvas holds %d segments, want 29", c.Len())
	}

	pm := gglab.NewPixmap(100, 60)
	if _, err := c.Render(context.Background(), pm); err != nil {
		t.Fatal(err)
	}
	for _, p := range []struct{ x, y int }{{10, 50}, {90, 50}} {
		if got := pm.GetPixel(p.x, p.y); got != gglab.Purple {
			t.Errorf("endpoint (%d, %d) = %v, want purple", p.x, p.y, got)
		}
	}

	m.Clear()
	if c.Len() != 0 {
		t.Errorf("canvas holds %d segments after editor Clear", c.Len())
	}
}

func TestDrawMarker(t *testing.T) {
	pm := gglab.NewPixmap(40, 40)
	if err := DrawMarker(context.Background(), pm, gglab.Pt(20.4, 19.6), 5, gglab.Blue); err != nil {
		t.Fatal(err)
	}
	for _, p := range []struct{ x, y int }{{25, 20}, {15, 20}, {20, 25}, {20, 15}} {
		if got := pm.GetPixel(p.x, p.y); got != gglab.Blue {
			t.Errorf("marker pixel (%d, %d) = %v, want blue", p.x, p.y, got)
		}
	}
	if got := pm.GetPixel(20, 20); got != gglab.Transparent {
		t.Errorf("marker center = %v, want transparent", got)
	}

	err := DrawMarker(context.Background(), pm, gglab.Pt(5, 5), 0, gglab.Blue)
	if !errors.Is(err, conic.ErrInvalidParameter) {
		t.Errorf("DrawMarker(radius 0) error = %v, want ErrInvalidParameter", err)
	}
}
