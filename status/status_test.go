package status

import (
	"testing"

	"github.com/gogpu/gglab/conic"
	"github.com/gogpu/gglab/curve"
	"github.com/gogpu/gglab/line"
	"golang.org/x/text/language"
)

func TestMessages(t *testing.T) {
	en := New(language.English)
	ru := New(language.Russian)

	tests := []struct {
		name   string
		msg    func(*Reporter) string
		wantEn string
		wantRu string
	}{
		{
			name:   "algorithm",
			msg:    func(r *Reporter) string { return r.AlgorithmSelected(line.StrategyWu) },
			wantEn: "Algorithm selected: wu",
			wantRu: "Выбран алгоритм: wu",
		},
		{
			name:   "debug on",
			msg:    func(r *Reporter) string { return r.DebugMode(true) },
			wantEn: "Debug mode: ON",
			wantRu: "Отладочный режим: ВКЛ",
		},
		{
			name:   "debug off",
			msg:    func(r *Reporter) string { return r.DebugMode(false) },
			wantEn: "Debug mode: OFF",
			wantRu: "Отладочный режим: ВЫКЛ",
		},
		{
			name:   "start point",
			msg:    func(r *Reporter) string { return r.StartPoint(12, 7) },
			wantEn: "Start point: (12, 7)",
			wantRu: "Начальная точка: (12, 7)",
		},
		{
			name:   "segment",
			msg:    func(r *Reporter) string { return r.Segment(1, 2, 30, 40) },
			wantEn: "Segment: (1, 2) -> (30, 40)",
			wantRu: "Отрезок: (1, 2) -> (30, 40)",
		},
		{
			name:   "shape click",
			msg:    func(r *Reporter) string { return r.ShapeClick(conic.ShapeHyperbola, 5, 6) },
			wantEn: "hyperbola: (x=5, y=6)",
			wantRu: "hyperbola: (x=5, y=6)",
		},
		{
			name:   "curve kind",
			msg:    func(r *Reporter) string { return r.CurveKindSelected(curve.BSpline) },
			wantEn: "Curve kind selected: " + curve.BSpline.String(),
			wantRu: "Выбран тип кривой: " + curve.BSpline.String(),
		},
		{
			name:   "cleared",
			msg:    func(r *Reporter) string { return r.Cleared() },
			wantEn: "Canvas cleared",
			wantRu: "Очистка полотна",
		},
		{
			name:   "no algorithm",
			msg:    func(r *Reporter) string { return r.NoAlgorithm() },
			wantEn: "Select a line algorithm first",
			wantRu: "Сначала выберите алгоритм построения отрезка",
		},
		{
			name:   "invalid sizes",
			msg:    func(r *Reporter) string { return r.InvalidSizes(100, 50) },
			wantEn: "Invalid sizes, using defaults (100, 50)",
			wantRu: "Некорректные размеры, используются значения по умолчанию (100, 50)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.msg(en); got != tt.wantEn {
				t.Errorf("en = %q, want %q", got, tt.wantEn)
			}
			if got := tt.msg(ru); got != tt.wantRu {
				t.Errorf("ru = %q, want %q", got, tt.wantRu)
			}
		})
	}
}

func TestZoomEnglish(t *testing.T) {
	if got, want := New(language.English).Zoom(4), "Zoom: 4.00"; got != want {
		t.Errorf("Zoom(4) = %q, want %q", got, want)
	}
}

func TestLanguageMatching(t *testing.T) {
	tests := []struct {
		in   string
		want language.Tag
	}{
		{"en", language.English},
		{"en-GB", language.English},
		{"ru", language.Russian},
		{"ru-RU", language.Russian},
		{"ja", language.English},
	}
	for _, tt := range tests {
		r, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", tt.in, err)
		}
		if base, _ := r.Language().Base(); base != mustBase(tt.want) {
			t.Errorf("Parse(%q).Language() = %v, want %v", tt.in, r.Language(), tt.want)
		}
	}
	if _, err := Parse("not a tag!"); err == nil {
		t.Error("Parse(invalid) succeeded")
	}
}

func mustBase(t language.Tag) language.Base {
	b, _ := t.Base()
	return b
}
