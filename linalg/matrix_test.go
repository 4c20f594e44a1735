package linalg

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNew(t *testing.T) {
	m, err := New(2, 3, 1, 2, 3, 4, 5, 6)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if m.Rows() != 2 || m.Cols() != 3 {
		t.Fatalf("dims = %dx%d, want 2x3", m.Rows(), m.Cols())
	}
	if got := m.At(1, 0); got != 4 {
		t.Errorf("At(1, 0) = %v, want 4", got)
	}
	if d := cmp.Diff([]float64{3, 6}, m.Column(2)); d != "" {
		t.Errorf("Column(2) mismatch (-want +got):\n%s", d)
	}
}

func TestNewDoesNotAlias(t *testing.T) {
	values := []float64{1, 2, 3, 4}
	m := MustNew(2, 2, values...)
	values[0] = 99
	if m.At(0, 0) != 1 {
		t.Error("matrix aliases the input slice")
	}
}

func TestNewDimensionError(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		values     []float64
	}{
		{"too few", 2, 2, []float64{1, 2, 3}},
		{"too many", 1, 2, []float64{1, 2, 3}},
		{"zero rows", 0, 2, nil},
		{"negative cols", 2, -1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.rows, tt.cols, tt.values...); !errors.Is(err, ErrDimension) {
				t.Errorf("New() error = %v, want ErrDimension", err)
			}
		})
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew did not panic")
		}
	}()
	MustNew(2, 2, 1)
}

func TestMultiply(t *testing.T) {
	a := MustNew(2, 3, 1, 2, 3, 4, 5, 6)
	b := MustNew(3, 2, 7, 8, 9, 10, 11, 12)
	got, err := Multiply(a, b)
	if err != nil {
		t.Fatalf("Multiply() error = %v", err)
	}
	want := MustNew(2, 2, 58, 64, 139, 154)
	if got.String() != want.String() {
		t.Errorf("Multiply() =\n%v\nwant\n%v", got, want)
	}
}

func TestMultiplyColumnVector(t *testing.T) {
	basis := MustNew(4, 4,
		-1, 3, -3, 1,
		3, -6, 3, 0,
		-3, 3, 0, 0,
		1, 0, 0, 0,
	)
	v := MustNew(4, 1, 0, 1, 2, 3)
	got, err := Multiply(basis, v)
	if err != nil {
		t.Fatalf("Multiply() error = %v", err)
	}
	if d := cmp.Diff([]float64{0, 0, 3, 0}, got.Column(0)); d != "" {
		t.Errorf("coefficients mismatch (-want +got):\n%s", d)
	}
}

func TestMultiplyDimensionError(t *testing.T) {
	a := MustNew(2, 3, 1, 2, 3, 4, 5, 6)
	if _, err := Multiply(a, a); !errors.Is(err, ErrDimension) {
		t.Errorf("Multiply(2x3, 2x3) error = %v, want ErrDimension", err)
	}
	if _, err := Multiply(Matrix{}, Matrix{}); !errors.Is(err, ErrDimension) {
		t.Errorf("Multiply(zero, zero) error = %v, want ErrDimension", err)
	}
}

func TestMultiplyAssociative(t *testing.T) {
	a := MustNew(2, 3, 0.5, -1, 2, 3, 0.25, -4)
	b := MustNew(3, 4, 1, 2, 3, 4, -1, 0.5, 6, 2, 7, -3, 0, 1.5)
	c := MustNew(4, 2, 2, -1, 0, 3, 1.25, 1, -2, 0.75)

	ab, err := Multiply(a, b)
	if err != nil {
		t.Fatal(err)
	}
	left, err := Multiply(ab, c)
	if err != nil {
		t.Fatal(err)
	}
	bc, err := Multiply(b, c)
	if err != nil {
		t.Fatal(err)
	}
	right, err := Multiply(a, bc)
	if err != nil {
		t.Fatal(err)
	}

	approx := cmpopts.EquateApprox(0, 1e-9)
	for j := 0; j < left.Cols(); j++ {
		if d := cmp.Diff(left.Column(j), right.Column(j), approx); d != "" {
			t.Errorf("column %d differs (-(AB)C +A(BC)):\n%s", j, d)
		}
	}
}

func TestLinspace(t *testing.T) {
	got := Linspace(0, 1, 100)
	if len(got) != 100 {
		t.Fatalf("len = %d, want 100", len(got))
	}
	if got[0] != 0 || got[99] != 1 {
		t.Errorf("endpoints = %v, %v; want 0, 1", got[0], got[99])
	}
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Fatalf("not strictly increasing at %d: %v <= %v", i, got[i], got[i-1])
		}
		if step := got[i] - got[i-1]; math.Abs(step-1.0/99) > 1e-12 {
			t.Errorf("step %d = %v, want %v", i, step, 1.0/99)
		}
	}
}

func TestLinspaceSmall(t *testing.T) {
	if d := cmp.Diff([]float64{2.5}, Linspace(2.5, 9, 1)); d != "" {
		t.Errorf("Linspace(n=1) mismatch:\n%s", d)
	}
	if got := Linspace(0, 1, 0); got != nil {
		t.Errorf("Linspace(n=0) = %v, want nil", got)
	}
	if d := cmp.Diff([]float64{1, 0}, Linspace(1, 0, 2)); d != "" {
		t.Errorf("Linspace(1, 0, 2) mismatch:\n%s", d)
	}
}
