// Package linalg provides the small dense-matrix utilities used by the curve
// evaluator: construction from a flat row-major slice, multiplication and
// uniform sampling of an interval.
package linalg

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDimension is returned when matrix operand shapes do not match.
var ErrDimension = errors.New("linalg: dimension mismatch")

// Matrix is a dense row-major matrix of float64 values.
// Its dimensions are fixed at construction.
type Matrix struct {
	rows, cols int
	data       []float64
}

// New builds a rows×cols matrix from values in row-major order.
// It returns ErrDimension if either dimension is not positive or if
// len(values) != rows*cols.
func New(rows, cols int, values ...float64) (Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return Matrix{}, fmt.Errorf("%w: %dx%d", ErrDimension, rows, cols)
	}
	if len(values) != rows*cols {
		return Matrix{}, fmt.Errorf("%w: %d values for %dx%d", ErrDimension, len(values), rows, cols)
	}
	data := make([]float64, len(values))
	copy(data, values)
	return Matrix{rows: rows, cols: cols, data: data}, nil
}

// MustNew is like New but panics on error. It is intended for fixed tables
// such as basis matrices.
func MustNew(rows, cols int, values ...float64) Matrix {
	m, err := New(rows, cols, values...)
	if err != nil {
		panic(err)
	}
	return m
}

// Zeros returns a rows×cols matrix of zeros.
func Zeros(rows, cols int) (Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return Matrix{}, fmt.Errorf("%w: %dx%d", ErrDimension, rows, cols)
	}
	return Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows.
func (m Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix) Cols() int { return m.cols }

// At returns the element at row i, column j.
func (m Matrix) At(i, j int) float64 {
	return m.data[i*m.cols+j]
}

func (m Matrix) set(i, j int, v float64) {
	m.data[i*m.cols+j] = v
}

// Column returns a copy of column j.
func (m Matrix) Column(j int) []float64 {
	out := make([]float64, m.rows)
	for i := range out {
		out[i] = m.At(i, j)
	}
	return out
}

// Multiply returns the product a×b.
// It returns ErrDimension when a's column count differs from b's row count.
func Multiply(a, b Matrix) (Matrix, error) {
	if a.cols != b.rows || a.rows == 0 || b.cols == 0 {
		return Matrix{}, fmt.Errorf("%w: cannot multiply %dx%d by %dx%d",
			ErrDimension, a.rows, a.cols, b.rows, b.cols)
	}
	out, err := Zeros(a.rows, b.cols)
	if err != nil {
		return Matrix{}, err
	}
	for i := 0; i < a.rows; i++ {
		for j := 0; j < b.cols; j++ {
			var sum float64
			for k := 0; k < a.cols; k++ {
				sum += a.At(i, k) * b.At(k, j)
			}
			out.set(i, j, sum)
		}
	}
	return out, nil
}

// String formats the matrix one row per line.
func (m Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", m.At(i, j))
		}
		sb.WriteByte(']')
	}
	return sb.String()
}
