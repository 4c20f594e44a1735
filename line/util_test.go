package line

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// endpointPairs covers all octants, axis-aligned segments and single points.
var endpointPairs = [][4]int{
	{0, 0, 0, 0},
	{3, -2, 3, -2},
	{0, 0, 5, 0},
	{0, 0, -5, 0},
	{0, 0, 0, 7},
	{0, 0, 0, -7},
	{0, 0, 7, 3},
	{0, 0, 3, 7},
	{0, 0, -3, 7},
	{0, 0, -7, 3},
	{0, 0, -7, -3},
	{0, 0, -3, -7},
	{0, 0, 3, -7},
	{0, 0, 7, -3},
	{2, 1, 14, 9},
	{-4, 6, 9, -8},
	{0, 0, 6, 6},
	{0, 0, 6, -6},
	{10, 10, 0, 3},
}
