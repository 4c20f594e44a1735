package curve

import (
	"fmt"
	"strings"
)

// Kind selects a cubic curve family.
type Kind int

const (
	// Hermite interpolates two positions with tangents taken from two more
	// control points.
	Hermite Kind = iota
	// Bezier interpolates two anchors and approximates two handles.
	Bezier
	// BSpline is the uniform cubic B-spline through a whole point list,
	// closed into a loop.
	BSpline
)

var kindNames = [...]string{
	Hermite: "hermite",
	Bezier:  "bezier",
	BSpline: "bspline",
}

// String returns the lowercase kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind parses a kind name, ignoring case and dashes ("B-spline").
func ParseKind(name string) (Kind, error) {
	norm := strings.ReplaceAll(name, "-", "")
	for i, n := range kindNames {
		if strings.EqualFold(norm, n) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// MinPoints returns the fewest control points the kind can be evaluated
// with. Hermite and Bézier need a full window of 4; a B-spline accepts 2
// (and then produces no segment).
func (k Kind) MinPoints() int {
	if k == BSpline {
		return 2
	}
	return 4
}

// Capped reports whether the kind uses a fixed window of 4 points, so an
// editor must stop adding points once 4 exist.
func (k Kind) Capped() bool {
	return k == Hermite || k == Bezier
}
