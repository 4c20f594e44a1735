package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gglab"
)

// parsePoints parses space separated "x,y" pairs.
func parsePoints(s string) ([]gglab.Point, error) {
	var pts []gglab.Point
	for _, field := range strings.Fields(s) {
		p, err := parsePoint(field)
		if err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}
	return pts, nil
}

func parsePoint(s string) (gglab.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return gglab.Point{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return gglab.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return gglab.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	return gglab.Pt(x, y), nil
}

// parseDrags parses space separated "x0,y0>x1,y1" drags.
func parseDrags(s string) ([][2]gglab.Point, error) {
	var drags [][2]gglab.Point
	for _, field := range strings.Fields(s) {
		from, to, ok := strings.Cut(field, ">")
		if !ok {
			return nil, fmt.Errorf("drag %q: want x0,y0>x1,y1", field)
		}
		a, err := parsePoint(from)
		if err != nil {
			return nil, err
		}
		b, err := parsePoint(to)
		if err != nil {
			return nil, err
		}
		drags = append(drags, [2]gglab.Point{a, b})
	}
	return drags, nil
}
