package ggline

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPoint is returned when a coordinate list cannot be parsed.
var ErrInvalidPoint = errors.New("ggline: invalid point")

// ParsePoint parses "x,y" into a Point. Surrounding spaces are ignored.
func ParsePoint(s string) (Point, error) {
	v, err := parseInts(s, 2)
	if err != nil {
		return Point{}, err
	}
	return Pt(v[0], v[1]), nil
}

// ParseSegment parses "x0,y0,x1,y1" into its two endpoints.
func ParseSegment(s string) (start, end Point, err error) {
	v, err := parseInts(s, 4)
	if err != nil {
		return Point{}, Point{}, err
	}
	return Pt(v[0], v[1]), Pt(v[2], v[3]), nil
}

func parseInts(s string, n int) ([]int, error) {
	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil, fmt.Errorf("%w: %q: want %d comma-separated integers", ErrInvalidPoint, s, n)
	}
	out := make([]int, n)
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidPoint, s, err)
		}
		out[i] = v
	}
	return out, nil
}
