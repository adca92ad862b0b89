package ggline

import "fmt"

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// String returns a representation like "(3,4)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// AllOctants returns p expressed in the frame of each of the eight octants.
//
// Entry k maps a direction lying in octant k into the canonical octant 0,
// where 0 <= dy <= dx. Entries 2 and 6 are inverses of each other; every
// other entry is its own inverse.
func (p Point) AllOctants() [8]Point {
	x, y := p.X, p.Y
	return [8]Point{
		{x, y},
		{y, x},
		{y, -x},
		{-x, y},
		{-x, -y},
		{-y, -x},
		{-y, x},
		{x, -y},
	}
}
