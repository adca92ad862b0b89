package ggline

import "fmt"

// Octant identifies one of the eight 45° wedges of line directions.
// Octant 0 is the canonical octant where 0 <= dy <= dx.
type Octant int

// numOctants is the size of the table returned by Point.AllOctants.
const numOctants = 8

// findOctant classifies the direction (dx, dy) by its slope.
//
// The wedges are those of floor(4·θ/π) with θ = atan(dy/dx) folded into
// [0, 2π), so a direction and its reverse share an octant. They are chosen
// with integer comparisons because the float angle rounds onto a wedge
// boundary for long, nearly axis-aligned runs.
//
//	slope in [0, 1)   -> 0
//	slope in [1, +∞)  -> 1
//	dx == 0, dy > 0   -> 2
//	slope in (-∞, -1) -> 6
//	dx == 0, dy < 0   -> 6
//	slope in [-1, 0)  -> 7
//
// The zero vector lands in octant 0.
func findOctant(dx, dy int) Octant {
	if dx == 0 {
		switch {
		case dy > 0:
			return 2
		case dy < 0:
			return 6
		default:
			return 0
		}
	}

	run, rise := absInt(dx), absInt(dy)
	if dy == 0 || (dx > 0) == (dy > 0) {
		if rise < run {
			return 0
		}
		return 1
	}
	if rise > run {
		return 6
	}
	return 7
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// toCanonical maps p into the canonical octant frame.
func (o Octant) toCanonical(p Point) Point {
	o.mustBeValid()
	return p.AllOctants()[o]
}

// restore maps a canonical-frame point back into octant o.
func (o Octant) restore(p Point) Point {
	return p.AllOctants()[o.restoreIndex()]
}

// restoreIndex returns the table entry that inverts o. Octants 2 and 6 lie
// either side of the secondary diagonal and invert each other; without the
// swap their lines render mirrored.
func (o Octant) restoreIndex() Octant {
	o.mustBeValid()
	switch o {
	case 2:
		return 6
	case 6:
		return 2
	default:
		return o
	}
}

func (o Octant) mustBeValid() {
	if o < 0 || o >= numOctants {
		panic(fmt.Sprintf("ggline: octant %d out of range [0,%d]", int(o), numOctants-1))
	}
}
