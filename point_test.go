package ggline

import "testing"

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, -4)
	q := Pt(-1, 7)

	if got, want := p.Add(q), Pt(2, 3); got != want {
		t.Errorf("Add() = %v, want %v", got, want)
	}
	if got, want := p.Sub(q), Pt(4, -11); got != want {
		t.Errorf("Sub() = %v, want %v", got, want)
	}
	if got, want := p.String(), "(3,-4)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestAllOctants_Table(t *testing.T) {
	got := Pt(2, 5).AllOctants()
	want := [8]Point{
		{2, 5},
		{5, 2},
		{5, -2},
		{-2, 5},
		{-2, -5},
		{-5, -2},
		{-5, 2},
		{2, -5},
	}
	if got != want {
		t.Errorf("AllOctants() = %v, want %v", got, want)
	}
}

// TestAllOctants_Bijection checks that no two distinct inputs share an
// image under any single transform.
func TestAllOctants_Bijection(t *testing.T) {
	for k := 0; k < numOctants; k++ {
		seen := make(map[Point]Point)
		for x := -6; x <= 6; x++ {
			for y := -6; y <= 6; y++ {
				p := Pt(x, y)
				img := p.AllOctants()[k]
				if prev, ok := seen[img]; ok {
					t.Fatalf("octant %d maps both %v and %v to %v", k, prev, p, img)
				}
				seen[img] = p
			}
		}
	}
}

// TestAllOctants_SecondaryDiagonal documents that entries 2 and 6 are not
// self-inverse but invert each other.
func TestAllOctants_SecondaryDiagonal(t *testing.T) {
	p := Pt(1, 2)

	twice := p.AllOctants()[2].AllOctants()[2]
	if twice == p {
		t.Errorf("applying octant 2 twice returned %v; expected it not to be the identity", twice)
	}
	if got := p.AllOctants()[2].AllOctants()[6]; got != p {
		t.Errorf("octant 6 after octant 2 = %v, want %v", got, p)
	}
	if got := p.AllOctants()[6].AllOctants()[2]; got != p {
		t.Errorf("octant 2 after octant 6 = %v, want %v", got, p)
	}
}
