package ggline

import (
	"math"
	"testing"
)

func TestFindOctant(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
		want   Octant
	}{
		{"zero vector", 0, 0, 0},
		{"horizontal right", 4, 0, 0},
		{"horizontal left", -4, 0, 0},
		{"shallow rising", 8, 2, 0},
		{"shallow rising reversed", -8, -2, 0},
		{"steep rising", 2, 8, 1},
		{"steep rising reversed", -2, -8, 1},
		{"vertical up", 0, 5, 2},
		{"vertical down", 0, -5, 6},
		{"steep falling", 2, -8, 6},
		{"steep falling reversed", -2, 8, 6},
		{"shallow falling", 8, -2, 7},
		{"shallow falling reversed", -8, 2, 7},
		{"falling diagonal", 4, -4, 7},
		{"rising diagonal", -4, -4, 1},
		{"long shallow falling", 1 << 52, -1, 7},
		{"long shallow falling reversed", -(1 << 53), 1, 7},
		{"long steep rising", 1, 1 << 52, 1},
		{"long steep falling", -1, 1 << 52, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := findOctant(tt.dx, tt.dy); got != tt.want {
				t.Errorf("findOctant(%d, %d) = %d, want %d", tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestFindOctant_InRange(t *testing.T) {
	for dx := -20; dx <= 20; dx++ {
		for dy := -20; dy <= 20; dy++ {
			o := findOctant(dx, dy)
			if o < 0 || o >= numOctants {
				t.Fatalf("findOctant(%d, %d) = %d, out of range", dx, dy, o)
			}
		}
	}
}

// TestFindOctant_MatchesAngleWedges checks the integer classification
// against floor(4·θ/π) away from the diagonals, where the float angle is
// unambiguous.
func TestFindOctant_MatchesAngleWedges(t *testing.T) {
	for dx := -30; dx <= 30; dx++ {
		for dy := -30; dy <= 30; dy++ {
			if dx == 0 || abs(dx) == abs(dy) {
				continue
			}
			angle := math.Atan(float64(dy) / float64(dx))
			if angle < 0 {
				angle += 2 * math.Pi
			}
			want := Octant(4 * angle / math.Pi)
			if got := findOctant(dx, dy); got != want {
				t.Errorf("findOctant(%d, %d) = %d, want %d", dx, dy, got, want)
			}
		}
	}
}

func TestNewSegment_LongNearlyHorizontalRuns(t *testing.T) {
	tests := []struct {
		name    string
		end     Point
		want    Octant
		wantLen int
	}{
		{"falling", Pt(1<<52, -1), 7, 1<<52 + 1},
		{"falling far", Pt(1<<53, -1), 7, 1<<53 + 1},
		{"rising", Pt(1<<52, 1), 0, 1<<52 + 1},
		{"steep rising", Pt(1, 1<<52), 1, 1<<52 + 1},
		{"steep falling", Pt(1, -(1 << 52)), 6, 1<<52 + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewSegment(Pt(0, 0), tt.end)
			if got := l.Octant(); got != tt.want {
				t.Errorf("Octant() = %d, want %d", got, tt.want)
			}
			n := l.norm
			if n.dy < 0 || n.dx < n.dy {
				t.Errorf("canonical dx=%d dy=%d violates 0 <= dy <= dx", n.dx, n.dy)
			}
			if got := l.Len(); got != tt.wantLen {
				t.Errorf("Len() = %d, want %d", got, tt.wantLen)
			}
		})
	}
}

func TestOctant_RestoreInvertsCanonical(t *testing.T) {
	for o := Octant(0); o < numOctants; o++ {
		for x := -3; x <= 3; x++ {
			for y := -3; y <= 3; y++ {
				p := Pt(x, y)
				if got := o.restore(o.toCanonical(p)); got != p {
					t.Errorf("octant %d: restore(toCanonical(%v)) = %v", o, p, got)
				}
			}
		}
	}
}

func TestOctant_RestoreIndex(t *testing.T) {
	want := [numOctants]Octant{0, 1, 6, 3, 4, 5, 2, 7}
	for o := Octant(0); o < numOctants; o++ {
		if got := o.restoreIndex(); got != want[o] {
			t.Errorf("Octant(%d).restoreIndex() = %d, want %d", o, got, want[o])
		}
	}
}

func TestOctant_InvalidPanics(t *testing.T) {
	for _, o := range []Octant{-1, 8, 42} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Octant(%d).restore did not panic", o)
				}
			}()
			o.restore(Pt(1, 1))
		}()
	}
}
