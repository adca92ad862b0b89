package ggline

import (
	"slices"
	"testing"
)

func TestRecorder(t *testing.T) {
	rec := NewRecorder()
	rec.Plot(1, 2, Red)
	rec.Plot(-3, 4, Blue)

	want := []Plot{
		{Point: Pt(1, 2), Color: Red},
		{Point: Pt(-3, 4), Color: Blue},
	}
	if got := rec.Plots(); !slices.Equal(got, want) {
		t.Errorf("Plots() = %v, want %v", got, want)
	}
	if got := rec.Points(); !slices.Equal(got, []Point{{1, 2}, {-3, 4}}) {
		t.Errorf("Points() = %v", got)
	}

	// Plots returns a copy.
	rec.Plots()[0].Color = Green
	if rec.Plots()[0].Color != Red {
		t.Error("mutating Plots() result changed the recorder")
	}

	rec.Reset()
	if rec.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", rec.Len())
	}
}

func TestRecorder_Replay(t *testing.T) {
	rec := NewRecorder()
	NewSegment(Pt(0, 0), Pt(3, 2), WithColor(Yellow)).Draw(rec)

	pm := NewPixmap(4, 4)
	rec.Replay(pm)

	for _, p := range rec.Points() {
		if got, ok := pm.Pixel(p.X, p.Y); !ok || got != Yellow {
			t.Errorf("Pixel(%d, %d) = %v, %v, want %v", p.X, p.Y, got, ok, Yellow)
		}
	}
}
