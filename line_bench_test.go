package ggline

import "testing"

// BenchmarkLineDraw measures rasterizing a line onto a pixmap per octant.
func BenchmarkLineDraw(b *testing.B) {
	pm := NewPixmap(1000, 1000)

	benchmarks := []struct {
		name     string
		from, to Point
	}{
		{"shallow", Pt(0, 500), Pt(999, 700)},
		{"steep", Pt(500, 0), Pt(700, 999)},
		{"vertical", Pt(500, 999), Pt(500, 0)},
		{"falling", Pt(0, 999), Pt(999, 0)},
	}

	for _, bm := range benchmarks {
		l := NewSegment(bm.from, bm.to)
		b.Run(bm.name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				l.Draw(pm)
			}
		})
	}
}

// BenchmarkNormalize measures recomputing derived state on an endpoint
// change, the cost paid on every pointer motion while editing.
func BenchmarkNormalize(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = normalize(Pt(3, 7), Pt(-400, 911))
	}
}
