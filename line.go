package ggline

// Line is a segment rasterized with the midpoint (Bresenham) algorithm.
//
// The segment is first mapped into the canonical octant, where the slope is
// between 0 and 1 and x increases from start to end. The integer decision
// loop runs there, and every pixel it selects is mapped back into the
// line's original octant before being plotted.
//
// A Line starts out degenerate (start == end) and becomes a proper segment
// once UpdateLastCoordinate supplies its end. A Line is not safe for
// concurrent use.
type Line struct {
	shape
	end  Point
	norm normalizedLine
}

var _ Drawing = (*Line)(nil)

// LineOption configures a Line during creation.
type LineOption func(*Line)

// WithColor sets the color a Line is drawn with. The default is White.
func WithColor(c RGB) LineOption {
	return func(l *Line) {
		l.color = c
	}
}

// NewLine creates a degenerate line at start. Supply the end point with
// UpdateLastCoordinate.
func NewLine(start Point, opts ...LineOption) *Line {
	l := &Line{shape: shape{start: start, color: White}}
	for _, opt := range opts {
		opt(l)
	}
	l.UpdateLastCoordinate(start)
	return l
}

// NewSegment creates a line from start to end.
func NewSegment(start, end Point, opts ...LineOption) *Line {
	l := NewLine(start, opts...)
	l.UpdateLastCoordinate(end)
	return l
}

// End returns the end coordinate.
func (l *Line) End() Point {
	return l.end
}

// Octant returns the octant the segment direction was classified into.
func (l *Line) Octant() Octant {
	return l.norm.octant
}

// SetStart moves the start to p and collapses the line onto it, as when a
// new segment begins at a press of the pointer.
func (l *Line) SetStart(p Point) Drawing {
	l.start = p
	return l.UpdateLastCoordinate(p)
}

// Translate moves the line so that it starts at p, keeping its direction
// and length.
func (l *Line) Translate(p Point) Drawing {
	offset := l.end.Sub(l.start)
	l.start = p
	return l.UpdateLastCoordinate(p.Add(offset))
}

// UpdateLastCoordinate sets the end point to p and recomputes the
// normalized segment.
func (l *Line) UpdateLastCoordinate(p Point) Drawing {
	l.end = p
	l.norm = normalize(l.start, l.end)

	Logger().Debug("line normalized",
		"start", l.start,
		"end", l.end,
		"octant", int(l.norm.octant),
		"dx", l.norm.dx,
		"dy", l.norm.dy)
	return l
}

// Draw plots every pixel of the line onto s in the line's color.
func (l *Line) Draw(s Surface) {
	l.norm.rasterize(func(p Point) {
		s.Plot(p.X, p.Y, l.color)
	})
}

// Points returns the pixels of the line in rasterization order. The slice
// is computed afresh on each call.
func (l *Line) Points() []Point {
	pts := make([]Point, 0, l.norm.dx+1)
	l.norm.rasterize(func(p Point) {
		pts = append(pts, p)
	})
	return pts
}

// Len returns the number of pixels the line plots.
func (l *Line) Len() int {
	return l.norm.dx + 1
}

// normalizedLine is a segment re-expressed in the canonical octant together
// with the decision-variable increments for the midpoint loop.
type normalizedLine struct {
	octant Octant

	// start and end are canonical-frame endpoints with start.X <= end.X.
	start, end Point

	dx, dy int

	// incE is added to the decision variable when the row advances, incNE
	// when it stays. The names follow the classic formulation.
	incE, incNE int

	// d0 is the initial decision variable.
	d0 int
}

// normalize maps the segment (start, end) into the canonical octant.
func normalize(start, end Point) normalizedLine {
	d := end.Sub(start)
	o := findOctant(d.X, d.Y)

	s, e := o.toCanonical(start), o.toCanonical(end)
	if s.X > e.X {
		s, e = e, s
	}

	dx := e.X - s.X
	dy := e.Y - s.Y
	return normalizedLine{
		octant: o,
		start:  s,
		end:    e,
		dx:     dx,
		dy:     dy,
		incE:   2 * (dy - dx),
		incNE:  2 * dy,
		d0:     2*dy - dx,
	}
}

// rasterize runs the midpoint loop and passes each pixel, restored to the
// original octant, to emit. It emits exactly dx+1 pixels.
func (n *normalizedLine) rasterize(emit func(Point)) {
	x, y := n.start.X, n.start.Y
	d := n.d0

	emit(n.octant.restore(Point{x, y}))
	for x < n.end.X {
		if d <= 0 {
			d += n.incNE
		} else {
			d += n.incE
			y++
		}
		x++
		emit(n.octant.restore(Point{x, y}))
	}
}
