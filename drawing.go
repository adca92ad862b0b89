package ggline

// Surface is the rendering target that drawings plot pixels onto.
//
// Implementations decide how a plotted pixel is composited: a framebuffer
// stores it, a Recorder keeps the call sequence, a window canvas uploads it
// on the next frame. Coordinates outside the surface are the surface's
// concern; drawings never clip.
//
// Surfaces are NOT thread-safe. Hold exclusive access for the duration of
// a Draw call.
type Surface interface {
	Plot(x, y int, c RGB)
}

// SurfaceFunc adapts an ordinary function to the Surface interface.
type SurfaceFunc func(x, y int, c RGB)

// Plot calls f(x, y, c).
func (f SurfaceFunc) Plot(x, y int, c RGB) {
	f(x, y, c)
}

// Drawing is a shape that can be edited point by point and drawn onto a
// Surface.
//
// Mutating methods return the drawing so that calls can be chained:
//
//	l := ggline.NewLine(ggline.Pt(0, 0))
//	l.UpdateLastCoordinate(ggline.Pt(40, 10)).Draw(pm)
type Drawing interface {
	// SetStart replaces the start coordinate and recomputes derived
	// geometry.
	SetStart(p Point) Drawing

	// Translate moves the whole shape so that its start lands on p. The
	// offsets of every other coordinate relative to the start are kept
	// exactly.
	Translate(p Point) Drawing

	// UpdateLastCoordinate declares p as the most recently specified
	// coordinate and recomputes derived geometry.
	UpdateLastCoordinate(p Point) Drawing

	// Draw plots the shape onto s. Draw does not modify the shape, so
	// repeated calls emit the same pixels.
	Draw(s Surface)

	// Start returns the start coordinate.
	Start() Point

	// Color returns the color the shape is drawn with.
	Color() RGB
}

// shape holds the state shared by every drawing.
type shape struct {
	start Point
	color RGB
}

// Start returns the start coordinate.
func (s *shape) Start() Point {
	return s.start
}

// Color returns the color the shape is drawn with.
func (s *shape) Color() RGB {
	return s.color
}

// SetColor changes the color the shape is drawn with.
func (s *shape) SetColor(c RGB) {
	s.color = c
}
