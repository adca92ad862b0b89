package ggline

// Plot is a single recorded Surface.Plot call.
type Plot struct {
	Point
	Color RGB
}

// Recorder is a Surface that captures plot calls instead of rasterizing
// them. It is useful for tests and for replaying output onto another
// surface.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	plots []Plot
}

var _ Surface = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Plot records the call.
func (r *Recorder) Plot(x, y int, c RGB) {
	r.plots = append(r.plots, Plot{Point: Point{X: x, Y: y}, Color: c})
}

// Plots returns the recorded calls in order. The slice is a copy.
func (r *Recorder) Plots() []Plot {
	out := make([]Plot, len(r.plots))
	copy(out, r.plots)
	return out
}

// Points returns the coordinates of the recorded calls in order.
func (r *Recorder) Points() []Point {
	out := make([]Point, len(r.plots))
	for i, p := range r.plots {
		out[i] = p.Point
	}
	return out
}

// Len returns the number of recorded calls.
func (r *Recorder) Len() int {
	return len(r.plots)
}

// Reset discards every recorded call.
func (r *Recorder) Reset() {
	r.plots = r.plots[:0]
}

// Replay issues every recorded call, in order, to s.
func (r *Recorder) Replay(s Surface) {
	for _, p := range r.plots {
		s.Plot(p.X, p.Y, p.Color)
	}
}
