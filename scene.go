package ggline

// Scene is an ordered collection of drawings rendered back to front.
//
// A Scene is not safe for concurrent use.
type Scene struct {
	drawings []Drawing
}

// NewScene creates a scene holding the given drawings.
func NewScene(drawings ...Drawing) *Scene {
	s := &Scene{}
	for _, d := range drawings {
		s.Add(d)
	}
	return s
}

// Add appends d so that it renders above every drawing already present.
// A nil drawing is ignored.
func (s *Scene) Add(d Drawing) {
	if d == nil {
		return
	}
	s.drawings = append(s.drawings, d)
}

// Len returns the number of drawings in the scene.
func (s *Scene) Len() int {
	return len(s.drawings)
}

// Drawings returns the drawings in render order. The slice is a copy.
func (s *Scene) Drawings() []Drawing {
	out := make([]Drawing, len(s.drawings))
	copy(out, s.drawings)
	return out
}

// Last returns the most recently added drawing, or nil if the scene is
// empty.
func (s *Scene) Last() Drawing {
	if len(s.drawings) == 0 {
		return nil
	}
	return s.drawings[len(s.drawings)-1]
}

// Undo removes and returns the most recently added drawing, or nil if the
// scene is empty.
func (s *Scene) Undo() Drawing {
	d := s.Last()
	if d != nil {
		s.drawings[len(s.drawings)-1] = nil
		s.drawings = s.drawings[:len(s.drawings)-1]
	}
	return d
}

// Clear removes every drawing.
func (s *Scene) Clear() {
	clear(s.drawings)
	s.drawings = s.drawings[:0]
}

// Render draws every drawing onto surf in insertion order.
func (s *Scene) Render(surf Surface, opts ...RenderOption) {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}

	Logger().Debug("rendering scene", "drawings", len(s.drawings), "debug", o.debug)

	for _, d := range s.drawings {
		d.Draw(surf)
		if o.debug {
			markDebug(surf, d, o.debugColor)
		}
	}
}

// markDebug plots a cross over the start of d and, for lines, over the end.
func markDebug(surf Surface, d Drawing, c RGB) {
	plotCross(surf, d.Start(), c)
	if l, ok := d.(*Line); ok {
		plotCross(surf, l.End(), c)
		Logger().Debug("debug line",
			"start", l.Start(),
			"end", l.End(),
			"octant", int(l.Octant()),
			"pixels", l.Len())
	}
}

func plotCross(surf Surface, p Point, c RGB) {
	surf.Plot(p.X, p.Y, c)
	surf.Plot(p.X-1, p.Y, c)
	surf.Plot(p.X+1, p.Y, c)
	surf.Plot(p.X, p.Y-1, c)
	surf.Plot(p.X, p.Y+1, c)
}
