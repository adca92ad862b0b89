package ggline

// Editor turns pointer events into line edits on a Scene.
//
// A press starts a new line at the pointer, motion stretches its end to
// follow the pointer and a release commits it to the scene. Independently,
// a grab picks up the most recent drawing and motion translates it until
// the grab is released. The Editor knows nothing about windows; callers
// feed it pointer positions in surface coordinates.
//
// An Editor is not safe for concurrent use.
type Editor struct {
	scene *Scene
	color RGB

	// pending is the line being drawn, nil when idle.
	pending *Line

	// grabbed is the drawing being moved, nil when idle.
	grabbed Drawing
	// grabOffset is the pointer position relative to the grabbed start.
	grabOffset Point
}

// NewEditor creates an editor that commits lines of color c to scene.
func NewEditor(scene *Scene, c RGB) *Editor {
	return &Editor{scene: scene, color: c}
}

// Scene returns the scene the editor commits to.
func (e *Editor) Scene() *Scene {
	return e.scene
}

// SetColor changes the color of lines started after the call.
func (e *Editor) SetColor(c RGB) {
	e.color = c
}

// Pending returns the line being drawn, or nil.
func (e *Editor) Pending() *Line {
	return e.pending
}

// Press starts a new line at p. A line already in progress is discarded.
func (e *Editor) Press(p Point) {
	if e.pending == nil {
		e.pending = NewLine(p, WithColor(e.color))
		return
	}
	e.pending.SetColor(e.color)
	e.pending.SetStart(p)
}

// Move updates the in-progress edit, if any, with the pointer at p.
func (e *Editor) Move(p Point) {
	if e.pending != nil {
		e.pending.UpdateLastCoordinate(p)
	}
	if e.grabbed != nil {
		e.grabbed.Translate(p.Sub(e.grabOffset))
	}
}

// Release finishes the line in progress at p and adds it to the scene.
// It returns the committed line, or nil if no line was in progress.
func (e *Editor) Release(p Point) *Line {
	l := e.pending
	if l == nil {
		return nil
	}
	l.UpdateLastCoordinate(p)
	e.scene.Add(l)
	e.pending = nil

	Logger().Debug("line committed", "start", l.Start(), "end", l.End(), "octant", int(l.Octant()))
	return l
}

// Grab picks up the most recently committed drawing with the pointer at p.
// It reports whether there was a drawing to grab.
func (e *Editor) Grab(p Point) bool {
	d := e.scene.Last()
	if d == nil {
		return false
	}
	e.grabbed = d
	e.grabOffset = p.Sub(d.Start())
	return true
}

// Drop releases the grabbed drawing.
func (e *Editor) Drop() {
	e.grabbed = nil
	e.grabOffset = Point{}
}

// Cancel abandons any edit in progress.
func (e *Editor) Cancel() {
	e.pending = nil
	e.Drop()
}

// Render draws the scene followed by the line in progress.
func (e *Editor) Render(surf Surface, opts ...RenderOption) {
	e.scene.Render(surf, opts...)
	if e.pending != nil {
		e.pending.Draw(surf)
	}
}
