package ggline

// RenderOption configures a single Scene.Render call.
//
// Example:
//
//	// Plain rendering
//	scene.Render(pm)
//
//	// Mark endpoints for debugging
//	scene.Render(pm, ggline.WithDebug(true))
type RenderOption func(*renderOptions)

// renderOptions holds optional configuration for Scene.Render.
type renderOptions struct {
	debug      bool
	debugColor RGB
}

// defaultRenderOptions returns the default render options.
func defaultRenderOptions() renderOptions {
	return renderOptions{
		debug:      false,
		debugColor: Magenta,
	}
}

// WithDebug enables the debug overlay: after each drawing is plotted, its
// start and end are marked with a small cross in the debug color.
func WithDebug(enabled bool) RenderOption {
	return func(o *renderOptions) {
		o.debug = enabled
	}
}

// WithDebugColor sets the color of the debug overlay. The default is
// Magenta.
func WithDebugColor(c RGB) RenderOption {
	return func(o *renderOptions) {
		o.debugColor = c
	}
}
