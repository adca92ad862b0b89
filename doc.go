// Package ggline rasterizes integer line segments with the midpoint
// (Bresenham) algorithm generalized to all eight octants.
//
// # Overview
//
// A segment is classified into one of eight 45° octants by its slope,
// mapped into the canonical octant (0 <= dy <= dx), walked there with an
// integer decision variable, and every selected pixel is mapped back into
// the original octant before being plotted onto a Surface.
//
// # Quick Start
//
//	import "github.com/gogpu/ggline"
//
//	pm := ggline.NewPixmap(64, 64)
//	pm.Clear(ggline.Black)
//
//	l := ggline.NewSegment(ggline.Pt(2, 3), ggline.Pt(60, 40),
//		ggline.WithColor(ggline.Yellow))
//	l.Draw(pm)
//
//	pm.Save("line.png")
//
// # Surfaces
//
// Drawings emit pixels through the Surface interface:
//   - Pixmap: an RGBA framebuffer that encodes to PNG or BMP
//   - Recorder: captures plot calls for inspection or replay
//   - SurfaceFunc: adapts a plain function
//   - ggebiten.Canvas: uploads a Pixmap to an ebiten window
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Octants are defined on the raw (dx, dy) of a segment, so a segment and its
// reverse rasterize to the same set of pixels.
//
// # Logging
//
// ggline is silent by default. See SetLogger.
package ggline

// Version is the current version of the library.
const Version = "0.1.0"
