// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggebiten

import (
	"errors"
	"fmt"

	"github.com/gogpu/ggline"
	"github.com/hajimehoshi/ebiten/v2"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("ggebiten: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("ggebiten: invalid dimensions")
)

// Canvas is a ggline.Surface backed by a Pixmap and mirrored into an
// ebiten.Image for display.
type Canvas struct {
	pixmap *ggline.Pixmap
	image  *ebiten.Image // lazily created on first Flush
	dirty  bool          // needs upload
	closed bool
}

var _ ggline.Surface = (*Canvas)(nil)

// New creates a Canvas of the given size in pixels.
//
// Returns error if dimensions are invalid.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return &Canvas{
		pixmap: ggline.NewPixmap(width, height),
		dirty:  true, // first Flush creates the image
	}, nil
}

// MustNew is like New but panics on error.
// Use only when errors are programming mistakes (e.g., hardcoded dimensions).
func MustNew(width, height int) *Canvas {
	c, err := New(width, height)
	if err != nil {
		panic(err)
	}
	return c
}

// Pixmap returns the CPU-side framebuffer, or nil if the canvas is closed.
// Writes made through it directly must be followed by MarkDirty.
func (c *Canvas) Pixmap() *ggline.Pixmap {
	if c.closed {
		return nil
	}
	return c.pixmap
}

// Size returns width and height in pixels.
func (c *Canvas) Size() (width, height int) {
	return c.pixmap.Width(), c.pixmap.Height()
}

// Plot implements ggline.Surface. Plots on a closed canvas are dropped.
func (c *Canvas) Plot(x, y int, col ggline.RGB) {
	if c.closed {
		return
	}
	c.pixmap.Plot(x, y, col)
	c.dirty = true
}

// Clear fills the canvas with an opaque color.
func (c *Canvas) Clear(col ggline.RGB) {
	if c.closed {
		return
	}
	c.pixmap.Clear(col)
	c.dirty = true
}

// MarkDirty flags the canvas for upload on the next Flush.
func (c *Canvas) MarkDirty() {
	c.dirty = true
}

// IsDirty reports whether the canvas has changes that have not been
// uploaded.
func (c *Canvas) IsDirty() bool {
	return c.dirty
}

// Flush uploads the pixmap into the ebiten image if dirty and returns the
// image.
//
// Returns error if the canvas is closed.
func (c *Canvas) Flush() (*ebiten.Image, error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}
	if c.image == nil {
		c.image = ebiten.NewImage(c.pixmap.Width(), c.pixmap.Height())
	}
	if c.dirty {
		c.image.WritePixels(c.pixmap.Data())
		c.dirty = false
	}
	return c.image, nil
}

// RenderTo flushes the canvas and draws it onto dst. A nil opts draws at
// the origin without scaling.
func (c *Canvas) RenderTo(dst *ebiten.Image, opts *ebiten.DrawImageOptions) error {
	img, err := c.Flush()
	if err != nil {
		return err
	}
	dst.DrawImage(img, opts)
	return nil
}

// Close releases the ebiten image. Close is idempotent.
func (c *Canvas) Close() {
	if c.closed {
		return
	}
	if c.image != nil {
		c.image.Deallocate()
		c.image = nil
	}
	c.closed = true
}
