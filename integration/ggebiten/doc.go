// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggebiten displays ggline drawings in an ebiten window.
//
// The data flow is:
//
//	ggline.Drawing (Plot) -> Pixmap (CPU) -> ebiten.Image -> Window
//
// # Usage
//
// Inside an ebiten.Game:
//
//	func (g *game) Draw(screen *ebiten.Image) {
//		g.canvas.Clear(ggline.Black)
//		g.scene.Render(g.canvas)
//		_ = g.canvas.RenderTo(screen, nil)
//	}
//
// Canvas implements ggline.Surface, so any drawing can plot onto it
// directly. Pixels are uploaded to the GPU once per RenderTo, and only if
// something was plotted since the previous upload.
//
// # Thread Safety
//
// Canvas is not safe for concurrent use. ebiten calls Update and Draw on a
// single goroutine, which is where the canvas belongs.
package ggebiten
