// Command lineview is an interactive line editor.
//
// Press and drag the left mouse button to draw a line; release to keep it.
// Drag with the right mouse button to move the most recent line. Press U
// to undo, C to clear, D to toggle the debug overlay and Escape to quit.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/ggline"
	"github.com/gogpu/ggline/integration/ggebiten"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// errQuit ends the game loop without reporting a failure.
var errQuit = errors.New("quit")

type game struct {
	editor *ggline.Editor
	canvas *ggebiten.Canvas
	bg     ggline.RGB
	debug  bool
}

func (g *game) Update() error {
	x, y := ebiten.CursorPosition()
	p := ggline.Pt(x, y)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.editor.Press(p)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.editor.Release(p)
	}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		g.editor.Grab(p)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight):
		g.editor.Drop()
	}
	g.editor.Move(p)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyU):
		g.editor.Scene().Undo()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.editor.Cancel()
		g.editor.Scene().Clear()
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		g.debug = !g.debug
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return errQuit
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.canvas.Clear(g.bg)
	g.editor.Render(g.canvas, ggline.WithDebug(g.debug))
	if err := g.canvas.RenderTo(screen, nil); err != nil {
		ggline.Logger().Warn("render failed", "err", err)
		return
	}

	if g.debug {
		msg := fmt.Sprintf("lines: %d  fps: %.0f", g.editor.Scene().Len(), ebiten.ActualFPS())
		if l := g.editor.Pending(); l != nil {
			msg += fmt.Sprintf("\n%v -> %v  octant %d  pixels %d", l.Start(), l.End(), l.Octant(), l.Len())
		}
		ebitenutil.DebugPrint(screen, msg)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.canvas.Size()
}

type config struct {
	width, height int
	scale         int
	color         string
	background    string
	debug         bool
	verbose       bool
}

func main() {
	var cfg config
	flag.IntVar(&cfg.width, "width", 320, "canvas width in pixels")
	flag.IntVar(&cfg.height, "height", 240, "canvas height in pixels")
	flag.IntVar(&cfg.scale, "scale", 3, "window pixels per canvas pixel")
	flag.StringVar(&cfg.color, "color", "white", "line color (SVG name or hex)")
	flag.StringVar(&cfg.background, "bg", "black", "background color (SVG name or hex)")
	flag.BoolVar(&cfg.debug, "debug", false, "start with the debug overlay on")
	flag.BoolVar(&cfg.verbose, "v", false, "verbose logging")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	ggline.SetLogger(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("lineview failed", "err", err)
		os.Exit(1)
	}
}

// newGame validates cfg and builds the editor state. The returned game
// owns its canvas; the caller closes it.
func newGame(cfg config) (*game, error) {
	if cfg.scale <= 0 {
		return nil, fmt.Errorf("invalid scale %d", cfg.scale)
	}
	fg, err := ggline.ParseColor(cfg.color)
	if err != nil {
		return nil, fmt.Errorf("-color: %w", err)
	}
	bg, err := ggline.ParseColor(cfg.background)
	if err != nil {
		return nil, fmt.Errorf("-bg: %w", err)
	}
	canvas, err := ggebiten.New(cfg.width, cfg.height)
	if err != nil {
		return nil, err
	}
	return &game{
		editor: ggline.NewEditor(ggline.NewScene(), fg),
		canvas: canvas,
		bg:     bg,
		debug:  cfg.debug,
	}, nil
}

func run(cfg config, logger *slog.Logger) error {
	g, err := newGame(cfg)
	if err != nil {
		return err
	}
	defer g.canvas.Close()

	ebiten.SetWindowTitle("lineview")
	ebiten.SetWindowSize(cfg.width*cfg.scale, cfg.height*cfg.scale)
	logger.Info("lineview started", "width", cfg.width, "height", cfg.height, "scale", cfg.scale)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}
