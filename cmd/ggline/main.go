// Command ggline rasterizes line segments into a PNG or BMP image.
//
// Usage:
//
//	ggline -line 10,10,200,40 -line 10,10,40,200 -color tomato -output lines.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/ggline"
)

// segmentList collects repeated -line flags.
type segmentList [][2]ggline.Point

func (s *segmentList) String() string {
	parts := make([]string, len(*s))
	for i, seg := range *s {
		parts[i] = fmt.Sprintf("%d,%d,%d,%d", seg[0].X, seg[0].Y, seg[1].X, seg[1].Y)
	}
	return strings.Join(parts, " ")
}

func (s *segmentList) Set(v string) error {
	start, end, err := ggline.ParseSegment(v)
	if err != nil {
		return err
	}
	*s = append(*s, [2]ggline.Point{start, end})
	return nil
}

type config struct {
	width, height int
	output        string
	format        string
	color         string
	background    string
	debug         bool
	verbose       bool
	segments      segmentList
}

func main() {
	var cfg config
	flag.IntVar(&cfg.width, "width", 256, "image width")
	flag.IntVar(&cfg.height, "height", 256, "image height")
	flag.StringVar(&cfg.output, "output", "lines.png", "output file")
	flag.StringVar(&cfg.format, "format", "", "output format (png, bmp); default from the output extension")
	flag.StringVar(&cfg.color, "color", "white", "line color (SVG name or hex)")
	flag.StringVar(&cfg.background, "bg", "black", "background color (SVG name or hex)")
	flag.BoolVar(&cfg.debug, "debug", false, "mark segment endpoints")
	flag.BoolVar(&cfg.verbose, "v", false, "verbose logging")
	flag.Var(&cfg.segments, "line", "segment as x0,y0,x1,y1 (repeatable)")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	ggline.SetLogger(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("ggline failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg config, logger *slog.Logger) error {
	if cfg.width <= 0 || cfg.height <= 0 {
		return fmt.Errorf("invalid size %dx%d", cfg.width, cfg.height)
	}
	if len(cfg.segments) == 0 {
		return errors.New("no segments: pass at least one -line x0,y0,x1,y1")
	}

	fg, err := ggline.ParseColor(cfg.color)
	if err != nil {
		return err
	}
	bg, err := ggline.ParseColor(cfg.background)
	if err != nil {
		return err
	}

	name := cfg.format
	if name == "" {
		name = filepath.Ext(cfg.output)
	}
	format, err := ggline.ParseFormat(name)
	if err != nil {
		return err
	}

	scene := ggline.NewScene()
	for _, seg := range cfg.segments {
		scene.Add(ggline.NewSegment(seg[0], seg[1], ggline.WithColor(fg)))
	}

	pm := ggline.NewPixmap(cfg.width, cfg.height)
	pm.Clear(bg)
	scene.Render(pm, ggline.WithDebug(cfg.debug))

	if err := pm.SaveAs(cfg.output, format); err != nil {
		return fmt.Errorf("save %s: %w", cfg.output, err)
	}

	logger.Info("image saved",
		"output", cfg.output,
		"format", format.String(),
		"size", fmt.Sprintf("%dx%d", cfg.width, cfg.height),
		"segments", scene.Len())
	return nil
}
