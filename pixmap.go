package ggline

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// Format is an image encoding supported by Pixmap.Encode.
type Format int

// Supported formats.
const (
	FormatPNG Format = iota
	FormatBMP
)

// ErrUnknownFormat is returned for an image format Pixmap cannot encode.
var ErrUnknownFormat = errors.New("ggline: unknown image format")

// String returns the conventional file extension of f without the dot.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps a format name or file extension ("png", ".bmp") to a
// Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Pixmap is an in-memory framebuffer that implements Surface.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

var _ Surface = (*Pixmap)(nil)

// NewPixmap creates a new pixmap with the given dimensions. All pixels
// start transparent black.
func NewPixmap(width, height int) *Pixmap {
	width, height = max(width, 0), max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Plot sets the pixel at (x, y) to c. Out-of-bounds pixels are dropped.
func (p *Pixmap) Plot(x, y int, c RGB) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = 0xff
}

// Pixel returns the color at (x, y) and whether its alpha is non-zero.
// A new pixmap is fully transparent; Plot and Clear write opaque pixels, so
// after Clear every in-bounds pixel reports true.
func (p *Pixmap) Pixel(x, y int) (RGB, bool) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return RGB{}, false
	}
	i := (y*p.width + x) * 4
	return RGB{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2]}, p.data[i+3] != 0
}

// Clear fills the entire pixmap with an opaque color.
func (p *Pixmap) Clear(c RGB) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = 0xff
	}
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// Encode writes the pixmap to w in the given format.
func (p *Pixmap) Encode(w io.Writer, f Format) error {
	img := p.ToImage()
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

// Save writes the pixmap to path, choosing the format from its extension.
func (p *Pixmap) Save(path string) error {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return err
	}
	return p.SaveAs(path, f)
}

// SaveAs writes the pixmap to path in the given format.
func (p *Pixmap) SaveAs(path string, format Format) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return p.Encode(f, format)
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := (y*p.width + x) * 4
	return color.RGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
