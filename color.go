package ggline

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned when a color string cannot be parsed.
var ErrInvalidColor = errors.New("ggline: invalid color")

// RGB is an opaque 8-bit color triple.
type RGB struct {
	R, G, B uint8
}

// Color converts RGB to the standard color.Color interface.
func (c RGB) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// RGBA implements the color.Color interface.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return c.Color().RGBA()
}

// String returns the color in "#rrggbb" form.
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// FromColor converts a standard color.Color to RGB, discarding alpha.
func FromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// Common colors.
var (
	Black   = RGB{0, 0, 0}
	White   = RGB{0xff, 0xff, 0xff}
	Red     = RGB{0xff, 0, 0}
	Green   = RGB{0, 0xff, 0}
	Blue    = RGB{0, 0, 0xff}
	Yellow  = RGB{0xff, 0xff, 0}
	Cyan    = RGB{0, 0xff, 0xff}
	Magenta = RGB{0xff, 0, 0xff}
)

// Hex creates a color from a hex string.
// Supports formats: "RGB" and "RRGGBB", with an optional leading '#'.
func Hex(hex string) (RGB, error) {
	s := strings.TrimPrefix(hex, "#")

	var v [6]uint8
	switch len(s) {
	case 3:
		for i := 0; i < 3; i++ {
			d, ok := hexDigit(s[i])
			if !ok {
				return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
			}
			v[i] = d * 17
		}
		return RGB{v[0], v[1], v[2]}, nil
	case 6:
		for i := 0; i < 6; i++ {
			d, ok := hexDigit(s[i])
			if !ok {
				return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
			}
			v[i] = d
		}
		return RGB{v[0]<<4 | v[1], v[2]<<4 | v[3], v[4]<<4 | v[5]}, nil
	default:
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// ParseColor accepts an SVG 1.1 color keyword ("tomato", "steelblue") or a
// hex string ("#f80", "ff8800").
func ParseColor(s string) (RGB, error) {
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return RGB{R: c.R, G: c.G, B: c.B}, nil
	}
	return Hex(s)
}
