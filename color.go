package shape

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// ErrUnknownColor is returned by ParseColor for strings that are neither
// a CSS color name nor a hex triple.
var ErrUnknownColor = errors.New("shape: unknown color")

// Color is an opaque 8-bit RGB color.
type Color struct {
	R, G, B uint8
}

// RGB creates a color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ParseColor parses a CSS color name ("red", "navy") or hex string
// ("#f00", "#ff0000"). Any alpha component is discarded.
func ParseColor(s string) (Color, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w %q: %v", ErrUnknownColor, s, err)
	}
	return Color{R: unit255(c.R), G: unit255(c.G), B: unit255(c.B)}, nil
}

// unit255 maps a [0, 1] component to [0, 255] with rounding.
func unit255(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Darken returns the color with its HSL lightness lowered by amount,
// where amount is in [0, 1].
func (c Color) Darken(amount float64) Color {
	h, s, l := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hsl()
	r, g, b := colorful.Hsl(h, s, l-amount).Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

// String formats the color as "#rrggbb".
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Common colors
var (
	Black   = RGB(0, 0, 0)
	White   = RGB(255, 255, 255)
	Red     = RGB(255, 0, 0)
	Green   = RGB(0, 255, 0)
	Blue    = RGB(0, 0, 255)
	Yellow  = RGB(255, 255, 0)
	Cyan    = RGB(0, 255, 255)
	Magenta = RGB(255, 0, 255)
)
