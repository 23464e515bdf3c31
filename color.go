package gdither

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB represents an opaque 8-bit color. All pipeline stages work on 8-bit
// channels; alpha is implicit and always fully opaque in produced buffers.
type RGB struct {
	R, G, B uint8
}

// ErrPaletteSize is returned when fewer than two color stops are supplied.
// Interpolation between stops is undefined for a single color.
var ErrPaletteSize = errors.New("gdither: palette needs at least two colors")

// ParseHexColor parses a hex color string into an RGB value.
// Accepts "#RGB", "#RRGGBB", and the same forms without the leading '#'.
func ParseHexColor(s string) (RGB, error) {
	if s == "" {
		return RGB{}, errors.New("gdither: empty color string")
	}
	if s[0] != '#' {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("gdither: invalid color %q: %w", s, err)
	}
	return RGB{
		R: uint8(math.Round(c.R * 255)),
		G: uint8(math.Round(c.G * 255)),
		B: uint8(math.Round(c.B * 255)),
	}, nil
}

// ParseHexColors parses an ordered list of hex color strings into a Palette.
// Order is preserved exactly; duplicates are kept. At least two colors are
// required.
func ParseHexColors(colors []string) (Palette, error) {
	if len(colors) < 2 {
		return nil, ErrPaletteSize
	}
	p := make(Palette, len(colors))
	for i, s := range colors {
		c, err := ParseHexColor(s)
		if err != nil {
			return nil, err
		}
		p[i] = c
	}
	return p, nil
}

// lerpChannel interpolates one 8-bit channel, rounding to nearest.
func lerpChannel(a, b uint8, t float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*t
	return uint8(clamp255(math.Round(v)))
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Common colors
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)
