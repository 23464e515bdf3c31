package gdither

import (
	"fmt"
	"math"
)

// Point represents a 2D coordinate in buffer (density-scaled) pixels.
type Point struct {
	X, Y float64
}

// GradientType selects one of the three gradient field functions.
type GradientType int

const (
	// Radial produces concentric rings around the center. Rotation cycles
	// the ring colors rather than spinning the pattern.
	Radial GradientType = iota
	// Linear produces a color band that rotates in screen space.
	Linear
	// Conic sweeps colors angularly around the center.
	Conic

	gradientTypeCount // sentinel for validation
)

var gradientTypeNames = [gradientTypeCount]string{"radial", "linear", "conic"}

// String returns the name of the gradient type.
func (g GradientType) String() string {
	if g >= 0 && g < gradientTypeCount {
		return gradientTypeNames[g]
	}
	return fmt.Sprintf("GradientType(%d)", g)
}

// Valid reports whether g is a known gradient type.
func (g GradientType) Valid() bool {
	return g >= 0 && g < gradientTypeCount
}

// ParseGradientType parses a gradient type name.
func ParseGradientType(s string) (GradientType, error) {
	for i, name := range gradientTypeNames {
		if s == name {
			return GradientType(i), nil
		}
	}
	return 0, fmt.Errorf("gdither: unknown gradient type %q", s)
}

// Field maps a pixel coordinate to a gradient position t in [0,1].
// Implementations are pure; the same inputs always produce the same t.
type Field interface {
	// T returns the gradient position for the pixel at (x, y).
	T(x, y float64) float64
}

// NewField creates the field function for a gradient type. center and size
// are in buffer pixels (already multiplied by any pixel-density factor);
// rotation is in radians and may be unbounded; fields normalize it at every
// point of use.
func NewField(typ GradientType, center Point, size, rotation float64) Field {
	switch typ {
	case Linear:
		return &LinearField{Center: center, Size: size, Rotation: rotation}
	case Conic:
		return &ConicField{Center: center, Rotation: rotation}
	default:
		return &RadialField{Center: center, Size: size, Rotation: rotation}
	}
}

// Render fills dst with the field's colors: every pixel gets the palette
// color at the field's t, with full alpha. The palette is validated once
// here; Render is otherwise pure with respect to its inputs.
func Render(dst *Pixmap, field Field, palette Palette) error {
	if err := palette.Validate(); err != nil {
		return err
	}
	for y := 0; y < dst.height; y++ {
		for x := 0; x < dst.width; x++ {
			c := palette.At(field.T(float64(x), float64(y)))
			i := (y*dst.width + x) * 4
			dst.data[i+0] = c.R
			dst.data[i+1] = c.G
			dst.data[i+2] = c.B
			dst.data[i+3] = 255
		}
	}
	return nil
}

// normalizeRotation wraps an unbounded rotation into [0, 2π).
// Callers accumulate rotation every frame forever; the accumulated value is
// never assumed bounded.
func normalizeRotation(r float64) float64 {
	r = math.Mod(r, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	return r
}

// frac01 wraps a value into [0, 1).
func frac01(t float64) float64 {
	t -= math.Floor(t)
	if t < 0 {
		t++
	}
	return t
}
