// Package render drives the gradient-dither pipeline one frame at a time.
// A Renderer owns the rotation-phase accumulator and the pixel-density
// handling required by the core, which is itself stateless.
package render

import (
	gdither "github.com/florisvdriel/gradient-dither"
	"github.com/florisvdriel/gradient-dither/dither"
)

// Renderer produces frames of an animated, dithered gradient.
//
// The zero value is not usable; fill in at least Width, Height, Palette,
// and Dither. A Renderer is not safe for concurrent use because Frame
// advances the phase accumulator; for parallel frame production use the
// pure FrameAt with explicit phases.
type Renderer struct {
	// Width and Height are the logical canvas size in pixels.
	Width  int
	Height int

	// Density is the pixel-density multiplier. Buffers are allocated at
	// Width*Density x Height*Density and all spatial parameters scale with
	// it. Values below 1 are treated as 1.
	Density float64

	// Gradient selects the field function.
	Gradient gdither.GradientType

	// Palette holds the ordered color stops.
	Palette gdither.Palette

	// Size is the gradient extent in logical pixels.
	Size float64

	// RotationSpeed is the phase increment per frame, in radians.
	RotationSpeed float64

	// Mask, when non-nil, composites the gradient over Background. The
	// mask must match the density-scaled buffer dimensions.
	Mask       *gdither.Mask
	Background gdither.RGB

	// Dither configures the quantization stage.
	Dither dither.Config

	// phase is the accumulated rotation. It grows without bound; the core
	// normalizes rotation at every point of use.
	phase float64
}

// Phase returns the accumulated rotation phase in radians.
func (r *Renderer) Phase() float64 { return r.phase }

// Frame renders the next frame and advances the phase accumulator.
func (r *Renderer) Frame() (*gdither.Pixmap, error) {
	out, err := r.FrameAt(r.phase)
	if err != nil {
		return nil, err
	}
	r.phase += r.RotationSpeed
	return out, nil
}

// FrameAt renders the frame for an explicit rotation phase without touching
// the accumulator. FrameAt is pure: independent calls may run concurrently,
// each allocating its own buffers.
func (r *Renderer) FrameAt(phase float64) (*gdither.Pixmap, error) {
	density := r.Density
	if density < 1 {
		density = 1
	}
	w := int(float64(r.Width) * density)
	h := int(float64(r.Height) * density)

	buf := gdither.NewPixmap(w, h)
	center := gdither.Point{X: float64(w) / 2, Y: float64(h) / 2}
	field := gdither.NewField(r.Gradient, center, r.Size*density, phase)
	if err := gdither.Render(buf, field, r.Palette); err != nil {
		return nil, err
	}

	if r.Mask != nil {
		gdither.Composite(buf, buf, r.Mask, r.Background)
	}

	out, err := dither.Apply(buf, r.Dither)
	if err != nil {
		return nil, err
	}

	gdither.Logger().Debug("rendered frame",
		"width", w, "height", h, "phase", phase,
		"algorithm", r.Dither.Algorithm.String())
	return out, nil
}
