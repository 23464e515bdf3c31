package gdither

import "math"

// Palette is an ordered sequence of color stops. Interpolation traverses the
// stops in list order across equal-width segments of [0,1]; stops are never
// reordered or deduplicated.
type Palette []RGB

// Validate reports whether the palette is usable for interpolation.
// A palette needs at least two stops.
func (p Palette) Validate() error {
	if len(p) < 2 {
		return ErrPaletteSize
	}
	return nil
}

// At returns the interpolated color at position t.
//
// The interval [0,1] is split into len(p)-1 equal segments and each channel
// is linearly interpolated within the segment containing t, rounding to the
// nearest integer. Callers must normalize t into [0,1] (wrapping where the
// field is cyclic) before calling; only the t=1 boundary is guarded here.
// Calling At on a palette with fewer than two stops is a contract violation;
// validate at the boundary with Validate.
func (p Palette) At(t float64) RGB {
	segments := len(p) - 1
	pos := t * float64(segments)
	seg := int(math.Floor(pos))
	if seg < 0 {
		seg = 0
	}
	if seg > segments-1 {
		seg = segments - 1
	}
	local := pos - float64(seg)
	a, b := p[seg], p[seg+1]
	return RGB{
		R: lerpChannel(a.R, b.R, local),
		G: lerpChannel(a.G, b.G, local),
		B: lerpChannel(a.B, b.B, local),
	}
}
