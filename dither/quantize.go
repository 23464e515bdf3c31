package dither

import "math"

// quantize snaps a channel value to the nearest of levels evenly spaced
// values covering the full 0-255 range, endpoints included.
//
// The level index is rounded first, then the reconstructed value. Collapsing
// the two into a single round changes results at level boundaries.
func quantize(v float64, levels int) float64 {
	step := 255 / float64(levels-1)
	return math.Round(math.Round(v/step) * step)
}
