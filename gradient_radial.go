package gdither

import "math"

// RadialField maps pixels to concentric rings around Center. Distance from
// the center is normalized by half of Size, and Rotation is applied as a
// fractional phase shift with wraparound, so advancing rotation re-colors
// the rings rather than spinning them. This hue-cycling behavior is the
// intended animation for the radial case.
type RadialField struct {
	Center   Point
	Size     float64 // diameter of the t=1 circle, in buffer pixels
	Rotation float64 // radians, unbounded
}

// T implements the Field interface.
func (f *RadialField) T(x, y float64) float64 {
	if f.Size <= 0 {
		return 0
	}
	dx := x - f.Center.X
	dy := y - f.Center.Y
	t := clamp01(math.Sqrt(dx*dx+dy*dy) / (0.5 * f.Size))
	return frac01(t + f.Rotation/(2*math.Pi))
}
