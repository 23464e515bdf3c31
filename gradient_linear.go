package gdither

import "math"

// LinearField maps pixels to a color band perpendicular to the rotation
// direction. Each pixel's offset from Center is projected onto the direction
// vector (cos r, sin r) and the projection is mapped into [0,1] across Size
// pixels. Unlike the radial field, rotation here truly spins the band in
// screen space.
type LinearField struct {
	Center   Point
	Size     float64 // band extent along the direction, in buffer pixels
	Rotation float64 // radians, unbounded
}

// T implements the Field interface.
func (f *LinearField) T(x, y float64) float64 {
	if f.Size <= 0 {
		return 0
	}
	r := normalizeRotation(f.Rotation)
	dirX, dirY := math.Cos(r), math.Sin(r)
	proj := (x-f.Center.X)*dirX + (y-f.Center.Y)*dirY
	return clamp01((proj + 0.5*f.Size) / f.Size)
}
