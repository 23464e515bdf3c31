package gdither

import "math"

// ConicField sweeps the palette angularly around Center. The angle from the
// center to each pixel, shifted by the rotation phase, is mapped to [0,1)
// with modulo wraparound, so advancing rotation spins the sweep.
type ConicField struct {
	Center   Point
	Rotation float64 // radians, unbounded
}

// T implements the Field interface.
func (f *ConicField) T(x, y float64) float64 {
	dx := x - f.Center.X
	dy := y - f.Center.Y
	// atan2 returns [-Pi, Pi]; the +Pi shift puts t=0 on the negative x axis.
	angle := math.Atan2(dy, dx) + normalizeRotation(f.Rotation)
	return frac01((angle + math.Pi) / (2 * math.Pi))
}
