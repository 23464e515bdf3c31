package dither

import (
	"errors"
	"fmt"

	gdither "github.com/florisvdriel/gradient-dither"
)

// Algorithm selects the quantization strategy.
type Algorithm int

const (
	// Ordered applies a Bayer threshold matrix before quantizing.
	Ordered Algorithm = iota
	// FloydSteinberg diffuses quantization error in raster order.
	FloydSteinberg
	// Atkinson diffuses three quarters of the quantization error.
	Atkinson
	// Noise adds per-grain-cell uniform noise before quantizing.
	Noise

	algorithmCount // sentinel for validation
)

var algorithmNames = [algorithmCount]string{
	"ordered", "floyd-steinberg", "atkinson", "noise",
}

// String returns the name of the algorithm.
func (a Algorithm) String() string {
	if a.Valid() {
		return algorithmNames[a]
	}
	return fmt.Sprintf("Algorithm(%d)", a)
}

// Valid reports whether a is a known algorithm.
func (a Algorithm) Valid() bool {
	return a >= 0 && a < algorithmCount
}

// ParseAlgorithm parses an algorithm name.
func ParseAlgorithm(s string) (Algorithm, error) {
	for i, name := range algorithmNames {
		if s == name {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("dither: unknown algorithm %q", s)
}

// ErrLevels is returned when fewer than two quantization levels are
// requested. The quantization step is undefined below two levels.
var ErrLevels = errors.New("dither: color levels must be at least 2")

// Config holds the dithering parameters.
type Config struct {
	// Algorithm selects the quantization strategy.
	Algorithm Algorithm

	// Strength scales the applied threshold, error, or noise magnitude.
	// Clamped to [0, 1].
	Strength float64

	// Scale is algorithm-specific: the matrix tile size for Ordered
	// (snapped to 2, 4, 8, or 16), the downsample factor for the diffusion
	// algorithms (snapped up to at least 1), and the grain cell size in
	// pixels for Noise (snapped up to at least 1).
	Scale float64

	// Levels is the number of evenly spaced output values per channel,
	// covering the full 0-255 range inclusive. Must be at least 2.
	Levels int
}

// Apply quantizes src according to cfg and returns a freshly allocated
// buffer of identical dimensions. src is never modified. Every produced
// buffer has alpha 255 everywhere.
//
// Unknown algorithm selectors are not an error: the image passes through
// unchanged (a byte-identical copy is returned).
func Apply(src *gdither.Pixmap, cfg Config) (*gdither.Pixmap, error) {
	if cfg.Levels < 2 {
		return nil, ErrLevels
	}
	strength := clamp01(cfg.Strength)

	switch cfg.Algorithm {
	case Ordered:
		return applyOrdered(src, strength, cfg.Scale, cfg.Levels), nil
	case FloydSteinberg:
		return applyDiffusion(src, floydSteinbergKernel, strength, cfg.Scale, cfg.Levels), nil
	case Atkinson:
		return applyDiffusion(src, atkinsonKernel, strength, cfg.Scale, cfg.Levels), nil
	case Noise:
		return applyNoise(src, strength, cfg.Scale, cfg.Levels), nil
	default:
		gdither.Logger().Warn("dither: unknown algorithm, passing through",
			"algorithm", int(cfg.Algorithm))
		return src.Clone(), nil
	}
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
