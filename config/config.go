// Package config loads and validates scene descriptions. It is the boundary
// between an external control surface and the core: everything it hands out
// is already validated, so the rendering pipeline performs no schema checks
// of its own.
package config

import (
	"fmt"
	"os"

	gdither "github.com/florisvdriel/gradient-dither"
	"github.com/florisvdriel/gradient-dither/dither"
	"gopkg.in/yaml.v3"
)

// Scene describes one animated gradient: geometry, colors, motion, dither
// settings, and export settings.
type Scene struct {
	// Width and Height are the logical canvas size in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Density is the pixel-density multiplier applied to the buffer size
	// and to all spatial parameters. Defaults to 1.
	Density float64 `yaml:"density"`

	// Colors is the ordered list of gradient color stops, as hex strings.
	// At least two are required; order is significant.
	Colors []string `yaml:"colors"`

	// Gradient is the field type: "radial", "linear", or "conic".
	Gradient string `yaml:"gradient"`

	// Size is the spatial extent of the gradient in logical pixels.
	// Defaults to the larger canvas dimension.
	Size float64 `yaml:"size"`

	// RotationSpeed is the phase increment per frame, in radians. The
	// accumulated phase grows without bound; the core normalizes it.
	RotationSpeed float64 `yaml:"rotation_speed"`

	// Background is the color shown where a mask is transparent.
	Background string `yaml:"background"`

	Dither DitherSettings `yaml:"dither"`
	Export ExportSettings `yaml:"export"`
}

// DitherSettings mirrors dither.Config with string-keyed algorithm names.
type DitherSettings struct {
	Algorithm string  `yaml:"algorithm"`
	Strength  float64 `yaml:"strength"`
	Scale     float64 `yaml:"scale"`
	Levels    int     `yaml:"levels"`
}

// ExportSettings controls animation export.
type ExportSettings struct {
	// Frames is the number of frames in an exported animation.
	Frames int `yaml:"frames"`
	// DelayCS is the per-frame delay in hundredths of a second.
	DelayCS int `yaml:"delay_cs"`
	// Workers bounds concurrent frame rendering; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
	// Width and Height, when non-zero, rescale exported frames to a
	// resolution different from the canvas.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Default returns a scene with sensible demo values.
func Default() *Scene {
	return &Scene{
		Width:         512,
		Height:        512,
		Density:       1,
		Colors:        []string{"#1a1a2e", "#e94560", "#f5f5f5"},
		Gradient:      "radial",
		RotationSpeed: 0.05,
		Background:    "#000000",
		Dither: DitherSettings{
			Algorithm: "ordered",
			Strength:  0.8,
			Scale:     4,
			Levels:    4,
		},
		Export: ExportSettings{
			Frames:  60,
			DelayCS: 4,
		},
	}
}

// Load reads a YAML scene file, fills in defaults for omitted fields, and
// validates the result.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML scene description, fills in defaults for omitted
// fields, and validates the result.
func Parse(data []byte) (*Scene, error) {
	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// applyDefaults fills zero-valued fields that have non-zero defaults.
func (s *Scene) applyDefaults() {
	if s.Density <= 0 {
		s.Density = 1
	}
	if s.Size <= 0 {
		s.Size = float64(max(s.Width, s.Height))
	}
	if s.Export.Workers < 0 {
		s.Export.Workers = 0
	}
}

// Validate checks the scene once so downstream stages never have to.
func (s *Scene) Validate() error {
	if s.Width < 1 || s.Height < 1 {
		return fmt.Errorf("config: canvas size %dx%d is invalid", s.Width, s.Height)
	}
	if len(s.Colors) < 2 {
		return fmt.Errorf("config: %w", gdither.ErrPaletteSize)
	}
	if _, err := gdither.ParseHexColors(s.Colors); err != nil {
		return err
	}
	if s.Background != "" {
		if _, err := gdither.ParseHexColor(s.Background); err != nil {
			return err
		}
	}
	if _, err := gdither.ParseGradientType(s.Gradient); err != nil {
		return err
	}
	if _, err := dither.ParseAlgorithm(s.Dither.Algorithm); err != nil {
		return err
	}
	if s.Dither.Levels < 2 {
		return dither.ErrLevels
	}
	if s.Export.Frames < 1 {
		return fmt.Errorf("config: export needs at least one frame")
	}
	return nil
}

// Palette returns the parsed color stops.
func (s *Scene) Palette() gdither.Palette {
	p, err := gdither.ParseHexColors(s.Colors)
	if err != nil {
		// Validate has already run; reaching this is a programming error.
		panic(err)
	}
	return p
}

// BackgroundRGB returns the parsed background color (black if unset).
func (s *Scene) BackgroundRGB() gdither.RGB {
	if s.Background == "" {
		return gdither.Black
	}
	c, err := gdither.ParseHexColor(s.Background)
	if err != nil {
		panic(err)
	}
	return c
}

// GradientType returns the parsed gradient field type.
func (s *Scene) GradientType() gdither.GradientType {
	t, err := gdither.ParseGradientType(s.Gradient)
	if err != nil {
		panic(err)
	}
	return t
}

// DitherConfig returns the parsed dither configuration.
func (s *Scene) DitherConfig() dither.Config {
	alg, err := dither.ParseAlgorithm(s.Dither.Algorithm)
	if err != nil {
		panic(err)
	}
	return dither.Config{
		Algorithm: alg,
		Strength:  s.Dither.Strength,
		Scale:     s.Dither.Scale,
		Levels:    s.Dither.Levels,
	}
}
