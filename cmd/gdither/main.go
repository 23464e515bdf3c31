// Command gdither renders an animated, dithered gradient described by a
// YAML scene file and exports it as an animated GIF and/or a still PNG.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	gdither "github.com/florisvdriel/gradient-dither"
	"github.com/florisvdriel/gradient-dither/config"
	"github.com/florisvdriel/gradient-dither/export"
	"github.com/florisvdriel/gradient-dither/render"
)

func main() {
	var (
		configPath = flag.String("config", "", "scene YAML file (built-in demo scene if empty)")
		gifPath    = flag.String("gif", "out.gif", "animated GIF output path (empty to skip)")
		pngPath    = flag.String("png", "", "still PNG output path (empty to skip)")
		frames     = flag.Int("frames", 0, "override frame count from the scene")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		gdither.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	scene := config.Default()
	if *configPath != "" {
		var err error
		scene, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load scene: %v", err)
		}
	}
	if *frames > 0 {
		scene.Export.Frames = *frames
	}

	r := &render.Renderer{
		Width:         scene.Width,
		Height:        scene.Height,
		Density:       scene.Density,
		Gradient:      scene.GradientType(),
		Palette:       scene.Palette(),
		Size:          scene.Size,
		RotationSpeed: scene.RotationSpeed,
		Background:    scene.BackgroundRGB(),
		Dither:        scene.DitherConfig(),
	}

	frame := export.Rescaled(r.FrameAt, scene.Export.Width, scene.Export.Height)

	if *pngPath != "" {
		if err := export.PNG(frame, 0, *pngPath); err != nil {
			log.Fatalf("Failed to write PNG: %v", err)
		}
		log.Printf("Wrote %s (%dx%d)", *pngPath, scene.Width, scene.Height)
	}

	if *gifPath != "" {
		opts := export.GIFOptions{
			Frames:  scene.Export.Frames,
			Step:    scene.RotationSpeed,
			DelayCS: scene.Export.DelayCS,
			Workers: scene.Export.Workers,
		}
		if err := export.GIFFile(frame, opts, *gifPath); err != nil {
			log.Fatalf("Failed to write GIF: %v", err)
		}
		log.Printf("Wrote %s (%d frames)", *gifPath, opts.Frames)
	}
}
