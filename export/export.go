// Package export collects rendered frames into PNG and animated GIF files.
// Frames are independent, so animation export renders them concurrently on
// a bounded worker group; encoding itself is sequential.
package export

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"os"
	"runtime"
	"sync"

	gdither "github.com/florisvdriel/gradient-dither"
	xdraw "golang.org/x/image/draw"
)

// FrameFunc renders the frame for a given rotation phase. It must be safe
// for concurrent calls with distinct phases (render.Renderer.FrameAt is).
type FrameFunc func(phase float64) (*gdither.Pixmap, error)

// GIFOptions controls animation export.
type GIFOptions struct {
	// Frames is the number of frames to render. Must be at least 1.
	Frames int

	// Step is the phase increment between frames, in radians.
	Step float64

	// DelayCS is the per-frame delay in hundredths of a second.
	DelayCS int

	// Workers bounds concurrent frame rendering. Zero means GOMAXPROCS.
	Workers int
}

// PNG renders a single frame at the given phase and writes it to path.
func PNG(frame FrameFunc, phase float64, path string) error {
	p, err := frame(phase)
	if err != nil {
		return err
	}
	return p.SavePNG(path)
}

// GIFFile renders an animation and writes it to path.
func GIFFile(frame FrameFunc, opts GIFOptions, path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return GIF(frame, opts, f)
}

// GIF renders opts.Frames frames at evenly stepped phases and encodes them
// as an animated GIF. Frames render concurrently; the encoded order always
// matches phase order. Dithered output is already near-paletted, so frames
// are mapped to the 256-color Plan9 palette by nearest match without any
// further dithering.
func GIF(frame FrameFunc, opts GIFOptions, w io.Writer) error {
	if opts.Frames < 1 {
		return fmt.Errorf("export: need at least one frame, got %d", opts.Frames)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > opts.Frames {
		workers = opts.Frames
	}

	frames := make([]*image.Paletted, opts.Frames)
	errs := make([]error, opts.Frames)

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for i := 0; i < opts.Frames; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			p, err := frame(float64(i) * opts.Step)
			if err != nil {
				errs[i] = err
				return
			}
			frames[i] = toPaletted(p)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return fmt.Errorf("export: frame %d: %w", i, err)
		}
	}

	anim := &gif.GIF{
		Image: frames,
		Delay: make([]int, opts.Frames),
	}
	for i := range anim.Delay {
		anim.Delay[i] = opts.DelayCS
	}

	gdither.Logger().Info("encoding gif", "frames", opts.Frames, "workers", workers)
	return gif.EncodeAll(w, anim)
}

// toPaletted maps a pixmap onto the Plan9 palette by nearest color.
func toPaletted(p *gdither.Pixmap) *image.Paletted {
	bounds := p.Bounds()
	dst := image.NewPaletted(bounds, palette.Plan9)
	draw.Draw(dst, bounds, p.ToImage(), image.Point{}, draw.Src)
	return dst
}

// Rescaled wraps a FrameFunc so that every produced frame is resized to
// width x height. Zero dimensions disable rescaling.
func Rescaled(frame FrameFunc, width, height int) FrameFunc {
	if width <= 0 || height <= 0 {
		return frame
	}
	return func(phase float64) (*gdither.Pixmap, error) {
		p, err := frame(phase)
		if err != nil {
			return nil, err
		}
		return Rescale(p, width, height), nil
	}
}

// Rescale resizes a pixmap to the given dimensions. Upscales use
// nearest-neighbor to keep the dither pattern crisp; downscales use
// Catmull-Rom resampling.
func Rescale(src *gdither.Pixmap, width, height int) *gdither.Pixmap {
	if width == src.Width() && height == src.Height() {
		return src.Clone()
	}

	var scaler xdraw.Scaler = xdraw.CatmullRom
	if width >= src.Width() && height >= src.Height() {
		scaler = xdraw.NearestNeighbor
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	scaler.Scale(dst, dst.Bounds(), src.ToImage(), src.Bounds(), xdraw.Src, nil)
	return gdither.FromImage(dst)
}
