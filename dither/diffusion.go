package dither

import gdither "github.com/florisvdriel/gradient-dither"

// diffusionTarget receives a fraction of a pixel's quantization error.
// Offsets are relative to the pixel being quantized and must only reach
// not-yet-visited pixels in raster order (dy > 0, or dy == 0 with dx > 0).
type diffusionTarget struct {
	dx, dy int
	weight float64
}

// kernel describes one error-diffusion algorithm.
type kernel struct {
	name    string
	targets []diffusionTarget
}

// floydSteinbergKernel redistributes the full error: 7/16 east, 3/16
// south-west, 5/16 south, 1/16 south-east.
var floydSteinbergKernel = kernel{
	name: "floyd-steinberg",
	targets: []diffusionTarget{
		{dx: 1, dy: 0, weight: 7.0 / 16},
		{dx: -1, dy: 1, weight: 3.0 / 16},
		{dx: 0, dy: 1, weight: 5.0 / 16},
		{dx: 1, dy: 1, weight: 1.0 / 16},
	},
}

// atkinsonKernel redistributes 1/8 of the error to each of six targets.
// The remaining 2/8 is discarded, which is what keeps highlights and
// shadows from washing out compared to Floyd-Steinberg.
var atkinsonKernel = kernel{
	name: "atkinson",
	targets: []diffusionTarget{
		{dx: 1, dy: 0, weight: 1.0 / 8},
		{dx: 2, dy: 0, weight: 1.0 / 8},
		{dx: -1, dy: 1, weight: 1.0 / 8},
		{dx: 0, dy: 1, weight: 1.0 / 8},
		{dx: 1, dy: 1, weight: 1.0 / 8},
		{dx: 0, dy: 2, weight: 1.0 / 8},
	},
}

// applyDiffusion runs an error-diffusion algorithm on a downsampled working
// copy of src and upsamples the result back to full resolution. The
// downsample factor comes from scale (snapped to at least 1; fractional
// factors below 1 are not a valid diffusion input).
func applyDiffusion(src *gdither.Pixmap, k kernel, strength, scale float64, levels int) *gdither.Pixmap {
	if scale < 1 {
		scale = 1
	}
	buf := downsampleNearest(src, scale)
	diffusePass(buf, k, strength, levels)

	out := gdither.NewPixmap(src.Width(), src.Height())
	upsampleNearest(buf, out, scale)
	return out
}

// diffusePass quantizes the working buffer in place, in raster order
// (row-major, left-to-right, top-to-bottom). Each pixel is snapped to a
// quantization level and the signed error, scaled by strength, is pushed
// into unvisited neighbors per the kernel. The pass is inherently
// sequential: every pixel's value depends on error accumulated from
// already-processed pixels. Do not parallelize within one buffer.
func diffusePass(buf *workingBuffer, k kernel, strength float64, levels int) {
	for y := 0; y < buf.h; y++ {
		for x := 0; x < buf.w; x++ {
			for c := 0; c < 3; c++ {
				sample := buf.at(x, y, c)
				old := *sample
				q := quantize(old, levels)
				*sample = q

				if err := (old - q) * strength; err != 0 {
					distribute(buf, k, x, y, c, err)
				}
			}
		}
	}
}

// distribute pushes a pixel's scaled quantization error into its in-bounds
// kernel targets. Targets falling outside the buffer (first/last columns,
// bottom rows) drop their share of the error.
func distribute(buf *workingBuffer, k kernel, x, y, c int, err float64) {
	for _, t := range k.targets {
		nx, ny := x+t.dx, y+t.dy
		if nx < 0 || nx >= buf.w || ny >= buf.h {
			continue
		}
		*buf.at(nx, ny, c) += err * t.weight
	}
}
