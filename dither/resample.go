package dither

import gdither "github.com/florisvdriel/gradient-dither"

// workingBuffer holds RGB samples at float precision. Error diffusion
// accumulates fractional error into it directly instead of the 8-bit
// output, avoiding compounding rounding drift across the raster pass.
type workingBuffer struct {
	w, h int
	pix  []float64 // 3 samples per pixel, row-major
}

// at returns a pointer to the channel sample at (x, y).
func (b *workingBuffer) at(x, y, c int) *float64 {
	return &b.pix[(y*b.w+x)*3+c]
}

// downsampleNearest builds a working buffer at floor(dimension/scale)
// resolution (minimum 1x1) by nearest-neighbor sampling: working pixel
// (x, y) reads the source pixel at floor(coord*scale), clamped to the
// source extent. scale must be >= 1; callers snap it before invoking.
func downsampleNearest(src *gdither.Pixmap, scale float64) *workingBuffer {
	sw, sh := src.Width(), src.Height()
	w := int(float64(sw) / scale)
	h := int(float64(sh) / scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	buf := &workingBuffer{w: w, h: h, pix: make([]float64, w*h*3)}
	data := src.Data()
	for y := 0; y < h; y++ {
		sy := clampInt(int(float64(y)*scale), 0, sh-1)
		for x := 0; x < w; x++ {
			sx := clampInt(int(float64(x)*scale), 0, sw-1)
			si := (sy*sw + sx) * 4
			di := (y*w + x) * 3
			buf.pix[di+0] = float64(data[si+0])
			buf.pix[di+1] = float64(data[si+1])
			buf.pix[di+2] = float64(data[si+2])
		}
	}
	return buf
}

// upsampleNearest expands the working buffer back to the destination
// resolution: each output pixel reads working pixel floor(coord/scale),
// clamped to the working extent. Channel values are clamped to [0, 255]
// and alpha is forced to 255.
func upsampleNearest(buf *workingBuffer, dst *gdither.Pixmap, scale float64) {
	dw, dh := dst.Width(), dst.Height()
	data := dst.Data()
	for y := 0; y < dh; y++ {
		sy := clampInt(int(float64(y)/scale), 0, buf.h-1)
		for x := 0; x < dw; x++ {
			sx := clampInt(int(float64(x)/scale), 0, buf.w-1)
			si := (sy*buf.w + sx) * 3
			di := (y*dw + x) * 4
			data[di+0] = uint8(clamp255(buf.pix[si+0]))
			data[di+1] = uint8(clamp255(buf.pix[si+1]))
			data[di+2] = uint8(clamp255(buf.pix[si+2]))
			data[di+3] = 255
		}
	}
}

// clampInt restricts v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
