package gdither

import (
	"image"
	"math"
)

// Mask represents a single-channel coverage mask for compositing.
// Values range from 0 (background shows through) to 255 (gradient shows
// through). Masks are produced outside the core, typically by a text or
// shape rasterizer.
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask creates a new empty mask with the given dimensions.
// All values are initialized to 0.
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// NewMaskFromPixmap creates a mask from a pixmap's red channel.
// Grayscale masks are expected (R=G=B); green, blue, and alpha are ignored.
func NewMaskFromPixmap(p *Pixmap) *Mask {
	mask := NewMask(p.width, p.height)
	for i := range mask.data {
		mask.data[i] = p.data[i*4]
	}
	return mask
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// At returns the mask value at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set sets the mask value at (x, y).
// Coordinates outside the mask bounds are ignored.
func (m *Mask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = value
}

// Fill fills the entire mask with a value.
func (m *Mask) Fill(value uint8) {
	for i := range m.data {
		m.data[i] = value
	}
}

// FillRect fills a rectangular region with a value.
// The rectangle is clipped to the mask bounds.
func (m *Mask) FillRect(x0, y0, x1, y1 int, value uint8) {
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > m.width {
		x1 = m.width
	}
	if y1 > m.height {
		y1 = m.height
	}
	for y := y0; y < y1; y++ {
		row := y * m.width
		for x := x0; x < x1; x++ {
			m.data[row+x] = value
		}
	}
}

// Invert inverts all mask values (255 - value).
func (m *Mask) Invert() {
	for i := range m.data {
		m.data[i] = 255 - m.data[i]
	}
}

// Clone creates a copy of the mask.
func (m *Mask) Clone() *Mask {
	clone := NewMask(m.width, m.height)
	copy(clone.data, m.data)
	return clone
}

// Data returns the underlying mask data slice.
func (m *Mask) Data() []uint8 {
	return m.data
}

// Composite blends gradient over a background color through mask, writing
// the result into dst. Per pixel: out = gradient*luma + background*(1-luma)
// where luma is the mask value divided by 255. Output alpha is always 255.
//
// All three buffers must share the same dimensions; mismatched sizes are an
// unchecked precondition violation. dst may alias gradient.
func Composite(dst, gradient *Pixmap, mask *Mask, background RGB) {
	bgR := float64(background.R)
	bgG := float64(background.G)
	bgB := float64(background.B)

	for y := 0; y < dst.height; y++ {
		for x := 0; x < dst.width; x++ {
			luma := float64(mask.data[y*mask.width+x]) / 255
			i := (y*dst.width + x) * 4
			dst.data[i+0] = blendChannel(float64(gradient.data[i+0]), bgR, luma)
			dst.data[i+1] = blendChannel(float64(gradient.data[i+1]), bgG, luma)
			dst.data[i+2] = blendChannel(float64(gradient.data[i+2]), bgB, luma)
			dst.data[i+3] = 255
		}
	}
}

// blendChannel mixes one channel of the gradient with the background.
func blendChannel(fg, bg, luma float64) uint8 {
	return uint8(clamp255(math.Round(fg*luma + bg*(1-luma))))
}
