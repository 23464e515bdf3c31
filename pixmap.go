package gdither

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap represents a rectangular RGBA pixel buffer, row-major, 4 bytes per
// pixel. Buffers are caller-owned: pipeline stages write into a Pixmap for
// the duration of one call and never retain a reference afterwards.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetRGB sets a single pixel to an opaque color.
func (p *Pixmap) SetRGB(x, y int, c RGB) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = 255
}

// RGBAt returns the color of a single pixel, ignoring alpha.
// Out-of-bounds coordinates return black.
func (p *Pixmap) RGBAt(x, y int) RGB {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return RGB{}
	}
	i := (y*p.width + x) * 4
	return RGB{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2]}
}

// Clear fills the entire pixmap with an opaque color.
func (p *Pixmap) Clear(c RGB) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = 255
	}
}

// Clone creates a copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	clone := NewPixmap(p.width, p.height)
	copy(clone.data, p.data)
	return clone
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := (y*width + x) * 4
			pm.data[i+0] = uint8(r >> 8)
			pm.data[i+1] = uint8(g >> 8)
			pm.data[i+2] = uint8(b >> 8)
			pm.data[i+3] = uint8(a >> 8)
		}
	}

	return pm
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	img := p.ToImage()
	return png.Encode(f, img)
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := (y*p.width + x) * 4
	return color.RGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
