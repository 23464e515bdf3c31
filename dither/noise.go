package dither

import (
	"math"
	"math/rand/v2"

	gdither "github.com/florisvdriel/gradient-dither"
)

// applyNoise adds grain noise before quantizing. The buffer is divided into
// grain-sized cells (ceil(dimension/grain) per axis) and every cell draws
// one uniform value in [-0.5, 0.5) * strength * 255, shared by all pixels
// inside the cell.
//
// The random stream is the process-global, unseeded source: repeated runs
// produce different noise. Exports that need reproducible grain must reuse
// a captured frame rather than re-render.
func applyNoise(src *gdither.Pixmap, strength, grain float64, levels int) *gdither.Pixmap {
	if grain < 1 {
		grain = 1
	}

	w, h := src.Width(), src.Height()
	cols := int(math.Ceil(float64(w) / grain))
	rows := int(math.Ceil(float64(h) / grain))

	cells := make([]float64, cols*rows)
	for i := range cells {
		cells[i] = (rand.Float64() - 0.5) * strength * 255
	}

	out := gdither.NewPixmap(w, h)
	srcData, outData := src.Data(), out.Data()

	for y := 0; y < h; y++ {
		cy := clampInt(int(float64(y)/grain), 0, rows-1)
		for x := 0; x < w; x++ {
			cx := clampInt(int(float64(x)/grain), 0, cols-1)
			noise := cells[cy*cols+cx]
			i := (y*w + x) * 4
			for c := 0; c < 3; c++ {
				v := clamp255(float64(srcData[i+c]) + noise)
				outData[i+c] = uint8(quantize(v, levels))
			}
			outData[i+3] = 255
		}
	}
	return out
}
