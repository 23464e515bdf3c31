package dither

import gdither "github.com/florisvdriel/gradient-dither"

// applyOrdered performs Bayer threshold dithering. Each pixel's RGB channels
// get a position-dependent threshold added before quantization:
//
//	threshold = (matrix[y%n][x%n]/max - 0.5) * strength * 255
//
// The pass is stateless and has no inter-pixel dependencies.
func applyOrdered(src *gdither.Pixmap, strength, scale float64, levels int) *gdither.Pixmap {
	table := bayerMatrix(int(scale))
	n := len(table.M)
	norm := float64(table.Max)

	w, h := src.Width(), src.Height()
	out := gdither.NewPixmap(w, h)
	srcData, outData := src.Data(), out.Data()

	for y := 0; y < h; y++ {
		row := table.M[y%n]
		for x := 0; x < w; x++ {
			threshold := (float64(row[x%n])/norm - 0.5) * strength * 255
			i := (y*w + x) * 4
			for c := 0; c < 3; c++ {
				v := clamp255(float64(srcData[i+c]) + threshold)
				outData[i+c] = uint8(quantize(v, levels))
			}
			outData[i+3] = 255
		}
	}
	return out
}
