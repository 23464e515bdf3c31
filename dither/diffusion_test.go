package dither

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gdither "github.com/florisvdriel/gradient-dither"
)

func kernelWeightSum(k kernel) float64 {
	var sum float64
	for _, t := range k.targets {
		sum += t.weight
	}
	return sum
}

func TestKernelWeightSums(t *testing.T) {
	// Floyd-Steinberg redistributes the whole error; Atkinson drops a
	// quarter of it.
	assert.InDelta(t, 1.0, kernelWeightSum(floydSteinbergKernel), 1e-12)
	assert.InDelta(t, 6.0/8, kernelWeightSum(atkinsonKernel), 1e-12)
}

func TestKernelTargetsAreForward(t *testing.T) {
	// Error may only reach pixels not yet visited in raster order.
	for _, k := range []kernel{floydSteinbergKernel, atkinsonKernel} {
		for _, target := range k.targets {
			ok := target.dy > 0 || (target.dy == 0 && target.dx > 0)
			assert.True(t, ok, "%s: target %+v reaches backwards", k.name, target)
		}
	}
}

func TestDistributeErrorBudget(t *testing.T) {
	// A single bright pixel's error lands entirely in the neighbors: the
	// deltas sum to strength*(orig-quantized) for Floyd-Steinberg and to
	// 6/8 of that for Atkinson (the rest is dropped).
	const orig, strength = 200.0, 0.5
	q := quantize(orig, 2) // 255
	err := (orig - q) * strength

	for _, tc := range []struct {
		k    kernel
		frac float64
	}{
		{floydSteinbergKernel, 1.0},
		{atkinsonKernel, 6.0 / 8},
	} {
		buf := &workingBuffer{w: 7, h: 7, pix: make([]float64, 7*7*3)}
		distribute(buf, tc.k, 3, 3, 0, err)

		var total float64
		for _, v := range buf.pix {
			total += v
		}
		assert.InDelta(t, err*tc.frac, total, 1e-9, tc.k.name)
	}
}

func TestDistributeDropsOutOfBounds(t *testing.T) {
	// In the first column the south-west target has nowhere to go; its
	// 3/16 share of the error is dropped, not redirected.
	buf := &workingBuffer{w: 4, h: 4, pix: make([]float64, 4*4*3)}
	distribute(buf, floydSteinbergKernel, 0, 0, 0, 16)

	var total float64
	for _, v := range buf.pix {
		total += v
	}
	assert.InDelta(t, 16.0*(7+5+1)/16, total, 1e-9)
	assert.Zero(t, *buf.at(3, 3, 0))
}

func TestFloydSteinbergCheckerboard(t *testing.T) {
	// Uniform 120 gray at two levels: hand-computed diffusion produces a
	// checkerboard on a 2x2 buffer.
	//
	//	(0,0): q=0,  err=120 -> E +52.5, S +37.5, SE +7.5
	//	(1,0): 172.5 -> q=255, err=-82.5 -> SW -15.47, S -25.78
	//	(0,1): 142.03 -> q=255, err=-112.97 -> E -49.42
	//	(1,1): 52.29 -> q=0
	src := gdither.NewPixmap(2, 2)
	src.Clear(gdither.RGB{R: 120, G: 120, B: 120})

	out, err := Apply(src, Config{Algorithm: FloydSteinberg, Strength: 1, Scale: 1, Levels: 2})
	require.NoError(t, err)

	want := [][2]int{{0, 255}, {255, 0}}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			got := out.RGBAt(x, y)
			assert.EqualValues(t, want[y][x], got.R, "(%d,%d)", x, y)
			assert.EqualValues(t, want[y][x], got.G, "(%d,%d)", x, y)
			assert.EqualValues(t, want[y][x], got.B, "(%d,%d)", x, y)
		}
	}
}

func TestAtkinsonStripes(t *testing.T) {
	// Same input as the Floyd-Steinberg test; Atkinson's 1/8 weights
	// produce vertical stripes instead:
	//
	//	(0,0): q=0,  err/8=15 -> E 135, S 135, SE 135
	//	(1,0): 135 -> q=255, -15 -> SW 120, S 120
	//	(0,1): 120 -> q=0, +15 -> E 135
	//	(1,1): 135 -> q=255
	src := gdither.NewPixmap(2, 2)
	src.Clear(gdither.RGB{R: 120, G: 120, B: 120})

	out, err := Apply(src, Config{Algorithm: Atkinson, Strength: 1, Scale: 1, Levels: 2})
	require.NoError(t, err)

	want := [][2]int{{0, 255}, {0, 255}}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			assert.EqualValues(t, want[y][x], out.RGBAt(x, y).R, "(%d,%d)", x, y)
		}
	}
}

func TestDiffusionZeroStrengthIsPlainQuantize(t *testing.T) {
	src := rampPixmap(8, 4)
	out, err := Apply(src, Config{Algorithm: FloydSteinberg, Strength: 0, Scale: 1, Levels: 2})
	require.NoError(t, err)

	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			want := uint8(quantize(float64(src.RGBAt(x, y).R), 2))
			assert.Equal(t, want, out.RGBAt(x, y).R, "(%d,%d)", x, y)
		}
	}
}

func TestDiffusionScaleBlocks(t *testing.T) {
	// With scale 2 the pass runs on a half-resolution working buffer and
	// the result upsamples in 2x2 blocks: each block is uniform and equal
	// to the quantized top-left source sample (strength 0 isolates the
	// resample shell from diffusion).
	src := rampPixmap(8, 8)
	out, err := Apply(src, Config{Algorithm: Atkinson, Strength: 0, Scale: 2, Levels: 256})
	require.NoError(t, err)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := src.RGBAt((x/2)*2, (y/2)*2)
			assert.Equal(t, want, out.RGBAt(x, y), "(%d,%d)", x, y)
		}
	}
}

func TestDiffusionScaleBelowOneSnaps(t *testing.T) {
	src := rampPixmap(4, 4)
	a, err := Apply(src, Config{Algorithm: FloydSteinberg, Strength: 1, Scale: 0.25, Levels: 2})
	require.NoError(t, err)
	b, err := Apply(src, Config{Algorithm: FloydSteinberg, Strength: 1, Scale: 1, Levels: 2})
	require.NoError(t, err)
	assert.Equal(t, b.Data(), a.Data())
}

func TestDownsampleUpsampleRoundTrip(t *testing.T) {
	src := rampPixmap(5, 3)
	buf := downsampleNearest(src, 1)
	require.Equal(t, 5, buf.w)
	require.Equal(t, 3, buf.h)

	dst := gdither.NewPixmap(5, 3)
	upsampleNearest(buf, dst, 1)
	assert.Equal(t, src.Data(), dst.Data())
}

func TestDownsampleTinyBuffer(t *testing.T) {
	// A scale larger than the buffer collapses to a 1x1 working buffer
	// rather than zero.
	src := rampPixmap(3, 3)
	buf := downsampleNearest(src, 10)
	assert.Equal(t, 1, buf.w)
	assert.Equal(t, 1, buf.h)
}

func TestUpsampleClampsChannels(t *testing.T) {
	buf := &workingBuffer{w: 1, h: 1, pix: []float64{300, -40, 128}}
	dst := gdither.NewPixmap(2, 2)
	upsampleNearest(buf, dst, 2)

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			assert.Equal(t, gdither.RGB{R: 255, G: 0, B: 128}, dst.RGBAt(x, y))
		}
	}
}
