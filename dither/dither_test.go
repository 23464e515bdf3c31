package dither

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gdither "github.com/florisvdriel/gradient-dither"
)

// rampPixmap builds a horizontal grayscale ramp, a worst case for banding.
func rampPixmap(w, h int) *gdither.Pixmap {
	p := gdither.NewPixmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(x * 255 / (w - 1))
			p.SetRGB(x, y, gdither.RGB{R: v, G: v, B: v})
		}
	}
	return p
}

func TestAlgorithmStringAndParse(t *testing.T) {
	for _, alg := range []Algorithm{Ordered, FloydSteinberg, Atkinson, Noise} {
		got, err := ParseAlgorithm(alg.String())
		require.NoError(t, err)
		assert.Equal(t, alg, got)
	}

	_, err := ParseAlgorithm("riemersma")
	assert.Error(t, err)
	assert.False(t, Algorithm(-1).Valid())
	assert.False(t, Algorithm(algorithmCount).Valid())
}

func TestApplyRejectsBadLevels(t *testing.T) {
	src := rampPixmap(4, 4)
	for _, levels := range []int{-1, 0, 1} {
		_, err := Apply(src, Config{Algorithm: Ordered, Levels: levels})
		assert.ErrorIs(t, err, ErrLevels, "levels=%d", levels)
	}
}

func TestApplyInvariants(t *testing.T) {
	// Every algorithm: same dimensions, alpha 255 everywhere, RGB values
	// drawn from the quantization level set, input untouched.
	algorithms := []Algorithm{Ordered, FloydSteinberg, Atkinson, Noise}
	levels := 3
	set := levelSet(levels)

	for _, alg := range algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			src := rampPixmap(16, 9)
			before := make([]uint8, len(src.Data()))
			copy(before, src.Data())

			out, err := Apply(src, Config{
				Algorithm: alg,
				Strength:  0.9,
				Scale:     2,
				Levels:    levels,
			})
			require.NoError(t, err)

			assert.Equal(t, src.Width(), out.Width())
			assert.Equal(t, src.Height(), out.Height())
			assert.Equal(t, before, src.Data(), "input must not be mutated")

			data := out.Data()
			for i := 0; i < len(data); i += 4 {
				for c := 0; c < 3; c++ {
					assert.Contains(t, set, float64(data[i+c]),
						"pixel %d channel %d", i/4, c)
				}
				require.EqualValues(t, 255, data[i+3], "alpha at pixel %d", i/4)
			}
		})
	}
}

func TestApplyUnknownAlgorithmPassesThrough(t *testing.T) {
	src := rampPixmap(8, 8)
	out, err := Apply(src, Config{Algorithm: Algorithm(42), Levels: 2})
	require.NoError(t, err)

	assert.Equal(t, src.Data(), out.Data(), "pass-through must be byte-identical")
	assert.NotSame(t, src, out, "pass-through still returns a fresh buffer")
}

func TestApplyStrengthClamped(t *testing.T) {
	src := rampPixmap(8, 8)

	over, err := Apply(src, Config{Algorithm: Ordered, Strength: 5, Scale: 2, Levels: 2})
	require.NoError(t, err)
	one, err := Apply(src, Config{Algorithm: Ordered, Strength: 1, Scale: 2, Levels: 2})
	require.NoError(t, err)
	assert.Equal(t, one.Data(), over.Data(), "strength above 1 clamps to 1")

	under, err := Apply(src, Config{Algorithm: Ordered, Strength: -2, Scale: 2, Levels: 2})
	require.NoError(t, err)
	zero, err := Apply(src, Config{Algorithm: Ordered, Strength: 0, Scale: 2, Levels: 2})
	require.NoError(t, err)
	assert.Equal(t, zero.Data(), under.Data(), "strength below 0 clamps to 0")
}

func TestOrderedMidGrayZeroStrength(t *testing.T) {
	// With strength 0 the threshold term vanishes: a uniform mid-gray
	// buffer quantizes identically at every matrix position.
	src := gdither.NewPixmap(2, 2)
	src.Clear(gdither.RGB{R: 128, G: 128, B: 128})

	out, err := Apply(src, Config{Algorithm: Ordered, Strength: 0, Scale: 2, Levels: 2})
	require.NoError(t, err)

	want := uint8(quantize(128, 2)) // 255
	data := out.Data()
	for i := 0; i < len(data); i += 4 {
		assert.EqualValues(t, want, data[i+0])
		assert.EqualValues(t, want, data[i+1])
		assert.EqualValues(t, want, data[i+2])
		assert.EqualValues(t, 255, data[i+3])
	}
}

func TestOrderedThresholdVariesByPosition(t *testing.T) {
	// At full strength a uniform mid-gray input must produce both levels:
	// the matrix pushes some positions up and others down.
	src := gdither.NewPixmap(4, 4)
	src.Clear(gdither.RGB{R: 128, G: 128, B: 128})

	out, err := Apply(src, Config{Algorithm: Ordered, Strength: 1, Scale: 4, Levels: 2})
	require.NoError(t, err)

	counts := map[uint8]int{}
	data := out.Data()
	for i := 0; i < len(data); i += 4 {
		counts[data[i]]++
	}
	assert.Positive(t, counts[0], "some pixels should round down")
	assert.Positive(t, counts[255], "some pixels should round up")
}
