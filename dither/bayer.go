package dither

import "sync"

// bayerTable is an immutable threshold matrix together with its divisor.
// Entries are a permutation of [0, size²); Max is size² so that thresholds
// normalize into [0, 1).
type bayerTable struct {
	M   [][]int
	Max int
}

// Supported matrix sizes, in snapping order.
var bayerSizes = [...]int{2, 4, 8, 16}

var (
	bayerOnce  [len(bayerSizes)]sync.Once
	bayerCache [len(bayerSizes)]*bayerTable
)

// snapMatrixSize snaps a requested size to the nearest supported size not
// exceeding it, with a floor of 2 and a ceiling of 16.
func snapMatrixSize(n int) int {
	switch {
	case n <= 2:
		return 2
	case n <= 4:
		return 4
	case n <= 8:
		return 8
	default:
		return 16
	}
}

// bayerMatrix returns the memoized threshold matrix for a requested size.
// Generation is pure and runs at most once per size; concurrent first
// access is safe and later calls share the same read-only table.
func bayerMatrix(size int) *bayerTable {
	size = snapMatrixSize(size)
	idx := 0
	for i, s := range bayerSizes {
		if s == size {
			idx = i
			break
		}
	}
	bayerOnce[idx].Do(func() {
		bayerCache[idx] = buildBayer(size)
	})
	return bayerCache[idx]
}

// buildBayer recursively constructs a Bayer matrix of the given power-of-two
// size. The size-2 seed is [[0,2],[3,1]]; each doubling tiles the smaller
// matrix into four quadrants offset by the classic [0,2,3,1] pattern. The
// offset table is intentionally not in raster order; the permutation is what
// produces the Bayer threshold ranking.
func buildBayer(size int) *bayerTable {
	if size <= 2 {
		return &bayerTable{
			M:   [][]int{{0, 2}, {3, 1}},
			Max: 4,
		}
	}

	k := size / 2
	smaller := buildBayer(k)
	offsets := [4]int{0, 2, 3, 1}

	m := make([][]int, size)
	for y := 0; y < size; y++ {
		m[y] = make([]int, size)
		for x := 0; x < size; x++ {
			quadrant := 2*(y/k) + (x / k)
			m[y][x] = 4*smaller.M[y%k][x%k] + offsets[quadrant]
		}
	}
	return &bayerTable{M: m, Max: size * size}
}
