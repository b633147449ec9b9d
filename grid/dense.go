package grid

import "fmt"

// mustInBounds panics when (x, y) falls outside [0,w)×[0,h).
// Out-of-range access on a Source is a contract violation, not an
// error path (see the Source docs).
func mustInBounds(x, y, w, h int) {
	if x < 0 || x >= w || y < 0 || y >= h {
		panic(fmt.Sprintf("grid: At(%d,%d) outside [0,%d)×[0,%d)", x, y, w, h))
	}
}

// Dense is a Source backed by a rectangular 2D slice of rows, stored
// row-major: values[y][x] holds the sample at column x, row y. It is
// immutable once constructed.
type Dense[T Value] struct {
	w, h   int
	values [][]T
}

// NewDense constructs a Dense source from a non-empty, rectangular 2D
// slice. The input is deep-copied to guarantee immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewDense[T Value](values [][]T) (*Dense[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	rows := make([][]T, h)
	for y := 0; y < h; y++ {
		rows[y] = make([]T, w)
		copy(rows[y], values[y])
	}

	return &Dense[T]{w: w, h: h, values: rows}, nil
}

// Width returns the number of columns. Complexity: O(1).
func (d *Dense[T]) Width() int { return d.w }

// Height returns the number of rows. Complexity: O(1).
func (d *Dense[T]) Height() int { return d.h }

// At returns the sample at column x, row y widened to float64.
// Panics if (x, y) is out of range. Complexity: O(1).
func (d *Dense[T]) At(x, y int) float64 {
	mustInBounds(x, y, d.w, d.h)

	return float64(d.values[y][x])
}

// Value returns the stored sample at column x, row y in its original
// element type. Panics if (x, y) is out of range. Complexity: O(1).
func (d *Dense[T]) Value(x, y int) T {
	mustInBounds(x, y, d.w, d.h)

	return d.values[y][x]
}
