package grid

// Flat is a Source backed by a flat 1D buffer with an explicit width:
// element (x, y) maps to linear index y*width+x. It is immutable once
// constructed.
type Flat[T Value] struct {
	w, h   int
	values []T
}

// NewFlat constructs a Flat source from a buffer and a target width.
// The buffer is copied to guarantee immutability.
// Returns ErrEmptyGrid if values is empty,
// ErrBadShape if width < 1 or len(values) is not a multiple of width.
// Complexity: O(W×H) time and memory.
func NewFlat[T Value](values []T, width int) (*Flat[T], error) {
	if len(values) == 0 {
		return nil, ErrEmptyGrid
	}
	if width < 1 || len(values)%width != 0 {
		return nil, ErrBadShape
	}
	buf := make([]T, len(values))
	copy(buf, values)

	return &Flat[T]{w: width, h: len(values) / width, values: buf}, nil
}

// Column constructs a single-column source (width 1) from a sequence,
// one sample per row. Returns ErrEmptyGrid if values is empty.
// Complexity: O(H) time and memory.
func Column[T Value](values []T) (*Flat[T], error) {
	return NewFlat(values, 1)
}

// Width returns the number of columns. Complexity: O(1).
func (f *Flat[T]) Width() int { return f.w }

// Height returns the number of rows. Complexity: O(1).
func (f *Flat[T]) Height() int { return f.h }

// At returns the sample at column x, row y widened to float64.
// Panics if (x, y) is out of range. Complexity: O(1).
func (f *Flat[T]) At(x, y int) float64 {
	mustInBounds(x, y, f.w, f.h)

	return float64(f.values[y*f.w+x])
}

// Value returns the stored sample at column x, row y in its original
// element type. Panics if (x, y) is out of range. Complexity: O(1).
func (f *Flat[T]) Value(x, y int) T {
	mustInBounds(x, y, f.w, f.h)

	return f.values[y*f.w+x]
}
