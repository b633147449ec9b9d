// Package grid defines the Source contract, coordinate types, and
// sentinel errors shared by all source implementations.
package grid

import "errors"

// Sentinel errors for source construction.
var (
	// ErrEmptyGrid indicates input has no rows, no columns, or no values.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadShape indicates a flat buffer whose length does not match the requested width.
	ErrBadShape = errors.New("grid: buffer length must be a positive multiple of width")
)

// Point is a zero-based (x, y) coordinate pair, where X is the column
// and Y is the row. This convention holds across the whole module.
type Point struct {
	X, Y int
}

// Value constrains the element types a concrete source may store: any
// numeric kind with addition, subtraction, a zero identity, and a
// widening conversion to float64, the module's accumulation type.
type Value interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Source is a read-only view over a 2D grid of numeric samples.
//
// Width and Height return fixed, positive dimensions for the object's
// lifetime. At returns the sample at (x, y), widened to float64, with
// no side effects; calling At outside [0,Width)×[0,Height) violates
// the contract and panics. Implementations must not mutate while a
// table is being built from them.
type Source interface {
	// Width returns the number of columns, ≥ 1.
	Width() int
	// Height returns the number of rows, ≥ 1.
	Height() int
	// At returns the sample at column x, row y as float64.
	// Panics if (x, y) is out of range.
	At(x, y int) float64
}
