// Package grid provides the read-only Source abstraction that feeds a
// summed-area table, plus two reference implementations:
//
//   - Dense — backed by a rectangular 2D slice of rows
//   - Flat  — backed by a flat 1D buffer with an explicit width, where
//     element (x,y) lives at linear index y*width+x
//
// Coordinates are always (x, y) meaning (column, row), zero-based. A
// Source exposes fixed positive dimensions and element access with no
// side effects; samples are handed out already widened to float64, the
// common accumulation type of the sat package. Constructors validate
// shape eagerly (non-empty, rectangular) and copy the caller's data, so
// a Source is immutable for its whole lifetime.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/sumgrid/grid"
//
//	src, err := grid.NewDense([][]int{
//	  {5, 2, 3},
//	  {1, 5, 4},
//	})
//	if err != nil {
//	  // handle ErrEmptyGrid or ErrNonRectangular
//	}
//	v := src.At(2, 1) // 4
//
// Out-of-range access on At is a programming-contract violation and
// panics; it is not an error path. See the Source docs.
package grid
