// Package sat defines the Table type and sentinel errors for
// summed-area table construction and querying.
package sat

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sumgrid/grid"
)

// Sentinel errors for build and query operations. All of them mark
// contract violations by the caller (or, for ErrNonMonotonic, an
// accumulation inconsistency), never transient runtime conditions.
var (
	// ErrNilSource indicates Build was handed a nil source.
	ErrNilSource = errors.New("sat: source must be non-nil")
	// ErrBadRect indicates `from` lies to the right of or below `to`.
	ErrBadRect = errors.New("sat: `from` must not be right of or below `to`")
	// ErrOutOfRange indicates a coordinate outside [0,width)×[0,height).
	ErrOutOfRange = errors.New("sat: point outside bounds")
	// ErrNonMonotonic indicates a query subtraction on non-negative data
	// exceeded the running sum, which can only happen when an earlier
	// accumulation overflowed the float64 significand.
	ErrNonMonotonic = errors.New("sat: cumulative values not monotonic; accumulator overflow during construction")
)

// Method context tags used in error wrappers.
const (
	ctxBuild     = "Build"
	ctxSum       = "Sum"
	ctxAverage   = "Average"
	ctxDataCount = "DataCount"
	ctxCellAt    = "CellAt"
)

// rectErrorf wraps a sentinel with method context and the offending
// rectangle for diagnostics, preserving the sentinel via %w.
func rectErrorf(method string, from, to grid.Point, err error) error {
	return fmt.Errorf("sat.%s(%d/%d..%d/%d): %w", method, from.X, from.Y, to.X, to.Y, err)
}

// Table is an immutable summed-area table over the sub-rectangle it
// was built from. Cell (x, y) holds the inclusive cumulative sum of
// all source samples in the window's rectangle (0,0)..(x,y), stored
// as float64 in a flat row-major slice (index y*width+x).
//
// A Table never changes after Build returns, so it is safe for
// unsynchronized concurrent reads. It holds no reference back to the
// Source it was built from.
type Table struct {
	w, h   int
	cells  []float64
	nonNeg bool // every consumed sample was ≥ 0
}

// Width returns the number of columns in the table. Complexity: O(1).
func (t *Table) Width() int { return t.w }

// Height returns the number of rows in the table. Complexity: O(1).
func (t *Table) Height() int { return t.h }

// index maps (x, y) to the flat row-major offset y*width+x.
// Callers must have validated bounds. Complexity: O(1).
func (t *Table) index(x, y int) int {
	return y*t.w + x
}

// checkRect validates rectangle order and bounds for a query, wrapping
// ErrBadRect or ErrOutOfRange with method context. Complexity: O(1).
func (t *Table) checkRect(method string, from, to grid.Point) error {
	if from.X > to.X || from.Y > to.Y {
		return rectErrorf(method, from, to, ErrBadRect)
	}
	if from.X < 0 || from.Y < 0 || to.X >= t.w || to.Y >= t.h {
		return rectErrorf(method, from, to, ErrOutOfRange)
	}

	return nil
}
