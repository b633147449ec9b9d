package sat

import "github.com/katalvlaran/sumgrid/grid"

// Sum returns the inclusive sum of all samples in the rectangle
// spanned by `from` (top-left) and `to` (bottom-right), both in the
// table's local coordinates. At most four table cells are combined via
// the inclusion-exclusion identity (see the package docs).
//
// For tables built from non-negative data, each strip subtraction is
// checked against the running sum: exceeding it means the cumulative
// values lost monotonicity, which valid query coordinates cannot cause
// — only an accumulator overflow during construction can, and it is
// surfaced as ErrNonMonotonic rather than a silently wrong result.
//
// Returns ErrBadRect or ErrOutOfRange on contract violations.
// Complexity: O(1).
func (t *Table) Sum(from, to grid.Point) (float64, error) {
	if err := t.checkRect(ctxSum, from, to); err != nil {
		return 0, err
	}

	sum := t.cells[t.index(to.X, to.Y)]
	if from.X > 0 && from.Y > 0 {
		// Both strips below include this corner; add it back once.
		sum += t.cells[t.index(from.X-1, from.Y-1)]
	}
	if from.X > 0 {
		strip := t.cells[t.index(from.X-1, to.Y)]
		if t.nonNeg && strip > sum {
			return 0, rectErrorf(ctxSum, from, to, ErrNonMonotonic)
		}
		sum -= strip
	}
	if from.Y > 0 {
		strip := t.cells[t.index(to.X, from.Y-1)]
		if t.nonNeg && strip > sum {
			return 0, rectErrorf(ctxSum, from, to, ErrNonMonotonic)
		}
		sum -= strip
	}

	return sum, nil
}

// Average returns the arithmetic mean of the samples in the rectangle
// spanned by `from` and `to`, using floating-point division.
// Returns ErrBadRect or ErrOutOfRange on contract violations.
// Complexity: O(1).
func (t *Table) Average(from, to grid.Point) (float64, error) {
	if err := t.checkRect(ctxAverage, from, to); err != nil {
		return 0, err
	}
	sum, err := t.Sum(from, to)
	if err != nil {
		return 0, err
	}
	count := (to.X - from.X + 1) * (to.Y - from.Y + 1)

	return sum / float64(count), nil
}

// DataCount returns the number of samples in the rectangle spanned by
// `from` and `to`, i.e. (to.X-from.X+1)*(to.Y-from.Y+1).
// Returns ErrBadRect or ErrOutOfRange on contract violations.
// Complexity: O(1).
func (t *Table) DataCount(from, to grid.Point) (int, error) {
	if err := t.checkRect(ctxDataCount, from, to); err != nil {
		return 0, err
	}

	return (to.X - from.X + 1) * (to.Y - from.Y + 1), nil
}

// OverallSum returns the sum of every sample in the table's window.
// Complexity: O(1).
func (t *Table) OverallSum() (float64, error) {
	return t.Sum(grid.Point{}, grid.Point{X: t.w - 1, Y: t.h - 1})
}

// OverallAverage returns the mean of every sample in the table's
// window. Complexity: O(1).
func (t *Table) OverallAverage() (float64, error) {
	return t.Average(grid.Point{}, grid.Point{X: t.w - 1, Y: t.h - 1})
}

// OverallDataCount returns the total number of samples in the table's
// window, width×height. Complexity: O(1).
func (t *Table) OverallDataCount() int {
	return t.w * t.h
}

// CellAt returns the raw cumulative value stored at point p: the sum
// of all samples in the window's rectangle (0,0)..(p.X,p.Y).
// Returns ErrOutOfRange if p is outside the table.
// Complexity: O(1).
func (t *Table) CellAt(p grid.Point) (float64, error) {
	if p.X < 0 || p.Y < 0 || p.X >= t.w || p.Y >= t.h {
		return 0, rectErrorf(ctxCellAt, p, p, ErrOutOfRange)
	}

	return t.cells[t.index(p.X, p.Y)], nil
}
