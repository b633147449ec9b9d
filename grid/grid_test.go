package grid_test

import (
	"testing"

	"github.com/katalvlaran/sumgrid/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_EmptyGrid verifies that an empty slice or a slice of
// empty rows is rejected with ErrEmptyGrid.
func TestNewDense_EmptyGrid(t *testing.T) {
	_, err := grid.NewDense[int](nil)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid, "nil input must error ErrEmptyGrid")

	_, err = grid.NewDense([][]int{})
	assert.ErrorIs(t, err, grid.ErrEmptyGrid, "zero rows must error ErrEmptyGrid")

	_, err = grid.NewDense([][]int{{}})
	assert.ErrorIs(t, err, grid.ErrEmptyGrid, "zero columns must error ErrEmptyGrid")
}

// TestNewDense_NonRectangular verifies that ragged rows are rejected
// with ErrNonRectangular.
func TestNewDense_NonRectangular(t *testing.T) {
	_, err := grid.NewDense([][]int{
		{1, 2, 3},
		{4, 5},
	})
	assert.ErrorIs(t, err, grid.ErrNonRectangular, "ragged rows must error ErrNonRectangular")
}

// TestDense_Dimensions verifies Width/Height and element access on a
// small rectangular grid.
func TestDense_Dimensions(t *testing.T) {
	src, err := grid.NewDense([][]int{
		{5, 2, 3},
		{1, 5, 4},
	})
	require.NoError(t, err, "rectangular grid must construct")

	assert.Equal(t, 3, src.Width(), "width is the column count")
	assert.Equal(t, 2, src.Height(), "height is the row count")
	assert.Equal(t, 4.0, src.At(2, 1), "At(x,y) addresses column x, row y")
	assert.Equal(t, 2, src.Value(1, 0), "Value preserves the element type")
}

// TestDense_Immutable verifies that mutating the caller's slice after
// construction does not leak into the source.
func TestDense_Immutable(t *testing.T) {
	rows := [][]int{{1, 2}, {3, 4}}
	src, err := grid.NewDense(rows)
	require.NoError(t, err)

	rows[0][0] = 99
	assert.Equal(t, 1.0, src.At(0, 0), "source must deep-copy its input")
}

// TestDense_OutOfRangePanics verifies the documented contract: At
// outside the grid is a programming error and panics.
func TestDense_OutOfRangePanics(t *testing.T) {
	src, err := grid.NewDense([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	assert.Panics(t, func() { src.At(2, 0) }, "x == width must panic")
	assert.Panics(t, func() { src.At(0, 2) }, "y == height must panic")
	assert.Panics(t, func() { src.At(-1, 0) }, "negative x must panic")
}

// TestNewFlat_Shape verifies the y*width+x mapping of the flat-buffer
// source and its shape validation.
func TestNewFlat_Shape(t *testing.T) {
	src, err := grid.NewFlat([]int{1, 2, 3, 4, 5, 6}, 3)
	require.NoError(t, err, "6 values at width 3 form a 3×2 grid")

	assert.Equal(t, 3, src.Width())
	assert.Equal(t, 2, src.Height())
	assert.Equal(t, 6.0, src.At(2, 1), "element (x,y) lives at index y*width+x")
	assert.Equal(t, 4, src.Value(0, 1))
}

// TestNewFlat_BadShape verifies rejection of empty buffers, zero
// widths, and lengths that do not tile into whole rows.
func TestNewFlat_BadShape(t *testing.T) {
	_, err := grid.NewFlat([]int{}, 3)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid, "empty buffer must error ErrEmptyGrid")

	_, err = grid.NewFlat([]int{1, 2, 3}, 0)
	assert.ErrorIs(t, err, grid.ErrBadShape, "width < 1 must error ErrBadShape")

	_, err = grid.NewFlat([]int{1, 2, 3, 4, 5}, 3)
	assert.ErrorIs(t, err, grid.ErrBadShape, "5 values do not tile into width-3 rows")
}

// TestFlat_Immutable verifies that mutating the caller's buffer after
// construction does not leak into the source.
func TestFlat_Immutable(t *testing.T) {
	buf := []float64{1.5, 2.5}
	src, err := grid.NewFlat(buf, 2)
	require.NoError(t, err)

	buf[0] = -7
	assert.Equal(t, 1.5, src.At(0, 0), "source must copy its buffer")
}

// TestColumn verifies the single-column convenience constructor:
// one sample per row, width fixed at 1.
func TestColumn(t *testing.T) {
	src, err := grid.Column([]int{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)

	assert.Equal(t, 1, src.Width(), "column source has width 1")
	assert.Equal(t, 6, src.Height(), "one row per value")
	assert.Equal(t, 5.0, src.At(0, 5))
}
