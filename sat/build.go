package sat

import "github.com/katalvlaran/sumgrid/grid"

// Build constructs a summed-area table over the sub-rectangle of src
// spanned by `from` (top-left, inclusive) and `to` (bottom-right,
// inclusive), both in the source's coordinates. The resulting table
// has the window's dimensions and is queried in the window's own
// local coordinates, with (0,0) at `from`.
//
// Construction is synchronous and atomic from the caller's point of
// view: no partially built table is ever observable. src must not be
// mutated for the duration of the call.
//
// Returns ErrNilSource, ErrBadRect, or ErrOutOfRange on contract
// violations.
// Complexity: O(W×H) time and memory for the window, each cell
// touched exactly once.
func Build(src grid.Source, from, to grid.Point) (*Table, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if from.X > to.X || from.Y > to.Y {
		return nil, rectErrorf(ctxBuild, from, to, ErrBadRect)
	}
	if from.X < 0 || from.Y < 0 || to.X >= src.Width() || to.Y >= src.Height() {
		return nil, rectErrorf(ctxBuild, from, to, ErrOutOfRange)
	}

	w := to.X - from.X + 1
	h := to.Y - from.Y + 1
	cells := make([]float64, w*h)
	nonNeg := true

	// Row-major scan: each cell needs its up and left neighbors final.
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			v := src.At(from.X+col, from.Y+row)
			if v < 0 {
				nonNeg = false
			}
			if row > 0 {
				v += cells[(row-1)*w+col]
			}
			if col > 0 {
				v += cells[row*w+col-1]
			}
			if row > 0 && col > 0 {
				// The up and left neighbors both include this corner.
				v -= cells[(row-1)*w+col-1]
			}
			cells[row*w+col] = v
		}
	}

	return &Table{w: w, h: h, cells: cells, nonNeg: nonNeg}, nil
}

// BuildFull constructs a summed-area table over the whole source,
// equivalent to Build(src, (0,0), (width-1, height-1)).
// Complexity: O(W×H) time and memory.
func BuildFull(src grid.Source) (*Table, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	return Build(src, grid.Point{}, grid.Point{X: src.Width() - 1, Y: src.Height() - 1})
}
