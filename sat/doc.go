// Package sat builds summed-area tables (integral images) from a
// grid.Source and answers rectangle sum, average and count queries in
// O(1) per query.
//
// 🚀 How it works
//
//	Construction scans the chosen sub-rectangle once in row-major order
//	(rows outer, columns inner — each cell depends on its up and left
//	neighbors already being final) and applies the inclusion-exclusion
//	identity:
//
//	  table(r,c) = src(c,r) + table(r-1,c) + table(r,c-1) - table(r-1,c-1)
//
//	so cell (r,c) holds the total of every sample within rows [0..r]
//	and columns [0..c] of the built window. A rectangle query then
//	combines at most four table cells:
//
//	  sum(from,to) = table(to)
//	               + table(from.X-1, from.Y-1)   // add back corner
//	               - table(from.X-1, to.Y)       // left strip
//	               - table(to.X,     from.Y-1)   // top strip
//
// ✨ Key features:
//   - Build over the whole source or any sub-rectangle of it; queries
//     use the window's own local coordinates
//   - Immutable Table, safe for unsynchronized concurrent reads
//   - Eager validation: rectangle order and bounds faults surface as
//     sentinel errors (ErrBadRect, ErrOutOfRange)
//   - Defensive monotonicity check on non-negative data — a query
//     subtraction that would drive the running sum negative signals a
//     corrupted accumulation (ErrNonMonotonic) instead of silently
//     returning nonsense
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/sumgrid/grid"
//	  "github.com/katalvlaran/sumgrid/sat"
//	)
//
//	src, _ := grid.NewDense([][]int{{5, 2}, {1, 5}})
//	table, err := sat.BuildFull(src)
//	if err != nil { ... }
//	total, err := table.Sum(grid.Point{X: 0, Y: 0}, grid.Point{X: 1, Y: 1})
//	// total == 13
//
// Performance:
//
//   - Build: O(W×H) time, O(W×H) memory, each cell touched once
//   - Sum / Average / DataCount: O(1)
//
// All accumulation uses float64, exact for integer content whose
// running totals stay within ±2^53. See example_test.go for runnable
// scenarios.
package sat
