// Package sumgrid turns a 2D grid of numeric samples into a summed-area
// table (integral image), answering rectangle sum, average and count
// queries in O(1) after a single O(W×H) precomputation pass.
//
// 🚀 What is a summed-area table?
//
//	A derived grid where each cell holds the cumulative sum of every
//	source sample above and to the left of it (inclusive). Once built,
//	the total of any axis-aligned rectangle falls out of four table
//	lookups via the inclusion-exclusion identity. Widely used in:
//	  • Image processing: box filters, adaptive thresholding
//	  • Computer vision: Haar-like features, Viola–Jones detection
//	  • Spatial analytics: windowed aggregates over sampled fields
//
// ✨ Why choose sumgrid?
//
//   - Build once, query forever – constant-time sums over any window
//   - Immutable tables – unsynchronized concurrent reads are safe
//   - Eager validation – malformed rectangles and out-of-range points
//     surface as sentinel errors, never as silent garbage
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under two subpackages:
//
//	grid/ — read-only Source abstraction over 2D sample storage
//	        (dense rows or a flat buffer with a stride)
//	sat/  — table construction and the rectangle query surface
//
// Quick ASCII example:
//
//	source          table
//	5 2 3           5  7 10
//	1 5 4    →      6 13 20
//	2 2 1           8 17 25
//
//	sum of the bottom-right 2×2 block = 25 − 10 − 8 + 5 = 12
//
// Dive into sat/doc.go for the build and query identities, and the
// example tests for runnable end-to-end usage.
//
//	go get github.com/katalvlaran/sumgrid/sat
package sumgrid
