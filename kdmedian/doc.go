// Package kdmedian implements the median-of-medians (MoM) approximate
// selector used by the tree builder to partition a slice of points
// around a pivot on a chosen axis.
//
// Below exactMedianThreshold elements, Partition falls back to an exact
// median-of-n selection (a single in-place nth_element pass). At or
// above the threshold, the slice is split into chunks sized roughly
// len(pts)/(4*P) (P = available parallelism, clamped to
// [minParallelism, maxParallelism]); each chunk's exact median is found
// concurrently, the median of those chunk medians is taken as the
// approximate pivot, and the original slice is three-way partitioned
// around it (less / equal / greater on the chosen axis) using atomic
// write cursors so the parallel partition pass needs no locking.
//
// The result is an approximate median: the tree built from it is
// balanced in expectation, not exactly balanced. Equal-on-axis values
// are placed in the middle partition. Below the threshold the outcome
// depends only on the input order; at or above it, the parallel scatter
// fills each region in goroutine-scheduling order, so which of several
// equal points becomes the pivot, and the order within left and right,
// can differ between runs.
//
// Degenerate input (every point equal on the chosen axis) still
// terminates: the pivot is always excluded from both children, so each
// recursive call strictly shrinks, even though the resulting tree may be
// unbalanced (see DESIGN.md, Open Question 2).
//
// Complexity:
//
//	– Below threshold: O(N) expected (single exact median-of-n pass).
//	– At/above threshold: O(N) expected, O(N/P) per-goroutine work in the
//	  chunk-median and partition passes.
package kdmedian

import "runtime"

// Tuning constants (spec.md §4.2). Changing these affects performance,
// never correctness.
const (
	// exactMedianThreshold is the slice length below which Partition uses
	// an exact median-of-n selection instead of the parallel MoM path.
	exactMedianThreshold = 100_000

	// minParallelism is the floor applied to the detected parallelism P
	// when computing the chunk size len(pts)/(4*P).
	minParallelism = 5

	// maxParallelism is the ceiling applied to the detected parallelism P.
	maxParallelism = 250_000
)

// parallelism returns runtime.GOMAXPROCS(0) clamped to
// [minParallelism, maxParallelism].
func parallelism() int {
	p := runtime.GOMAXPROCS(0)
	if p < minParallelism {
		return minParallelism
	}
	if p > maxParallelism {
		return maxParallelism
	}
	return p
}
