package kdmedian

import "github.com/katalvlaran/kdforest/kdpoint"

// Partition selects an approximate median of pts on the given axis and
// partitions pts in place around it, per spec.md §4.2. Below
// exactMedianThreshold elements it falls back to an exact median-of-n
// selection (single quickselect pass); at or above it, the slice is
// chunked, each chunk's exact median is found concurrently, the median
// of those chunk medians becomes the approximate pivot, and the whole
// slice is three-way partitioned around it in parallel.
//
// The returned left and right slices alias pts's backing array; pivot
// is the single point excluded from both (any remaining duplicates on
// the chosen axis land in right, alongside strictly greater points).
// Below exactMedianThreshold the arrangement depends only on the input
// order; at or above it, the order inside each region follows goroutine
// scheduling, so which equal point becomes the pivot can differ between
// runs.
//
// Complexity: O(len(pts)) expected time.
func Partition[T kdpoint.Coord](pts []kdpoint.Point[T], axis int) (left []kdpoint.Point[T], pivot kdpoint.Point[T], right []kdpoint.Point[T]) {
	n := len(pts)
	if n < exactMedianThreshold {
		return exactPartition(pts, axis)
	}
	return momPartition(pts, axis)
}

// exactPartition implements the below-threshold path: select the exact
// median by axis value, then three-way partition the full slice around
// it sequentially.
func exactPartition[T kdpoint.Coord](pts []kdpoint.Point[T], axis int) ([]kdpoint.Point[T], kdpoint.Point[T], []kdpoint.Point[T]) {
	medianPoint := selectNth(pts, len(pts)/2, axis)
	pivotVal := medianPoint.At(axis)

	numLess, _ := sequentialThreeWayPartition(pts, axis, pivotVal)
	return pts[:numLess], pts[numLess], pts[numLess+1:]
}

// sequentialThreeWayPartition is the single-threaded Dutch-flag pass
// used below the parallel threshold, where spawning goroutines would
// cost more than it saves.
func sequentialThreeWayPartition[T kdpoint.Coord](pts []kdpoint.Point[T], axis int, pivotVal T) (numLess, numEqual int) {
	n := len(pts)
	lo, mid, hi := 0, 0, n
	for mid < hi {
		v := pts[mid].At(axis)
		switch {
		case v < pivotVal:
			pts[lo], pts[mid] = pts[mid], pts[lo]
			lo++
			mid++
		case v == pivotVal:
			mid++
		default:
			hi--
			pts[mid], pts[hi] = pts[hi], pts[mid]
		}
	}
	return lo, mid - lo
}

// momPartition implements the at/above-threshold path: parallel chunk
// medians, median-of-medians selection, parallel three-way partition.
func momPartition[T kdpoint.Coord](pts []kdpoint.Point[T], axis int) ([]kdpoint.Point[T], kdpoint.Point[T], []kdpoint.Point[T]) {
	P := parallelism()
	chunkSize := len(pts) / (4 * P)
	numChunks := 4 * P
	if chunkSize < 1 {
		numChunks = len(pts)
	}
	bounds := chunkBounds(len(pts), numChunks)

	medians, err := chunkMedians(pts, axis, bounds)
	if err != nil {
		// chunkMedians never returns an error from its own goroutines
		// (selectNth cannot fail); a non-nil err here would indicate a
		// defect in the errgroup wiring, not bad input.
		panic(err)
	}

	approxMedian := selectNth(medians, len(medians)/2, axis)
	pivotVal := approxMedian.At(axis)

	numLess, _, err := parallelThreeWayPartition(pts, axis, pivotVal, bounds)
	if err != nil {
		panic(err)
	}

	return pts[:numLess], pts[numLess], pts[numLess+1:]
}
