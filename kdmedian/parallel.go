package kdmedian

import (
	"sync/atomic"

	"github.com/katalvlaran/kdforest/kdpoint"
	"golang.org/x/sync/errgroup"
)

// chunkBounds splits [0, n) into roughly equal contiguous [lo, hi) ranges,
// at most numChunks of them (fewer if n < numChunks).
func chunkBounds(n, numChunks int) [][2]int {
	if numChunks < 1 {
		numChunks = 1
	}
	size := n / numChunks
	if size < 1 {
		size = 1
	}
	var bounds [][2]int
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n || len(bounds) == numChunks-1 {
			hi = n
		}
		bounds = append(bounds, [2]int{lo, hi})
		if hi == n {
			break
		}
	}
	return bounds
}

// chunkMedians computes the exact median-by-axis of each chunk of pts
// concurrently via an errgroup, returning one Point per chunk. Each
// chunk's sub-slice is reordered by selectNth as a side effect; this is
// safe because chunks are disjoint contiguous ranges of the same
// backing array.
func chunkMedians[T kdpoint.Coord](pts []kdpoint.Point[T], axis int, bounds [][2]int) ([]kdpoint.Point[T], error) {
	medians := make([]kdpoint.Point[T], len(bounds))
	var g errgroup.Group
	for ci, b := range bounds {
		ci, b := ci, b
		g.Go(func() error {
			chunk := pts[b[0]:b[1]]
			medians[ci] = selectNth(chunk, len(chunk)/2, axis)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return medians, nil
}

// countBucket scans pts[lo:hi] and returns how many elements are
// strictly less than pivotVal and how many equal it on axis.
func countBucket[T kdpoint.Coord](pts []kdpoint.Point[T], lo, hi, axis int, pivotVal T) (less, equal int) {
	for i := lo; i < hi; i++ {
		v := pts[i].At(axis)
		switch {
		case v < pivotVal:
			less++
		case v == pivotVal:
			equal++
		}
	}
	return less, equal
}

// parallelThreeWayPartition rearranges pts in place into three contiguous
// regions — strictly less than pivotVal, equal to pivotVal, strictly
// greater — using a parallel counting pass followed by a parallel
// scatter pass into a scratch buffer. Three atomic cursors (one per
// region) let concurrently scanning chunks reserve disjoint destination
// slots without locking, mirroring the atomic pointer advances the
// source algorithm performs during its own three-way partition.
//
// Returns the size of the less and equal regions; pts[:numLess] is the
// less region, pts[numLess:numLess+numEqual] is the equal region,
// pts[numLess+numEqual:] is the greater region.
func parallelThreeWayPartition[T kdpoint.Coord](pts []kdpoint.Point[T], axis int, pivotVal T, bounds [][2]int) (numLess, numEqual int, err error) {
	n := len(pts)

	// Counting pass: each chunk contributes its own local counts, summed
	// without any shared mutable state (no atomics needed — the results
	// are combined sequentially once every goroutine has finished).
	localLess := make([]int, len(bounds))
	localEqual := make([]int, len(bounds))
	{
		var g errgroup.Group
		for ci, b := range bounds {
			ci, b := ci, b
			g.Go(func() error {
				localLess[ci], localEqual[ci] = countBucket(pts, b[0], b[1], axis, pivotVal)
				return nil
			})
		}
		if err = g.Wait(); err != nil {
			return 0, 0, err
		}
	}
	for _, l := range localLess {
		numLess += l
	}
	for _, e := range localEqual {
		numEqual += e
	}

	// Scatter pass: three shared atomic cursors reserve destination
	// slots in a scratch buffer as each chunk discovers which region a
	// point belongs to.
	scratch := make([]kdpoint.Point[T], n)
	var lessCursor, eqCursor, gtCursor atomic.Int64
	eqCursor.Store(int64(numLess))
	gtCursor.Store(int64(numLess + numEqual))

	var g errgroup.Group
	for _, b := range bounds {
		b := b
		g.Go(func() error {
			for i := b[0]; i < b[1]; i++ {
				p := pts[i]
				v := p.At(axis)
				var slot int64
				switch {
				case v < pivotVal:
					slot = lessCursor.Add(1) - 1
				case v == pivotVal:
					slot = eqCursor.Add(1) - 1
				default:
					slot = gtCursor.Add(1) - 1
				}
				scratch[slot] = p
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return 0, 0, err
	}

	copy(pts, scratch)
	return numLess, numEqual, nil
}
