package kdmedian

import "github.com/katalvlaran/kdforest/kdpoint"

// selectNth rearranges pts in place so that pts[k] holds the point that
// would occupy sorted position k (by axis component), with every element
// before it <= pts[k] and every element after it >= pts[k] on that axis.
// Equivalent to Rust's select_nth_unstable_by / C++'s nth_element.
//
// Complexity: O(len(pts)) expected time, O(log len(pts)) expected stack
// depth, O(1) extra space.
func selectNth[T kdpoint.Coord](pts []kdpoint.Point[T], k, axis int) kdpoint.Point[T] {
	lo, hi := 0, len(pts)-1
	for lo < hi {
		p := hoarePartition(pts, lo, hi, axis)
		switch {
		case k < p:
			hi = p - 1
		case k > p:
			lo = p + 1
		default:
			lo, hi = p, p
		}
	}
	return pts[k]
}

// hoarePartition partitions pts[lo:hi+1] around pts[hi] (as the pivot
// value) and returns the final index of the pivot element.
func hoarePartition[T kdpoint.Coord](pts []kdpoint.Point[T], lo, hi, axis int) int {
	pivotVal := pts[hi].At(axis)
	i := lo
	for j := lo; j < hi; j++ {
		if pts[j].At(axis) < pivotVal {
			pts[i], pts[j] = pts[j], pts[i]
			i++
		}
	}
	pts[i], pts[hi] = pts[hi], pts[i]
	return i
}
