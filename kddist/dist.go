package kddist

import "github.com/katalvlaran/kdforest/kdpoint"

// SquaredEuclidean returns the sum of squared component differences
// between a and b. Both must have the same length.
func SquaredEuclidean[T kdpoint.Coord](a, b []T) T {
	var total T
	for i := range a {
		d := a[i] - b[i]
		total += d * d
	}
	return total
}

// SquaredToBox clamps q onto the axis-aligned box [lower, upper] per axis
// and returns the squared distance from q to that clamped point. If q is
// already inside the box the result is zero. Used to decide whether a
// subtree's bounding box can be pruned: if SquaredToBox(q, ...) exceeds
// the current best/worst-of-k, no point in that subtree can improve it.
func SquaredToBox[T kdpoint.Coord](q, lower, upper []T) T {
	var total T
	for i, qi := range q {
		var c T
		switch {
		case qi < lower[i]:
			c = lower[i] - qi
		case qi > upper[i]:
			c = qi - upper[i]
		default:
			c = 0
		}
		total += c * c
	}
	return total
}

// AxisDecomposed returns (total, axisSq, offAxisSq) such that
// axisSq + offAxisSq == total, where axisSq is the squared contribution
// of the given axis and offAxisSq is the squared contribution of every
// other axis.
func AxisDecomposed[T kdpoint.Coord](a, b []T, axis int) (total, axisSq, offAxisSq T) {
	for i := range a {
		d := a[i] - b[i]
		sq := d * d
		if i == axis {
			axisSq = sq
		} else {
			offAxisSq += sq
		}
	}
	total = axisSq + offAxisSq
	return total, axisSq, offAxisSq
}
