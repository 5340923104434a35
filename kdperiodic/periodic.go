package kdperiodic

import (
	"github.com/katalvlaran/kdforest/kdpoint"
	"github.com/katalvlaran/kdforest/kdquery"
	"github.com/katalvlaran/kdforest/kdtree"
)

// sideDist2 returns, for each axis, the squared distance from q to the
// nearer of the box's two sides on that axis (spec.md §4.9).
func sideDist2[T kdpoint.Coord](q, boxsize []T) []T {
	out := make([]T, len(q))
	for i, qi := range q {
		upper := boxsize[i] - qi
		side := qi
		if upper < side {
			side = upper
		}
		out[i] = side * side
	}
	return out
}

// reflectedImage returns q with every axis in subset mirrored across
// the box: q[i]+boxsize[i] if q[i] is in the lower half, else
// q[i]-boxsize[i] (spec.md §4.9).
func reflectedImage[T kdpoint.Coord](q, boxsize []T, subset int) []T {
	half := func(b T) T { return b / 2 }
	img := make([]T, len(q))
	copy(img, q)
	for i := range q {
		if subset&(1<<uint(i)) == 0 {
			continue
		}
		if q[i] < half(boxsize[i]) {
			img[i] = q[i] + boxsize[i]
		} else {
			img[i] = q[i] - boxsize[i]
		}
	}
	return img
}

// QueryNearest runs a 1-NN query under periodic boundary conditions:
// the real image is queried first, then every mirror image whose
// region could still hold a closer point is replayed against the same
// running best (spec.md §4.9).
func QueryNearest[T kdpoint.Coord](tree *kdtree.Tree[T], q []T) (kdquery.Result[T], error) {
	boxsize := tree.Boxsize()
	if err := kdpoint.ValidateQueryPeriodic(q, tree.Dim(), boxsize); err != nil {
		return kdquery.Result[T]{}, err
	}

	runner := kdquery.NewRunner1(tree)
	runner.Reset()
	runner.Traverse(q)

	side := sideDist2(q, boxsize)
	dim := tree.Dim()
	for subset := 1; subset < 1<<uint(dim); subset++ {
		var imgDist2 T
		for i := 0; i < dim; i++ {
			if subset&(1<<uint(i)) != 0 {
				imgDist2 += side[i]
			}
		}
		if imgDist2 >= runner.BestDist2() {
			continue
		}
		runner.Traverse(reflectedImage(q, boxsize, subset))
	}

	return runner.CurrentResult(), nil
}

// QueryNearestK runs a k-NN query under periodic boundary conditions,
// mirroring QueryNearest but threading a kdquery.RunnerK's heap across
// every surviving image instead of a scalar best.
func QueryNearestK[T kdpoint.Coord](tree *kdtree.Tree[T], q []T, k int) (kdquery.KResult[T], error) {
	if k < 1 {
		return kdquery.KResult[T]{}, kdquery.ErrInvalidK
	}
	boxsize := tree.Boxsize()
	if err := kdpoint.ValidateQueryPeriodic(q, tree.Dim(), boxsize); err != nil {
		return kdquery.KResult[T]{}, err
	}

	runner := kdquery.NewRunnerK(tree, k)
	runner.Reset()
	runner.Traverse(q)

	side := sideDist2(q, boxsize)
	dim := tree.Dim()
	for subset := 1; subset < 1<<uint(dim); subset++ {
		var imgDist2 T
		for i := 0; i < dim; i++ {
			if subset&(1<<uint(i)) != 0 {
				imgDist2 += side[i]
			}
		}
		if imgDist2 >= runner.Worst() {
			continue
		}
		runner.Traverse(reflectedImage(q, boxsize, subset))
	}

	return runner.CurrentResult(), nil
}
