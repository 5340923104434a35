package kdforest

import (
	"github.com/katalvlaran/kdforest/kdbatch"
	"github.com/katalvlaran/kdforest/kdperiodic"
	"github.com/katalvlaran/kdforest/kdpoint"
	"github.com/katalvlaran/kdforest/kdquery"
	"github.com/katalvlaran/kdforest/kdtree"
)

// New builds a Tree sequentially from points (spec.md §4.3/§6). leafsize
// must be >= 1 and D is taken from len(points[0]); every row must share
// that length and every component must be finite.
func New[T kdpoint.Coord](points [][]T, leafsize int, opts ...kdtree.Option[T]) (*kdtree.Tree[T], error) {
	return kdtree.New(points, leafsize, opts...)
}

// NewParallel builds a Tree using fork/join parallelism down to
// recursion depth parDepth (spec.md §4.3/§5.1/§6).
func NewParallel[T kdpoint.Coord](points [][]T, leafsize, parDepth int, opts ...kdtree.Option[T]) (*kdtree.Tree[T], error) {
	return kdtree.NewParallel(points, leafsize, parDepth, opts...)
}

// QueryNearest returns the nearest neighbor of q in tree: its distance
// (squared, unless WithSqrtDist was set), stable index, and position
// (nil under WithNoPosition). Dispatches to the periodic engine when
// tree was built WithBoxsize (spec.md §4.9/§6).
func QueryNearest[T kdpoint.Coord](tree *kdtree.Tree[T], q []T) (dist T, index uint64, pos []T, err error) {
	var res kdquery.Result[T]
	if tree.Boxsize() != nil {
		res, err = kdperiodic.QueryNearest(tree, q)
	} else {
		res, err = kdquery.QueryNearest(tree, q)
	}
	if err != nil {
		return dist, 0, nil, err
	}
	return res.Dist, res.Index, res.Pos, nil
}

// QueryNearestK returns the k nearest neighbors of q in tree, sorted
// ascending by distance; k is clamped to tree's point count (spec.md
// §4.8/§6). Dispatches to the periodic engine when tree was built
// WithBoxsize.
func QueryNearestK[T kdpoint.Coord](tree *kdtree.Tree[T], q []T, k int) (dists []T, indices []uint64, pos [][]T, err error) {
	var res kdquery.KResult[T]
	if tree.Boxsize() != nil {
		res, err = kdperiodic.QueryNearestK(tree, q, k)
	} else {
		res, err = kdquery.QueryNearestK(tree, q, k)
	}
	if err != nil {
		return nil, nil, nil, err
	}
	return res.Dists, res.Indices, res.Pos, nil
}

// QueryNearestKNoIdx behaves like QueryNearestK but returns only
// distances (spec.md §6, query_nearest_k_noidx). Indices and positions
// are still computed by the underlying k-NN query and then dropped.
func QueryNearestKNoIdx[T kdpoint.Coord](tree *kdtree.Tree[T], q []T, k int) (dists []T, err error) {
	if tree.Boxsize() != nil {
		res, perr := kdperiodic.QueryNearestK(tree, q, k)
		if perr != nil {
			return nil, perr
		}
		return res.Dists, nil
	}
	return kdquery.QueryNearestKNoIdx(tree, q, k)
}

// QueryNearestKParallel runs query_nearest_k_parallel (spec.md §4.10/§6):
// a k-NN query for every row of queries, dispatched across a bounded
// worker pool, writing flat row-major output (row i occupies
// [i*k:(i+1)*k)). On the first invalid query point, the call fails and
// returns nothing — partial per-row results are discarded.
func QueryNearestKParallel[T kdpoint.Coord](tree *kdtree.Tree[T], queries [][]T, k int) (dists []T, indices []uint64, pos [][]T, err error) {
	res, err := kdbatch.QueryManyK(tree, queries, k)
	if err != nil {
		return nil, nil, nil, err
	}
	return res.Dists, res.Indices, res.Pos, nil
}

// QueryNearestKAxis runs query_nearest_k_axis (spec.md §4.5/§6) across a
// batch of queries: for every query and each of its k nearest
// neighbors, returns the squared on-axis and off-axis contributions to
// the total squared distance. noIndex omits the Indices return (the
// no-index configuration flag of spec.md §6).
func QueryNearestKAxis[T kdpoint.Coord](tree *kdtree.Tree[T], queries [][]T, k, axis int, noIndex bool) (axisSq, offAxisSq []T, indices []uint64, err error) {
	return kdbatch.QueryManyKAxis(tree, queries, k, axis, noIndex)
}
