package kdquery

import (
	"github.com/katalvlaran/kdforest/kddist"
	"github.com/katalvlaran/kdforest/kdpoint"
	"github.com/katalvlaran/kdforest/kdtree"
)

// AxisResult is the axis-decomposed k-NN result of spec.md §4.5/§6: for
// each of the k_or_datalen neighbors, the squared on-axis and off-axis
// contributions to the total squared distance (which always satisfy
// AxisSq[i]+OffAxisSq[i] == total), plus the neighbor's index unless the
// no-index option is set.
type AxisResult[T kdpoint.Coord] struct {
	AxisSq    []T
	OffAxisSq []T
	Indices   []uint64 // nil when noIndex is set
}

// RunnerKAxis reuses RunnerK's traversal (ordering/pruning is still by
// total squared distance) and decomposes each drained candidate's
// distance into its axis and off-axis components on the way out: each
// drained candidate's distance to the query is recomputed per axis by
// kddist.AxisDecomposed, which sums the off-axis squares directly.
type RunnerKAxis[T kdpoint.Coord] struct {
	inner   *RunnerK[T]
	axis    int
	noIndex bool
}

// NewRunnerKAxis returns a RunnerKAxis scoped to tree, rejecting an axis
// outside [0, dim).
func NewRunnerKAxis[T kdpoint.Coord](tree *kdtree.Tree[T], k, axis int, noIndex bool) (*RunnerKAxis[T], error) {
	if axis < 0 || axis >= tree.Dim() {
		return nil, ErrInvalidAxis
	}
	return &RunnerKAxis[T]{inner: NewRunnerK(tree, k), axis: axis, noIndex: noIndex}, nil
}

// Query runs the k-NN traversal and decomposes each result by axis.
func (r *RunnerKAxis[T]) Query(query []T) AxisResult[T] {
	r.inner.reset()

	root := r.inner.tree.Root()
	r.inner.checkStem(query, root)

	for len(r.inner.pending) > 0 {
		n := len(r.inner.pending) - 1
		entry := r.inner.pending[n]
		r.inner.pending = r.inner.pending[:n]

		if entry.boxDist2 >= r.inner.heap.Worst() {
			continue
		}
		r.inner.checkCandidate(query, entry.parentPivot)

		sibling := r.inner.tree.NodeAt(entry.siblingIndex)
		if sibling.IsLeaf {
			r.inner.checkLeaf(query, sibling.Points())
		} else {
			r.inner.checkStem(query, sibling)
		}
	}

	sorted := r.inner.heap.DrainSorted()
	axisSq := make([]T, len(sorted))
	offAxisSq := make([]T, len(sorted))
	var indices []uint64
	if !r.noIndex {
		indices = make([]uint64, len(sorted))
	}
	for i, c := range sorted {
		_, axq, offq := kddist.AxisDecomposed(query, c.Point.Pos(), r.axis)
		axisSq[i] = axq
		offAxisSq[i] = offq
		if indices != nil {
			indices[i] = c.Point.Index()
		}
	}
	return AxisResult[T]{AxisSq: axisSq, OffAxisSq: offAxisSq, Indices: indices}
}

// QueryNearestKAxis validates q, k, and axis and runs a one-off
// axis-decomposed k-NN query against tree.
func QueryNearestKAxis[T kdpoint.Coord](tree *kdtree.Tree[T], q []T, k, axis int, noIndex bool) (AxisResult[T], error) {
	if k < 1 {
		return AxisResult[T]{}, ErrInvalidK
	}
	if err := kdpoint.ValidateQuery(q, tree.Dim()); err != nil {
		return AxisResult[T]{}, err
	}
	r, err := NewRunnerKAxis(tree, k, axis, noIndex)
	if err != nil {
		return AxisResult[T]{}, err
	}
	return r.Query(q), nil
}
