package kdbatch

import (
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/kdforest/kdperiodic"
	"github.com/katalvlaran/kdforest/kdpoint"
	"github.com/katalvlaran/kdforest/kdquery"
	"github.com/katalvlaran/kdforest/kdtree"
)

// Result is the flat, row-major batch output of spec.md §4.10/§6: row i
// occupies Dists[i*k:(i+1)*k] (and Indices/Pos analogously), sorted
// ascending by distance within the row.
type Result[T kdpoint.Coord] struct {
	Dists   []T
	Indices []uint64
	Pos     [][]T
}

// QueryManyK runs query_nearest_k_parallel (spec.md §6): a k-NN query
// for every row of queries, dispatched across a bounded worker pool.
// On the first invalid query point encountered, the whole call fails
// and returns an empty Result — per-row results that did complete before
// the failure was observed are discarded (spec.md §4.10).
func QueryManyK[T kdpoint.Coord](tree *kdtree.Tree[T], queries [][]T, k int) (Result[T], error) {
	if k < 1 {
		return Result[T]{}, kdquery.ErrInvalidK
	}
	nq := len(queries)
	kEff := k
	if n := tree.Table().Len(); kEff > n {
		kEff = n
	}

	dists := make([]T, nq*kEff)
	indices := make([]uint64, nq*kEff)
	var pos [][]T
	if !tree.NoPosition() {
		pos = make([][]T, nq*kEff)
	}

	periodic := tree.Boxsize() != nil

	pool := sync.Pool{New: func() any {
		return kdquery.NewRunnerK(tree, k)
	}}

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range queries {
		i := i
		g.Go(func() error {
			q := queries[i]

			if periodic {
				res, err := kdperiodic.QueryNearestK(tree, q, k)
				if err != nil {
					return err
				}
				writeRow(dists, indices, pos, i, kEff, res)
				return nil
			}

			if err := kdpoint.ValidateQuery(q, tree.Dim()); err != nil {
				return err
			}
			runner := pool.Get().(*kdquery.RunnerK[T])
			res := runner.Query(q)
			pool.Put(runner)
			writeRow(dists, indices, pos, i, kEff, res)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result[T]{}, err
	}
	return Result[T]{Dists: dists, Indices: indices, Pos: pos}, nil
}

func writeRow[T kdpoint.Coord](dists []T, indices []uint64, pos [][]T, row, k int, res kdquery.KResult[T]) {
	off := row * k
	copy(dists[off:off+k], res.Dists)
	copy(indices[off:off+k], res.Indices)
	if pos != nil {
		copy(pos[off:off+k], res.Pos)
	}
}

// QueryManyKAxis runs query_nearest_k_axis (spec.md §6) across a batch
// of queries, writing the axis-decomposed components and (unless
// noIndex) indices into flat row-major buffers.
func QueryManyKAxis[T kdpoint.Coord](tree *kdtree.Tree[T], queries [][]T, k, axis int, noIndex bool) (axisSq, offAxisSq []T, indices []uint64, err error) {
	if k < 1 {
		return nil, nil, nil, kdquery.ErrInvalidK
	}
	if axis < 0 || axis >= tree.Dim() {
		return nil, nil, nil, kdquery.ErrInvalidAxis
	}
	nq := len(queries)
	kEff := k
	if n := tree.Table().Len(); kEff > n {
		kEff = n
	}

	axisSq = make([]T, nq*kEff)
	offAxisSq = make([]T, nq*kEff)
	if !noIndex {
		indices = make([]uint64, nq*kEff)
	}

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range queries {
		i := i
		g.Go(func() error {
			res, qerr := kdquery.QueryNearestKAxis(tree, queries[i], k, axis, noIndex)
			if qerr != nil {
				return qerr
			}
			off := i * kEff
			copy(axisSq[off:off+kEff], res.AxisSq)
			copy(offAxisSq[off:off+kEff], res.OffAxisSq)
			if indices != nil {
				copy(indices[off:off+kEff], res.Indices)
			}
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	return axisSq, offAxisSq, indices, nil
}
