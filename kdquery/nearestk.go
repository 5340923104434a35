package kdquery

import (
	"math"

	"github.com/katalvlaran/kdforest/kddist"
	"github.com/katalvlaran/kdforest/kdheap"
	"github.com/katalvlaran/kdforest/kdpoint"
	"github.com/katalvlaran/kdforest/kdtree"
)

// KResult is the k-NN query result of spec.md §3: parallel, ascending-
// by-distance sequences of distances and indices (and optionally
// positions), length exactly k_or_datalen = min(k, N).
type KResult[T kdpoint.Coord] struct {
	Dists   []T
	Indices []uint64
	Pos     [][]T
}

// RunnerK holds the reusable traversal scratch for k-NN queries: the
// pending LIFO and a bounded max-heap sized to k_or_datalen. Reused
// across queries via reset; kdbatch pulls one per worker from a
// sync.Pool.
type RunnerK[T kdpoint.Coord] struct {
	tree *kdtree.Tree[T]
	k    int // k_or_datalen = min(requested k, N)

	pending []pendingEntry[T]
	heap    *kdheap.Heap[T]
}

// NewRunnerK returns a RunnerK scoped to tree, clamping k to the tree's
// point count per spec.md §4.8's edge case.
func NewRunnerK[T kdpoint.Coord](tree *kdtree.Tree[T], k int) *RunnerK[T] {
	n := tree.Table().Len()
	if k > n {
		k = n
	}
	return &RunnerK[T]{
		tree:    tree,
		k:       k,
		pending: make([]pendingEntry[T], 0, tree.HeightHint()+1),
		heap:    kdheap.New[T](k),
	}
}

// K returns the effective (clamped) k this runner was constructed with.
func (r *RunnerK[T]) K() int { return r.k }

func (r *RunnerK[T]) reset() {
	r.pending = r.pending[:0]
	r.heap.Reset()
}

// Query runs the k-NN traversal of spec.md §4.8/§4.11 for a single,
// already-validated query point.
func (r *RunnerK[T]) Query(query []T) KResult[T] {
	r.reset()
	r.Traverse(query)
	return r.result(r.tree)
}

// Traverse runs one full descend/backtrack pass against query without
// resetting the heap, letting a caller (kdperiodic) replay several
// query images against the same k-best state (spec.md §4.9).
func (r *RunnerK[T]) Traverse(query []T) {
	r.pending = r.pending[:0]

	root := r.tree.Root()
	r.checkStem(query, root)

	for len(r.pending) > 0 {
		n := len(r.pending) - 1
		entry := r.pending[n]
		r.pending = r.pending[:n]

		if entry.boxDist2 >= r.heap.Worst() {
			continue
		}
		r.checkCandidate(query, entry.parentPivot)

		sibling := r.tree.NodeAt(entry.siblingIndex)
		if sibling.IsLeaf {
			r.checkLeaf(query, sibling.Points())
		} else {
			r.checkStem(query, sibling)
		}
	}
}

// Worst returns the heap's current worst-of-k squared distance.
func (r *RunnerK[T]) Worst() T { return r.heap.Worst() }

// Reset clears r back to its post-construction state, ready for a fresh
// sequence of Traverse calls.
func (r *RunnerK[T]) Reset() { r.reset() }

func (r *RunnerK[T]) checkStem(query []T, node kdtree.Node[T]) {
	cur := node
	for !cur.IsLeaf {
		axis := cur.SplitAxis()
		pivot := cur.Pivot()

		var siblingIdx, chosenIdx int
		if query[axis] > pivot.At(axis) {
			siblingIdx, chosenIdx = cur.LeftIndex(), cur.RightIndex()
		} else {
			siblingIdx, chosenIdx = cur.RightIndex(), cur.LeftIndex()
		}

		sibling := r.tree.NodeAt(siblingIdx)
		bounds := sibling.Bounds()
		boxDist2 := kddist.SquaredToBox(query, bounds.Lower, bounds.Upper)
		r.pending = append(r.pending, pendingEntry[T]{siblingIndex: siblingIdx, parentPivot: pivot, boxDist2: boxDist2})

		cur = r.tree.NodeAt(chosenIdx)
	}
	r.checkLeaf(query, cur.Points())
}

func (r *RunnerK[T]) checkLeaf(query []T, points []kdpoint.Point[T]) {
	for _, p := range points {
		r.checkCandidate(query, p)
	}
}

func (r *RunnerK[T]) checkCandidate(query []T, cand kdpoint.Point[T]) {
	d2 := kddist.SquaredEuclidean(query, cand.Pos())
	r.heap.Push(kdheap.Candidate[T]{Dist2: d2, Point: cand})
}

// CurrentResult drains the heap into a sorted KResult, honoring the
// tree's sqrt-dist and no-position options. Exported so kdperiodic can
// snapshot the accumulated k-best state after replaying every mirror
// image through Traverse. Draining empties the heap — call this only
// once, after the last Traverse of a query's image sequence.
func (r *RunnerK[T]) CurrentResult() KResult[T] {
	return r.result(r.tree)
}

func (r *RunnerK[T]) result(tree *kdtree.Tree[T]) KResult[T] {
	sorted := r.heap.DrainSorted()
	dists := make([]T, len(sorted))
	indices := make([]uint64, len(sorted))
	var pos [][]T
	if !tree.NoPosition() {
		pos = make([][]T, len(sorted))
	}
	for i, c := range sorted {
		d := c.Dist2
		if tree.SqrtDist() {
			d = T(math.Sqrt(float64(d)))
		}
		dists[i] = d
		indices[i] = c.Point.Index()
		if pos != nil {
			pos[i] = c.Point.Pos()
		}
	}
	return KResult[T]{Dists: dists, Indices: indices, Pos: pos}
}

// QueryNearestK validates q and k and runs a one-off k-NN query against
// tree. For repeated queries, construct a RunnerK once and call Query
// directly to reuse its scratch.
func QueryNearestK[T kdpoint.Coord](tree *kdtree.Tree[T], q []T, k int) (KResult[T], error) {
	if k < 1 {
		return KResult[T]{}, ErrInvalidK
	}
	if err := kdpoint.ValidateQuery(q, tree.Dim()); err != nil {
		return KResult[T]{}, err
	}
	return NewRunnerK(tree, k).Query(q), nil
}

// QueryNearestKNoIdx behaves like QueryNearestK but returns only
// distances. It runs QueryNearestK and drops the indices and positions,
// so that bookkeeping is still performed.
func QueryNearestKNoIdx[T kdpoint.Coord](tree *kdtree.Tree[T], q []T, k int) ([]T, error) {
	res, err := QueryNearestK(tree, q, k)
	if err != nil {
		return nil, err
	}
	return res.Dists, nil
}
