package kdquery

import (
	"math"

	"github.com/katalvlaran/kdforest/kddist"
	"github.com/katalvlaran/kdforest/kdpoint"
	"github.com/katalvlaran/kdforest/kdtree"
)

// Result is the 1-NN query result of spec.md §3: a squared (or, under
// WithSqrtDist, rooted) distance, the neighbor's stable index, and
// optionally its position.
type Result[T kdpoint.Coord] struct {
	Dist  T
	Index uint64
	Pos   []T
}

// Runner1 holds the reusable traversal scratch for 1-NN queries: the
// pending LIFO and the running best candidate. A single Runner1 may be
// reset and reused across queries to avoid per-query allocation (spec.md
// §4.10/§5), the same way kdbatch reuses pooled RunnerK values.
type Runner1[T kdpoint.Coord] struct {
	tree      *kdtree.Tree[T]
	pending   []pendingEntry[T]
	bestDist2 T
	bestPoint kdpoint.Point[T]
}

// NewRunner1 returns a Runner1 scoped to tree, with pending pre-sized to
// the tree's expected height.
func NewRunner1[T kdpoint.Coord](tree *kdtree.Tree[T]) *Runner1[T] {
	return &Runner1[T]{
		tree:    tree,
		pending: make([]pendingEntry[T], 0, tree.HeightHint()+1),
	}
}

// reset clears r's scratch back to its post-construction state, ready
// for a fresh query.
func (r *Runner1[T]) reset() {
	r.pending = r.pending[:0]
	r.bestDist2 = T(math.Inf(1))
	var zero kdpoint.Point[T]
	r.bestPoint = zero
}

// Query runs the 1-NN traversal of spec.md §4.7/§4.11 for a single,
// already-validated query point and returns the nearest neighbor.
func (r *Runner1[T]) Query(query []T) Result[T] {
	r.reset()
	r.Traverse(query)
	return r.result(r.tree)
}

// Traverse runs one full descend/backtrack pass against query without
// resetting the running best, so a caller can replay several query
// images against the same best/worst state — exactly what kdperiodic
// needs to thread best_dist2/best_idx across mirror images (spec.md
// §4.9). BestDist2 reads the accumulated state; CurrentResult reads the
// full accumulated result; a caller that wants a single one-off query
// should call Query instead.
func (r *Runner1[T]) Traverse(query []T) {
	r.pending = r.pending[:0]

	root := r.tree.Root()
	r.checkStem(query, root)

	for len(r.pending) > 0 {
		n := len(r.pending) - 1
		entry := r.pending[n]
		r.pending = r.pending[:n]

		if entry.boxDist2 >= r.bestDist2 {
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

// BestDist2 returns the running best squared distance accumulated so
// far across any number of Traverse calls.
func (r *Runner1[T]) BestDist2() T { return r.bestDist2 }

// Reset clears r back to its post-construction state (empty pending,
// +Inf best), ready for a fresh sequence of Traverse calls.
func (r *Runner1[T]) Reset() { r.reset() }

// checkStem descends from node to a leaf, pushing the unvisited sibling
// at every stem along with its parent pivot and precomputed box
// distance, then checks the leaf's points (spec.md §4.7 steps 1-2).
func (r *Runner1[T]) checkStem(query []T, node kdtree.Node[T]) {
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

// checkLeaf updates the running best against every point in a leaf.
func (r *Runner1[T]) checkLeaf(query []T, points []kdpoint.Point[T]) {
	for _, p := range points {
		r.checkCandidate(query, p)
	}
}

// checkCandidate updates the running best if cand is closer to query.
func (r *Runner1[T]) checkCandidate(query []T, cand kdpoint.Point[T]) {
	d2 := kddist.SquaredEuclidean(query, cand.Pos())
	if d2 < r.bestDist2 {
		r.bestDist2 = d2
		r.bestPoint = cand
	}
}

// CurrentResult builds the public Result from the runner's current
// best, honoring the tree's sqrt-dist and no-position options. Exported
// so kdperiodic can snapshot the accumulated best after replaying every
// mirror image through Traverse.
func (r *Runner1[T]) CurrentResult() Result[T] {
	return r.result(r.tree)
}

func (r *Runner1[T]) result(tree *kdtree.Tree[T]) Result[T] {
	dist := r.bestDist2
	if tree.SqrtDist() {
		dist = T(math.Sqrt(float64(dist)))
	}
	res := Result[T]{Dist: dist, Index: r.bestPoint.Index()}
	if !tree.NoPosition() {
		res.Pos = r.bestPoint.Pos()
	}
	return res
}

// QueryNearest validates q and runs a one-off 1-NN query against tree.
// For repeated queries against the same tree, construct a Runner1 once
// and call Query directly to reuse its scratch.
func QueryNearest[T kdpoint.Coord](tree *kdtree.Tree[T], q []T) (Result[T], error) {
	if err := kdpoint.ValidateQuery(q, tree.Dim()); err != nil {
		return Result[T]{}, err
	}
	return NewRunner1(tree).Query(q), nil
}
