package kdtree

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/kdforest/kdmedian"
	"github.com/katalvlaran/kdforest/kdpoint"
)

// builder carries the parameters threaded through every recursive call of
// the build (spec.md §4.3): leafsize caps a Leaf's point count, dim is the
// fixed dimensionality (split axis cycles level mod dim), and parDepth is
// the recursion depth below which fork/join parallelism stops and the
// subtree is built on the calling goroutine.
type builder[T kdpoint.Coord] struct {
	leafsize int
	dim      int
	parDepth int
}

// recurseSequential builds the subtree rooted at pts on a single
// goroutine, pushing nodes into store as it returns from each branch
// (post-order: children are always pushed before their parent).
func (b *builder[T]) recurseSequential(pts []kdpoint.Point[T], level int, bounds kdpoint.Bounds[T], store *plainStore[T]) int {
	axis := level % b.dim

	if len(pts) <= b.leafsize {
		leaf := newLeaf(pts, bounds)
		return store.push(leaf)
	}

	left, pivot, right := kdmedian.Partition(pts, axis)
	pivotVal := pivot.At(axis)

	leftBounds := bounds.TightenUpper(axis, pivotVal)
	rightBounds := bounds.TightenLower(axis, pivotVal)

	leftIdx := b.recurseSequential(left, level+1, leftBounds, store)
	rightIdx := b.recurseSequential(right, level+1, rightBounds, store)

	stem := newStem(axis, pivot, leftIdx, rightIdx, bounds)
	return store.push(stem)
}

// recurseParallel mirrors recurseSequential but forks the left and right
// subtree builds onto separate goroutines (joined via errgroup.Group)
// while level < parDepth. Once that depth cap is reached, the subtree is
// built by recurseSequential into its own unsynchronized plainStore and
// spliced into store with a single pushBatch call, so a below-parDepth
// subtree never pays lockedStore's per-node lock/unlock overhead
// (spec.md §4.3/§5.1).
func (b *builder[T]) recurseParallel(pts []kdpoint.Point[T], level int, bounds kdpoint.Bounds[T], store *lockedStore[T]) int {
	axis := level % b.dim

	if len(pts) <= b.leafsize {
		leaf := newLeaf(pts, bounds)
		return store.push(leaf)
	}

	if level >= b.parDepth {
		seqStore := newPlainStore[T](2 * len(pts) / b.leafsize)
		localRoot := b.recurseSequential(pts, level, bounds, seqStore)
		offset := store.pushBatch(seqStore.nodes)
		return offset + localRoot
	}

	left, pivot, right := kdmedian.Partition(pts, axis)
	pivotVal := pivot.At(axis)

	leftBounds := bounds.TightenUpper(axis, pivotVal)
	rightBounds := bounds.TightenLower(axis, pivotVal)

	var leftIdx, rightIdx int
	var g errgroup.Group
	g.Go(func() error {
		leftIdx = b.recurseParallel(left, level+1, leftBounds, store)
		return nil
	})
	g.Go(func() error {
		rightIdx = b.recurseParallel(right, level+1, rightBounds, store)
		return nil
	})
	_ = g.Wait() // neither goroutine can return a non-nil error

	stem := newStem(axis, pivot, leftIdx, rightIdx, bounds)
	return store.push(stem)
}
