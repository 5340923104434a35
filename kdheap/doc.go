// Package kdheap implements the bounded max-heap k-NN result container
// (spec.md §4.6): a container/heap.Interface, ordered by descending
// squared distance, capped at k entries.
//
// The heap is seeded with one +Inf sentinel candidate so Worst() is
// always defined, even before the first real push — the pruning rule in
// kdquery compares against Worst() unconditionally. The sentinel is
// always the current maximum and is therefore guaranteed to be evicted
// by the first real push once the heap reaches capacity, before any
// DrainSorted/DrainInto call. Grounded on dijkstra's nodePQ: a plain
// container/heap.Interface over a candidate slice (here: max-ordered and
// capacity-bounded instead of a min-heap over all reachable vertices).
// Square-root egress (the sqrt-dist configuration) is applied by the
// caller in kdquery/kdbatch, not by this package — Heap only ever deals
// in squared distances.
//
// Complexity: Push/Pop are O(log k); Worst is O(1); DrainSorted is
// O(k log k).
package kdheap

import "github.com/katalvlaran/kdforest/kdpoint"

// Candidate pairs a squared distance with the point it was measured to.
type Candidate[T kdpoint.Coord] struct {
	Dist2 T
	Point kdpoint.Point[T]
}
