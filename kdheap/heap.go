package kdheap

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/kdforest/kdpoint"
)

// candidatePQ is a max-heap of Candidate, ordered by descending Dist2.
// Mirrors dijkstra.nodePQ's shape: a plain slice implementing the four
// container/heap primitives plus Push/Pop.
type candidatePQ[T kdpoint.Coord] []Candidate[T]

func (pq candidatePQ[T]) Len() int            { return len(pq) }
func (pq candidatePQ[T]) Less(i, j int) bool  { return pq[i].Dist2 > pq[j].Dist2 } // max-heap
func (pq candidatePQ[T]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *candidatePQ[T]) Push(x interface{}) { *pq = append(*pq, x.(Candidate[T])) }

func (pq *candidatePQ[T]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// Heap is the bounded k-NN result container of spec.md §4.6.
type Heap[T kdpoint.Coord] struct {
	pq       candidatePQ[T]
	capacity int // k_or_datalen = min(k, N)
}

// New returns a Heap capped at capacity entries, pre-seeded with one
// +Inf sentinel so Worst() is always defined (spec.md §4.6, §9).
func New[T kdpoint.Coord](capacity int) *Heap[T] {
	h := &Heap[T]{
		pq:       make(candidatePQ[T], 0, capacity+1),
		capacity: capacity,
	}
	var posInf T
	posInf = T(math.Inf(1))
	heap.Push(&h.pq, Candidate[T]{Dist2: posInf})
	return h
}

// Reset clears h back to its post-New state (one +Inf sentinel, zero
// real entries) so a worker's scratch Heap can be reused across queries
// without reallocating (spec.md §4.10, §5 scratch-reuse permission).
func (h *Heap[T]) Reset() {
	h.pq = h.pq[:0]
	var posInf T
	posInf = T(math.Inf(1))
	heap.Push(&h.pq, Candidate[T]{Dist2: posInf})
}

// Len returns the number of real (non-sentinel) entries currently held.
func (h *Heap[T]) Len() int {
	if h.hasSentinel() {
		return h.pq.Len() - 1
	}
	return h.pq.Len()
}

// hasSentinel reports whether the +Inf seed entry is still present.
// It is always the maximum, so it sits at pq[0] until evicted.
func (h *Heap[T]) hasSentinel() bool {
	return h.pq.Len() > 0 && math.IsInf(float64(h.pq[0].Dist2), 1)
}

// Worst returns the current k-th best (largest) squared distance held,
// or +Inf if the heap has not yet reached capacity real entries.
func (h *Heap[T]) Worst() T {
	return h.pq[0].Dist2
}

// Push inserts cand per spec.md §4.6: if the heap (counting only real
// entries) has not reached capacity, insert; otherwise if cand is no
// worse than the current worst, replace it; otherwise drop cand.
func (h *Heap[T]) Push(cand Candidate[T]) {
	if h.Len() < h.capacity {
		heap.Push(&h.pq, cand)
		// The sentinel is the largest possible value, so it sorts as the
		// current worst until real entries fill the heap to capacity;
		// evict it the moment that happens so Worst() and Len() report
		// the true top-k state instead of overflowing to capacity+1.
		if h.Len() == h.capacity && h.hasSentinel() {
			heap.Pop(&h.pq)
		}
		return
	}
	if cand.Dist2 <= h.Worst() {
		h.pq[0] = cand
		heap.Fix(&h.pq, 0)
	}
}

// DrainInto empties the heap into dists/indices (and positions, if
// non-nil) starting at dists[offset:], ascending by Dist2. The slices
// must have room for at least Len() entries starting at offset, so a
// caller can fill a row of a pre-allocated flat buffer (spec.md §4.10).
// The batch driver does not use it; it copies each query's KResult.
func (h *Heap[T]) DrainInto(dists []T, indices []uint64, positions [][]T, offset int) {
	sorted := h.DrainSorted()
	for i, c := range sorted {
		dists[offset+i] = c.Dist2
		indices[offset+i] = c.Point.Index()
		if positions != nil {
			positions[offset+i] = c.Point.Pos()
		}
	}
}

// DrainSorted empties the heap and returns its entries in ascending
// order by Dist2. The sentinel, if still present (fewer than capacity
// real pushes occurred), is excluded. The sentinel is always the
// current maximum (+Inf), so it must be popped first, before any real
// entry, not last.
func (h *Heap[T]) DrainSorted() []Candidate[T] {
	if h.hasSentinel() {
		heap.Pop(&h.pq)
	}
	n := h.pq.Len()
	out := make([]Candidate[T], n)
	for i := n - 1; i >= 0; i-- {
		out[i] = heap.Pop(&h.pq).(Candidate[T])
	}
	return out
}
