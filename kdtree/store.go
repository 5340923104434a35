package kdtree

import (
	"sync"

	"github.com/katalvlaran/kdforest/kdpoint"
)

// nodeStore is the append-only backing store written during build and
// read randomly during query. push returns the index the node was
// stored at; a Stem's LeftIndex/RightIndex are always less than its own
// index because children are always pushed before their parent
// (post-order construction, spec.md §3/§4.4).
type nodeStore[T kdpoint.Coord] interface {
	push(n Node[T]) int
	at(i int) Node[T]
	len() int
}

// lockedStore guards a shared slice with a writer-preferring RWMutex,
// used while the build is still forking goroutines across the parallel
// recursion levels (spec.md §5.1). Reads never occur during build, only
// writes; RWMutex is kept anyway to mirror the split-lock idiom the rest
// of the pack uses for shared mutable state.
type lockedStore[T kdpoint.Coord] struct {
	mu    sync.RWMutex
	nodes []Node[T]
}

func newLockedStore[T kdpoint.Coord](capacityHint int) *lockedStore[T] {
	return &lockedStore[T]{nodes: make([]Node[T], 0, capacityHint)}
}

func (s *lockedStore[T]) push(n Node[T]) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nodes = append(s.nodes, n)
	return len(s.nodes) - 1
}

func (s *lockedStore[T]) at(i int) Node[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nodes[i]
}

func (s *lockedStore[T]) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nodes)
}

// pushBatch splices nodes, built elsewhere (a plainStore-backed subtree),
// into s as a contiguous block, shifting every node's child indices to
// match their new base. Used once per below-parDepth subtree so that
// subtree's own build runs entirely unsynchronized and only the single
// splice acquires s's lock, rather than once per node pushed.
func (s *lockedStore[T]) pushBatch(nodes []Node[T]) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	offset := len(s.nodes)
	for _, n := range nodes {
		s.nodes = append(s.nodes, n.withOffset(offset))
	}
	return offset
}

// plainStore is the unsynchronized store used once the build recursion
// has passed parDepth and continues on a single goroutine — or for the
// fully sequential New() path, which never forks at all.
type plainStore[T kdpoint.Coord] struct {
	nodes []Node[T]
}

func newPlainStore[T kdpoint.Coord](capacityHint int) *plainStore[T] {
	return &plainStore[T]{nodes: make([]Node[T], 0, capacityHint)}
}

func (s *plainStore[T]) push(n Node[T]) int {
	s.nodes = append(s.nodes, n)
	return len(s.nodes) - 1
}

func (s *plainStore[T]) at(i int) Node[T] { return s.nodes[i] }
func (s *plainStore[T]) len() int         { return len(s.nodes) }
