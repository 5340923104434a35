package kdtree

import (
	"math/bits"

	"github.com/katalvlaran/kdforest/kdpoint"
)

// Tree is the immutable, fixed-dimensional k-d tree of spec.md §3. It
// borrows its input buffer for its entire lifetime via kdpoint.Table;
// mutating or discarding that buffer while the Tree is in use is a
// caller error the type cannot guard against, matching the borrow
// semantics spec.md §3/§9 describe for the source language.
type Tree[T kdpoint.Coord] struct {
	table      *kdpoint.Table[T]
	nodes      []Node[T]
	root       Node[T]
	heightHint int
	leafsize   int
	dim        int
	boxsize    []T
	sqrtDist   bool
	noPosition bool
}

// Table returns the tree's underlying point table.
func (t *Tree[T]) Table() *kdpoint.Table[T] { return t.table }

// Dim returns the fixed dimensionality every point and query is checked
// against.
func (t *Tree[T]) Dim() int { return t.dim }

// Leafsize returns the maximum number of points a Leaf may hold.
func (t *Tree[T]) Leafsize() int { return t.leafsize }

// Boxsize returns the periodic box size, or nil if the tree is
// non-periodic.
func (t *Tree[T]) Boxsize() []T { return t.boxsize }

// SqrtDist reports whether query results report sqrt(dist2) rather than
// dist2.
func (t *Tree[T]) SqrtDist() bool { return t.sqrtDist }

// NoPosition reports whether query results omit the neighbor position.
func (t *Tree[T]) NoPosition() bool { return t.noPosition }

// Root returns the tree's root node, held separately from the flat node
// store (spec.md §3/§4.4).
func (t *Tree[T]) Root() Node[T] { return t.root }

// NodeAt returns the node at the given store index. i must be less than
// the index of whatever node referenced it (a Stem's own invariant);
// violating that is a library-invariant violation, not a user error.
func (t *Tree[T]) NodeAt(i int) Node[T] {
	if i < 0 || i >= len(t.nodes) {
		panic("kdtree: node index out of bounds")
	}
	return t.nodes[i]
}

// HeightHint returns floor(log2(N)), used to size query scratch.
func (t *Tree[T]) HeightHint() int { return t.heightHint }

// New builds a Tree sequentially from points, per spec.md §4.3.
func New[T kdpoint.Coord](points [][]T, leafsize int, opts ...Option[T]) (*Tree[T], error) {
	return build(points, leafsize, 0, false, opts)
}

// NewParallel builds a Tree using fork/join parallelism down to
// recursion depth parDepth, per spec.md §4.3/§5.1.
func NewParallel[T kdpoint.Coord](points [][]T, leafsize, parDepth int, opts ...Option[T]) (*Tree[T], error) {
	if parDepth < 0 {
		return nil, ErrInvalidParDepth
	}
	return build(points, leafsize, parDepth, true, opts)
}

func build[T kdpoint.Coord](points [][]T, leafsize, parDepth int, parallel bool, opts []Option[T]) (*Tree[T], error) {
	if len(points) == 0 {
		return nil, kdpoint.ErrZeroLengthInput
	}
	if leafsize < 1 {
		return nil, ErrInvalidLeafsize
	}
	dim := len(points[0])

	cfg := newConfig(opts)

	var err error
	if cfg.boxsize != nil {
		err = kdpoint.ValidatePeriodic(points, dim, cfg.boxsize)
	} else {
		err = kdpoint.Validate(points, dim)
	}
	if err != nil {
		return nil, err
	}

	table := kdpoint.NewTable(points, dim)
	pts := make([]kdpoint.Point[T], table.Len())
	copy(pts, table.Points())

	rootBounds := kdpoint.BoundsFrom(pts, dim)

	b := &builder[T]{leafsize: leafsize, dim: dim, parDepth: parDepth}

	var rootIdx int
	var flatNodes []Node[T]
	if parallel {
		store := newLockedStore[T](2 * len(pts) / leafsize)
		rootIdx = b.recurseParallel(pts, 0, rootBounds, store)
		flatNodes = store.nodes
	} else {
		store := newPlainStore[T](2 * len(pts) / leafsize)
		rootIdx = b.recurseSequential(pts, 0, rootBounds, store)
		flatNodes = store.nodes
	}

	root := flatNodes[rootIdx]
	flatNodes = flatNodes[:rootIdx] // pop the root out; it was always pushed last

	return &Tree[T]{
		table:      table,
		nodes:      flatNodes,
		root:       root,
		heightHint: bits.Len(uint(len(pts))) - 1,
		leafsize:   leafsize,
		dim:        dim,
		boxsize:    cfg.boxsize,
		sqrtDist:   cfg.sqrtDist,
		noPosition: cfg.noPosition,
	}, nil
}
