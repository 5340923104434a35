package kdpoint

// Table is an ordered sequence of points owned by a Tree, established
// once at construction and immutable afterward. The backing coordinate
// buffer is borrowed from the caller (Go slices alias their backing
// array, giving the same borrow semantics spec.md §3 describes for the
// source language): mutating or discarding the original buffer while a
// Table is in use is a caller error, not guarded against here.
type Table[T Coord] struct {
	raw    [][]T
	points []Point[T]
	dim    int
}

// NewTable builds a Table over buf, assigning each row a stable index
// equal to its row position. buf must already have passed Validate.
//
// Complexity: O(N) time, O(N) space for the Point view.
func NewTable[T Coord](buf [][]T, dim int) *Table[T] {
	points := make([]Point[T], len(buf))
	for i, row := range buf {
		points[i] = Point[T]{pos: row, index: uint64(i)}
	}
	return &Table[T]{raw: buf, points: points, dim: dim}
}

// Len returns the number of points in the table.
func (t *Table[T]) Len() int { return len(t.points) }

// Dim returns the fixed dimensionality of every point in the table.
func (t *Table[T]) Dim() int { return t.dim }

// Points returns the table's Point view. Callers must treat it as
// read-only; the builder consumes a copy of this slice to partition in
// place without disturbing table order.
func (t *Table[T]) Points() []Point[T] { return t.points }

// At returns the point at the given stable index.
func (t *Table[T]) At(index uint64) Point[T] { return t.points[index] }
