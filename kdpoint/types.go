package kdpoint

// Coord is the set of component types a Tree may be built over.
// Go has no const generics, so D (the dimension) is carried as a runtime
// field fixed at construction rather than as a type parameter; see
// SPEC_FULL.md §10.1 for the rationale.
type Coord interface {
	~float32 | ~float64
}

// Point is a logical (position reference, stable index) pair. The
// position is never copied out of the owning Table's backing array;
// cloning a Point duplicates the reference, not the components.
type Point[T Coord] struct {
	pos   []T
	index uint64
}

// Pos returns the point's coordinate slice. Callers must not mutate it.
func (p Point[T]) Pos() []T { return p.pos }

// Index returns the point's stable 64-bit index into the owning Table.
func (p Point[T]) Index() uint64 { return p.index }

// At returns the point's component on the given axis.
func (p Point[T]) At(axis int) T { return p.pos[axis] }

// Bounds is an axis-aligned bounding box: Lower[i] <= Upper[i] for all i.
type Bounds[T Coord] struct {
	Lower []T
	Upper []T
}

// Clone returns a deep copy of b, safe for independent mutation by a
// child node while tightening one axis.
func (b Bounds[T]) Clone() Bounds[T] {
	lower := make([]T, len(b.Lower))
	upper := make([]T, len(b.Upper))
	copy(lower, b.Lower)
	copy(upper, b.Upper)
	return Bounds[T]{Lower: lower, Upper: upper}
}

// TightenUpper returns a copy of b with Upper[axis] lowered to v, used
// when descending into a left child (spec.md §4.3 step 2).
func (b Bounds[T]) TightenUpper(axis int, v T) Bounds[T] {
	nb := b.Clone()
	nb.Upper[axis] = v
	return nb
}

// TightenLower returns a copy of b with Lower[axis] raised to v, used
// when descending into a right child.
func (b Bounds[T]) TightenLower(axis int, v T) Bounds[T] {
	nb := b.Clone()
	nb.Lower[axis] = v
	return nb
}

// BoundsFrom scans pts and returns the tight axis-aligned bounding box,
// one dimension at a time. Used only at the root (spec.md §4.3 step 2).
//
// Complexity: O(N·D) time, O(D) space.
func BoundsFrom[T Coord](pts []Point[T], dim int) Bounds[T] {
	lower := make([]T, dim)
	upper := make([]T, dim)
	for axis := 0; axis < dim; axis++ {
		lower[axis] = pts[0].At(axis)
		upper[axis] = pts[0].At(axis)
	}
	for _, p := range pts[1:] {
		for axis := 0; axis < dim; axis++ {
			v := p.At(axis)
			if v < lower[axis] {
				lower[axis] = v
			}
			if v > upper[axis] {
				upper[axis] = v
			}
		}
	}
	return Bounds[T]{Lower: lower, Upper: upper}
}
