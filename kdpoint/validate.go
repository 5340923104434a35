package kdpoint

import "math"

// finite reports whether v is neither NaN nor ±Inf.
func finite[T Coord](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Validate rejects an empty buffer or any row containing a non-finite
// component, and rejects rows whose length disagrees with dim.
//
// Valid buffers are not copied: the caller's rows are re-interpreted
// as-is by NewTable once Validate succeeds.
//
// Complexity: O(N·D) time, O(1) extra space.
func Validate[T Coord](buf [][]T, dim int) error {
	if len(buf) == 0 {
		return ErrZeroLengthInput
	}
	for row, p := range buf {
		if len(p) != dim {
			return ErrDimensionMismatch
		}
		for _, c := range p {
			if !finite(c) {
				return &InvalidComponentError{Row: row}
			}
		}
	}
	return nil
}

// ValidatePeriodic runs Validate and additionally enforces the periodic
// invariant: boxsize is finite, and every component lies in [0, boxsize).
//
// Complexity: O(N·D) time, O(1) extra space.
func ValidatePeriodic[T Coord](buf [][]T, dim int, boxsize []T) error {
	if err := Validate(buf, dim); err != nil {
		return err
	}
	if len(boxsize) != dim {
		return ErrDimensionMismatch
	}
	for _, b := range boxsize {
		if !finite(b) {
			return ErrInvalidBoxsize
		}
	}
	for _, p := range buf {
		for axis, c := range p {
			if c < 0 {
				return ErrNegativeDataPeriodicQuery
			}
			if c >= boxsize[axis] {
				return ErrSmallBoxsize
			}
		}
	}
	return nil
}

// ValidateQueryPeriodic validates a single inbound query point under
// periodic boundary conditions: in addition to ValidateQuery's checks,
// every component must be non-negative and strictly less than the
// matching boxsize component (spec.md §3).
func ValidateQueryPeriodic[T Coord](q []T, dim int, boxsize []T) error {
	if err := ValidateQuery(q, dim); err != nil {
		return err
	}
	for axis, c := range q {
		if c < 0 {
			return ErrNegativeDataPeriodicQuery
		}
		if c >= boxsize[axis] {
			return ErrSmallBoxsize
		}
	}
	return nil
}

// ValidateQuery validates a single inbound query point (spec.md §7: the
// validator runs on every inbound query point, not only at construction).
//
// Complexity: O(D) time, O(1) extra space.
func ValidateQuery[T Coord](q []T, dim int) error {
	if len(q) != dim {
		return ErrDimensionMismatch
	}
	for _, c := range q {
		if !finite(c) {
			return &InvalidComponentError{Row: -1}
		}
	}
	return nil
}
