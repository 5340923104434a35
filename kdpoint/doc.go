// Package kdpoint defines the point table, bounds, and input validator
// shared by every other kdforest package.
//
// A Table owns a borrowed, validated view of the caller's coordinate
// buffer: the backing array is never copied, only re-interpreted as a
// sequence of Point values carrying stable 64-bit indices. Validation is
// a pure pre-pass — NaN and ±Inf components are rejected before any
// Point is handed to the builder or query engine.
//
// Complexity:
//
//	– Validate:  O(N·D) time, O(1) extra space.
//	– NewTable:  O(N) time (one Point per row), O(N) space for the index view.
//
// Errors (sentinel):
//
//	– ErrZeroLengthInput          if the input buffer has zero rows.
//	– ErrInvalidComponent         if any component is NaN or ±Inf.
//	– ErrDimensionMismatch        if rows disagree on length.
//	– ErrInvalidBoxsize           if a boxsize component is NaN or ±Inf.
//	– ErrSmallBoxsize             if data exceeds boxsize on some axis.
//	– ErrNegativeDataPeriodicQuery if periodic mode sees a negative coordinate.
package kdpoint

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Validate, ValidatePeriodic, ValidateQuery,
// and ValidateQueryPeriodic.
var (
	// ErrZeroLengthInput indicates the input buffer has no rows.
	ErrZeroLengthInput = errors.New("kdpoint: input has zero length")

	// ErrInvalidComponent indicates a NaN or infinite coordinate component.
	// Returned inside an *InvalidComponentError carrying the offending row
	// index; errors.Is matches it through Unwrap.
	ErrInvalidComponent = errors.New("kdpoint: invalid (NaN/Inf) component")

	// ErrDimensionMismatch indicates rows of differing length in the input.
	ErrDimensionMismatch = errors.New("kdpoint: rows disagree on dimension")

	// ErrInvalidBoxsize indicates a NaN or infinite boxsize component.
	ErrInvalidBoxsize = errors.New("kdpoint: boxsize contains NaN/Inf")

	// ErrSmallBoxsize indicates a data component is >= the matching boxsize
	// component, violating the periodic invariant that data lies in [0, boxsize).
	ErrSmallBoxsize = errors.New("kdpoint: boxsize too small for data extent")

	// ErrNegativeDataPeriodicQuery indicates a negative coordinate was found
	// while periodic mode requires all components to be non-negative.
	ErrNegativeDataPeriodicQuery = errors.New("kdpoint: negative coordinate under periodic boundary")
)

// InvalidComponentError carries the row index of the first offending point
// found by Validate, so callers can report precisely which input row failed.
type InvalidComponentError struct {
	Row int
}

// Error implements the error interface.
func (e *InvalidComponentError) Error() string {
	return fmt.Sprintf("%s: row %d", ErrInvalidComponent, e.Row)
}

// Unwrap allows errors.Is(err, ErrInvalidComponent) to succeed.
func (e *InvalidComponentError) Unwrap() error {
	return ErrInvalidComponent
}
