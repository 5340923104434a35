// Package kdtree owns the node store and the recursive builder, and
// exposes the Tree type itself (spec.md §3, §4.3, §4.4).
//
// A node is modeled as one struct carrying an IsLeaf discriminant rather
// than two distinct Go types, since Go has no tagged-union sum types;
// accessors (SplitAxis, Pivot, LeftIndex, RightIndex, Points) panic if
// called on the wrong variant — a library-invariant violation, never a
// user-input error (spec.md §7).
//
// The node store is an append-only flat slice, written in post-order
// during build (children pushed before their parent, so a Stem's
// LeftIndex/RightIndex are always less than its own index) and read
// randomly during query. During a parallel build the store is guarded
// by a sync.RWMutex; the root is popped out and held separately once
// construction finishes, exactly as spec.md §3/§4.4 describe.
//
// Complexity:
//
//	– New/NewParallel: O(N log N) expected time (each level's Partition
//	  call is O(level size) expected, O(log N) levels).
//	– node store Push/At: O(1) amortized / O(1).
package kdtree

import "errors"

// Sentinel errors returned by New/NewParallel that have no kdpoint
// equivalent (input validity errors are returned directly from
// kdpoint.Validate/ValidatePeriodic — see kdpoint's own sentinels).
var (
	// ErrInvalidLeafsize indicates a leafsize less than 1 was requested.
	ErrInvalidLeafsize = errors.New("kdtree: leafsize must be >= 1")

	// ErrInvalidParDepth indicates a negative parallel-build depth cap.
	ErrInvalidParDepth = errors.New("kdtree: parDepth must be >= 0")
)
