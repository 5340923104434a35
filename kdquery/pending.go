package kdquery

import "github.com/katalvlaran/kdforest/kdpoint"

// pendingEntry is one not-yet-visited subtree recorded during descent:
// the sibling's node-store index, the pivot of the stem it hangs off of
// (not yet checked as a candidate), and the precomputed squared distance
// from the query to the sibling's bounding box (spec.md §4.7 step 1).
type pendingEntry[T kdpoint.Coord] struct {
	siblingIndex int
	parentPivot  kdpoint.Point[T]
	boxDist2     T
}
