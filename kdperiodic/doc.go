// Package kdperiodic lifts the non-periodic query engines of kdquery to
// toroidal (periodic-boundary) space, per spec.md §4.9.
//
// A periodic query enumerates the at most 2^D-1 reflected mirror images
// of the query point reachable by reflecting across one or more axes,
// alongside the real (unreflected) image. For each axis i, the closest
// distance to either box side is precomputed once
// (sideDist2[i] = min(q[i], B[i]-q[i])^2); for a candidate subset S of
// axes (encoded as the bits of an integer 1..2^D-1), the minimum squared
// distance from q to the S-reflected image's region is the sum of
// sideDist2 over i in S. Subsets whose sum is no better than the
// current best/worst-of-k cannot improve the answer and are skipped
// without ever building or querying that image.
//
// The real image is queried first (establishing an initial best), then
// every surviving reflection is replayed through the SAME underlying
// kdquery.Runner1/RunnerK via Traverse, so improvements found in one
// image carry into the pruning threshold for the next. Grounded on
// gridgraph's component/neighbor-expansion style: both enumerate a
// small, fixed combinatorial neighborhood and prune early against a
// running best, even though the domains (grid cells vs. axis subsets)
// differ.
//
// Correctness: every point in the periodic torus within the final best
// distance of q lies within that distance of some enumerated image,
// because each axis contributes independently and the reflected
// half-space either contains q or its mirror (spec.md §4.9).
//
// Complexity: O(2^D) image candidates considered, each either pruned in
// O(1) or replayed as a full non-periodic query.
package kdperiodic
