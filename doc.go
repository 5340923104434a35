// Package kdforest is an in-memory, fixed-dimensional k-d tree for fast
// nearest-neighbor and k-nearest-neighbor queries over a static point
// set in D-dimensional Euclidean space, with optional periodic
// (toroidal) boundary conditions.
//
// What:
//
//   - New / NewParallel: build a Tree from a slice of coordinate rows,
//     using a median-of-medians partitioning scheme (optionally with
//     fork/join parallelism down to a configurable depth cap).
//   - QueryNearest / QueryNearestK: 1-NN and k-NN queries via backtracking
//     search with bounded-region pruning.
//   - QueryNearestKParallel / QueryNearestKAxis: data-parallel batch
//     queries over many query points at once, writing into flat,
//     row-major output buffers.
//   - WithBoxsize: enable periodic queries, lifting the engine to a
//     torus by enumerating the mirror images a query point needs
//     checked against.
//
// Why:
//
//   - Spatial indexing for nearest-neighbor search is the common
//     substrate behind particle simulations, point-cloud processing,
//     and clustering — a static point set queried many times rewards
//     the O(N log N) build / O(log N) query tradeoff a k-d tree gives.
//
// Under the hood, everything is organized by concern:
//
//	kdpoint/    — input validation, the point table, and bounds
//	kdmedian/   — the median-of-medians partition selector
//	kdtree/     — node store, recursive builder, and the Tree type
//	kddist/     — squared-Euclidean and box-distance kernels
//	kdheap/     — the bounded max-heap backing k-NN results
//	kdquery/    — single-point 1-NN/k-NN traversal engines
//	kdperiodic/ — the periodic (toroidal) query wrapper
//	kdbatch/    — the parallel batch query driver
//
// Non-goals: dynamic insertion/deletion, on-disk persistence,
// approximate search, non-Euclidean metrics, k > N (silently clamped
// instead), duplicate de-duplication, and dimensions known only at
// runtime (D is fixed at construction from the input's row length).
//
//	go get github.com/katalvlaran/kdforest
package kdforest
