// Package kdquery implements the single-point 1-NN and k-NN traversal
// engines of spec.md §4.7/§4.8 and the state machine of §4.11.
//
// Both engines share the same descend/backtrack shape (grounded on
// dijkstra's runner pattern: a small struct holding mutable traversal
// state plus a single method that drives the main loop to completion),
// but are implemented as two separate runner types — Runner1 for 1-NN,
// RunnerK for k-NN — rather than unified behind a shared interface,
// mirroring the original implementation's own query.rs/query_k.rs split.
//
// Traversal: starting from the tree's root, checkStem descends choosing
// the branch on the query-vs-pivot comparison at each stem, pushing the
// other branch onto a LIFO pending list together with the parent pivot
// and the precomputed squared distance to the sibling's bounding box.
// At a leaf, every point updates the running best/heap. Once the first
// descent reaches a leaf, pending is drained: an entry whose box
// distance is no better than the current best/worst-of-k is pruned
// without descending; otherwise the parent pivot is checked as a
// candidate (it was skipped during the initial descent) and the sibling
// is visited — recursively, if it is itself a stem.
//
// Result types are named structs (Result, KResult, AxisResult) rather
// than bare tuples, since idiomatic Go favors named returns over long
// positional tuples for multi-value results.
//
// Complexity: O(log N) expected per query (balanced-in-expectation
// tree), O(N) worst case for a maximally unbalanced tree.
package kdquery
