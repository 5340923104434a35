// Package kddist provides the distance kernels shared by the query
// engines: squared Euclidean distance between two points, squared
// distance from a point to an axis-aligned box (used to prune subtrees),
// and an axis-decomposed variant that splits the total squared distance
// into its on-axis and off-axis contributions.
//
// All three are pure free functions over kdpoint.Coord — no state, no
// allocation beyond the returned scalars, and no lossy intermediate
// representation: the arithmetic a caller sees is exactly the arithmetic
// performed here. Grounded on dtw's pure-function numeric-kernel style
// (a handful of tight free functions, no receiver state).
//
// SquaredEuclidean's loop has no branches; SquaredToBox and
// AxisDecomposed branch on each axis.
//
// Complexity: O(D) time, O(1) space for every function in this package.
package kddist
