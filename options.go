package kdforest

import (
	"github.com/katalvlaran/kdforest/kdpoint"
	"github.com/katalvlaran/kdforest/kdtree"
)

// WithBoxsize enables periodic (toroidal) queries with the given
// per-axis box size. New/NewParallel verify the data lies in
// [0, boxsize) on every axis.
func WithBoxsize[T kdpoint.Coord](boxsize []T) kdtree.Option[T] {
	return kdtree.WithBoxsize[T](boxsize)
}

// WithSqrtDist configures query results to report sqrt(dist2) rather
// than the squared distance itself.
func WithSqrtDist[T kdpoint.Coord]() kdtree.Option[T] {
	return kdtree.WithSqrtDist[T]()
}

// WithNoPosition configures query results to omit the neighbor's
// position slice, returning only distance and index.
func WithNoPosition[T kdpoint.Coord]() kdtree.Option[T] {
	return kdtree.WithNoPosition[T]()
}
