package kdtree

// Option customizes a Tree at construction time. Options are functional,
// matching the teacher pack's BuilderOption/dijkstra.Option convention:
// a function that mutates a config before the object is built.
type Option[T any] func(*config[T])

type config[T any] struct {
	boxsize    []T
	sqrtDist   bool
	noPosition bool
}

func newConfig[T any](opts []Option[T]) *config[T] {
	cfg := &config[T]{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithBoxsize enables periodic (toroidal) queries with the given
// per-axis box size. Validated against the data by New/NewParallel
// (data must lie in [0, boxsize) on every axis).
func WithBoxsize[T any](boxsize []T) Option[T] {
	return func(c *config[T]) { c.boxsize = boxsize }
}

// WithSqrtDist configures query results to report the square root of the
// squared distance rather than the squared distance itself.
func WithSqrtDist[T any]() Option[T] {
	return func(c *config[T]) { c.sqrtDist = true }
}

// WithNoPosition configures query results to omit the neighbor's
// position slice, returning only distance and index.
func WithNoPosition[T any]() Option[T] {
	return func(c *config[T]) { c.noPosition = true }
}
