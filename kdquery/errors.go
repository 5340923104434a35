package kdquery

import "errors"

// ErrInvalidK indicates k < 1 was requested of a k-NN query. spec.md §9
// left k=0 behavior an open question; DESIGN.md records the decision to
// reject rather than silently return an empty row.
var ErrInvalidK = errors.New("kdquery: k must be >= 1")

// ErrInvalidAxis indicates an axis-decomposed query named an axis >= the
// tree's dimensionality.
var ErrInvalidAxis = errors.New("kdquery: axis out of range")
