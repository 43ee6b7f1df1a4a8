package gridgraph

import "errors"

var (
	// ErrBadSize indicates a lattice side length below one.
	ErrBadSize = errors.New("gridgraph: lattice size must be at least 1")
	// ErrUnknownShape indicates a shape value outside core.Shapes().
	ErrUnknownShape = errors.New("gridgraph: unknown shape")
)
