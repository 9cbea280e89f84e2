package onepass

import "errors"

var (
	// ErrInvalidK is returned when the requested path count is less than 1.
	ErrInvalidK = errors.New("onepass: k must be >= 1")

	// ErrInvalidTheta is returned when the similarity threshold falls
	// outside [0, 1].
	ErrInvalidTheta = errors.New("onepass: theta must be in [0, 1]")

	// ErrVertexOutOfRange is returned when source or target names a vertex
	// the graph does not have.
	ErrVertexOutOfRange = errors.New("onepass: source or target out of range")

	// ErrNilGraph is returned when Search is called with a nil graph.
	ErrNilGraph = errors.New("onepass: graph must not be nil")
)

// similarityEpsilon absorbs floating-point rounding noise in the
// shared-weight / path-length ratio compared against theta, so that a
// ratio that is mathematically equal to theta is not spuriously rejected.
const similarityEpsilon = 1e-9
