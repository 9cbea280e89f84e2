package dijkstra

import "errors"

// Sentinel errors returned by ShortestPaths.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates the source vertex is not in [0, n).
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")
)
