package graph

import (
	"errors"
	"sync"

	"golang.org/x/exp/constraints"
)

// Weight bounds the edge-weight type parameter accepted by Graph: any
// ordered, additive numeric type. constraints.Integer | constraints.Float
// is the closest the Go type system offers without a dedicated
// numeric-monoid interface, and covers both integer and floating weights.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Sentinel errors for graph construction and mutation.
var (
	// ErrNegativeWeight indicates an edge was added with a negative weight.
	// This graph container is non-negative-weights-only.
	ErrNegativeWeight = errors.New("graph: edge weight must be non-negative")

	// ErrVertexOutOfRange indicates a vertex index outside [0, n).
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")

	// ErrInvalidVertexCount indicates a graph was constructed with n <= 0.
	ErrInvalidVertexCount = errors.New("graph: vertex count must be positive")

	// ErrMalformedGraph indicates a .gr document violated the expected grammar.
	ErrMalformedGraph = errors.New("graph: malformed .gr input")
)

// Edge is a single directed arc (From -> To) carrying weight W.
type Edge[W Weight] struct {
	From   int
	To     int
	Weight W
}

// Graph is an in-memory weighted directed graph over vertices 0..n-1.
//
// Internally it is stored as an adjacency list: adj[v] holds every edge
// outgoing from v. Undirected input (the .gr "u" header) is expanded into
// two directed edges at parse time (see parse.go), so Graph itself is
// always a directed structure.
//
// muN guards n (immutable after construction, but exposed via NumVertices
// for concurrent readers). muAdj guards adj and edgeCount.
type Graph[W Weight] struct {
	muN sync.RWMutex
	n   int

	muAdj     sync.RWMutex
	adj       [][]Edge[W]
	edgeCount int
}

// NewGraph allocates an empty weighted directed graph over n vertices
// (0..n-1). n must be positive.
//
// Complexity: O(n).
func NewGraph[W Weight](n int) (*Graph[W], error) {
	if n <= 0 {
		return nil, ErrInvalidVertexCount
	}

	return &Graph[W]{
		n:   n,
		adj: make([][]Edge[W], n),
	}, nil
}

// NumVertices returns the number of vertices in the graph.
//
// Complexity: O(1).
func (g *Graph[W]) NumVertices() int {
	g.muN.RLock()
	defer g.muN.RUnlock()

	return g.n
}

// NumEdges returns the number of directed edges stored in the graph.
//
// Complexity: O(1).
func (g *Graph[W]) NumEdges() int {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	return g.edgeCount
}

// HasVertex reports whether v is a valid vertex index for this graph.
func (g *Graph[W]) HasVertex(v int) bool {
	g.muN.RLock()
	defer g.muN.RUnlock()

	return v >= 0 && v < g.n
}
