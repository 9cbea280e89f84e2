// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Neighbors/Edges/ReverseView.
//
// Determinism:
//   - Neighbors(v) returns edges in insertion order.
//   - Edges() returns edges grouped by source vertex ascending, then
//     insertion order within a vertex.
//
// Concurrency:
//   - Mutations under muAdj write lock.
//   - Read queries under muAdj read lock.
package graph

// AddEdge inserts a directed edge (from -> to) with the given weight.
//
// Validation order:
//  1. from, to must be valid vertex indices (ErrVertexOutOfRange).
//  2. weight must be non-negative (ErrNegativeWeight).
//
// Parallel edges and self-loops are both permitted; the OnePass+ engine's
// own cycle suppression makes self-loops inert (a label
// can never legally traverse v -> v without revisiting v), so the graph
// container does not need to reject them itself.
//
// Complexity: O(1) amortized.
func (g *Graph[W]) AddEdge(from, to int, weight W) error {
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return ErrVertexOutOfRange
	}
	if weight < 0 {
		return ErrNegativeWeight
	}

	g.muAdj.Lock()
	defer g.muAdj.Unlock()

	g.adj[from] = append(g.adj[from], Edge[W]{From: from, To: to, Weight: weight})
	g.edgeCount++

	return nil
}

// Neighbors returns the out-edges of v, i.e. every edge (v, x, w) currently
// stored in the adjacency list for v. The returned slice is owned by the
// caller (a defensive copy); mutating it does not affect the graph.
//
// Complexity: O(deg(v)).
func (g *Graph[W]) Neighbors(v int) ([]Edge[W], error) {
	if !g.HasVertex(v) {
		return nil, ErrVertexOutOfRange
	}

	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	out := make([]Edge[W], len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// Edges returns every directed edge in the graph, grouped by source vertex
// ascending (a deterministic enumeration useful for round-trip emission and
// tests).
//
// Complexity: O(V+E).
func (g *Graph[W]) Edges() []Edge[W] {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	out := make([]Edge[W], 0, g.edgeCount)
	for _, bucket := range g.adj {
		out = append(out, bucket...)
	}

	return out
}

// ReverseView returns a new Graph with every edge's direction flipped.
// Used by the shortest-path oracle (package dijkstra) to compute, in one
// Dijkstra run from t on the reversed graph, the exact distance from every
// vertex to t in the original graph.
//
// The reversed graph is a fresh copy; mutating it never affects g.
//
// Complexity: O(V+E).
func (g *Graph[W]) ReverseView() *Graph[W] {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	rev := &Graph[W]{n: g.n, adj: make([][]Edge[W], g.n)}
	for _, bucket := range g.adj {
		for _, e := range bucket {
			rev.adj[e.To] = append(rev.adj[e.To], Edge[W]{From: e.To, To: e.From, Weight: e.Weight})
			rev.edgeCount++
		}
	}

	return rev
}
