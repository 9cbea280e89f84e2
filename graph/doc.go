// Package graph provides a minimal, generic weighted directed graph
// abstraction: vertices indexed 0..n-1, directed edges carrying a
// non-negative weight drawn from any ordered additive numeric type, and
// neighborhood iteration.
//
// This is the graph container the alternative-routes search engine
// (package onepass) is built against: it only needs an indexable weighted
// directed graph with non-negative edge weights, a way to iterate a
// vertex's out-edges, and a reversed view for running the A* lower-bound
// oracle (package dijkstra) backwards from the target.
//
// Graph is generic over W, any type satisfying Weight
// (constraints.Integer | constraints.Float), so callers can build graphs
// over int64 weights (typical .gr files) or float64 weights without
// duplicating the container.
//
// Concurrency model: a vertex-count lock and a separate edges/adjacency
// lock, so a Graph can be read safely from multiple goroutines (e.g. a CLI
// driver inspecting the graph while logging) as long as no goroutine
// mutates it during a search. The search engine itself never mutates the
// graph.
package graph
