// Package arlib computes alternative routes in weighted directed graphs:
// given a source, a target, a desired path count k, and a similarity
// threshold theta, it returns up to k simple paths that are pairwise
// dissimilar enough, by weighted edge overlap, to be useful as distinct
// route suggestions rather than near-duplicates of the shortest path.
//
// Subpackages:
//
//	graph     — the generic weighted directed graph type, .gr file parsing
//	path      — the Path record type (ordered edges plus length)
//	dijkstra  — the shortest-path oracle (forward seed path, reverse A* lower bounds)
//	edgeindex — the committed-path edge index consulted during similarity checks
//	onepass   — the OnePass+ label-setting search engine (package entry point: Search)
//	builder   — randomized graph generation for property-based tests
//	matrix    — an independent Floyd-Warshall cross-check oracle for tests
//	cmd/arlib — the command-line driver
//
// Everything here is pure Go with no cgo and no hidden state: a Graph
// owns its own locks and every package is safe for concurrent read access
// once constructed.
package arlib
