// Package dijkstra provides the shortest-path oracle used by the
// alternative-routes search engine: a single-source Dijkstra over a generic
// non-negative weighted graph (package graph), used twice by callers —
// once on the reverse graph from the target to build the A* lower-bound
// table, and once on the forward graph from the source to seed the first
// alternative path.
//
// The algorithm is a textbook Dijkstra using a min-heap priority queue with
// the "lazy decrease-key" pattern: push duplicates rather than mutate heap
// entries in place, and ignore stale pops once a vertex is finalized.
//
// Complexity: O((V+E) log V) time, O(V+E) space.
package dijkstra
