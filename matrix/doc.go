// Package matrix provides an independent all-pairs shortest path oracle,
// Floyd-Warshall over a dense distance matrix, used as a cross-check
// against the single-source searches in package dijkstra during testing. It is not part of the search engine's runtime
// path; production code always uses the sparse, heap-based algorithms in
// dijkstra.
package matrix
