// Package builder generates randomized graphs for property-based testing
// of the dijkstra and onepass packages: a fixed hand-built graph exercises
// one scenario at a time, but an Erdos-Renyi-style random generator lets a
// test assert an invariant (no returned path revisits a vertex, every
// returned path's length matches the sum of its edge weights) holds over
// many graph shapes rather than one.
package builder
