// Package edgeindex maps each edge present in any committed alternative
// path to the ordered, ascending list of alternative-path indices that
// contain it, so the search engine can cheaply ask "which committed
// paths does this edge belong to" while refreshing a label's similarity
// vector.
package edgeindex

import "github.com/ashishkashinath/arlib/graph"

// key identifies a directed edge by endpoints only; weight is not part of
// the key, so parallel edges between the same (from, to) pair count as one
// edge for membership.
type key struct {
	from, to int
}

// Index maps an edge to the ascending list of committed-path indices that
// contain it.
type Index[W graph.Weight] struct {
	byEdge map[key][]int
}

// New returns an empty committed-path edge index.
func New[W graph.Weight]() *Index[W] {
	return &Index[W]{byEdge: make(map[key][]int)}
}

// Ingest records every edge of path as belonging to alternative pathIndex.
//
// Paths must be ingested in order of commitment (pathIndex strictly
// increasing from 0); this is the invariant that keeps each edge's index
// list sorted ascending without an explicit sort.
func (ix *Index[W]) Ingest(edges []graph.Edge[W], pathIndex int) {
	for _, e := range edges {
		k := key{from: e.From, to: e.To}
		ix.byEdge[k] = append(ix.byEdge[k], pathIndex)
	}
}

// Lookup returns the ascending list of committed-path indices containing
// the edge (from, to), or nil if the edge appears in no committed path.
// The returned slice is shared with the index's internal storage and must
// not be mutated by the caller.
func (ix *Index[W]) Lookup(from, to int) []int {
	return ix.byEdge[key{from: from, to: to}]
}
