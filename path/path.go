// Package path defines the path record type: an ordered
// sequence of edges from a source to a target, plus cumulative length.
package path

import "github.com/ashishkashinath/arlib/graph"

// Path is a simple s->t sequence of edges plus its cumulative length.
//
// Edges are stored in traversal order (source to target). An empty Edges
// slice represents the trivial zero-length s==t path.
type Path[W graph.Weight] struct {
	Edges  []graph.Edge[W]
	Length W
}

// Source returns the path's starting vertex, or fallback for an empty path
// with no recorded endpoints (callers constructing Path always know s and t from
// context; Source/Target are conveniences for tests and CLI formatting).
func (p Path[W]) Source(fallback int) int {
	if len(p.Edges) == 0 {
		return fallback
	}

	return p.Edges[0].From
}

// Target returns the path's ending vertex.
func (p Path[W]) Target(fallback int) int {
	if len(p.Edges) == 0 {
		return fallback
	}

	return p.Edges[len(p.Edges)-1].To
}

// HasEdge reports whether the path traverses the exact directed edge
// (from, to), ignoring weight (a simple path never repeats endpoints so
// there is at most one edge between any ordered pair).
func (p Path[W]) HasEdge(from, to int) bool {
	for _, e := range p.Edges {
		if e.From == from && e.To == to {
			return true
		}
	}

	return false
}

// Vertices returns the ordered vertex sequence v0=s, v1, ..., vm=t induced
// by Edges. src is the path's source, used to seed v0 for an empty path.
func (p Path[W]) Vertices(src int) []int {
	out := make([]int, 0, len(p.Edges)+1)
	out = append(out, src)
	for _, e := range p.Edges {
		out = append(out, e.To)
	}

	return out
}

// IsSimple reports whether the vertex sequence induced by Edges (seeded at
// src) visits no vertex twice.
func (p Path[W]) IsSimple(src int) bool {
	seen := make(map[int]struct{}, len(p.Edges)+1)
	for _, v := range p.Vertices(src) {
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
	}

	return true
}
