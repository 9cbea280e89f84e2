package dijkstra

import (
	"container/heap"

	"github.com/ashishkashinath/arlib/graph"
)

// Result holds the outcome of a single-source Dijkstra run.
//
// Dist[v] is the shortest distance from the source to v; Reached[v] is
// false if v was never dequeued (graphs over a generic weight type have no
// portable "+infinity" sentinel, so reachability is tracked explicitly
// rather than via a MaxInt64-style sentinel distance). Prev[v] is the
// immediate predecessor of v on one shortest path, populated only when
// ShortestPaths is called WithPredecessors.
type Result[W graph.Weight] struct {
	Dist    map[int]W
	Reached map[int]bool
	Prev    map[int]int
}

// Options configures a ShortestPaths call via functional options.
type Options struct {
	ReturnPath bool
}

// Option configures Options.
type Option func(*Options)

// WithPredecessors requests that Prev be populated for path reconstruction.
func WithPredecessors() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// ShortestPaths computes shortest distances from source to every reachable
// vertex of g, using a min-heap priority queue with the lazy decrease-key
// pattern: duplicate distance updates are pushed rather than decreased in
// place, and stale pops are ignored once a vertex is finalized.
//
// Complexity: O((V+E) log V) time, O(V+E) space.
func ShortestPaths[W graph.Weight](g *graph.Graph[W], source int, opts ...Option) (*Result[W], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, ErrSourceOutOfRange
	}

	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.NumVertices()
	res := &Result[W]{
		Dist:    make(map[int]W, n),
		Reached: make(map[int]bool, n),
	}
	if cfg.ReturnPath {
		res.Prev = make(map[int]int, n)
	}

	visited := make([]bool, n)
	pq := make(nodePQ[W], 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem[W]{vertex: source, dist: 0})
	res.Dist[source] = 0
	res.Reached[source] = true

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem[W])
		u := item.vertex
		d := item.dist

		if visited[u] {
			continue
		}
		visited[u] = true

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}

		for _, e := range neighbors {
			newDist := d + e.Weight
			if prev, ok := res.Dist[e.To]; ok && newDist >= prev {
				continue
			}

			res.Dist[e.To] = newDist
			res.Reached[e.To] = true
			if res.Prev != nil {
				res.Prev[e.To] = u
			}
			heap.Push(&pq, &nodeItem[W]{vertex: e.To, dist: newDist})
		}
	}

	return res, nil
}

// nodeItem represents a vertex and its current tentative distance from the
// source, stored in the priority queue.
type nodeItem[W graph.Weight] struct {
	vertex int
	dist   W
}

// nodePQ is a min-heap of *nodeItem[W] ordered by ascending dist.
type nodePQ[W graph.Weight] []*nodeItem[W]

func (pq nodePQ[W]) Len() int            { return len(pq) }
func (pq nodePQ[W]) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ[W]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ[W]) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem[W])) }
func (pq *nodePQ[W]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
