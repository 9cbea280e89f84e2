package dijkstra

import "github.com/ashishkashinath/arlib/graph"

// LowerBounds runs Dijkstra on the edge-reversed view of g from t and
// returns h(v), the exact shortest distance from every vertex v to t in
// g — the A* lower-bound table consumed immutably by the OnePass+ engine
// (the A* ordering that keeps the search optimistic).
//
// The returned Reached map tells the caller which vertices can reach t at
// all; h(s) unreachable means the search yields zero alternatives
// (the caller should return zero alternatives in that case).
func LowerBounds[W graph.Weight](g *graph.Graph[W], t int) (*Result[W], error) {
	return ShortestPaths[W](g.ReverseView(), t)
}

// BuildPath reconstructs the source-to-target edge sequence from a
// ShortestPaths result computed WithPredecessors, by walking prev[target]
// back to source and recovering each edge's exact weight from g rather
// than from a Dist difference (which would accumulate floating-point
// rounding error over a long chain for a float weight type). Returns
// (nil, false) if target was never reached.
func BuildPath[W graph.Weight](g *graph.Graph[W], res *Result[W], source, target int) ([]graph.Edge[W], bool) {
	if !res.Reached[target] {
		return nil, false
	}
	if source == target {
		return nil, true
	}

	var revEdges []graph.Edge[W]
	cur := target
	for cur != source {
		prev := res.Prev[cur]
		e, ok := findEdge(g, prev, cur)
		if !ok {
			return nil, false
		}
		revEdges = append(revEdges, e)
		cur = prev
	}

	edges := make([]graph.Edge[W], len(revEdges))
	for i, e := range revEdges {
		edges[len(revEdges)-1-i] = e
	}

	return edges, true
}

func findEdge[W graph.Weight](g *graph.Graph[W], from, to int) (graph.Edge[W], bool) {
	neighbors, err := g.Neighbors(from)
	if err != nil {
		return graph.Edge[W]{}, false
	}

	var best graph.Edge[W]
	found := false
	for _, e := range neighbors {
		if e.To != to {
			continue
		}
		if !found || e.Weight < best.Weight {
			best = e
			found = true
		}
	}

	return best, found
}
