package matrix

import (
	"errors"

	"github.com/ashishkashinath/arlib/graph"
)

// ErrNilGraph is returned when AllPairsShortestPaths is called with a nil
// graph.
var ErrNilGraph = errors.New("matrix: graph must not be nil")

// AllPairsShortestPaths computes shortest distances between every ordered
// pair of vertices of g via the classic O(V^3) triple-nested relaxation.
// The returned matrix is dense: dist[i][j] is present for every i, j in
// 0..n-1, with unreachable pairs reported via the second return value
// rather than an infinity sentinel, since W is a generic numeric type with
// no portable representation of infinity for integer instantiations.
func AllPairsShortestPaths[W graph.Weight](g *graph.Graph[W]) (dist [][]W, reached [][]bool, err error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	n := g.NumVertices()
	dist = make([][]W, n)
	reached = make([][]bool, n)
	for i := range dist {
		dist[i] = make([]W, n)
		reached[i] = make([]bool, n)
		reached[i][i] = true
	}

	for _, e := range g.Edges() {
		if !reached[e.From][e.To] || e.Weight < dist[e.From][e.To] {
			dist[e.From][e.To] = e.Weight
			reached[e.From][e.To] = true
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if !reached[i][k] {
				continue
			}
			for j := 0; j < n; j++ {
				if !reached[k][j] {
					continue
				}
				candidate := dist[i][k] + dist[k][j]
				if !reached[i][j] || candidate < dist[i][j] {
					dist[i][j] = candidate
					reached[i][j] = true
				}
			}
		}
	}

	return dist, reached, nil
}
