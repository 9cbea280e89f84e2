package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/ashishkashinath/arlib/graph"
)

var (
	// ErrTooFewVertices is returned when n < 1.
	ErrTooFewVertices = errors.New("builder: n must be >= 1")

	// ErrInvalidProbability is returned when p falls outside [0, 1].
	ErrInvalidProbability = errors.New("builder: p must be in [0, 1]")

	// ErrNeedRandSource is returned when stochastic sampling (0 < p < 1)
	// is requested without an rng.
	ErrNeedRandSource = errors.New("builder: rng is required for 0 < p < 1")

	// ErrNeedWeightFunc is returned when weightFn is nil.
	ErrNeedWeightFunc = errors.New("builder: weightFn must not be nil")
)

// RandomSparseDirected samples an Erdos-Renyi-style directed graph over n
// vertices: each ordered pair (i, j), i != j, gets an edge independently
// with probability p, weighted by weightFn. Trial order is i ascending
// then j ascending, so two calls with the same rng state produce the
// identical graph.
func RandomSparseDirected[W graph.Weight](n int, p float64, rng *rand.Rand, weightFn func(*rand.Rand) W) (*graph.Graph[W], error) {
	if n < 1 {
		return nil, fmt.Errorf("RandomSparseDirected: n=%d: %w", n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomSparseDirected: p=%.6f: %w", p, ErrInvalidProbability)
	}
	if rng == nil && p > 0 && p < 1 {
		return nil, ErrNeedRandSource
	}
	if weightFn == nil {
		return nil, ErrNeedWeightFunc
	}

	g, err := graph.NewGraph[W](n)
	if err != nil {
		return nil, fmt.Errorf("RandomSparseDirected: %w", err)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}

			include := p >= 1
			if !include && p > 0 {
				include = rng.Float64() < p
			}
			if !include {
				continue
			}

			if err := g.AddEdge(i, j, weightFn(rng)); err != nil {
				return nil, fmt.Errorf("RandomSparseDirected: AddEdge(%d,%d): %w", i, j, err)
			}
		}
	}

	return g, nil
}
