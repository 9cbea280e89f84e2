package onepass_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ashishkashinath/arlib/graph"
	"github.com/ashishkashinath/arlib/onepass"
	"github.com/ashishkashinath/arlib/path"
)

// buildSevenVertex builds a seven-vertex graph (0..6) with two tied
// shortest 0->6 paths of length 8 (via vertex 5 and via vertex 4), a
// longer path fully disjoint from both, and a longer path that partially
// overlaps them, to exercise tie-breaking, similarity pruning, and
// dominance together.
func buildSevenVertex(t *testing.T) *graph.Graph[int64] {
	g, err := graph.NewGraph[int64](7)
	require.NoError(t, err)

	edges := []graph.Edge[int64]{
		{From: 0, To: 3, Weight: 3},
		{From: 3, To: 5, Weight: 2},
		{From: 5, To: 6, Weight: 3},
		{From: 3, To: 4, Weight: 3},
		{From: 4, To: 6, Weight: 2},
		{From: 0, To: 1, Weight: 4},
		{From: 1, To: 2, Weight: 3},
		{From: 2, To: 6, Weight: 5},
		{From: 3, To: 6, Weight: 9},
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
	}

	return g
}

// buildSevenVertexFloat is buildSevenVertex with every weight halved into a
// fractional value, so the similarity/theta comparison path (exceedsTheta)
// gets exercised with floating-point weights and not just integers.
func buildSevenVertexFloat(t *testing.T) *graph.Graph[float64] {
	g, err := graph.NewGraph[float64](7)
	require.NoError(t, err)

	edges := []graph.Edge[float64]{
		{From: 0, To: 3, Weight: 1.5},
		{From: 3, To: 5, Weight: 1.0},
		{From: 5, To: 6, Weight: 1.5},
		{From: 3, To: 4, Weight: 1.5},
		{From: 4, To: 6, Weight: 1.0},
		{From: 0, To: 1, Weight: 2.0},
		{From: 1, To: 2, Weight: 1.5},
		{From: 2, To: 6, Weight: 2.5},
		{From: 3, To: 6, Weight: 4.5},
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
	}

	return g
}

func overlapRatio[W graph.Weight](a, b path.Path[W]) float64 {
	var shared W
	for _, ea := range a.Edges {
		for _, eb := range b.Edges {
			if ea.From == eb.From && ea.To == eb.To {
				shared += ea.Weight
				break
			}
		}
	}

	return float64(shared) / float64(a.Length)
}

func TestSearch_TiedShortestPathsWithModerateTheta(t *testing.T) {
	g := buildSevenVertex(t)
	paths, err := onepass.Search[int64](g, 0, 6, 3, 0.5)
	require.NoError(t, err)
	require.Len(t, paths, 3)
	require.Equal(t, int64(8), paths[0].Length)

	for i := 1; i < len(paths); i++ {
		for j := 0; j < i; j++ {
			require.LessOrEqual(t, overlapRatio[int64](paths[j], paths[i]), 0.5+1e-9)
		}
	}
}

func TestSearch_SinglePathWhenKIsOne(t *testing.T) {
	g := buildSevenVertex(t)
	paths, err := onepass.Search[int64](g, 0, 6, 1, 0.5)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	require.Equal(t, int64(8), paths[0].Length)
}

func TestSearch_EdgeDisjointWhenThetaIsZero(t *testing.T) {
	g := buildSevenVertex(t)
	paths, err := onepass.Search[int64](g, 0, 6, 5, 0.0)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(paths), 1)
	require.LessOrEqual(t, len(paths), 5)

	for i := 0; i < len(paths); i++ {
		for j := i + 1; j < len(paths); j++ {
			for _, ei := range paths[i].Edges {
				for _, ej := range paths[j].Edges {
					require.False(t, ei.From == ej.From && ei.To == ej.To)
				}
			}
		}
	}
}

func TestSearch_NondecreasingLengthWhenThetaIsOne(t *testing.T) {
	g := buildSevenVertex(t)
	paths, err := onepass.Search[int64](g, 0, 6, 3, 1.0)
	require.NoError(t, err)
	require.Len(t, paths, 3)

	for i := 1; i < len(paths); i++ {
		require.GreaterOrEqual(t, paths[i].Length, paths[i-1].Length)
	}
}

func TestSearch_TrivialPathWhenSourceEqualsTarget(t *testing.T) {
	g := buildSevenVertex(t)
	paths, err := onepass.Search[int64](g, 6, 6, 2, 0.5)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	require.Empty(t, paths[0].Edges)
	require.Equal(t, int64(0), paths[0].Length)
}

func TestSearch_RejectsNegativeTheta(t *testing.T) {
	g := buildSevenVertex(t)
	_, err := onepass.Search[int64](g, 0, 6, 3, -0.1)
	require.ErrorIs(t, err, onepass.ErrInvalidTheta)
}

func TestSearch_RejectsInvalidK(t *testing.T) {
	g := buildSevenVertex(t)
	_, err := onepass.Search[int64](g, 0, 6, 0, 0.5)
	require.ErrorIs(t, err, onepass.ErrInvalidK)
}

func TestSearch_RejectsVertexOutOfRange(t *testing.T) {
	g := buildSevenVertex(t)
	_, err := onepass.Search[int64](g, 0, 50, 1, 0.5)
	require.ErrorIs(t, err, onepass.ErrVertexOutOfRange)
}

// TestSearch_FloatWeightsRespectSimilarityToleranceWithinEpsilon exercises
// the exceedsTheta comparison path with floating-point weights: the overlap
// ratio between any two committed paths must stay within theta plus the
// epsilon tolerance the comparison itself allows, not exactly at or under
// theta, since float accumulation in Sim is not bit-exact.
func TestSearch_FloatWeightsRespectSimilarityToleranceWithinEpsilon(t *testing.T) {
	g := buildSevenVertexFloat(t)
	paths, err := onepass.Search[float64](g, 0, 6, 3, 0.5)
	require.NoError(t, err)
	require.Len(t, paths, 3)
	require.InDelta(t, 4.0, paths[0].Length, 1e-9)

	for i := 1; i < len(paths); i++ {
		for j := 0; j < i; j++ {
			require.LessOrEqual(t, overlapRatio[float64](paths[j], paths[i]), 0.5+1e-9)
		}
	}
}

func TestSearch_UnreachableTargetReturnsEmptyWithoutError(t *testing.T) {
	g, err := graph.NewGraph[int64](3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))

	paths, err := onepass.Search[int64](g, 0, 2, 1, 0.5)
	require.NoError(t, err)
	require.Nil(t, paths)
}
