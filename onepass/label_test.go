package onepass

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ashishkashinath/arlib/graph"
)

func TestLabel_PathEdgesReconstructsTraversalOrder(t *testing.T) {
	src := NewSourceLabel[int64](0, 8, 2, 0, 0)
	a := Expand[int64](src, graph.Edge[int64]{From: 0, To: 3, Weight: 3}, 5, 0, 1)
	b := Expand[int64](a, graph.Edge[int64]{From: 3, To: 5, Weight: 2}, 3, 0, 2)

	edges := b.PathEdges()
	require.Equal(t, []graph.Edge[int64]{
		{From: 0, To: 3, Weight: 3},
		{From: 3, To: 5, Weight: 2},
	}, edges)
	require.Equal(t, int64(5), b.Length)
}

func TestLabel_VisitsIncludesEntireChain(t *testing.T) {
	src := NewSourceLabel[int64](0, 8, 1, 0, 0)
	a := Expand[int64](src, graph.Edge[int64]{From: 0, To: 3, Weight: 3}, 5, 0, 1)

	require.True(t, a.Visits(0))
	require.True(t, a.Visits(3))
	require.False(t, a.Visits(5))
}

func TestLabel_IsOutdatedAndMarkChecked(t *testing.T) {
	l := NewSourceLabel[int64](0, 0, 1, 2, 0)
	require.False(t, l.IsOutdated(2))
	require.True(t, l.IsOutdated(3))
	l.MarkChecked(3)
	require.False(t, l.IsOutdated(3))
}
