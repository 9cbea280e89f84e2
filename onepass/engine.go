package onepass

import (
	"fmt"

	"github.com/ashishkashinath/arlib/dijkstra"
	"github.com/ashishkashinath/arlib/edgeindex"
	"github.com/ashishkashinath/arlib/graph"
	"github.com/ashishkashinath/arlib/path"
)

// Search computes up to k similarity-bounded alternative s->t paths in g.
//
// k must be >= 1 and theta must lie in [0, 1]. If s == t, Search returns
// the single trivial zero-length path and nothing else, regardless of k:
// every further candidate would reseed the search at a label already at
// the target, producing the identical zero-edge path again, so the engine
// special-cases s == t rather than search toward a foregone duplicate. If
// t is unreachable from s, Search returns a nil slice and a nil error
// (zero alternatives is not a failure).
//
// The first returned path is always the plain shortest path. Paths 2..k,
// if found, are committed one at a time from a single persistent label
// frontier: each commit immediately updates the committed-path edge index
// and re-seeds the frontier with a fresh source label, while every label
// already waiting there has its similarity vector lazily reconciled
// against newly committed paths the next time it is popped, rather than
// eagerly on every commit.
func Search[W graph.Weight](g *graph.Graph[W], s, t, k int, theta float64) ([]path.Path[W], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if k < 1 {
		return nil, ErrInvalidK
	}
	if theta < 0 || theta > 1 {
		return nil, ErrInvalidTheta
	}
	if !g.HasVertex(s) || !g.HasVertex(t) {
		return nil, ErrVertexOutOfRange
	}

	if s == t {
		return []path.Path[W]{{}}, nil
	}

	h, err := dijkstra.LowerBounds(g, t)
	if err != nil {
		return nil, fmt.Errorf("onepass: computing heuristic: %w", err)
	}
	if !h.Reached[s] {
		return nil, nil
	}

	fwd, err := dijkstra.ShortestPaths(g, s, dijkstra.WithPredecessors())
	if err != nil {
		return nil, fmt.Errorf("onepass: seeding first path: %w", err)
	}
	seedEdges, ok := dijkstra.BuildPath(g, fwd, s, t)
	if !ok {
		return nil, nil
	}

	committed := []path.Path[W]{{Edges: seedEdges, Length: fwd.Dist[t]}}
	index := edgeindex.New[W]()
	index.Ingest(seedEdges, 0)

	q := newLabelQueue[W]()
	sky := NewSkyline[W]()
	seq := 0

	q.push(NewSourceLabel[W](s, h.Dist[s], k, len(committed), seq))
	seq++

	for q.Len() > 0 && len(committed) < k {
		l := q.pop()
		round := len(committed)

		if l.IsOutdated(round) {
			if !reconcile(l, round, committed, index, theta) {
				continue
			}
		}

		if l.Node == t {
			committed = append(committed, path.Path[W]{Edges: l.PathEdges(), Length: l.Length})
			index.Ingest(l.PathEdges(), len(committed)-1)

			if len(committed) < k {
				q.push(NewSourceLabel[W](s, h.Dist[s], k, len(committed), seq))
				seq++
			}

			continue
		}

		if sky.Dominates(l) {
			continue
		}
		sky.Insert(l)

		neighbors, err := g.Neighbors(l.Node)
		if err != nil {
			continue
		}

		for _, e := range neighbors {
			if l.Visits(e.To) {
				continue
			}
			if !h.Reached[e.To] {
				continue
			}

			child := Expand[W](l, e, h.Dist[e.To], len(committed), seq)
			seq++

			if !preseedSimilarity(child, e, index, committed, theta) {
				continue
			}

			q.push(child)
		}
	}

	return committed, nil
}

// reconcile brings l.Sim up to date through round, by re-walking l's
// s->Node edge sequence and, for each edge, consulting the committed-path
// edge index for indices committed after l was last checked. It reports
// whether l remains admissible (false means it must be discarded).
//
// Every edge's contribution to indices that existed at the moment l's
// ancestor crossed that edge was already folded in by preseedSimilarity;
// reconcile only needs to account for indices committed since, which is
// why it re-walks the edge sequence against the index rather than
// trusting Sim alone.
func reconcile[W graph.Weight](l *Label[W], round int, committed []path.Path[W], index *edgeindex.Index[W], theta float64) bool {
	for _, e := range l.PathEdges() {
		for _, i := range index.Lookup(e.From, e.To) {
			if i < l.CheckedAt || i >= round {
				continue
			}
			l.Sim[i] += float64(e.Weight)
		}
	}

	for i := l.CheckedAt; i < round; i++ {
		if exceedsTheta(l.Sim[i], committed[i].Length, theta) {
			return false
		}
	}
	l.MarkChecked(round)

	return true
}

// preseedSimilarity updates child.Sim for the edge just crossed from
// parent to child, consulting the committed-path edge index, and reports
// whether child remains admissible (false means it must be discarded).
func preseedSimilarity[W graph.Weight](
	child *Label[W],
	e graph.Edge[W],
	index *edgeindex.Index[W],
	committed []path.Path[W],
	theta float64,
) bool {
	idxs := index.Lookup(e.From, e.To)
	if len(idxs) == 0 {
		return true
	}

	w := float64(e.Weight)
	for _, i := range idxs {
		if i >= len(child.Sim) {
			continue
		}
		child.Sim[i] += w
		if exceedsTheta(child.Sim[i], committed[i].Length, theta) {
			return false
		}
	}

	return true
}

// exceedsTheta reports whether shared/length(p) exceeds theta, treating a
// zero-length committed path (the trivial s==t path) as sharing nothing.
func exceedsTheta[W graph.Weight](shared float64, pathLen W, theta float64) bool {
	length := float64(pathLen)
	if length <= 0 {
		return false
	}

	return shared/length > theta+similarityEpsilon
}
