package onepass

import "github.com/ashishkashinath/arlib/graph"

// Label is one node of the search tree: a partial s->...->Node path
// represented by shared ownership of its predecessor chain rather than a
// copied edge slice, so that the frontier can hold many in-flight
// candidates sharing a common prefix without duplicating it.
type Label[W graph.Weight] struct {
	Node       int
	Length     W
	LowerBound W // Length + heuristic(Node); the A* ordering key.
	Prev       *Label[W]
	Edge       graph.Edge[W] // the edge from Prev.Node to Node; zero value on the source label.

	// Sim holds, for each committed alternative path index i, the total
	// weight this label's s->Node prefix shares with that path. It is
	// always sized to the target path count k, with trailing slots
	// implicitly zero until a later round fills them in.
	Sim []float64

	// CheckedAt is the round number as of which Sim was last reconciled
	// against every committed path index below that round.
	CheckedAt int

	// Seq is the label's global insertion sequence number, used only to
	// break ties in the priority queue deterministically (first-in,
	// first-out among equal keys).
	Seq int
}

// NewSourceLabel builds the zero-length label seeding round `round` at
// vertex s.
func NewSourceLabel[W graph.Weight](s int, lowerBound W, k, round, seq int) *Label[W] {
	return &Label[W]{
		Node:       s,
		LowerBound: lowerBound,
		Sim:        make([]float64, k),
		CheckedAt:  round,
		Seq:        seq,
	}
}

// Expand builds the child label reached from l by crossing edge e, with
// heuristic value h at e.To. round is the number of paths committed at the
// moment of expansion; the child's Sim is stamped as reconciled through
// round because the caller folds in every already-committed index's
// contribution before the child is queued (see preseedSimilarity).
func Expand[W graph.Weight](l *Label[W], e graph.Edge[W], h W, round, seq int) *Label[W] {
	length := l.Length + e.Weight
	sim := make([]float64, len(l.Sim))
	copy(sim, l.Sim)

	return &Label[W]{
		Node:       e.To,
		Length:     length,
		LowerBound: length + h,
		Prev:       l,
		Edge:       e,
		Sim:        sim,
		CheckedAt:  round,
		Seq:        seq,
	}
}

// IsOutdated reports whether l's Sim vector has not been reconciled
// against every committed path index known as of round.
func (l *Label[W]) IsOutdated(round int) bool {
	return l.CheckedAt < round
}

// MarkChecked records that l's Sim vector is reconciled through round.
func (l *Label[W]) MarkChecked(round int) {
	l.CheckedAt = round
}

// PathEdges reconstructs the s->Node edge sequence in traversal order by
// walking the predecessor chain back to the source label and reversing.
func (l *Label[W]) PathEdges() []graph.Edge[W] {
	var rev []graph.Edge[W]
	for cur := l; cur.Prev != nil; cur = cur.Prev {
		rev = append(rev, cur.Edge)
	}

	edges := make([]graph.Edge[W], len(rev))
	for i, e := range rev {
		edges[len(rev)-1-i] = e
	}

	return edges
}

// Visits reports whether v appears anywhere in l's s->Node vertex chain,
// including Node itself and the source. Used to suppress cycles during
// expansion: a label may never extend through a vertex it has already
// visited.
func (l *Label[W]) Visits(v int) bool {
	for cur := l; cur != nil; cur = cur.Prev {
		if cur.Node == v {
			return true
		}
	}

	return false
}
