// Package onepass implements the OnePass+ search engine for computing
// alternative routes in weighted directed graphs: given a graph G, a
// source s, a target t, a path count k, and a similarity threshold
// theta in [0,1], Search returns up to k simple s->t paths such that each
// returned path is sufficiently dissimilar (by weighted edge overlap) from
// every previously returned path.
//
// The search is a label-setting A* variant. Each partial path is a Label
// attached to a graph vertex, ordered in the frontier by length plus an
// admissible lower bound to the target (package dijkstra's reverse-graph
// Dijkstra). Every label also carries a similarity vector recording how
// much weight it shares with each already-committed alternative path;
// candidates projected to exceed the similarity threshold against any
// committed path are pruned, as are candidates dominated on every
// similarity coordinate by an incumbent already admitted at the same
// vertex (the skyline test).
//
// The four collaborating pieces:
//
//   - Label (label.go): a search-tree node with a shared-ownership
//     predecessor chain, a cumulative length, an A* lower bound, a
//     similarity vector, and a generation counter recording when that
//     vector was last reconciled against the committed set.
//   - Skyline (skyline.go): per-vertex Pareto front on similarity
//     coordinates, used to discard labels that cannot possibly produce a
//     less-similar completion than one already admitted at the same
//     vertex.
//   - labelQueue (queue.go): a min-heap priority queue ordered by A* key
//     (length + heuristic), ties broken by insertion order for
//     determinism.
//   - Search (engine.go): the outer per-round / inner pop-expand loop that
//     ties the above together with a committed-path edge index.
//
// The engine is single-threaded and performs no I/O; a run owns its label
// forest exclusively for the duration of one Search call. Go's garbage
// collector retains a label's predecessor chain for as long as any
// descendant (including a pending queue or skyline entry) still points to
// it, which is the same "shared ownership, reclaimed when unreferenced"
// contract a manually reference-counted implementation would provide.
package onepass
