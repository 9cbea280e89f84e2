package onepass

import "github.com/ashishkashinath/arlib/graph"

// Skyline is a per-vertex Pareto front over label similarity vectors. A
// label challenger is dominated at its vertex if some already-admitted
// label there is no more similar than challenger to every committed path
// (coordinate-wise <=); a dominated challenger can never reach the target
// with a strictly less similar completion than the incumbent already
// promises, so it is safe to discard without expanding it.
type Skyline[W graph.Weight] struct {
	byVertex map[int][]*Label[W]
}

// NewSkyline returns an empty skyline container.
func NewSkyline[W graph.Weight]() *Skyline[W] {
	return &Skyline[W]{byVertex: make(map[int][]*Label[W])}
}

// Dominates reports whether challenger is dominated by some label already
// admitted at challenger.Node.
func (s *Skyline[W]) Dominates(challenger *Label[W]) bool {
	for _, incumbent := range s.byVertex[challenger.Node] {
		if dominates(incumbent.Sim, challenger.Sim) {
			return true
		}
	}

	return false
}

// Insert admits challenger into the skyline at its vertex, pruning any
// previously admitted label there that challenger itself dominates (it can
// no longer contribute a non-dominated point once challenger is present).
func (s *Skyline[W]) Insert(l *Label[W]) {
	incumbents := s.byVertex[l.Node]
	kept := incumbents[:0]
	for _, incumbent := range incumbents {
		if !dominates(l.Sim, incumbent.Sim) {
			kept = append(kept, incumbent)
		}
	}
	s.byVertex[l.Node] = append(kept, l)
}

// dominates reports whether a dominates b: a[i] <= b[i] for every
// coordinate, which is well defined here because every Sim vector in a
// run has the identical fixed length k.
func dominates(a, b []float64) bool {
	for i := range a {
		if a[i] > b[i] {
			return false
		}
	}

	return true
}
