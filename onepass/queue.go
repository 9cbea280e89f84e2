package onepass

import (
	"container/heap"

	"github.com/ashishkashinath/arlib/graph"
)

// labelQueue is a min-heap of labels ordered by LowerBound, ties broken by
// Seq so that equal-key labels pop in the order they were pushed.
type labelQueue[W graph.Weight] []*Label[W]

func (q labelQueue[W]) Len() int { return len(q) }

func (q labelQueue[W]) Less(i, j int) bool {
	if q[i].LowerBound != q[j].LowerBound {
		return q[i].LowerBound < q[j].LowerBound
	}

	return q[i].Seq < q[j].Seq
}

func (q labelQueue[W]) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *labelQueue[W]) Push(x any) { *q = append(*q, x.(*Label[W])) }

func (q *labelQueue[W]) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}

func newLabelQueue[W graph.Weight]() *labelQueue[W] {
	q := make(labelQueue[W], 0)
	heap.Init(&q)

	return &q
}

func (q *labelQueue[W]) push(l *Label[W]) { heap.Push(q, l) }

func (q *labelQueue[W]) pop() *Label[W] { return heap.Pop(q).(*Label[W]) }
