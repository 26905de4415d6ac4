package search

import "container/heap"

// item is one entry in the priority queue: an arena index plus the f/g
// values it was pushed with. Nodes are immutable once allocated, so caching
// f/g here avoids an arena lookup on every heap comparison.
type item struct {
	idx int
	f   float64
	g   float64
}

type innerHeap []item

func (h innerHeap) Len() int { return len(h) }

// Less orders by ascending f, breaking ties by descending g — a node
// closer to the goal (more of its cost already paid as g) comes out first,
// the standard A* tie-break that reduces expansions (spec.md §4.4).
func (h innerHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].g > h[j].g
}

func (h innerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *innerHeap) Push(x interface{}) { *h = append(*h, x.(item)) }

func (h *innerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// Queue is a binary min-heap of arena indices ordered by (f, -g).
type Queue struct {
	h innerHeap
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	q := &Queue{}
	heap.Init(&q.h)
	return q
}

// Push adds idx with the given f and g.
func (q *Queue) Push(idx int, f, g float64) {
	heap.Push(&q.h, item{idx: idx, f: f, g: g})
}

// Pop removes and returns the least-f index. ok is false if the queue is
// empty.
func (q *Queue) Pop() (idx int, ok bool) {
	if len(q.h) == 0 {
		return 0, false
	}
	it := heap.Pop(&q.h).(item)
	return it.idx, true
}

// Peek returns the least-f index without removing it.
func (q *Queue) Peek() (idx int, ok bool) {
	if len(q.h) == 0 {
		return 0, false
	}
	return q.h[0].idx, true
}

func (q *Queue) Len() int      { return len(q.h) }
func (q *Queue) IsEmpty() bool { return len(q.h) == 0 }
