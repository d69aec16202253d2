package dstarlite

import (
	"container/heap"

	"github.com/katalvlaran/mallpath/core"
)

// key is the D* Lite priority pair.
type key struct {
	k1, k2 float64
}

func (a key) less(b key) bool {
	if a.k1 != b.k1 {
		return a.k1 < b.k1
	}
	return a.k2 < b.k2
}

type entry struct {
	id    core.NodeID
	key   key
	coord core.Coord
	index int
}

// queue is an indexed min-heap: pos[id] is the heap slot of id, or -1.
type queue struct {
	items []*entry
	pos   []int
}

func newQueue(n int) *queue {
	q := &queue{pos: make([]int, n)}
	for i := range q.pos {
		q.pos[i] = -1
	}
	return q
}

func (q *queue) Len() int { return len(q.items) }

func (q *queue) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.key != b.key {
		return a.key.less(b.key)
	}
	return a.coord.Less(b.coord)
}

func (q *queue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.items[i].index = i
	q.items[j].index = j
	q.pos[q.items[i].id] = i
	q.pos[q.items[j].id] = j
}

func (q *queue) Push(x interface{}) {
	e := x.(*entry)
	e.index = len(q.items)
	q.pos[e.id] = e.index
	q.items = append(q.items, e)
}

func (q *queue) Pop() interface{} {
	old := q.items
	n := len(old)
	e := old[n-1]
	q.items = old[:n-1]
	q.pos[e.id] = -1
	e.index = -1
	return e
}

func (q *queue) contains(id core.NodeID) bool { return q.pos[id] >= 0 }

// insert adds id or re-keys it in place.
func (q *queue) insert(id core.NodeID, k key, c core.Coord) {
	if i := q.pos[id]; i >= 0 {
		q.items[i].key = k
		heap.Fix(q, i)
		return
	}
	heap.Push(q, &entry{id: id, key: k, coord: c})
}

func (q *queue) remove(id core.NodeID) {
	if i := q.pos[id]; i >= 0 {
		heap.Remove(q, i)
	}
}

func (q *queue) top() *entry { return q.items[0] }

func (q *queue) pop() *entry { return heap.Pop(q).(*entry) }
