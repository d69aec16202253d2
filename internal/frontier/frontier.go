// Package frontier holds the open-list heap and parent-walk shared by the
// forward best-first planners (astar and multigoal).
package frontier

import "github.com/katalvlaran/mallpath/core"

// Item is a frontier entry. Entries are never updated in place; a cheaper
// route pushes a fresh entry and the old one is skipped once its node is closed.
type Item struct {
	ID    core.NodeID
	F, H  float64
	Coord core.Coord
}

// Queue is a min-heap ordered by F, then H, then coordinate.
// Use it through container/heap.
type Queue []*Item

func (pq Queue) Len() int { return len(pq) }

func (pq Queue) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.F != b.F {
		return a.F < b.F
	}
	if a.H != b.H {
		return a.H < b.H
	}
	return a.Coord.Less(b.Coord)
}

func (pq Queue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *Queue) Push(x interface{}) { *pq = append(*pq, x.(*Item)) }

func (pq *Queue) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}

// Reconstruct walks parent links back from u and returns the path root→u.
// The root is the node whose parent is core.None.
func Reconstruct(parent []core.NodeID, u core.NodeID) []core.NodeID {
	var rev []core.NodeID
	for at := u; at != core.None; at = parent[at] {
		rev = append(rev, at)
	}
	path := make([]core.NodeID, len(rev))
	for i, id := range rev {
		path[len(rev)-1-i] = id
	}
	return path
}
