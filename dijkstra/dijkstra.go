package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/mallpath/core"
)

// Dijkstra computes shortest distances from Options.Source to every node of g.
//
// Returns:
//
//   - dist: dist[v] = minimum cost from Source to v, core.Inf if unreachable.
//   - prev: predecessor slice if ReturnPath=true (nil otherwise).
//   - err:  a sentinel error if inputs are invalid.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, opts ...Option) ([]float64, []core.NodeID, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs in a fixed order.
	if cfg.Source == core.None {
		return nil, nil, ErrNoSource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Valid(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %d", ErrVertexNotFound, cfg.Source)
	}

	// 3) Pre-scan all links to fail fast on negative weights.
	for id := core.NodeID(0); int(id) < g.Len(); id++ {
		for _, l := range g.Neighbors(id) {
			if l.Weight < 0 {
				return nil, nil, fmt.Errorf("%w: %s→%s weight=%g",
					ErrNegativeWeight, g.Coord(id), g.Coord(l.To), l.Weight)
			}
		}
	}

	// 4) Initialize runner state and run the main loop.
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float64, g.Len()),
		prev:    make([]core.NodeID, g.Len()),
		visited: make([]bool, g.Len()),
		pq:      make(nodePQ, 0, g.Len()),
	}
	r.init()
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}
	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    []float64
	prev    []core.NodeID
	visited []bool
	pq      nodePQ
}

// init sets dist to +Inf everywhere except the source and seeds the heap.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = core.Inf
		r.prev[i] = core.None
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process pops the closest unsettled node until the heap empties or the
// closest entry lies beyond MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax improves the distance of every link target of the settled node u.
func (r *runner) relax(u core.NodeID) {
	for _, l := range r.g.Neighbors(u) {
		v := l.To
		if !r.g.Node(v).Traversable() {
			continue
		}
		newDist := r.dist[u] + l.Weight
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// PathTo rebuilds the path ending at target from a predecessor slice.
// It returns nil when target is unreachable from source.
func PathTo(prev []core.NodeID, source, target core.NodeID) []core.NodeID {
	if int(target) >= len(prev) || target < 0 {
		return nil
	}
	var rev []core.NodeID
	for at := target; at != core.None; at = prev[at] {
		rev = append(rev, at)
		if at == source {
			for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
				rev[i], rev[j] = rev[j], rev[i]
			}
			return rev
		}
		if len(rev) > len(prev) {
			break
		}
	}
	return nil
}

// ShortestPath returns one optimal path and its cost from source to target.
// An unreachable target yields a nil path, core.Inf and a nil error.
func ShortestPath(g *core.Graph, source, target core.NodeID) ([]core.NodeID, float64, error) {
	if g != nil && !g.Valid(target) {
		return nil, core.Inf, fmt.Errorf("%w: target %d", ErrVertexNotFound, target)
	}
	dist, prev, err := Dijkstra(g, Source(source), WithReturnPath())
	if err != nil {
		return nil, core.Inf, err
	}
	return PathTo(prev, source, target), dist[target], nil
}

// nodeItem represents a node and its tentative distance from the source.
type nodeItem struct {
	id   core.NodeID
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by NodeID for
// reproducible settle order between equal distances.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
