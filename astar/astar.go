package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/mallpath/core"
	"github.com/katalvlaran/mallpath/internal/frontier"
)

// Plan searches for a cheapest path from start to goal.
// A missing route is reported as an empty Result and a nil error.
func Plan(g *core.Graph, start, goal core.NodeID, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if !g.Valid(start) || !g.Valid(goal) {
		return Result{}, fmt.Errorf("%w: start=%d goal=%d", ErrNodeOutOfRange, start, goal)
	}
	if !g.Node(start).Traversable() {
		return Result{}, nil
	}

	r := newRunner(g, goal, cfg)
	return r.run(start)
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g      *core.Graph
	goal   core.NodeID
	target core.Coord
	opts   Options

	cost   []float64
	parent []core.NodeID
	closed []bool
	pq     frontier.Queue
}

func newRunner(g *core.Graph, goal core.NodeID, opts Options) *runner {
	r := &runner{
		g:      g,
		goal:   goal,
		target: g.Coord(goal),
		opts:   opts,
		cost:   make([]float64, g.Len()),
		parent: make([]core.NodeID, g.Len()),
		closed: make([]bool, g.Len()),
	}
	for i := range r.cost {
		r.cost[i] = core.Inf
		r.parent[i] = core.None
	}
	return r
}

func (r *runner) push(id core.NodeID) {
	c := r.g.Coord(id)
	h := r.opts.Heuristic(c, r.target)
	heap.Push(&r.pq, &frontier.Item{ID: id, F: r.cost[id] + h, H: h, Coord: c})
}

func (r *runner) run(start core.NodeID) (Result, error) {
	var res Result
	r.cost[start] = 0
	r.push(start)

	for r.pq.Len() > 0 {
		u := heap.Pop(&r.pq).(*frontier.Item).ID
		if r.closed[u] {
			continue // stale entry
		}
		if r.opts.MaxExpansions > 0 && res.Expansions >= r.opts.MaxExpansions {
			return res, fmt.Errorf("%w: %d", ErrExpansionLimit, res.Expansions)
		}
		res.Expansions++

		if u == r.goal {
			res.Path = frontier.Reconstruct(r.parent, u)
			res.Cost = r.cost[u]
			return res, nil
		}
		r.closed[u] = true

		for _, l := range r.g.Neighbors(u) {
			v := l.To
			if r.closed[v] || !r.g.Node(v).Traversable() {
				continue
			}
			if next := r.cost[u] + l.Weight; next < r.cost[v] {
				r.cost[v] = next
				r.parent[v] = u
				r.push(v)
			}
		}
	}
	return res, nil
}
