package multigoal

import (
	"container/heap"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/mallpath/core"
	"github.com/katalvlaran/mallpath/internal/frontier"
)

// Plan expands from start until the frontier is exhausted, claiming every
// goal it meets. Duplicate goals are collapsed.
func Plan(g *core.Graph, start core.NodeID, goals []core.NodeID, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if !g.Valid(start) {
		return Result{}, fmt.Errorf("%w: start %d", ErrNodeOutOfRange, start)
	}
	for _, id := range goals {
		if !g.Valid(id) {
			return Result{}, fmt.Errorf("%w: goal %d", ErrNodeOutOfRange, id)
		}
	}
	if !g.Node(start).Traversable() {
		return Result{}, nil
	}

	r := newRunner(g, goals, cfg)
	return r.run(start)
}

// runner holds the mutable state for a single multi-goal execution.
type runner struct {
	g    *core.Graph
	opts Options

	isGoal    []bool
	unreached []core.NodeID

	cost   []float64
	parent []core.NodeID
	closed []bool
	pq     frontier.Queue
	found  []GoalResult
}

func newRunner(g *core.Graph, goals []core.NodeID, opts Options) *runner {
	n := g.Len()
	r := &runner{
		g:      g,
		opts:   opts,
		isGoal: make([]bool, n),
		cost:   make([]float64, n),
		parent: make([]core.NodeID, n),
		closed: make([]bool, n),
	}
	for _, id := range goals {
		if !r.isGoal[id] {
			r.isGoal[id] = true
			r.unreached = append(r.unreached, id)
		}
	}
	for i := range r.cost {
		r.cost[i] = core.Inf
		r.parent[i] = core.None
	}
	return r
}

// h is the Manhattan distance to the nearest unreached goal.
func (r *runner) h(id core.NodeID) float64 {
	if len(r.unreached) == 0 {
		return 0
	}
	c := r.g.Coord(id)
	best := math.Inf(1)
	for _, goal := range r.unreached {
		if d := core.Manhattan(c, r.g.Coord(goal)); d < best {
			best = d
		}
	}
	return best
}

func (r *runner) push(id core.NodeID) {
	h := r.h(id)
	heap.Push(&r.pq, &frontier.Item{ID: id, F: r.cost[id] + h, H: h, Coord: r.g.Coord(id)})
}

func (r *runner) claim(u core.NodeID) {
	r.found = append(r.found, GoalResult{Goal: u, Path: frontier.Reconstruct(r.parent, u), Cost: r.cost[u]})
	for i, id := range r.unreached {
		if id == u {
			r.unreached = append(r.unreached[:i], r.unreached[i+1:]...)
			break
		}
	}
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
			res.Goals = r.sorted()
			return res, fmt.Errorf("%w: %d", ErrExpansionLimit, res.Expansions)
		}
		res.Expansions++
		r.closed[u] = true

		if r.isGoal[u] {
			r.claim(u)
		}
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
	res.Goals = r.sorted()
	return res, nil
}

func (r *runner) sorted() []GoalResult {
	out := append([]GoalResult(nil), r.found...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Cost != out[j].Cost {
			return out[i].Cost < out[j].Cost
		}
		return r.g.Coord(out[i].Goal).Less(r.g.Coord(out[j].Goal))
	})
	return out
}
