package dstarlite

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mallpath/core"
)

// edgeRef names a link by its owner and direction.
type edgeRef struct {
	from core.NodeID
	dir  core.Direction
}

// Planner holds D* Lite state for one goal on one graph.
type Planner struct {
	g     *core.Graph
	opts  Options
	start core.NodeID
	last  core.NodeID
	goal  core.NodeID
	km    float64

	cost  []float64 // g
	rhs   []float64
	preds [][]core.NodeID
	over  map[edgeRef]float64
	q     *queue

	expansions int
}

// New prepares a Planner for start→goal. No search runs until
// ComputeShortestPath or Replan is called.
func New(g *core.Graph, start, goal core.NodeID, opts ...Option) (*Planner, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Valid(start) || !g.Valid(goal) {
		return nil, fmt.Errorf("%w: start=%d goal=%d", ErrNodeOutOfRange, start, goal)
	}

	n := g.Len()
	p := &Planner{
		g:     g,
		opts:  cfg,
		start: start,
		last:  start,
		goal:  goal,
		cost:  make([]float64, n),
		rhs:   make([]float64, n),
		preds: make([][]core.NodeID, n),
		over:  make(map[edgeRef]float64),
		q:     newQueue(n),
	}
	for i := 0; i < n; i++ {
		p.cost[i] = core.Inf
		p.rhs[i] = core.Inf
	}
	for u := core.NodeID(0); int(u) < n; u++ {
		for _, l := range g.Neighbors(u) {
			p.preds[l.To] = append(p.preds[l.To], u)
		}
	}
	if g.Node(goal).Traversable() {
		p.rhs[goal] = 0
		p.q.insert(goal, p.key(goal), g.Coord(goal))
	}
	return p, nil
}

// Plan is the cold one-shot contract: solve fully and reconstruct.
func Plan(g *core.Graph, start, goal core.NodeID, opts ...Option) (Result, error) {
	p, err := New(g, start, goal, opts...)
	if err != nil {
		return Result{}, err
	}
	return p.Replan()
}

// Start returns the current start node.
func (p *Planner) Start() core.NodeID { return p.start }

// Expansions returns the number of queue pops across every solve.
func (p *Planner) Expansions() int { return p.expansions }

// G returns the current cost-to-goal estimate of id.
func (p *Planner) G(id core.NodeID) float64 { return p.cost[id] }

// RHS returns the current one-step lookahead of id.
func (p *Planner) RHS(id core.NodeID) float64 { return p.rhs[id] }

func (p *Planner) h(a, b core.NodeID) float64 {
	return core.Manhattan(p.g.Coord(a), p.g.Coord(b))
}

func (p *Planner) key(u core.NodeID) key {
	m := math.Min(p.cost[u], p.rhs[u])
	return key{k1: m + p.h(p.start, u) + p.km, k2: m}
}

// linkCost is the weight of l out of u, honouring UpdateEdge overrides.
func (p *Planner) linkCost(u core.NodeID, l core.Link) float64 {
	if c, ok := p.over[edgeRef{from: u, dir: l.Dir}]; ok {
		return c
	}
	if !p.g.Node(l.To).Traversable() {
		return core.Inf
	}
	return l.Weight
}

// updateVertex recomputes rhs(u) and requeues u iff it is inconsistent.
func (p *Planner) updateVertex(u core.NodeID) {
	if u != p.goal {
		best := core.Inf
		for _, l := range p.g.Neighbors(u) {
			if c := p.linkCost(u, l) + p.cost[l.To]; c < best {
				best = c
			}
		}
		p.rhs[u] = best
	}
	p.q.remove(u)
	if p.cost[u] != p.rhs[u] {
		p.q.insert(u, p.key(u), p.g.Coord(u))
	}
}

func (p *Planner) done() bool {
	if p.q.Len() == 0 {
		return true
	}
	if !p.opts.EarlyStop {
		return false
	}
	return !p.q.top().key.less(p.key(p.start)) && p.rhs[p.start] == p.cost[p.start]
}

// ComputeShortestPath processes inconsistent nodes until done. Without
// WithEarlyStop it drains the queue.
func (p *Planner) ComputeShortestPath() error {
	pops := 0
	for !p.done() {
		if p.opts.MaxExpansions > 0 && pops >= p.opts.MaxExpansions {
			return fmt.Errorf("%w: %d", ErrExpansionLimit, pops)
		}
		e := p.q.pop()
		pops++
		p.expansions++

		u := e.id
		if kNew := p.key(u); e.key.less(kNew) {
			p.q.insert(u, kNew, e.coord)
			continue
		}
		if p.cost[u] > p.rhs[u] {
			p.cost[u] = p.rhs[u]
			for _, pr := range p.preds[u] {
				p.updateVertex(pr)
			}
			continue
		}
		p.cost[u] = core.Inf
		p.updateVertex(u)
		for _, pr := range p.preds[u] {
			p.updateVertex(pr)
		}
	}
	return nil
}

// Path reconstructs start→goal from the current g values.
// An unreachable goal yields a nil path and a nil error.
func (p *Planner) Path() ([]core.NodeID, error) {
	if math.IsInf(p.cost[p.start], 1) {
		return nil, nil
	}
	path := []core.NodeID{p.start}
	seen := map[core.NodeID]bool{p.start: true}
	for cur := p.start; cur != p.goal; {
		next, best := core.None, core.Inf
		for _, l := range p.g.Neighbors(cur) {
			c := p.linkCost(cur, l) + p.cost[l.To]
			if c < best || (c == best && next != core.None && p.g.Coord(l.To).Less(p.g.Coord(next))) {
				next, best = l.To, c
			}
		}
		if next == core.None {
			return nil, fmt.Errorf("%w: dead end at %s", ErrInconsistent, p.g.Coord(cur))
		}
		if seen[next] {
			return nil, fmt.Errorf("%w: cycle at %s", ErrInconsistent, p.g.Coord(next))
		}
		seen[next] = true
		path = append(path, next)
		cur = next
	}
	return path, nil
}

// Replan solves from the current state and reconstructs the path.
func (p *Planner) Replan() (Result, error) {
	before := p.expansions
	if err := p.ComputeShortestPath(); err != nil {
		return Result{Expansions: p.expansions - before}, err
	}
	res := Result{Expansions: p.expansions - before}
	path, err := p.Path()
	if err != nil || path == nil {
		return res, err
	}
	res.Path = path
	for i := 1; i < len(path); i++ {
		l, _ := p.g.Node(path[i-1]).LinkTo(path[i])
		res.Cost += p.linkCost(path[i-1], l)
	}
	return res, nil
}

// UpdateEdge overrides the cost of the link leaving from in direction dir.
// core.Inf blocks the link. The graph itself is left untouched.
func (p *Planner) UpdateEdge(from core.NodeID, dir core.Direction, cost float64) error {
	n := p.g.Node(from)
	if n == nil {
		return fmt.Errorf("%w: %d", ErrNodeOutOfRange, from)
	}
	if _, ok := n.Link(dir); !ok {
		return fmt.Errorf("%w: %s %s", ErrNoLink, n.Coord, dir)
	}
	p.over[edgeRef{from: from, dir: dir}] = cost
	p.updateVertex(from)
	return nil
}

// MoveStart relocates the start and bumps km by the heuristic distance moved.
func (p *Planner) MoveStart(s core.NodeID) error {
	if !p.g.Valid(s) {
		return fmt.Errorf("%w: %d", ErrNodeOutOfRange, s)
	}
	p.km += p.h(p.last, s)
	p.last = s
	p.start = s
	return nil
}
