package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mallpath/core"
)

// Sentinel errors for reachability checks.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("bfs: graph is nil")

	// ErrNodeOutOfRange is returned when start or a goal is not in the graph.
	ErrNodeOutOfRange = errors.New("bfs: node out of range")
)

// Checker walks a fixed graph repeatedly without per-walk allocation.
type Checker struct {
	graph *core.Graph
	seen  []uint32 // seen[id] == epoch ⇔ visited in the current walk
	epoch uint32
	queue []core.NodeID
	count int
}

// NewChecker allocates the visited buffer and queue for g.
func NewChecker(g *core.Graph) (*Checker, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	return &Checker{
		graph: g,
		seen:  make([]uint32, g.Len()),
		queue: make([]core.NodeID, 0, g.Len()),
	}, nil
}

// Walk visits every node reachable from start and returns how many were reached.
// An obstacle start reaches nothing.
func (c *Checker) Walk(start core.NodeID) (int, error) {
	if !c.graph.Valid(start) {
		return 0, fmt.Errorf("%w: start %d", ErrNodeOutOfRange, start)
	}
	c.nextEpoch()
	if !c.graph.Node(start).Traversable() {
		return 0, nil
	}

	c.queue = c.queue[:0]
	c.mark(start)
	for head := 0; head < len(c.queue); head++ {
		u := c.queue[head]
		for _, l := range c.graph.Neighbors(u) {
			if c.seen[l.To] == c.epoch {
				continue
			}
			if !c.graph.Node(l.To).Traversable() {
				continue
			}
			c.mark(l.To)
		}
	}
	return c.count, nil
}

// Visited reports whether id was reached by the most recent walk.
func (c *Checker) Visited(id core.NodeID) bool {
	return c.graph.Valid(id) && c.epoch != 0 && c.seen[id] == c.epoch
}

// Count returns the number of nodes reached by the most recent walk.
func (c *Checker) Count() int { return c.count }

// AllReachable walks from start and reports whether every goal was reached.
// An empty goal set is trivially reachable.
func (c *Checker) AllReachable(start core.NodeID, goals []core.NodeID) (bool, error) {
	for _, g := range goals {
		if !c.graph.Valid(g) {
			return false, fmt.Errorf("%w: goal %d", ErrNodeOutOfRange, g)
		}
	}
	if _, err := c.Walk(start); err != nil {
		return false, err
	}
	for _, g := range goals {
		if c.seen[g] != c.epoch {
			return false, nil
		}
	}
	return true, nil
}

// Reachable is a one-shot AllReachable on a fresh Checker.
func Reachable(g *core.Graph, start core.NodeID, goals []core.NodeID) (bool, error) {
	c, err := NewChecker(g)
	if err != nil {
		return false, err
	}
	return c.AllReachable(start, goals)
}

func (c *Checker) mark(id core.NodeID) {
	c.seen[id] = c.epoch
	c.queue = append(c.queue, id)
	c.count++
}

// nextEpoch starts a new walk; on wrap-around the buffer is cleared once.
func (c *Checker) nextEpoch() {
	c.epoch++
	if c.epoch == 0 {
		for i := range c.seen {
			c.seen[i] = 0
		}
		c.epoch = 1
	}
	c.count = 0
}
