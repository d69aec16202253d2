package agent

import (
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/mallpath/core"
)

// journey is the per-Run accumulator shared by every agent.
type journey struct {
	g      *core.Graph
	opts   Options
	at     core.NodeID
	res    Result
	begins time.Time
}

func newJourney(g *core.Graph, start core.NodeID, opts Options) *journey {
	return &journey{
		g:      g,
		opts:   opts,
		at:     start,
		res:    Result{Goal: core.None},
		begins: time.Now(),
	}
}

// remaining is the expansion allowance for the next planner call, 0 if unlimited.
func (j *journey) remaining() int {
	if j.opts.Budget == 0 {
		return 0
	}
	return j.opts.Budget - j.res.Expansions
}

func (j *journey) spent(expansions int) {
	j.res.Expansions += expansions
	j.res.Replans++
}

// travel appends a leg that ends at store and moves the agent there.
// It reports whether the store carries the item.
func (j *journey) travel(store core.NodeID, path []core.NodeID, cost float64) bool {
	if len(j.res.Trail) == 0 {
		j.res.Trail = append(j.res.Trail, path...)
	} else if len(path) > 0 {
		j.res.Trail = append(j.res.Trail, path[1:]...)
	}
	j.res.Length = len(j.res.Trail) - 1
	j.res.Cost += cost
	j.res.Visited = append(j.res.Visited, store)
	j.at = store

	if j.g.Node(store).HasItem {
		j.res.Found = true
		j.res.Goal = store
		return true
	}
	return false
}

func (j *journey) skip(id core.NodeID) {
	j.res.Skipped = append(j.res.Skipped, id)
}

// finish seals the totals. Path is reported only for a successful run.
func (j *journey) finish() Result {
	if j.res.Length < 0 {
		j.res.Length = 0
	}
	j.res.Path = nil
	if j.res.Found {
		j.res.Path = j.res.Trail
	}
	j.res.Elapsed = time.Since(j.begins)
	return j.res
}

// exhausted wraps ErrBudgetExhausted around the planner's limit error.
func (j *journey) exhausted(err error) (Result, error) {
	return j.finish(), fmt.Errorf("%w: %d of %d: %v", ErrBudgetExhausted, j.res.Expansions, j.opts.Budget, err)
}

// validate checks start and candidates before any planner runs.
func validate(g *core.Graph, start core.NodeID, candidates []core.NodeID) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.Valid(start) {
		return fmt.Errorf("%w: start %d", core.ErrOutOfBounds, start)
	}
	for _, c := range candidates {
		if !g.Valid(c) {
			return fmt.Errorf("%w: candidate %d", core.ErrOutOfBounds, c)
		}
	}
	return nil
}

// byDistance returns the distinct candidates ordered by Manhattan distance
// from start, ties by coordinate.
func byDistance(g *core.Graph, start core.NodeID, candidates []core.NodeID) []core.NodeID {
	out := dedup(candidates)
	from := g.Coord(start)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := g.Coord(out[i]), g.Coord(out[j])
		da, db := core.Manhattan(from, a), core.Manhattan(from, b)
		if da != db {
			return da < db
		}
		return a.Less(b)
	})
	return out
}

func dedup(ids []core.NodeID) []core.NodeID {
	seen := make(map[core.NodeID]bool, len(ids))
	out := make([]core.NodeID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
