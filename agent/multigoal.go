package agent

import (
	"errors"

	"github.com/katalvlaran/mallpath/core"
	"github.com/katalvlaran/mallpath/multigoal"
)

// MultiGoal resolves every remaining candidate in one pass per leg and
// travels to the cheapest one reached.
type MultiGoal struct {
	opts Options
}

// NewMultiGoal returns a multi-goal agent.
func NewMultiGoal(opts ...Option) *MultiGoal {
	return &MultiGoal{opts: newOptions(opts...)}
}

// Name implements Agent.
func (m *MultiGoal) Name() string { return "MultiGoal-A*" }

// Run implements Agent. Candidates a pass fails to reach are dropped for
// the rest of the run.
func (m *MultiGoal) Run(g *core.Graph, start core.NodeID, candidates []core.NodeID) (Result, error) {
	if err := validate(g, start, candidates); err != nil {
		return Result{Goal: core.None}, err
	}
	j := newJourney(g, start, m.opts)
	log := m.opts.Logger.With("agent", m.Name())
	remaining := byDistance(g, start, candidates)

	for len(remaining) > 0 {
		var popts []multigoal.Option
		if j.opts.Budget > 0 {
			left := j.remaining()
			if left < 1 {
				return j.exhausted(multigoal.ErrExpansionLimit)
			}
			popts = append(popts, multigoal.WithMaxExpansions(left))
		}

		pass, err := multigoal.Plan(g, j.at, remaining, popts...)
		j.spent(pass.Expansions)
		if errors.Is(err, multigoal.ErrExpansionLimit) {
			return j.exhausted(err)
		}
		if err != nil {
			return j.finish(), err
		}

		// 1) Drop what this pass could not reach.
		kept := remaining[:0]
		for _, c := range remaining {
			if pass.Reached(c) {
				kept = append(kept, c)
				continue
			}
			log.Debug("candidate unreachable", "from", g.Coord(j.at), "to", g.Coord(c))
			j.skip(c)
		}
		remaining = kept

		// 2) Travel to the cheapest goal reached.
		best, ok := pass.Best()
		if !ok {
			break
		}
		log.Debug("leg", "to", g.Coord(best.Goal), "cost", best.Cost, "expansions", pass.Expansions)
		remaining = without(remaining, best.Goal)
		if j.travel(best.Goal, best.Path, best.Cost) {
			break
		}
	}
	return j.finish(), nil
}

func without(ids []core.NodeID, id core.NodeID) []core.NodeID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
