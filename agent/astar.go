package agent

import (
	"errors"

	"github.com/katalvlaran/mallpath/astar"
	"github.com/katalvlaran/mallpath/core"
)

// AStar plans one A* leg per candidate, nearest candidate first.
type AStar struct {
	opts Options
}

// NewAStar returns an A* agent.
func NewAStar(opts ...Option) *AStar {
	return &AStar{opts: newOptions(opts...)}
}

// Name implements Agent.
func (a *AStar) Name() string { return "A*" }

// Run implements Agent.
func (a *AStar) Run(g *core.Graph, start core.NodeID, candidates []core.NodeID) (Result, error) {
	if err := validate(g, start, candidates); err != nil {
		return Result{Goal: core.None}, err
	}
	j := newJourney(g, start, a.opts)
	log := a.opts.Logger.With("agent", a.Name())

	for _, c := range byDistance(g, start, candidates) {
		var popts []astar.Option
		if j.opts.Budget > 0 {
			left := j.remaining()
			if left < 1 {
				return j.exhausted(astar.ErrExpansionLimit)
			}
			popts = append(popts, astar.WithMaxExpansions(left))
		}

		leg, err := astar.Plan(g, j.at, c, popts...)
		j.spent(leg.Expansions)
		if errors.Is(err, astar.ErrExpansionLimit) {
			return j.exhausted(err)
		}
		if err != nil {
			return j.finish(), err
		}
		if !leg.Found() {
			log.Debug("candidate unreachable", "from", g.Coord(j.at), "to", g.Coord(c))
			j.skip(c)
			continue
		}
		log.Debug("leg", "to", g.Coord(c), "cost", leg.Cost, "expansions", leg.Expansions)
		if j.travel(c, leg.Path, leg.Cost) {
			break
		}
	}
	return j.finish(), nil
}
