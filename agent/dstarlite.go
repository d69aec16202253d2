package agent

import (
	"errors"

	"github.com/katalvlaran/mallpath/core"
	"github.com/katalvlaran/mallpath/dstarlite"
)

// DStarLite solves each leg with a fresh D* Lite planner rooted at the
// candidate, nearest candidate first.
type DStarLite struct {
	opts Options
}

// NewDStarLite returns a D* Lite agent. WithEarlyStop selects the textbook
// termination rule for every leg.
func NewDStarLite(opts ...Option) *DStarLite {
	return &DStarLite{opts: newOptions(opts...)}
}

// Name implements Agent.
func (d *DStarLite) Name() string { return "D* Lite" }

// Run implements Agent.
func (d *DStarLite) Run(g *core.Graph, start core.NodeID, candidates []core.NodeID) (Result, error) {
	if err := validate(g, start, candidates); err != nil {
		return Result{Goal: core.None}, err
	}
	j := newJourney(g, start, d.opts)
	log := d.opts.Logger.With("agent", d.Name())

	for _, c := range byDistance(g, start, candidates) {
		var popts []dstarlite.Option
		if d.opts.EarlyStop {
			popts = append(popts, dstarlite.WithEarlyStop())
		}
		if j.opts.Budget > 0 {
			left := j.remaining()
			if left < 1 {
				return j.exhausted(dstarlite.ErrExpansionLimit)
			}
			popts = append(popts, dstarlite.WithMaxExpansions(left))
		}

		p, err := dstarlite.New(g, j.at, c, popts...)
		if err != nil {
			return j.finish(), err
		}
		leg, err := p.Replan()
		j.spent(leg.Expansions)
		switch {
		case errors.Is(err, dstarlite.ErrExpansionLimit):
			return j.exhausted(err)
		case errors.Is(err, dstarlite.ErrInconsistent):
			log.Error("path reconstruction failed", "from", g.Coord(j.at), "to", g.Coord(c), "err", err)
			return j.finish(), err
		case err != nil:
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
