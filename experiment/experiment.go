// Package experiment runs batches of navigation trials: every seed of every
// layout is built once, solved once with Dijkstra for the optimal baseline,
// and then searched by each configured agent.
//
// Trials are collected in memory and handed to Summarize, WriteCSV,
// PlotSummary or the store package. The context passed to Run is checked
// between trials only; a single trial is never interrupted.
package experiment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/mallpath/agent"
	"github.com/katalvlaran/mallpath/builder"
	"github.com/katalvlaran/mallpath/config"
	"github.com/katalvlaran/mallpath/dijkstra"
)

// ErrNoConfig is returned by NewRunner for a nil configuration.
var ErrNoConfig = errors.New("experiment: config is nil")

// Runner drives one batch.
type Runner struct {
	cfg    *config.Config
	log    *slog.Logger
	agents []string
	id     uuid.UUID
}

// Option represents a functional option for configuring a Runner.
type Option func(*Runner)

// WithLogger routes batch and agent diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("experiment: WithLogger(nil)")
	}
	return func(r *Runner) {
		r.log = l
	}
}

// WithRunID fixes the batch identifier instead of generating one.
func WithRunID(id uuid.UUID) Option {
	return func(r *Runner) {
		r.id = id
	}
}

// NewRunner validates cfg and prepares a batch with a fresh run ID.
func NewRunner(cfg *config.Config, opts ...Option) (*Runner, error) {
	if cfg == nil {
		return nil, ErrNoConfig
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{
		cfg:    cfg,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		agents: cfg.Planner.Algorithms,
		id:     uuid.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// RunID identifies every trial of this batch.
func (r *Runner) RunID() uuid.UUID { return r.id }

// Size is the number of trials a complete batch produces.
func (r *Runner) Size() int {
	layouts := r.cfg.Experiment.GetLayouts(r.cfg.Building)
	return len(layouts) * r.cfg.Experiment.Seeds * len(r.agents)
}

// Run executes the batch. On cancellation it returns the trials finished so
// far together with the context error.
func (r *Runner) Run(ctx context.Context) ([]Trial, error) {
	if d := r.cfg.Experiment.GetTimeout(); d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	trials := make([]Trial, 0, r.Size())
	exp := r.cfg.Experiment
	r.log.Info("batch started", "run_id", r.id.String(), "trials", r.Size())

	for _, layout := range exp.GetLayouts(r.cfg.Building) {
		for i := 0; i < exp.Seeds; i++ {
			seed := exp.FirstSeed + int64(i)
			if err := ctx.Err(); err != nil {
				return trials, err
			}
			batch, err := r.runSeed(ctx, layout, seed)
			trials = append(trials, batch...)
			if err != nil {
				return trials, err
			}
		}
	}
	r.log.Info("batch finished", "run_id", r.id.String(), "trials", len(trials))
	return trials, nil
}

// runSeed builds one facility and runs every agent on it.
func (r *Runner) runSeed(ctx context.Context, layout config.Layout, seed int64) ([]Trial, error) {
	b, err := builder.Build(r.cfg.Building.With(layout),
		builder.WithSeed(seed),
		builder.WithLogger(r.log),
		builder.WithObstacleDensity(r.cfg.Building.GetObstacleDensity()),
	)
	if err != nil {
		return nil, fmt.Errorf("build %s seed %d: %w", layout, seed, err)
	}
	g := b.Graph()

	_, optimal, err := dijkstra.ShortestPath(g, b.Start(), b.GoalStore())
	if err != nil {
		return nil, fmt.Errorf("baseline %s seed %d: %w", layout, seed, err)
	}

	opts := append(r.cfg.Planner.AgentOptions(), agent.WithLogger(r.log))
	out := make([]Trial, 0, len(r.agents))
	for _, key := range r.agents {
		if err = ctx.Err(); err != nil {
			return out, err
		}
		a, err := agent.New(key, opts...)
		if err != nil {
			return out, err
		}

		res, runErr := a.Run(g, b.Start(), b.Stores())
		t := newTrial(r.id, seed, layout, key, a.Name(), g, res, optimal)
		if runErr != nil {
			t.Err = runErr.Error()
			r.log.Warn("trial failed", "algorithm", a.Name(), "layout", layout.String(), "seed", seed, "err", runErr)
		}
		r.log.Debug("trial",
			"algorithm", a.Name(), "layout", layout.String(), "seed", seed,
			"found", t.Found, "cost", t.Cost, "expansions", t.Expansions,
			"elapsed", t.Elapsed.Round(time.Microsecond))
		out = append(out, t)
	}
	return out, nil
}
