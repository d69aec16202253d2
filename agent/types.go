package agent

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/mallpath/core"
)

// Sentinel errors for agent runs.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("agent: graph is nil")

	// ErrBudgetExhausted is returned when an agent spends more expansions
	// than WithBudget allows. The partial Result is returned alongside it.
	ErrBudgetExhausted = errors.New("agent: expansion budget exhausted")

	// ErrUnknownAgent is returned by New for an unregistered key.
	ErrUnknownAgent = errors.New("agent: unknown algorithm")
)

// Agent searches g from start for the candidate store that carries the item.
type Agent interface {
	Name() string
	Run(g *core.Graph, start core.NodeID, candidates []core.NodeID) (Result, error)
}

// Result accumulates every leg an agent travelled.
type Result struct {
	Path       []core.NodeID // concatenated legs, start first; empty unless Found
	Trail      []core.NodeID // route actually walked, even on failure
	Expansions int
	Length     int     // moves along Trail
	Cost       float64 // sum of link weights along Trail
	Found      bool
	Goal       core.NodeID   // store with the item, core.None on failure
	Visited    []core.NodeID // stores reached, in order
	Skipped    []core.NodeID // candidates found unreachable
	Replans    int           // planner calls
	Elapsed    time.Duration
}

// End returns where the agent stopped: the last node of Trail, or core.None.
func (r Result) End() core.NodeID {
	if len(r.Trail) == 0 {
		return core.None
	}
	return r.Trail[len(r.Trail)-1]
}

// Options configures an agent.
//
// Budget    – cap on total expansions; 0 means unlimited.
// Logger    – receives per-leg diagnostics; defaults to a discard handler.
// EarlyStop – D* Lite agent only: use the textbook termination rule.
type Options struct {
	Budget    int
	Logger    *slog.Logger
	EarlyStop bool
}

// Option represents a functional option for configuring an agent.
type Option func(*Options)

// DefaultOptions returns an unlimited budget and a silent logger.
func DefaultOptions() Options {
	return Options{
		Budget: 0,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func newOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithBudget caps total expansions across all legs. Panics if n < 1.
func WithBudget(n int) Option {
	if n < 1 {
		panic("agent: WithBudget(n<1)")
	}
	return func(o *Options) {
		o.Budget = n
	}
}

// WithLogger routes agent diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("agent: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithEarlyStop makes the D* Lite agent stop each solve at the textbook
// termination condition. Other agents ignore it.
func WithEarlyStop() Option {
	return func(o *Options) {
		o.EarlyStop = true
	}
}

// Algorithm keys accepted by New.
const (
	KeyAStar     = "astar"
	KeyDStarLite = "dstarlite"
	KeyMultiGoal = "multigoal"
)

// Keys lists every algorithm key in the order experiments run them.
var Keys = []string{KeyAStar, KeyMultiGoal, KeyDStarLite}

// New returns the agent registered under key.
func New(key string, opts ...Option) (Agent, error) {
	switch key {
	case KeyAStar:
		return NewAStar(opts...), nil
	case KeyDStarLite:
		return NewDStarLite(opts...), nil
	case KeyMultiGoal:
		return NewMultiGoal(opts...), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAgent, key)
}
