package multigoal

import (
	"errors"

	"github.com/katalvlaran/mallpath/core"
)

// Sentinel errors for multi-goal planning.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("multigoal: graph is nil")

	// ErrNodeOutOfRange is returned when start or a goal is not in the graph.
	ErrNodeOutOfRange = errors.New("multigoal: node out of range")

	// ErrExpansionLimit is returned when the search exceeds MaxExpansions.
	ErrExpansionLimit = errors.New("multigoal: expansion limit reached")
)

// Options configures a Plan call. MaxExpansions 0 means unlimited.
type Options struct {
	MaxExpansions int
}

// Option represents a functional option for configuring Plan.
type Option func(*Options)

// DefaultOptions returns unlimited expansions.
func DefaultOptions() Options { return Options{} }

// WithMaxExpansions caps the number of settled pops. Panics if n < 1.
func WithMaxExpansions(n int) Option {
	if n < 1 {
		panic("multigoal: WithMaxExpansions(n<1)")
	}
	return func(o *Options) {
		o.MaxExpansions = n
	}
}

// GoalResult is the path recorded for one goal when it was claimed.
type GoalResult struct {
	Goal core.NodeID
	Path []core.NodeID
	Cost float64
}

// Result lists every claimed goal, cheapest first.
type Result struct {
	Goals      []GoalResult
	Expansions int
}

// Best returns the cheapest claimed goal.
func (r Result) Best() (GoalResult, bool) {
	if len(r.Goals) == 0 {
		return GoalResult{}, false
	}
	return r.Goals[0], true
}

// Reached reports whether id was claimed.
func (r Result) Reached(id core.NodeID) bool {
	for _, gr := range r.Goals {
		if gr.Goal == id {
			return true
		}
	}
	return false
}
