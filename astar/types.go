package astar

import (
	"errors"

	"github.com/katalvlaran/mallpath/core"
)

// Sentinel errors for A* planning.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNodeOutOfRange is returned when start or goal is not in the graph.
	ErrNodeOutOfRange = errors.New("astar: node out of range")

	// ErrExpansionLimit is returned when the search exceeds MaxExpansions.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")
)

// Heuristic estimates the remaining cost between two coordinates.
type Heuristic func(a, b core.Coord) float64

// Options configures a Plan call.
//
// MaxExpansions – 0 means unlimited.
// Heuristic     – defaults to core.Manhattan.
type Options struct {
	MaxExpansions int
	Heuristic     Heuristic
}

// Option represents a functional option for configuring Plan.
type Option func(*Options)

// DefaultOptions returns unlimited expansions and the Manhattan heuristic.
func DefaultOptions() Options {
	return Options{
		MaxExpansions: 0,
		Heuristic:     core.Manhattan,
	}
}

// WithMaxExpansions caps the number of settled pops. Panics if n < 1.
func WithMaxExpansions(n int) Option {
	if n < 1 {
		panic("astar: WithMaxExpansions(n<1)")
	}
	return func(o *Options) {
		o.MaxExpansions = n
	}
}

// WithHeuristic replaces the heuristic. Panics on nil.
func WithHeuristic(h Heuristic) Option {
	if h == nil {
		panic("astar: WithHeuristic(nil)")
	}
	return func(o *Options) {
		o.Heuristic = h
	}
}

// Result is the outcome of a single Plan call.
type Result struct {
	Path       []core.NodeID
	Cost       float64
	Expansions int
}

// Found reports whether a path was returned.
func (r Result) Found() bool { return len(r.Path) > 0 }
