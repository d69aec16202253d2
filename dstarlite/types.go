package dstarlite

import (
	"errors"

	"github.com/katalvlaran/mallpath/core"
)

// Sentinel errors for D* Lite planning.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("dstarlite: graph is nil")

	// ErrNodeOutOfRange is returned when start or goal is not in the graph.
	ErrNodeOutOfRange = errors.New("dstarlite: node out of range")

	// ErrNoLink is returned by UpdateEdge when the node has no link in that direction.
	ErrNoLink = errors.New("dstarlite: no link in that direction")

	// ErrInconsistent is returned when path reconstruction meets a cycle or a
	// dead end although g(start) is finite.
	ErrInconsistent = errors.New("dstarlite: inconsistent g values")

	// ErrExpansionLimit is returned when a solve exceeds MaxExpansions.
	ErrExpansionLimit = errors.New("dstarlite: expansion limit reached")
)

// Options configures a Planner.
//
// EarlyStop     – stop ComputeShortestPath at the textbook condition instead
//
//	of draining the queue.
//
// MaxExpansions – cap on pops per solve; 0 means unlimited.
type Options struct {
	EarlyStop     bool
	MaxExpansions int
}

// Option represents a functional option for configuring a Planner.
type Option func(*Options)

// DefaultOptions returns a full (queue-draining) solve without a cap.
func DefaultOptions() Options {
	return Options{EarlyStop: false, MaxExpansions: 0}
}

// WithEarlyStop enables the textbook termination rule.
func WithEarlyStop() Option {
	return func(o *Options) {
		o.EarlyStop = true
	}
}

// WithMaxExpansions caps the pops of each solve. Panics if n < 1.
func WithMaxExpansions(n int) Option {
	if n < 1 {
		panic("dstarlite: WithMaxExpansions(n<1)")
	}
	return func(o *Options) {
		o.MaxExpansions = n
	}
}

// Result is the outcome of a solve and reconstruction.
type Result struct {
	Path       []core.NodeID
	Cost       float64
	Expansions int
}

// Found reports whether a path was returned.
func (r Result) Found() bool { return len(r.Path) > 0 }
