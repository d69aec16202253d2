// Package dijkstra defines core types and configuration options
// for the exact shortest-path oracle over a facility graph.
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/mallpath/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no Source option was supplied.
	ErrNoSource = errors.New("dijkstra: source node not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source node is not part of the graph.
	ErrVertexNotFound = errors.New("dijkstra: source node not found in graph")

	// ErrNegativeWeight indicates that a negative link weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative link weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting node (must be a node of the graph).
// ReturnPath  – if true, return the predecessor slice; otherwise prev is nil.
// MaxDistance – nodes farther than this are not settled. Default +Inf.
type Options struct {
	Source      core.NodeID
	ReturnPath  bool
	MaxDistance float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node. Must be supplied.
func Source(id core.NodeID) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath enables the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps exploration. Panics on a negative value.
func WithMaxDistance(max float64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns the defaults: no source, no predecessors, no cap.
func DefaultOptions() Options {
	return Options{
		Source:      core.None,
		ReturnPath:  false,
		MaxDistance: core.Inf,
	}
}
