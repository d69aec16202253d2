// SPDX-License-Identifier: MIT
// Package: mallpath/builder
//
// options.go — functional options for NewBuilding and Build.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"io"
	"log/slog"
	"math/rand"
)

// Option customizes a Building before construction begins.
type Option func(*options)

type options struct {
	rng     *rand.Rand
	logger  *slog.Logger
	density float64
}

// DefaultObstacleDensity is the share of eligible interior cells turned into
// obstacles when Config.ObstaclesPerFloor is zero.
const DefaultObstacleDensity = 0.25

func defaultOptions() options {
	return options{
		rng:     nil,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		density: DefaultObstacleDensity,
	}
}

func newOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(o *options) {
		o.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger routes placement diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = l
	}
}

// WithObstacleDensity sets the obstacle share used when no explicit
// per-floor count is configured. Panics unless 0 <= d <= 1.
func WithObstacleDensity(d float64) Option {
	if d < 0 || d > 1 {
		panic("builder: WithObstacleDensity(d outside [0,1])")
	}
	return func(o *options) {
		o.density = d
	}
}
