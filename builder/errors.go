// SPDX-License-Identifier: MIT
// Package: mallpath/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached at the call site with %w.
//   • Option constructors panic on meaningless input; nothing else does.

package builder

import "errors"

// ErrInvalidConfig indicates a Config that cannot describe a facility
// (non-positive sizes, negative counts, unreachable upper floors).
var ErrInvalidConfig = errors.New("builder: invalid config")

// ErrNoSite indicates that no eligible cell remains for a start, store,
// elevator or stair pair.
var ErrNoSite = errors.New("builder: no eligible site")

// ErrOccupied indicates that an explicit placement targets a cell that
// already carries a non-generic category.
var ErrOccupied = errors.New("builder: cell occupied")

// ErrNotStore indicates that SetGoal was given a node that is not a store.
var ErrNotStore = errors.New("builder: node is not a store")

// ErrNeedRandSource indicates that a stochastic step ran without an RNG
// (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the assembled layout violates the
// reachability invariant before any obstacle was placed.
var ErrConstructFailed = errors.New("builder: construction failed")
