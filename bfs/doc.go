// Package bfs is the reachability oracle used while a facility is being
// assembled: a breadth-first walk over core.Graph links that answers
// "can every goal still be reached from the start?".
//
// What
//
//   - Checker.Walk explores every node reachable from a start node by
//     following outgoing links (planar, elevator and stairs alike) and never
//     entering an obstacle.
//   - Checker.AllReachable walks once and reports whether every supplied goal
//     was visited.
//   - Reachable is a one-shot convenience wrapper.
//
// Why
//
//	The builder calls the oracle once per provisional obstacle placement, so
//	its cost dominates generation time for dense layouts. A Checker therefore
//	owns an epoch-stamped visited buffer and a queue that are allocated once
//	and reused by every walk: starting a new walk bumps the epoch instead of
//	clearing the buffer.
//
// Complexity (V = reachable nodes, E = their links)
//
//   - Time:   O(V + E) per walk
//   - Memory: O(|graph|) once per Checker, zero allocations per walk
//
// Errors
//
//   - ErrNilGraph:       a nil *core.Graph was supplied.
//   - ErrNodeOutOfRange: start or a goal is not a node of the graph.
//
// A Checker is not safe for concurrent use.
package bfs
