// Package dijkstra is the exact single-source shortest-path oracle over a
// core.Graph. Planners are measured against it: tests use it as the
// optimality reference and the batch layer records its cost as the
// "optimal" baseline of every trial.
//
// Overview:
//
//   - Dijkstra settles nodes in order of distance from Options.Source using
//     a lazy-decrease-key min-heap, following outgoing links only.
//   - dist[v] is +Inf for unreachable v; prev[v] is core.None for the source
//     and for unreachable nodes.
//   - PathTo rebuilds one shortest path from a predecessor slice.
//   - ShortestPath is the one-call source→target convenience.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (heap entries under lazy decrease-key)
//
// Error handling (sentinel errors):
//
//   - ErrNoSource, ErrNilGraph, ErrVertexNotFound: invalid input.
//   - ErrNegativeWeight: detected by an O(E) pre-scan before any work.
//   - ErrBadMaxDistance: raised by panic from WithMaxDistance.
//
// Dijkstra never mutates the graph.
package dijkstra
