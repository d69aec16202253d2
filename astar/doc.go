// Package astar implements single-goal A* search over a core.Graph.
//
// The frontier is a min-heap keyed by f = g + h, where g is the best known
// cost from the start and h the heuristic estimate to the goal. Equal f
// values fall back to the smaller h and then to coordinate order, so two
// runs on the same graph always expand the same nodes in the same order.
//
// Heuristic:
//
//	The default heuristic is core.Manhattan over (row, col, floor), with
//	every axis weighted 1. Vertical moves really cost 1.5 per floor by
//	elevator and 2.5 by stairs, so the estimate only stays admissible while
//	each vertical link costs at least the Manhattan distance it spans. The
//	default weights satisfy that. Reported costs always come from the real
//	link weights, never from h.
//
// Outcomes:
//
//   - Path found: Result.Path runs start→goal inclusive, Cost is the sum of
//     link weights, Expansions counts settled pops.
//   - No path: an empty Result with the expansion count and a nil error.
//   - ErrExpansionLimit: WithMaxExpansions was exceeded; the partial
//     expansion count is still returned.
//
// Complexity: O((V + E) log V) time, O(V) space.
package astar
