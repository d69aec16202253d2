// Package dstarlite implements D* Lite over a core.Graph.
//
// D* Lite searches backwards from the goal. Every node carries g, its
// current cost-to-goal estimate, and rhs, a one-step lookahead
// min over successors of c(u,s) + g(s). A node with g ≠ rhs is locally
// inconsistent and sits in an indexed priority queue keyed by
//
//	( min(g,rhs) + h(start,u) + km , min(g,rhs) )
//
// compared lexicographically, with coordinate order breaking ties. km grows
// by h(last, start) whenever the start moves, which keeps old keys
// comparable with new ones without re-keying the queue.
//
// Modes:
//
//   - Plan is the cold one-shot contract: build a Planner, run
//     ComputeShortestPath until the queue is empty, reconstruct the path.
//   - WithEarlyStop switches to the textbook termination rule: stop once the
//     top key is not below key(start) and start is consistent.
//   - UpdateEdge, MoveStart and Replan form the incremental extension. Link
//     costs are overridden inside the Planner only; the graph is never
//     mutated.
//
// Predecessors come from a reverse-adjacency index built once in New, so
// one-way links (stair landings) are handled correctly.
//
// Path walks from start choosing the successor with the smallest c + g,
// ties by coordinate. An infinite g(start) means "no path" and yields an
// empty path. A revisit or a dead end during the walk means the g values
// are inconsistent and yields ErrInconsistent.
package dstarlite
