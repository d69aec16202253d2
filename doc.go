// Package mallpath compares pathfinding strategies for an agent that has to
// find one item in a procedurally generated, multi-floor facility.
//
// 🚀 What is mallpath?
//
//	A facility is a stack of rows×cols grid floors joined by elevators and
//	stairs, lined with stores and scattered with obstacles. Exactly one store
//	carries the item. Agents walk from store to store until they find it:
//		• A*          – one single-goal search per candidate store
//		• D* Lite     – goal-rooted incremental search with g/rhs and km
//		• Multi-goal  – one pass resolves every remaining candidate
//
// ✨ Guarantees
//
//   - Every store stays reachable from the start: each obstacle is placed
//     inside a snapshot/restore transaction checked by a BFS oracle.
//   - Manhattan distance is admissible and consistent for the link weights
//     (planar 1, elevator 1.5 per floor, stairs 2.5).
//   - A seed reproduces a facility and every agent's run on it exactly.
//
// Packages, leaf first:
//
//	core/       — arena graph: typed nodes, directed weighted links, snapshots
//	bfs/        — reusable reachability oracle and connected regions
//	builder/    — floors, vertical links, stores, obstacles, goal assignment
//	dijkstra/   — exact shortest-path baseline
//	internal/frontier — open-list heap shared by astar and multigoal
//	astar/      — single-goal A*
//	dstarlite/  — D* Lite with UpdateEdge / MoveStart / Replan
//	multigoal/  — multi-goal A*
//	agent/      — navigation agents over the three planners
//	render/     — ASCII floors with a path overlay
//	config/     — YAML configuration
//	experiment/ — seeds × layouts × agents batches, CSV, charts
//	store/      — SQLite trial archive
//	cmd/mallpath — CLI: generate, run, batch, report
//
// Quick ASCII example (one 5×5 floor, path from A to the item G):
//
//	A * * * S
//	. . # . *
//	. # . . *
//	. . . . *
//	S . . . G
//
//	go install github.com/katalvlaran/mallpath/cmd/mallpath@latest
package mallpath
