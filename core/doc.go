// Package core defines the facility graph shared by every planner: typed
// nodes addressed by a dense NodeID, directed weighted links between them,
// and the construction-time primitives the builder uses to mutate it.
//
// Model:
//
//   - Graph is an arena of rows×cols×floors nodes. A node's NodeID is
//     floor*rows*cols + row*cols + col, so coordinates and IDs convert in O(1).
//   - Links store the target NodeID, never a pointer, so neighbours can refer
//     to each other without ownership cycles.
//   - Category is a tagged variant (Generic, Store, Elevator, Stairs, Obstacle,
//     Start); the only category payload is the store's HasItem flag.
//   - Direction labels a link: four planar moves, up_floor/down_floor for
//     elevators and up_stairs/down_stairs for stairs.
//
// Weights:
//
//	planar move     1.0
//	elevator move   1.5 × floors traversed
//	stairs move     2.5
//
// Invariants maintained by the mutation helpers:
//
//   - Node.AddLink overwrites an existing link with the same Direction in
//     place (last write wins); there is never more than one link per Direction.
//   - An obstacle has no outgoing links and is never a link target: Link
//     rejects obstacle endpoints and Isolate strips both directions.
//   - Snapshot/Restore give the builder a minimal transaction over a handful of
//     cells so provisional placements can be reverted exactly.
//
// Errors:
//
//   - ErrBadDimensions: rows, cols or floors < 1.
//   - ErrOutOfBounds:   a coordinate or NodeID outside the arena.
//   - ErrObstacleLink:  a link would start or end at an obstacle.
//   - ErrBrokenPath:    PathCost found two consecutive nodes with no link.
//
// Concurrency:
//
//	Graph performs no locking. It is mutated only while a building is being
//	assembled and is read-only afterwards; concurrent readers are safe, a
//	concurrent writer is not.
package core
