// Package builder assembles a multi-floor facility on top of a core.Graph:
// grid floors with planar links, a start cell, elevator columns, stair pairs,
// stores along the floor perimeters and connectivity-preserving obstacles.
//
// The package offers the following key components:
//
//   - Floor: a view over one level with its perimeter ring (clockwise from
//     (0,0)), corner and inward-direction helpers.
//   - Building: owns the graph and records every placement.
//     – NewBuilding:   base floors, every cell linked to its planar neighbours.
//     – PlaceStart, PlaceStore, PlaceElevator, PlaceStairs: explicit hooks
//     that validate bounds and occupancy only.
//     – PlaceObstacle: transactional; rolled back when any store would lose
//     its last path from the start.
//     – AssignGoal, SetGoal: mark the single store that carries the item.
//   - Build: the procedural sequence driven by a Config and a seeded RNG.
//   - Options: WithSeed, WithRand, WithLogger, WithObstacleDensity.
//
// Guarantees:
//
//   - Every store is reachable from the start once Build returns.
//   - No two placements share a coordinate.
//   - Exactly one store carries the item after AssignGoal or SetGoal.
//   - Identical Config and seed produce an identical building.
//
// Option constructors panic on meaningless input; everything else reports
// sentinel errors wrapped with context (see errors.go).
package builder
