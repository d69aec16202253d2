// SPDX-License-Identifier: MIT
// Package: mallpath/builder
//
// building.go — the Building aggregate and its explicit placement hooks.
//
// Design:
//   • The Building owns the arena graph; planners only ever read it.
//   • Explicit hooks check bounds and occupancy and trust the caller's site
//     choice. Build layers the site rules on top (see build.go).
//   • PlaceObstacle is a Snapshot → Isolate → check → Restore transaction.

package builder

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/mallpath/bfs"
	"github.com/katalvlaran/mallpath/core"
)

// Elevator is a column that spans every floor at (Row, Col).
type Elevator struct {
	Row, Col int
}

// StairPair joins a lower landing to an upper landing one floor up.
type StairPair struct {
	Lower, Upper core.NodeID
}

// Building is a multi-floor facility and the record of how it was assembled.
type Building struct {
	g         *core.Graph
	floors    []Floor
	start     core.NodeID
	elevators []Elevator
	stairs    []StairPair
	stores    []core.NodeID
	goal      core.NodeID
	rejected  int

	checker *bfs.Checker
	rng     *rand.Rand
	log     *slog.Logger
	density float64
}

// NewBuilding allocates rows×cols×floors cells and links every cell to its
// in-bounds planar neighbours with weight core.WeightPlanar.
func NewBuilding(rows, cols, floors int, opts ...Option) (*Building, error) {
	g, err := core.NewGraph(rows, cols, floors)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	o := newOptions(opts...)
	b := &Building{
		g:       g,
		floors:  make([]Floor, floors),
		start:   core.None,
		goal:    core.None,
		rng:     o.rng,
		log:     o.logger,
		density: o.density,
	}
	for f := range b.floors {
		b.floors[f] = newFloor(f, rows, cols)
	}
	for id := core.NodeID(0); int(id) < g.Len(); id++ {
		for _, d := range core.PlanarDirections {
			if nb, ok := g.PlanarNeighbor(id, d); ok {
				if err = g.Link(id, nb, d, core.WeightPlanar); err != nil {
					return nil, err
				}
			}
		}
	}
	if b.checker, err = bfs.NewChecker(g); err != nil {
		return nil, err
	}
	return b, nil
}

// Graph returns the underlying arena.
func (b *Building) Graph() *core.Graph { return b.g }

// Floors returns the floor views in index order.
func (b *Building) Floors() []Floor { return b.floors }

// Start returns the start node, or core.None before PlaceStart.
func (b *Building) Start() core.NodeID { return b.start }

// StartFloor returns the floor index of the start, or -1 before PlaceStart.
func (b *Building) StartFloor() int {
	if b.start == core.None {
		return -1
	}
	return b.g.Coord(b.start).Floor
}

// Stores returns every store in placement order.
func (b *Building) Stores() []core.NodeID {
	out := make([]core.NodeID, len(b.stores))
	copy(out, b.stores)
	return out
}

// GoalStore returns the store carrying the item, or core.None.
func (b *Building) GoalStore() core.NodeID { return b.goal }

// Elevators returns the elevator columns in placement order.
func (b *Building) Elevators() []Elevator { return b.elevators }

// Stairs returns the stair pairs in placement order.
func (b *Building) Stairs() []StairPair { return b.stairs }

// Obstacles returns every obstacle node in arena order.
func (b *Building) Obstacles() []core.NodeID { return b.g.OfCategory(core.Obstacle) }

// Rejected counts obstacle placements rolled back by the reachability check.
func (b *Building) Rejected() int { return b.rejected }

// generic resolves c and checks that it is free.
func (b *Building) generic(c core.Coord) (core.NodeID, error) {
	id, err := b.g.ID(c)
	if err != nil {
		return core.None, err
	}
	if cat := b.g.Node(id).Category; cat != core.Generic {
		return core.None, fmt.Errorf("%w: %s is %s", ErrOccupied, c, cat)
	}
	return id, nil
}

// PlaceStart tags c as the single start cell.
func (b *Building) PlaceStart(c core.Coord) error {
	if b.start != core.None {
		return fmt.Errorf("%w: start already at %s", ErrOccupied, b.g.Coord(b.start))
	}
	id, err := b.generic(c)
	if err != nil {
		return err
	}
	b.start = id
	b.log.Debug("start placed", "at", c.String())
	return b.g.SetCategory(id, core.Start)
}

// PlaceStore tags c as a store without the item.
func (b *Building) PlaceStore(c core.Coord) error {
	id, err := b.generic(c)
	if err != nil {
		return err
	}
	if err = b.g.SetCategory(id, core.Store); err != nil {
		return err
	}
	b.stores = append(b.stores, id)
	b.log.Debug("store placed", "at", c.String())
	return nil
}

// PlaceElevator tags (row, col) on every floor and links each pair of
// adjacent floors with up_floor/down_floor.
func (b *Building) PlaceElevator(row, col int) error {
	ids := make([]core.NodeID, len(b.floors))
	for f := range b.floors {
		id, err := b.generic(core.Coord{Row: row, Col: col, Floor: f})
		if err != nil {
			return err
		}
		ids[f] = id
	}
	for f, id := range ids {
		if err := b.g.SetCategory(id, core.Elevator); err != nil {
			return err
		}
		if f == 0 {
			continue
		}
		if err := b.g.LinkBoth(ids[f-1], id, core.UpFloor, core.ElevatorWeight(1)); err != nil {
			return err
		}
	}
	b.elevators = append(b.elevators, Elevator{Row: row, Col: col})
	b.log.Debug("elevator placed", "row", row, "col", col)
	return nil
}

// PlaceStairs joins (row, col, floor) to (row, col+1, floor+1). Each landing is
// then pruned to its stair link plus one exit: left on the lower landing,
// right on the upper one. Pruned links lose their back-links as well.
func (b *Building) PlaceStairs(row, col, floor int) error {
	lowerC := core.Coord{Row: row, Col: col, Floor: floor}
	upperC := core.Coord{Row: row, Col: col + 1, Floor: floor + 1}
	for _, exit := range []core.Coord{
		{Row: row, Col: col - 1, Floor: floor},
		{Row: row, Col: col + 2, Floor: floor + 1},
	} {
		if !b.g.InBounds(exit) {
			return fmt.Errorf("%w: stair exit %s", core.ErrOutOfBounds, exit)
		}
	}
	lower, err := b.generic(lowerC)
	if err != nil {
		return err
	}
	upper, err := b.generic(upperC)
	if err != nil {
		return err
	}

	if err = b.g.SetCategory(lower, core.Stairs); err != nil {
		return err
	}
	if err = b.g.SetCategory(upper, core.Stairs); err != nil {
		return err
	}
	if err = b.g.LinkBoth(lower, upper, core.UpStairs, core.WeightStairs); err != nil {
		return err
	}
	b.lockLanding(lower, core.UpStairs, core.Left)
	b.lockLanding(upper, core.DownStairs, core.Right)

	b.stairs = append(b.stairs, StairPair{Lower: lower, Upper: upper})
	b.log.Debug("stairs placed", "lower", lowerC.String(), "upper", upperC.String())
	return nil
}

// lockLanding drops every link of id whose direction is not in keep.
func (b *Building) lockLanding(id core.NodeID, keep ...core.Direction) {
	links := append([]core.Link(nil), b.g.Neighbors(id)...)
	for _, l := range links {
		if !containsDir(keep, l.Dir) {
			b.g.Unlink(id, l.Dir)
		}
	}
}

func containsDir(ds []core.Direction, d core.Direction) bool {
	for _, x := range ds {
		if x == d {
			return true
		}
	}
	return false
}

// PlaceObstacle provisionally turns c into an obstacle. The placement is
// rolled back, and placed is false, when any store would become unreachable
// from the start. Without a start the placement is accepted unchecked.
func (b *Building) PlaceObstacle(c core.Coord) (placed bool, err error) {
	id, err := b.generic(c)
	if err != nil {
		return false, err
	}

	snap := b.g.SnapshotAround(id)
	if err = b.g.SetCategory(id, core.Obstacle); err != nil {
		return false, err
	}
	if b.start == core.None {
		return true, nil
	}

	ok, err := b.checker.AllReachable(b.start, b.stores)
	if err != nil {
		b.g.Restore(snap)
		return false, err
	}
	if !ok {
		b.g.Restore(snap)
		b.rejected++
		b.log.Debug("obstacle rejected", "at", c.String())
		return false, nil
	}
	return true, nil
}

// AssignGoal puts the item in a uniformly random store.
func (b *Building) AssignGoal() (core.NodeID, error) {
	if b.rng == nil {
		return core.None, ErrNeedRandSource
	}
	if len(b.stores) == 0 {
		return core.None, fmt.Errorf("%w: no stores to hold the item", ErrNoSite)
	}
	id := b.stores[b.rng.Intn(len(b.stores))]
	return id, b.SetGoal(id)
}

// SetGoal puts the item in store id and removes it from any previous store.
func (b *Building) SetGoal(id core.NodeID) error {
	n := b.g.Node(id)
	if n == nil {
		return fmt.Errorf("%w: node %d", core.ErrOutOfBounds, id)
	}
	if n.Category != core.Store {
		return fmt.Errorf("%w: %s is %s", ErrNotStore, n.Coord, n.Category)
	}
	if prev := b.g.Node(b.goal); prev != nil {
		prev.HasItem = false
	}
	n.HasItem = true
	b.goal = id
	b.log.Debug("goal assigned", "store", n.Coord.String())
	return nil
}
