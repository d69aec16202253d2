// SPDX-License-Identifier: MIT
// Package: mallpath/builder
//
// build.go — procedural assembly of a facility from a Config.
//
// Sequence (each stage draws from the same seeded RNG):
//   1) base floors with planar links
//   2) start on a random floor
//   3) elevator columns (vertical links made while placing)
//   4) stair pairs between every pair of adjacent floors
//   5) stores on every floor
//   6) obstacles on every floor, each one checked for global reachability
//   7) goal assignment
//
// Vertical links exist before stage 6 so the reachability check sees stores
// on every floor, not only the one being furnished.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mallpath/core"
)

// Build generates a facility for cfg. WithSeed or WithRand is required.
func Build(cfg Config, opts ...Option) (*Building, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	// Stage 1: base floors.
	b, err := NewBuilding(cfg.Rows, cfg.Cols, cfg.Floors, opts...)
	if err != nil {
		return nil, err
	}
	if b.rng == nil {
		return nil, ErrNeedRandSource
	}

	// Stage 2: start.
	if err = b.placeRandomStart(); err != nil {
		return nil, err
	}
	// Stage 3: elevators.
	for i := 0; i < cfg.Elevators; i++ {
		if err = b.placeRandomElevator(); err != nil {
			return nil, fmt.Errorf("elevator %d: %w", i, err)
		}
	}
	// Stage 4: stairs.
	for f := 0; f+1 < cfg.Floors; f++ {
		for i := 0; i < cfg.Stairs; i++ {
			if err = b.placeRandomStairs(f); err != nil {
				return nil, fmt.Errorf("stairs %d on floor %d: %w", i, f, err)
			}
		}
	}
	// Stage 5: stores.
	for f := range b.floors {
		if err = b.placeRandomStores(f, cfg.StoresPerFloor); err != nil {
			return nil, err
		}
	}
	ok, err := b.checker.AllReachable(b.start, b.stores)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: a store is unreachable before obstacles", ErrConstructFailed)
	}
	// Stage 6: obstacles.
	for f := range b.floors {
		if err = b.placeRandomObstacles(f, cfg.ObstaclesPerFloor); err != nil {
			return nil, err
		}
	}
	// Stage 7: goal.
	if _, err = b.AssignGoal(); err != nil {
		return nil, err
	}

	b.log.Info("building assembled",
		"rows", cfg.Rows, "cols", cfg.Cols, "floors", cfg.Floors,
		"start", b.g.Coord(b.start).String(),
		"stores", len(b.stores),
		"elevators", len(b.elevators),
		"stairs", len(b.stairs),
		"obstacles", len(b.Obstacles()),
		"rejected", b.rejected,
		"goal", b.g.Coord(b.goal).String(),
	)
	return b, nil
}

// edgeSite reports whether c may host a start, store or elevator: a generic
// perimeter cell, not a corner, whose inward neighbour is free to walk into.
func (b *Building) edgeSite(c core.Coord) bool {
	fl := b.floors[c.Floor]
	if !fl.IsPerimeter(c.Row, c.Col) || fl.IsCorner(c.Row, c.Col) {
		return false
	}
	if b.g.Node(b.g.MustID(c)).Category != core.Generic {
		return false
	}
	d, ok := fl.Inward(c.Row, c.Col)
	if !ok {
		return false
	}
	dr, dc := d.Offset()
	in, err := b.g.NodeAt(core.Coord{Row: c.Row + dr, Col: c.Col + dc, Floor: c.Floor})
	if err != nil {
		return false
	}
	return in.Traversable() && !fixture(in.Category)
}

// fixture reports the categories that block an entry or repel obstacles.
func fixture(cat core.Category) bool {
	switch cat {
	case core.Store, core.Start, core.Elevator, core.Stairs:
		return true
	}
	return false
}

// shuffled returns a random permutation of coords drawn from b.rng.
func (b *Building) shuffled(coords []core.Coord) []core.Coord {
	b.rng.Shuffle(len(coords), func(i, j int) { coords[i], coords[j] = coords[j], coords[i] })
	return coords
}

func (b *Building) placeRandomStart() error {
	f := b.rng.Intn(len(b.floors))
	for _, c := range b.shuffled(b.floors[f].Perimeter()) {
		if b.edgeSite(c) {
			return b.PlaceStart(c)
		}
	}
	return fmt.Errorf("%w: start on floor %d", ErrNoSite, f)
}

func (b *Building) placeRandomElevator() error {
	for _, c := range b.shuffled(b.floors[0].Perimeter()) {
		if b.elevatorSite(c.Row, c.Col) {
			return b.PlaceElevator(c.Row, c.Col)
		}
	}
	return fmt.Errorf("%w: no free elevator column", ErrNoSite)
}

// elevatorSite requires an edge site at (row, col) on every floor.
func (b *Building) elevatorSite(row, col int) bool {
	for f := range b.floors {
		if !b.edgeSite(core.Coord{Row: row, Col: col, Floor: f}) {
			return false
		}
	}
	return true
}

func (b *Building) placeRandomStairs(floor int) error {
	rows, cols := b.g.Rows(), b.g.Cols()
	cands := make([]core.Coord, 0, rows*cols)
	for r := 1; r < rows-1; r++ {
		for c := 1; c+2 < cols; c++ {
			cands = append(cands, core.Coord{Row: r, Col: c, Floor: floor})
		}
	}
	for _, c := range b.shuffled(cands) {
		if b.stairSite(c) {
			return b.PlaceStairs(c.Row, c.Col, c.Floor)
		}
	}
	return fmt.Errorf("%w: no free stair pair", ErrNoSite)
}

// stairSite requires both landings, both exits and every planar neighbour of
// the landings to be generic, so pairs never touch each other or the edge fixtures.
func (b *Building) stairSite(lower core.Coord) bool {
	upper := core.Coord{Row: lower.Row, Col: lower.Col + 1, Floor: lower.Floor + 1}
	for _, c := range []core.Coord{lower, upper} {
		n, err := b.g.NodeAt(c)
		if err != nil || n.Category != core.Generic {
			return false
		}
		for _, d := range core.PlanarDirections {
			nb, ok := b.g.PlanarNeighbor(n.ID, d)
			if ok && b.g.Node(nb).Category != core.Generic {
				return false
			}
		}
	}
	return true
}

func (b *Building) placeRandomStores(floor, count int) error {
	sites := b.shuffled(b.floors[floor].Perimeter())
	placed := 0
	for _, c := range sites {
		if placed == count {
			break
		}
		if !b.edgeSite(c) {
			continue
		}
		if err := b.PlaceStore(c); err != nil {
			return err
		}
		placed++
	}
	if placed < count {
		return fmt.Errorf("%w: %d of %d stores on floor %d", ErrNoSite, placed, count, floor)
	}
	return nil
}

// obstacleCandidates lists generic interior cells with no fixture as a planar neighbour.
func (b *Building) obstacleCandidates(floor int) []core.Coord {
	fl := b.floors[floor]
	var out []core.Coord
	for r := 1; r < fl.Rows-1; r++ {
		for c := 1; c < fl.Cols-1; c++ {
			coord := core.Coord{Row: r, Col: c, Floor: floor}
			id := b.g.MustID(coord)
			if b.g.Node(id).Category != core.Generic {
				continue
			}
			free := true
			for _, d := range core.PlanarDirections {
				nb, ok := b.g.PlanarNeighbor(id, d)
				if ok && fixture(b.g.Node(nb).Category) {
					free = false
					break
				}
			}
			if free {
				out = append(out, coord)
			}
		}
	}
	return out
}

func (b *Building) placeRandomObstacles(floor, count int) error {
	cands := b.obstacleCandidates(floor)
	if count <= 0 {
		count = int(math.Floor(b.density * float64(len(cands))))
	}
	placed := 0
	for _, c := range b.shuffled(cands) {
		if placed == count {
			break
		}
		ok, err := b.PlaceObstacle(c)
		if err != nil {
			return err
		}
		if ok {
			placed++
		}
	}
	b.log.Debug("floor furnished", "floor", floor, "obstacles", placed, "wanted", count)
	return nil
}
