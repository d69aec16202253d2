// SPDX-License-Identifier: MIT
// Package: mallpath/core
//
// types.go — Coord, Category, Direction, Link, Node and Graph declarations,
// sentinel errors and the canonical link weights.

package core

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadDimensions indicates rows, cols or floors below 1.
	ErrBadDimensions = errors.New("core: dimensions must be positive")

	// ErrOutOfBounds indicates a coordinate or NodeID outside the arena.
	// It is deliberately distinct from any "no path" outcome.
	ErrOutOfBounds = errors.New("core: coordinate out of bounds")

	// ErrObstacleLink indicates an attempt to link from or to an obstacle.
	ErrObstacleLink = errors.New("core: obstacle cannot carry links")

	// ErrBrokenPath indicates two consecutive path nodes with no connecting link.
	ErrBrokenPath = errors.New("core: path nodes are not linked")
)

// Canonical link weights.
const (
	// WeightPlanar is the cost of a move to a same-floor neighbour.
	WeightPlanar = 1.0
	// WeightElevatorPerFloor is the cost of riding an elevator one floor.
	WeightElevatorPerFloor = 1.5
	// WeightStairs is the cost of one flight of stairs.
	WeightStairs = 2.5
)

// Inf is the cost used for "unreachable".
var Inf = math.Inf(1)

// ElevatorWeight returns the elevator cost for traversing the given number of floors.
func ElevatorWeight(floors int) float64 {
	if floors < 0 {
		floors = -floors
	}
	return WeightElevatorPerFloor * float64(floors)
}

// Coord identifies a cell by row, column and floor index.
type Coord struct {
	Row, Col, Floor int
}

// Less orders coordinates by row, then column, then floor.
// Used only for deterministic tie-breaking.
func (c Coord) Less(o Coord) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	if c.Col != o.Col {
		return c.Col < o.Col
	}
	return c.Floor < o.Floor
}

// String renders the coordinate as "(row,col,floor)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.Row, c.Col, c.Floor)
}

// Manhattan returns |Δrow| + |Δcol| + |Δfloor| with all three axes weighted equally.
func Manhattan(a, b Coord) float64 {
	return float64(abs(a.Row-b.Row) + abs(a.Col-b.Col) + abs(a.Floor-b.Floor))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Category tags the role of a node.
type Category uint8

const (
	// Generic is an ordinary walkable cell.
	Generic Category = iota
	// Store is a destination that may carry the target item.
	Store
	// Elevator is a cell of a building-wide elevator column.
	Elevator
	// Stairs is one landing of a flight of stairs.
	Stairs
	// Obstacle is a blocked cell with no links.
	Obstacle
	// Start is the agent's entrance.
	Start
)

var categoryNames = [...]string{
	Generic:  "generic",
	Store:    "store",
	Elevator: "elevator",
	Stairs:   "stairs",
	Obstacle: "obstacle",
	Start:    "start",
}

// String returns the lower-case category name.
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// Traversable reports whether links may start or end at a node of this category.
func (c Category) Traversable() bool { return c != Obstacle }

// Direction labels a link.
type Direction uint8

const (
	// Up moves to row-1 on the same floor.
	Up Direction = iota
	// Down moves to row+1 on the same floor.
	Down
	// Left moves to col-1 on the same floor.
	Left
	// Right moves to col+1 on the same floor.
	Right
	// UpFloor rides an elevator to the next floor.
	UpFloor
	// DownFloor rides an elevator to the previous floor.
	DownFloor
	// UpStairs climbs a flight of stairs.
	UpStairs
	// DownStairs descends a flight of stairs.
	DownStairs
)

var directionNames = [...]string{
	Up:         "up",
	Down:       "down",
	Left:       "left",
	Right:      "right",
	UpFloor:    "up_floor",
	DownFloor:  "down_floor",
	UpStairs:   "up_stairs",
	DownStairs: "down_stairs",
}

// PlanarDirections lists the four same-floor moves in wiring order.
var PlanarDirections = [4]Direction{Up, Down, Left, Right}

// String returns the direction label.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// Opposite returns the direction that undoes d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	case UpFloor:
		return DownFloor
	case DownFloor:
		return UpFloor
	case UpStairs:
		return DownStairs
	default:
		return UpStairs
	}
}

// Planar reports whether d stays on the same floor.
func (d Direction) Planar() bool { return d <= Right }

// Offset returns the (Δrow, Δcol) of a planar direction; vertical directions return (0,0).
func (d Direction) Offset() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

// NodeID is the dense arena index of a node.
type NodeID int32

// None is the sentinel "no node" value.
const None NodeID = -1

// Link is a directed, weighted edge from its owning node to To.
type Link struct {
	Dir    Direction
	To     NodeID
	Weight float64
}

// Node is a graph vertex. Equality and hashing derive from Coord,
// which is one-to-one with ID inside a Graph.
type Node struct {
	ID       NodeID
	Coord    Coord
	Category Category
	// HasItem is meaningful only for stores.
	HasItem bool

	links []Link
}

// Graph is the arena holding every node of a facility.
type Graph struct {
	rows, cols, floors int
	nodes              []Node
}
