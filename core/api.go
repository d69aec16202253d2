// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructor and read-only accessors over the node arena.
// Policy:
//   - No algorithms here; coordinate <-> NodeID conversion is O(1).
//   - Out-of-range lookups return ErrOutOfBounds, never a zero Node.

package core

import "fmt"

// NewGraph allocates rows×cols×floors Generic nodes with no links.
// Node IDs are assigned floor-major, then row-major.
//
// Returns ErrBadDimensions if any dimension is below 1.
// Complexity: O(rows·cols·floors).
func NewGraph(rows, cols, floors int) (*Graph, error) {
	if rows < 1 || cols < 1 || floors < 1 {
		return nil, fmt.Errorf("%w: rows=%d cols=%d floors=%d", ErrBadDimensions, rows, cols, floors)
	}
	g := &Graph{
		rows:   rows,
		cols:   cols,
		floors: floors,
		nodes:  make([]Node, rows*cols*floors),
	}
	for f := 0; f < floors; f++ {
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := g.index(r, c, f)
				g.nodes[id] = Node{
					ID:    id,
					Coord: Coord{Row: r, Col: c, Floor: f},
					links: make([]Link, 0, 4),
				}
			}
		}
	}
	return g, nil
}

// Rows returns the number of rows per floor.
func (g *Graph) Rows() int { return g.rows }

// Cols returns the number of columns per floor.
func (g *Graph) Cols() int { return g.cols }

// Floors returns the number of floors.
func (g *Graph) Floors() int { return g.floors }

// Len returns the total number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// InBounds reports whether c lies inside the arena.
func (g *Graph) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows &&
		c.Col >= 0 && c.Col < g.cols &&
		c.Floor >= 0 && c.Floor < g.floors
}

// Valid reports whether id addresses a node of g.
func (g *Graph) Valid(id NodeID) bool { return id >= 0 && int(id) < len(g.nodes) }

// ID converts a coordinate to its NodeID.
func (g *Graph) ID(c Coord) (NodeID, error) {
	if !g.InBounds(c) {
		return None, fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	return g.index(c.Row, c.Col, c.Floor), nil
}

// MustID is ID for coordinates the caller has already bounds-checked.
// It panics on an out-of-bounds coordinate.
func (g *Graph) MustID(c Coord) NodeID {
	id, err := g.ID(c)
	if err != nil {
		panic(err)
	}
	return id
}

// Node returns the node with the given ID, or nil if id is out of range.
// The pointer stays valid for the lifetime of g.
func (g *Graph) Node(id NodeID) *Node {
	if !g.Valid(id) {
		return nil
	}
	return &g.nodes[id]
}

// NodeAt returns the node at coordinate c.
func (g *Graph) NodeAt(c Coord) (*Node, error) {
	id, err := g.ID(c)
	if err != nil {
		return nil, err
	}
	return &g.nodes[id], nil
}

// Coord returns the coordinate of id. id must be valid.
func (g *Graph) Coord(id NodeID) Coord { return g.nodes[id].Coord }

// Neighbors returns the outgoing links of id in insertion order, or nil for
// an invalid ID. The slice aliases internal storage and must not be modified.
func (g *Graph) Neighbors(id NodeID) []Link {
	if !g.Valid(id) {
		return nil
	}
	return g.nodes[id].links
}

// Stores returns the IDs of every store node in NodeID order.
func (g *Graph) Stores() []NodeID {
	var out []NodeID
	for i := range g.nodes {
		if g.nodes[i].Category == Store {
			out = append(out, g.nodes[i].ID)
		}
	}
	return out
}

// OfCategory returns the IDs of every node tagged cat in NodeID order.
func (g *Graph) OfCategory(cat Category) []NodeID {
	var out []NodeID
	for i := range g.nodes {
		if g.nodes[i].Category == cat {
			out = append(out, g.nodes[i].ID)
		}
	}
	return out
}

// EdgeCount returns the number of directed links in the graph.
func (g *Graph) EdgeCount() int {
	n := 0
	for i := range g.nodes {
		n += len(g.nodes[i].links)
	}
	return n
}

func (g *Graph) index(r, c, f int) NodeID {
	return NodeID(f*g.rows*g.cols + r*g.cols + c)
}
