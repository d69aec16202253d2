// File: methods_links.go
// Role: Checked link mutations (Link/LinkBoth/Unlink/Isolate), category
//       re-tagging and the PathCost reporting helper.
// AI-HINT (file):
//   - Isolate is the only way a node should become unreachable; it strips
//     in-links from every planar neighbour and every node it linked to.
//   - SetCategory(id, Obstacle) isolates the node as a side effect.

package core

import "fmt"

// Link adds the directed link from→to in direction dir with weight w,
// overwriting any existing link of from in that direction.
//
// Returns ErrOutOfBounds for invalid IDs and ErrObstacleLink when either
// endpoint is an obstacle.
func (g *Graph) Link(from, to NodeID, dir Direction, w float64) error {
	if !g.Valid(from) || !g.Valid(to) {
		return fmt.Errorf("%w: link %d→%d", ErrOutOfBounds, from, to)
	}
	if !g.nodes[from].Traversable() || !g.nodes[to].Traversable() {
		return fmt.Errorf("%w: %s→%s", ErrObstacleLink, g.nodes[from].Coord, g.nodes[to].Coord)
	}
	g.nodes[from].AddLink(dir, to, w)
	return nil
}

// LinkBoth adds a→b in direction dir and b→a in dir.Opposite(), both with weight w.
func (g *Graph) LinkBoth(a, b NodeID, dir Direction, w float64) error {
	if err := g.Link(a, b, dir, w); err != nil {
		return err
	}
	return g.Link(b, a, dir.Opposite(), w)
}

// Unlink removes a's link in direction dir and, if the target links back
// in the opposite direction to a, that back-link as well.
// Reports whether a's link existed.
func (g *Graph) Unlink(a NodeID, dir Direction) bool {
	if !g.Valid(a) {
		return false
	}
	l, ok := g.nodes[a].Link(dir)
	if !ok {
		return false
	}
	g.nodes[a].RemoveLink(dir)
	if back, ok := g.nodes[l.To].Link(dir.Opposite()); ok && back.To == a {
		g.nodes[l.To].RemoveLink(dir.Opposite())
	}
	return true
}

// Isolate removes every outgoing link of id and every link pointing at id
// from its planar neighbours and from the nodes it linked to.
func (g *Graph) Isolate(id NodeID) {
	if !g.Valid(id) {
		return
	}
	n := &g.nodes[id]
	for _, l := range n.links {
		g.dropLinksTo(l.To, id)
	}
	for _, nb := range g.planarNeighbors(id) {
		g.dropLinksTo(nb, id)
	}
	n.clearLinks()
}

// SetCategory re-tags id. Tagging a node as Obstacle isolates it;
// tagging away from Store clears HasItem.
func (g *Graph) SetCategory(id NodeID, cat Category) error {
	if !g.Valid(id) {
		return fmt.Errorf("%w: node %d", ErrOutOfBounds, id)
	}
	n := &g.nodes[id]
	n.Category = cat
	if cat != Store {
		n.HasItem = false
	}
	if cat == Obstacle {
		g.Isolate(id)
	}
	return nil
}

// PathCost sums link weights along consecutive nodes of path.
// An empty or single-node path costs 0. Returns ErrBrokenPath if some
// consecutive pair is not linked.
func (g *Graph) PathCost(path []NodeID) (float64, error) {
	var total float64
	for i := 1; i < len(path); i++ {
		from, to := path[i-1], path[i]
		if !g.Valid(from) || !g.Valid(to) {
			return 0, fmt.Errorf("%w: path step %d", ErrOutOfBounds, i)
		}
		l, ok := g.nodes[from].LinkTo(to)
		if !ok {
			return 0, fmt.Errorf("%w: %s→%s", ErrBrokenPath, g.nodes[from].Coord, g.nodes[to].Coord)
		}
		total += l.Weight
	}
	return total, nil
}

// planarNeighbors returns the in-bounds same-floor neighbours of id.
func (g *Graph) planarNeighbors(id NodeID) []NodeID {
	c := g.nodes[id].Coord
	out := make([]NodeID, 0, 4)
	for _, d := range PlanarDirections {
		dr, dc := d.Offset()
		nc := Coord{Row: c.Row + dr, Col: c.Col + dc, Floor: c.Floor}
		if g.InBounds(nc) {
			out = append(out, g.index(nc.Row, nc.Col, nc.Floor))
		}
	}
	return out
}

// PlanarNeighbor returns the same-floor neighbour of id in direction d.
func (g *Graph) PlanarNeighbor(id NodeID, d Direction) (NodeID, bool) {
	if !g.Valid(id) || !d.Planar() {
		return None, false
	}
	c := g.nodes[id].Coord
	dr, dc := d.Offset()
	nc := Coord{Row: c.Row + dr, Col: c.Col + dc, Floor: c.Floor}
	if !g.InBounds(nc) {
		return None, false
	}
	return g.index(nc.Row, nc.Col, nc.Floor), true
}

func (g *Graph) dropLinksTo(owner, target NodeID) {
	n := &g.nodes[owner]
	kept := n.links[:0]
	for _, l := range n.links {
		if l.To != target {
			kept = append(kept, l)
		}
	}
	n.links = kept
}
