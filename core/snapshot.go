// File: snapshot.go
// Role: Minimal transactions for provisional placements.
// Contract:
//   - Snapshot deep-copies category, item flag and links of the listed nodes.
//   - Restore writes them back verbatim; nodes outside the snapshot are untouched.
//   - Keep the scope small: the mutated cell plus its planar neighbours is enough
//     for any single-cell re-tag performed through this package.

package core

// Snapshot is a saved copy of a few nodes' mutable state.
type Snapshot struct {
	saved []Node
}

// Snapshot captures the current state of ids. Invalid IDs are skipped and
// duplicates are captured once.
func (g *Graph) Snapshot(ids ...NodeID) Snapshot {
	s := Snapshot{saved: make([]Node, 0, len(ids))}
	for _, id := range ids {
		if !g.Valid(id) || s.has(id) {
			continue
		}
		n := g.nodes[id]
		links := make([]Link, len(n.links), cap(n.links))
		copy(links, n.links)
		n.links = links
		s.saved = append(s.saved, n)
	}
	return s
}

// SnapshotAround captures id and its planar neighbours plus every node id links to.
func (g *Graph) SnapshotAround(id NodeID) Snapshot {
	if !g.Valid(id) {
		return Snapshot{}
	}
	ids := append([]NodeID{id}, g.planarNeighbors(id)...)
	for _, l := range g.nodes[id].links {
		ids = append(ids, l.To)
	}
	return g.Snapshot(ids...)
}

// Restore writes the captured state back into g.
func (g *Graph) Restore(s Snapshot) {
	for _, n := range s.saved {
		links := make([]Link, len(n.links), cap(n.links))
		copy(links, n.links)
		n.links = links
		g.nodes[n.ID] = n
	}
}

// Len returns the number of captured nodes.
func (s Snapshot) Len() int { return len(s.saved) }

func (s Snapshot) has(id NodeID) bool {
	for _, n := range s.saved {
		if n.ID == id {
			return true
		}
	}
	return false
}
