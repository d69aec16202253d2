// File: methods_node.go
// Role: Per-node link bookkeeping: AddLink/RemoveLink/Link/Links.
// Determinism:
//   - Links() preserves insertion order; an overwrite keeps the original slot.

package core

// AddLink adds a link in direction dir to target with the given weight.
// If a link with the same direction already exists it is overwritten in
// place (last write wins), so a node never holds two links per direction.
//
// AddLink does not check categories; use Graph.Link for a checked mutation.
// Complexity: O(d), d ≤ 8.
func (n *Node) AddLink(dir Direction, target NodeID, weight float64) {
	for i := range n.links {
		if n.links[i].Dir == dir {
			n.links[i].To = target
			n.links[i].Weight = weight
			return
		}
	}
	n.links = append(n.links, Link{Dir: dir, To: target, Weight: weight})
}

// RemoveLink drops the link in direction dir and reports whether one existed.
// The relative order of the remaining links is preserved.
func (n *Node) RemoveLink(dir Direction) bool {
	for i := range n.links {
		if n.links[i].Dir == dir {
			n.links = append(n.links[:i], n.links[i+1:]...)
			return true
		}
	}
	return false
}

// Link returns the link in direction dir, if any.
func (n *Node) Link(dir Direction) (Link, bool) {
	for _, l := range n.links {
		if l.Dir == dir {
			return l, true
		}
	}
	return Link{}, false
}

// LinkTo returns the first link whose target is to.
func (n *Node) LinkTo(to NodeID) (Link, bool) {
	for _, l := range n.links {
		if l.To == to {
			return l, true
		}
	}
	return Link{}, false
}

// Links returns the node's outgoing links in insertion order.
// The slice aliases internal storage and must not be modified.
func (n *Node) Links() []Link { return n.links }

// Degree returns the number of outgoing links.
func (n *Node) Degree() int { return len(n.links) }

// Traversable reports whether the node may take part in a path.
func (n *Node) Traversable() bool { return n.Category.Traversable() }

// clearLinks drops every outgoing link but keeps the backing array.
func (n *Node) clearLinks() { n.links = n.links[:0] }
