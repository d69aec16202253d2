package bfs

import "github.com/katalvlaran/mallpath/core"

// Components partitions the traversable nodes of the graph into connected
// regions ("islands"), each listed in BFS order from its lowest id. Regions
// are ordered by their lowest id. A fully assembled facility has exactly one.
//
// Time:   O(V + E).
// Memory: O(V) for the output; the Checker's buffers are reused.
func (c *Checker) Components() [][]core.NodeID {
	var comps [][]core.NodeID
	assigned := make([]bool, c.graph.Len())

	for id := core.NodeID(0); int(id) < c.graph.Len(); id++ {
		if assigned[id] || !c.graph.Node(id).Traversable() {
			continue
		}
		_, _ = c.Walk(id) // id is in range
		comp := make([]core.NodeID, len(c.queue))
		copy(comp, c.queue)
		for _, v := range comp {
			assigned[v] = true
		}
		comps = append(comps, comp)
	}
	return comps
}

// Components is a one-shot Checker.Components.
func Components(g *core.Graph) ([][]core.NodeID, error) {
	c, err := NewChecker(g)
	if err != nil {
		return nil, err
	}
	return c.Components(), nil
}
