// Package render draws facility floors as ASCII grids, optionally with a
// path overlay. The output is for humans; its format is not stable.
//
// Legend:
//
//	.  walkable cell        #  obstacle
//	A  agent start          S  store
//	G  store with the item  E  elevator
//	T  stair landing        *  path step
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/mallpath/core"
)

// ErrBadFloor is returned when the requested floor does not exist.
var ErrBadFloor = errors.New("render: floor out of range")

// PathMark marks path steps drawn over walkable cells.
const PathMark = '*'

// Symbol returns the glyph for n.
func Symbol(n *core.Node) byte {
	switch n.Category {
	case core.Obstacle:
		return '#'
	case core.Start:
		return 'A'
	case core.Store:
		if n.HasItem {
			return 'G'
		}
		return 'S'
	case core.Elevator:
		return 'E'
	case core.Stairs:
		return 'T'
	default:
		return '.'
	}
}

// Floor renders one floor, one row per line with cells separated by a space.
// Path steps on that floor overwrite generic cells only, so fixtures stay
// readable.
func Floor(g *core.Graph, floor int, path []core.NodeID) (string, error) {
	if g == nil || floor < 0 || floor >= g.Floors() {
		return "", fmt.Errorf("%w: %d", ErrBadFloor, floor)
	}
	onPath := make(map[core.NodeID]bool, len(path))
	for _, id := range path {
		onPath[id] = true
	}

	var sb strings.Builder
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			id := g.MustID(core.Coord{Row: r, Col: c, Floor: floor})
			n := g.Node(id)
			ch := Symbol(n)
			if onPath[id] && n.Category == core.Generic {
				ch = PathMark
			}
			sb.WriteByte(ch)
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// Building writes every floor to w under a "--- Floor N ---" header.
func Building(w io.Writer, g *core.Graph, path []core.NodeID) error {
	if g == nil {
		return fmt.Errorf("%w: nil graph", ErrBadFloor)
	}
	for f := 0; f < g.Floors(); f++ {
		s, err := Floor(g, f, path)
		if err != nil {
			return err
		}
		if f > 0 {
			if _, err = io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err = fmt.Fprintf(w, "--- Floor %d ---\n%s", f, s); err != nil {
			return err
		}
	}
	return nil
}
