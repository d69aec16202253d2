// SPDX-License-Identifier: MIT
// Package: mallpath/builder
//
// floor.go — per-level view over the arena: perimeter ring and edge helpers.

package builder

import "github.com/katalvlaran/mallpath/core"

// Floor is a read-only view over one level of the building.
type Floor struct {
	Index int
	Rows  int
	Cols  int

	perimeter []core.Coord
}

func newFloor(index, rows, cols int) Floor {
	return Floor{Index: index, Rows: rows, Cols: cols, perimeter: ring(index, rows, cols)}
}

// ring lists the outer cells clockwise from (0,0), each exactly once.
func ring(floor, rows, cols int) []core.Coord {
	out := make([]core.Coord, 0, 2*(rows+cols))
	seen := make(map[[2]int]bool, 2*(rows+cols))
	add := func(r, c int) {
		k := [2]int{r, c}
		if seen[k] {
			return
		}
		seen[k] = true
		out = append(out, core.Coord{Row: r, Col: c, Floor: floor})
	}
	for c := 0; c < cols; c++ {
		add(0, c)
	}
	for r := 1; r < rows; r++ {
		add(r, cols-1)
	}
	for c := cols - 2; c >= 0; c-- {
		add(rows-1, c)
	}
	for r := rows - 2; r >= 1; r-- {
		add(r, 0)
	}
	return out
}

// Perimeter returns a copy of the outer ring, clockwise from (0,0).
func (f Floor) Perimeter() []core.Coord {
	out := make([]core.Coord, len(f.perimeter))
	copy(out, f.perimeter)
	return out
}

// IsPerimeter reports whether (row, col) lies on the outer ring.
func (f Floor) IsPerimeter(row, col int) bool {
	if row < 0 || row >= f.Rows || col < 0 || col >= f.Cols {
		return false
	}
	return row == 0 || row == f.Rows-1 || col == 0 || col == f.Cols-1
}

// IsCorner reports whether (row, col) is one of the four corners.
func (f Floor) IsCorner(row, col int) bool {
	return (row == 0 || row == f.Rows-1) && (col == 0 || col == f.Cols-1)
}

// IsInterior reports whether (row, col) is in bounds and off the perimeter.
func (f Floor) IsInterior(row, col int) bool {
	return row > 0 && row < f.Rows-1 && col > 0 && col < f.Cols-1
}

// Inward returns the direction from an edge cell toward the interior.
// Top and bottom rows take precedence over side columns, so corners
// resolve vertically. Interior cells report false.
func (f Floor) Inward(row, col int) (core.Direction, bool) {
	switch {
	case row == 0:
		return core.Down, true
	case row == f.Rows-1:
		return core.Up, true
	case col == 0:
		return core.Right, true
	case col == f.Cols-1:
		return core.Left, true
	}
	return core.Up, false
}
