package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mallpath/astar"
	"github.com/katalvlaran/mallpath/builder"
	"github.com/katalvlaran/mallpath/core"
	"github.com/katalvlaran/mallpath/render"
)

func at(r, c, f int) core.Coord { return core.Coord{Row: r, Col: c, Floor: f} }

func TestFloor_WithPath(t *testing.T) {
	b, err := builder.NewBuilding(3, 3, 1)
	require.NoError(t, err)
	require.NoError(t, b.PlaceStart(at(0, 0, 0)))
	require.NoError(t, b.PlaceStore(at(2, 2, 0)))
	require.NoError(t, b.PlaceStore(at(0, 2, 0)))
	require.NoError(t, b.SetGoal(b.Stores()[0]))
	placed, err := b.PlaceObstacle(at(1, 1, 0))
	require.NoError(t, err)
	require.True(t, placed)

	res, err := astar.Plan(b.Graph(), b.Start(), b.GoalStore())
	require.NoError(t, err)
	require.True(t, res.Found())

	got, err := render.Floor(b.Graph(), 0, res.Path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "# ", lines[1][2:4])
	assert.Equal(t, byte('A'), lines[0][0])
	assert.Equal(t, byte('S'), lines[0][4])
	assert.Equal(t, byte('G'), lines[2][4])
	generic := 0
	for _, id := range res.Path {
		if b.Graph().Node(id).Category == core.Generic {
			generic++
		}
	}
	assert.Equal(t, generic, strings.Count(got, "*"))
	assert.GreaterOrEqual(t, generic, 2)
}

func TestFloor_BadFloor(t *testing.T) {
	g, err := core.NewGraph(2, 2, 1)
	require.NoError(t, err)
	_, err = render.Floor(g, 1, nil)
	assert.ErrorIs(t, err, render.ErrBadFloor)
	_, err = render.Floor(nil, 0, nil)
	assert.ErrorIs(t, err, render.ErrBadFloor)
}

func TestBuilding_Headers(t *testing.T) {
	b, err := builder.NewBuilding(3, 3, 2)
	require.NoError(t, err)
	require.NoError(t, b.PlaceElevator(1, 1))

	var buf bytes.Buffer
	require.NoError(t, render.Building(&buf, b.Graph(), nil))
	out := buf.String()
	assert.Contains(t, out, "--- Floor 0 ---\n. . .\n. E .\n")
	assert.Contains(t, out, "\n--- Floor 1 ---\n")
	assert.Equal(t, 2, strings.Count(out, "E"))
}
