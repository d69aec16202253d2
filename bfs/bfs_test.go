package bfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mallpath/bfs"
	"github.com/katalvlaran/mallpath/core"
)

// planarGrid links every planar neighbour pair on every floor.
func planarGrid(t testing.TB, rows, cols, floors int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(rows, cols, floors)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	for id := core.NodeID(0); int(id) < g.Len(); id++ {
		for _, d := range core.PlanarDirections {
			if nb, ok := g.PlanarNeighbor(id, d); ok {
				if err := g.Link(id, nb, d, core.WeightPlanar); err != nil {
					t.Fatalf("Link: %v", err)
				}
			}
		}
	}
	return g
}

func at(g *core.Graph, r, c, f int) core.NodeID {
	return g.MustID(core.Coord{Row: r, Col: c, Floor: f})
}

func TestChecker_Errors(t *testing.T) {
	if _, err := bfs.NewChecker(nil); !errors.Is(err, bfs.ErrNilGraph) {
		t.Errorf("nil graph: want ErrNilGraph, got %v", err)
	}
	_, err := bfs.Reachable(nil, 0, nil)
	assert.ErrorIs(t, err, bfs.ErrNilGraph)

	g := planarGrid(t, 2, 2, 1)
	c, err := bfs.NewChecker(g)
	require.NoError(t, err)

	_, err = c.Walk(42)
	assert.ErrorIs(t, err, bfs.ErrNodeOutOfRange)
	_, err = c.AllReachable(0, []core.NodeID{3, 99})
	assert.ErrorIs(t, err, bfs.ErrNodeOutOfRange)
}

func TestChecker_WalkWholeFloor(t *testing.T) {
	g := planarGrid(t, 3, 3, 1)
	c, err := bfs.NewChecker(g)
	require.NoError(t, err)

	n, err := c.Walk(at(g, 0, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 9, n)
	assert.Equal(t, 9, c.Count())
	assert.True(t, c.Visited(at(g, 2, 2, 0)))
	assert.False(t, c.Visited(-1))
}

func TestChecker_FloorsDisconnectedWithoutVerticalLinks(t *testing.T) {
	g := planarGrid(t, 2, 2, 2)
	start := at(g, 0, 0, 0)
	upper := at(g, 1, 1, 1)

	ok, err := bfs.Reachable(g, start, []core.NodeID{upper})
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, g.LinkBoth(at(g, 0, 0, 0), at(g, 0, 0, 1), core.UpFloor, core.ElevatorWeight(1)))
	ok, err = bfs.Reachable(g, start, []core.NodeID{upper})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestChecker_ObstacleCutsReachability(t *testing.T) {
	g := planarGrid(t, 3, 3, 1)
	start := at(g, 0, 0, 0)
	store := at(g, 2, 2, 0)
	c, err := bfs.NewChecker(g)
	require.NoError(t, err)

	require.NoError(t, g.SetCategory(at(g, 1, 1, 0), core.Obstacle))
	require.NoError(t, g.SetCategory(at(g, 0, 1, 0), core.Obstacle))
	ok, err := c.AllReachable(start, []core.NodeID{store})
	require.NoError(t, err)
	assert.True(t, ok, "path down the left column must remain")

	require.NoError(t, g.SetCategory(at(g, 1, 0, 0), core.Obstacle))
	ok, err = c.AllReachable(start, []core.NodeID{store})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, c.Count(), "only the start itself remains reachable")
}

func TestChecker_EpochReuse(t *testing.T) {
	g := planarGrid(t, 1, 4, 1)
	c, err := bfs.NewChecker(g)
	require.NoError(t, err)

	_, err = c.Walk(at(g, 0, 0, 0))
	require.NoError(t, err)
	assert.True(t, c.Visited(at(g, 0, 3, 0)))

	// Cut the row in half; the stale stamp from the first walk must not leak.
	assert.True(t, g.Unlink(at(g, 0, 1, 0), core.Right))
	n, err := c.Walk(at(g, 0, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.False(t, c.Visited(at(g, 0, 3, 0)))
}

func TestChecker_ObstacleStartAndEmptyGoals(t *testing.T) {
	g := planarGrid(t, 2, 2, 1)
	ok, err := bfs.Reachable(g, 0, nil)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, g.SetCategory(0, core.Obstacle))
	c, err := bfs.NewChecker(g)
	require.NoError(t, err)
	n, err := c.Walk(0)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.False(t, c.Visited(0))
}

func TestChecker_Components(t *testing.T) {
	g := planarGrid(t, 3, 3, 2)
	// A wall down the middle column splits floor 0; floor 1 stays whole.
	for r := 0; r < 3; r++ {
		require.NoError(t, g.SetCategory(at(g, r, 1, 0), core.Obstacle))
	}

	comps, err := bfs.Components(g)
	require.NoError(t, err)
	require.Len(t, comps, 3)
	assert.Len(t, comps[0], 3)
	assert.Equal(t, at(g, 0, 0, 0), comps[0][0])
	assert.Len(t, comps[1], 3)
	assert.Equal(t, at(g, 0, 2, 0), comps[1][0])
	assert.Len(t, comps[2], 9)

	// One elevator-style link joins all three.
	require.NoError(t, g.LinkBoth(at(g, 0, 0, 0), at(g, 0, 0, 1), core.UpFloor, core.ElevatorWeight(1)))
	require.NoError(t, g.LinkBoth(at(g, 0, 2, 0), at(g, 0, 2, 1), core.UpFloor, core.ElevatorWeight(1)))
	comps, err = bfs.Components(g)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 15)

	_, err = bfs.Components(nil)
	assert.ErrorIs(t, err, bfs.ErrNilGraph)
}
