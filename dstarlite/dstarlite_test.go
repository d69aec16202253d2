package dstarlite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mallpath/astar"
	"github.com/katalvlaran/mallpath/builder"
	"github.com/katalvlaran/mallpath/core"
	"github.com/katalvlaran/mallpath/dijkstra"
	"github.com/katalvlaran/mallpath/dstarlite"
)

func at(r, c, f int) core.Coord { return core.Coord{Row: r, Col: c, Floor: f} }

// farthestStore returns the store with the largest finite optimal cost from the start.
func farthestStore(t *testing.T, b *builder.Building) core.NodeID {
	t.Helper()
	dist, _, err := dijkstra.Dijkstra(b.Graph(), dijkstra.Source(b.Start()))
	require.NoError(t, err)
	best := core.None
	for _, s := range b.Stores() {
		if best == core.None || dist[s] > dist[best] {
			best = s
		}
	}
	return best
}

var mall = builder.Config{
	Rows: 12, Cols: 12, Floors: 3,
	Elevators: 2, Stairs: 2, StoresPerFloor: 5,
}

func TestPlan_OpenSquare(t *testing.T) {
	b, err := builder.NewBuilding(3, 3, 1)
	require.NoError(t, err)
	g := b.Graph()
	start, goal := g.MustID(at(0, 0, 0)), g.MustID(at(2, 2, 0))

	for name, opts := range map[string][]dstarlite.Option{
		"Full":      nil,
		"EarlyStop": {dstarlite.WithEarlyStop()},
	} {
		t.Run(name, func(t *testing.T) {
			res, err := dstarlite.Plan(g, start, goal, opts...)
			require.NoError(t, err)
			require.True(t, res.Found())
			assert.Len(t, res.Path, 5)
			assert.Equal(t, 4.0, res.Cost)
			assert.Equal(t, start, res.Path[0])
			assert.Equal(t, goal, res.Path[4])
			assert.Positive(t, res.Expansions)
		})
	}
}

func TestPlan_ElevatorScenario(t *testing.T) {
	b, err := builder.NewBuilding(3, 3, 2)
	require.NoError(t, err)
	g := b.Graph()
	ground, above := g.MustID(at(0, 0, 0)), g.MustID(at(0, 0, 1))
	require.NoError(t, g.LinkBoth(ground, above, core.UpFloor, core.ElevatorWeight(1)))

	res, err := dstarlite.Plan(g, ground, above)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{ground, above}, res.Path)
	assert.InDelta(t, 1.5, res.Cost, 1e-9)
}

func TestPlan_IsolatedStartAndObstacleGoal(t *testing.T) {
	g, err := core.NewGraph(3, 3, 1)
	require.NoError(t, err)
	res, err := dstarlite.Plan(g, 0, 8)
	require.NoError(t, err)
	assert.False(t, res.Found())

	b, err := builder.NewBuilding(3, 3, 1)
	require.NoError(t, err)
	mid := b.Graph().MustID(at(1, 1, 0))
	require.NoError(t, b.Graph().SetCategory(mid, core.Obstacle))
	res, err = dstarlite.Plan(b.Graph(), 0, mid)
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.Zero(t, res.Expansions)
}

func TestPlan_AgreesWithAStar(t *testing.T) {
	for _, seed := range []int64{1, 4, 9} {
		b, err := builder.Build(mall, builder.WithSeed(seed))
		require.NoError(t, err)
		g := b.Graph()
		for _, s := range b.Stores() {
			want, err := astar.Plan(g, b.Start(), s)
			require.NoError(t, err)

			full, err := dstarlite.Plan(g, b.Start(), s)
			require.NoError(t, err)
			assert.InDelta(t, want.Cost, full.Cost, 1e-9, "seed %d store %s", seed, g.Coord(s))

			early, err := dstarlite.Plan(g, b.Start(), s, dstarlite.WithEarlyStop())
			require.NoError(t, err)
			assert.InDelta(t, want.Cost, early.Cost, 1e-9, "early stop, seed %d store %s", seed, g.Coord(s))
			assert.LessOrEqual(t, early.Expansions, full.Expansions)

			cost, err := g.PathCost(full.Path)
			require.NoError(t, err)
			assert.InDelta(t, full.Cost, cost, 1e-9)
		}
	}
}

func TestPlanner_UpdateEdgeMatchesColdSolve(t *testing.T) {
	b, err := builder.Build(mall, builder.WithSeed(2))
	require.NoError(t, err)
	g := b.Graph()
	goal := farthestStore(t, b)

	p, err := dstarlite.New(g, b.Start(), goal)
	require.NoError(t, err)
	first, err := p.Replan()
	require.NoError(t, err)
	require.True(t, first.Found())
	require.GreaterOrEqual(t, len(first.Path), 3)

	i := len(first.Path) / 2
	l, ok := g.Node(first.Path[i]).LinkTo(first.Path[i+1])
	require.True(t, ok)

	require.NoError(t, p.UpdateEdge(first.Path[i], l.Dir, core.Inf))
	warm, err := p.Replan()
	require.NoError(t, err)

	cold, err := dstarlite.New(g, b.Start(), goal)
	require.NoError(t, err)
	require.NoError(t, cold.UpdateEdge(first.Path[i], l.Dir, core.Inf))
	want, err := cold.Replan()
	require.NoError(t, err)

	assert.Equal(t, want.Found(), warm.Found())
	assert.InDelta(t, want.Cost, warm.Cost, 1e-9)
	assert.GreaterOrEqual(t, warm.Cost, first.Cost)
	assert.Equal(t, first.Expansions+warm.Expansions, p.Expansions())
}

func TestPlanner_MoveStart(t *testing.T) {
	b, err := builder.Build(mall, builder.WithSeed(6))
	require.NoError(t, err)
	g := b.Graph()
	goal := farthestStore(t, b)

	p, err := dstarlite.New(g, b.Start(), goal)
	require.NoError(t, err)
	first, err := p.Replan()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(first.Path), 3)

	next := first.Path[2]
	require.NoError(t, p.MoveStart(next))
	assert.Equal(t, next, p.Start())
	moved, err := p.Replan()
	require.NoError(t, err)

	want, err := dstarlite.Plan(g, next, goal)
	require.NoError(t, err)
	assert.InDelta(t, want.Cost, moved.Cost, 1e-9)
	assert.Equal(t, next, moved.Path[0])

	assert.ErrorIs(t, p.MoveStart(-1), dstarlite.ErrNodeOutOfRange)
}

func TestPlanner_Inconsistent(t *testing.T) {
	// Blocking a link without replanning leaves stale g values behind.
	g, err := core.NewGraph(1, 3, 1)
	require.NoError(t, err)
	require.NoError(t, g.LinkBoth(0, 1, core.Right, 1))
	require.NoError(t, g.LinkBoth(1, 2, core.Right, 1))

	p, err := dstarlite.New(g, 0, 2)
	require.NoError(t, err)
	require.NoError(t, p.ComputeShortestPath())
	assert.Equal(t, 2.0, p.G(0))
	require.NoError(t, p.UpdateEdge(1, core.Right, core.Inf))
	_, err = p.Path()
	assert.ErrorIs(t, err, dstarlite.ErrInconsistent, "cycle 0→1→0")

	// One-way corridor: the only way on is blocked, so the walk dead-ends.
	oneWay, err := core.NewGraph(1, 3, 1)
	require.NoError(t, err)
	require.NoError(t, oneWay.Link(0, 1, core.Right, 1))
	require.NoError(t, oneWay.Link(1, 2, core.Right, 1))
	p, err = dstarlite.New(oneWay, 0, 2)
	require.NoError(t, err)
	require.NoError(t, p.ComputeShortestPath())
	require.NoError(t, p.UpdateEdge(1, core.Right, core.Inf))
	_, err = p.Path()
	assert.ErrorIs(t, err, dstarlite.ErrInconsistent)

	// Replanning restores consistency: the goal is simply unreachable.
	res, err := p.Replan()
	require.NoError(t, err)
	assert.False(t, res.Found())
}

func TestPlanner_Errors(t *testing.T) {
	_, err := dstarlite.New(nil, 0, 0)
	assert.ErrorIs(t, err, dstarlite.ErrNilGraph)

	g, err := core.NewGraph(1, 3, 1)
	require.NoError(t, err)
	_, err = dstarlite.Plan(g, 0, 3)
	assert.ErrorIs(t, err, dstarlite.ErrNodeOutOfRange)

	p, err := dstarlite.New(g, 0, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, p.UpdateEdge(0, core.Right, 2), dstarlite.ErrNoLink)
	assert.ErrorIs(t, p.UpdateEdge(7, core.Right, 2), dstarlite.ErrNodeOutOfRange)

	b, err := builder.NewBuilding(5, 5, 1)
	require.NoError(t, err)
	_, err = dstarlite.Plan(b.Graph(), 0, 24, dstarlite.WithMaxExpansions(3))
	assert.ErrorIs(t, err, dstarlite.ErrExpansionLimit)

	assert.Panics(t, func() { dstarlite.WithMaxExpansions(0) })
}
