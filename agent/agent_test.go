package agent_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mallpath/agent"
	"github.com/katalvlaran/mallpath/builder"
	"github.com/katalvlaran/mallpath/core"
)

func at(r, c, f int) core.Coord { return core.Coord{Row: r, Col: c, Floor: f} }

func agents(opts ...agent.Option) []agent.Agent {
	return []agent.Agent{
		agent.NewAStar(opts...),
		agent.NewDStarLite(opts...),
		agent.NewMultiGoal(opts...),
	}
}

// decoy returns a 3×3 floor with the start at (0,0), an empty store at
// (0,2) and the item in the store at (2,2).
func decoy(t *testing.T) *builder.Building {
	t.Helper()
	b, err := builder.NewBuilding(3, 3, 1)
	require.NoError(t, err)
	require.NoError(t, b.PlaceStart(at(0, 0, 0)))
	require.NoError(t, b.PlaceStore(at(0, 2, 0)))
	require.NoError(t, b.PlaceStore(at(2, 2, 0)))
	require.NoError(t, b.SetGoal(b.Graph().MustID(at(2, 2, 0))))
	return b
}

func TestAgents_VisitDecoyFirst(t *testing.T) {
	b := decoy(t)
	g := b.Graph()
	near, far := g.MustID(at(0, 2, 0)), g.MustID(at(2, 2, 0))

	for _, a := range agents() {
		t.Run(a.Name(), func(t *testing.T) {
			res, err := a.Run(g, b.Start(), b.Stores())
			require.NoError(t, err)

			require.True(t, res.Found)
			assert.Equal(t, far, res.Goal)
			assert.Equal(t, []core.NodeID{near, far}, res.Visited)
			assert.Empty(t, res.Skipped)
			assert.Equal(t, 2, res.Replans)
			assert.Equal(t, 4, res.Length)
			assert.Equal(t, 4.0, res.Cost)
			assert.Equal(t, b.Start(), res.Path[0])
			assert.Equal(t, far, res.End())
			assert.Contains(t, res.Path, near)
		})
	}
}

func TestAgents_ExpansionCounts(t *testing.T) {
	b := decoy(t)
	g := b.Graph()

	res, err := agent.NewAStar().Run(g, b.Start(), b.Stores())
	require.NoError(t, err)
	assert.Equal(t, 6, res.Expansions) // three settled pops per straight leg

	res, err = agent.NewMultiGoal().Run(g, b.Start(), b.Stores())
	require.NoError(t, err)
	assert.Equal(t, 18, res.Expansions) // each pass drains all nine cells
}

func TestAgents_NoItem(t *testing.T) {
	b, err := builder.NewBuilding(3, 3, 1)
	require.NoError(t, err)
	require.NoError(t, b.PlaceStart(at(0, 0, 0)))
	require.NoError(t, b.PlaceStore(at(0, 2, 0)))
	require.NoError(t, b.PlaceStore(at(2, 0, 0)))

	for _, a := range agents() {
		t.Run(a.Name(), func(t *testing.T) {
			res, err := a.Run(b.Graph(), b.Start(), b.Stores())
			require.NoError(t, err)
			assert.False(t, res.Found)
			assert.Equal(t, core.None, res.Goal)
			assert.Len(t, res.Visited, 2)
			assert.Empty(t, res.Path)
			assert.Equal(t, 6, res.Length) // out to one corner, back and across
			assert.InDelta(t, 6.0, res.Cost, 1e-9)
			assert.Len(t, res.Trail, 7)
			assert.Equal(t, res.Visited[1], res.End())
		})
	}
}

func TestAgents_SkipUnreachable(t *testing.T) {
	b := decoy(t)
	g := b.Graph()
	// Wall the decoy off behind two obstacles.
	require.NoError(t, g.SetCategory(g.MustID(at(0, 1, 0)), core.Obstacle))
	require.NoError(t, g.SetCategory(g.MustID(at(1, 2, 0)), core.Obstacle))
	near, far := g.MustID(at(0, 2, 0)), g.MustID(at(2, 2, 0))

	for _, a := range agents() {
		t.Run(a.Name(), func(t *testing.T) {
			res, err := a.Run(g, b.Start(), []core.NodeID{near, far})
			require.NoError(t, err)
			require.True(t, res.Found)
			assert.Equal(t, []core.NodeID{near}, res.Skipped)
			assert.Equal(t, []core.NodeID{far}, res.Visited)
			assert.Equal(t, 4.0, res.Cost)
		})
	}
}

func TestAgents_Budget(t *testing.T) {
	b := decoy(t)
	g := b.Graph()

	res, err := agent.NewAStar(agent.WithBudget(4)).Run(g, b.Start(), b.Stores())
	require.ErrorIs(t, err, agent.ErrBudgetExhausted)
	assert.False(t, res.Found)
	assert.Equal(t, 4, res.Expansions)
	assert.Equal(t, []core.NodeID{g.MustID(at(0, 2, 0))}, res.Visited)
	assert.Equal(t, 2, res.Length)
	assert.Empty(t, res.Path)
	assert.Equal(t, []core.NodeID{g.MustID(at(0, 0, 0)), g.MustID(at(0, 1, 0)), g.MustID(at(0, 2, 0))}, res.Trail)

	res, err = agent.NewMultiGoal(agent.WithBudget(5)).Run(g, b.Start(), b.Stores())
	require.ErrorIs(t, err, agent.ErrBudgetExhausted)
	assert.Equal(t, 5, res.Expansions)
	assert.Empty(t, res.Visited)
	assert.Zero(t, res.Length)
	assert.Empty(t, res.Path)
	assert.Equal(t, core.None, res.End())

	_, err = agent.NewDStarLite(agent.WithBudget(1)).Run(g, b.Start(), b.Stores())
	assert.ErrorIs(t, err, agent.ErrBudgetExhausted)

	assert.Panics(t, func() { agent.WithBudget(0) })
}

func TestAgents_StartIsCandidate(t *testing.T) {
	b := decoy(t)
	g := b.Graph()
	goal := b.GoalStore()

	for _, a := range agents() {
		t.Run(a.Name(), func(t *testing.T) {
			res, err := a.Run(g, goal, b.Stores())
			require.NoError(t, err)
			require.True(t, res.Found)
			assert.Equal(t, []core.NodeID{goal}, res.Path)
			assert.Zero(t, res.Length)
			assert.Zero(t, res.Cost)
		})
	}
}

func TestAgents_Errors(t *testing.T) {
	for _, a := range agents() {
		_, err := a.Run(nil, 0, nil)
		assert.ErrorIs(t, err, agent.ErrNilGraph, a.Name())

		b := decoy(t)
		_, err = a.Run(b.Graph(), b.Start(), []core.NodeID{99})
		assert.ErrorIs(t, err, core.ErrOutOfBounds, a.Name())
	}
	assert.Panics(t, func() { agent.WithLogger(nil) })
}

var mallCfg = builder.Config{
	Rows: 10, Cols: 10, Floors: 3,
	Elevators: 2, Stairs: 1,
	StoresPerFloor: 4, ObstaclesPerFloor: 6,
}

func TestAgents_GeneratedMalls(t *testing.T) {
	for seed := int64(1); seed <= 4; seed++ {
		b, err := builder.Build(mallCfg, builder.WithSeed(seed))
		require.NoError(t, err)
		g := b.Graph()

		var costs []float64
		for _, a := range agents() {
			res, err := a.Run(g, b.Start(), b.Stores())
			require.NoError(t, err, "seed %d %s", seed, a.Name())
			require.True(t, res.Found, "seed %d %s", seed, a.Name())
			assert.Equal(t, b.GoalStore(), res.Goal)
			assert.Equal(t, b.Start(), res.Path[0])
			assert.Equal(t, res.Goal, res.End())
			assert.Equal(t, len(res.Path)-1, res.Length)
			assert.Empty(t, res.Skipped)

			cost, err := g.PathCost(res.Path)
			require.NoError(t, err)
			assert.InDelta(t, cost, res.Cost, 1e-9, "seed %d %s", seed, a.Name())
			for _, id := range res.Path {
				assert.True(t, g.Node(id).Traversable())
			}
			costs = append(costs, res.Cost)
		}
		// A* and D* Lite visit the same stores in the same order along optimal legs.
		assert.InDelta(t, costs[0], costs[1], 1e-9, "seed %d", seed)
	}
}

func TestDStarLite_EarlyStopAgrees(t *testing.T) {
	b, err := builder.Build(mallCfg, builder.WithSeed(7))
	require.NoError(t, err)
	g := b.Graph()

	full, err := agent.NewDStarLite().Run(g, b.Start(), b.Stores())
	require.NoError(t, err)
	early, err := agent.NewDStarLite(agent.WithEarlyStop()).Run(g, b.Start(), b.Stores())
	require.NoError(t, err)

	assert.Equal(t, full.Visited, early.Visited)
	assert.InDelta(t, full.Cost, early.Cost, 1e-9)
	assert.LessOrEqual(t, early.Expansions, full.Expansions)
}

func TestAgents_LogsLegs(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	b := decoy(t)

	_, err := agent.NewAStar(agent.WithLogger(log)).Run(b.Graph(), b.Start(), b.Stores())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "agent=A*")
	assert.Contains(t, buf.String(), "msg=leg")
}

func TestNew_Keys(t *testing.T) {
	names := map[string]string{
		agent.KeyAStar:     "A*",
		agent.KeyDStarLite: "D* Lite",
		agent.KeyMultiGoal: "MultiGoal-A*",
	}
	for _, key := range agent.Keys {
		a, err := agent.New(key)
		require.NoError(t, err)
		assert.Equal(t, names[key], a.Name())
	}
	_, err := agent.New("greedy")
	assert.ErrorIs(t, err, agent.ErrUnknownAgent)
}
