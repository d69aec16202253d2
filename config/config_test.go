package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mallpath/agent"
	"github.com/katalvlaran/mallpath/builder"
	"github.com/katalvlaran/mallpath/config"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 45, cfg.Building.Rows)
	assert.Equal(t, agent.Keys, cfg.Planner.Algorithms)
	assert.Len(t, cfg.Experiment.Layouts, 2)
	assert.Equal(t, builder.DefaultObstacleDensity, cfg.Building.GetObstacleDensity())
	assert.Equal(t, "results", cfg.Experiment.GetOutputDir())
	assert.Zero(t, cfg.Experiment.GetTimeout())
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mallpath.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
building:
  rows: 12
  cols: 14
  floors: 2
  obstacle_density: 0.1
planner:
  algorithms: [astar, multigoal]
  budget: 5000
experiment:
  seeds: 3
  layouts:
    - {elevators: 1, stairs: 0}
  timeout: 30s
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Building.Rows)
	assert.Equal(t, 14, cfg.Building.Cols)
	assert.Equal(t, 13, cfg.Building.StoresPerFloor, "untouched keys keep defaults")
	assert.InDelta(t, 0.1, cfg.Building.GetObstacleDensity(), 1e-12)
	assert.Equal(t, []string{"astar", "multigoal"}, cfg.Planner.Algorithms)
	assert.Len(t, cfg.Planner.AgentOptions(), 1)
	assert.Equal(t, []config.Layout{{Elevators: 1}}, cfg.Experiment.GetLayouts(cfg.Building))
	assert.Equal(t, 30*time.Second, cfg.Experiment.GetTimeout())

	bc := cfg.Building.With(cfg.Experiment.Layouts[0])
	assert.Equal(t, 1, bc.Elevators)
	assert.Zero(t, bc.Stairs)
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"TinyFloor", "building: {rows: 2}"},
		{"Density", "building: {obstacle_density: 1.5}"},
		{"UnknownAlgorithm", "planner: {algorithms: [greedy]}"},
		{"NoAlgorithms", "planner: {algorithms: []}"},
		{"NegativeBudget", "planner: {budget: -1}"},
		{"NoSeeds", "experiment: {seeds: 0}"},
		{"DisconnectedLayout", "experiment: {layouts: [{elevators: 0, stairs: 0}]}"},
		{"Timeout", "experiment: {timeout: soon}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.yaml))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.Parse([]byte("building: ["))
	assert.Error(t, err)
	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLayout_String(t *testing.T) {
	assert.Equal(t, "E3/S1", config.Layout{Elevators: 3, Stairs: 1}.String())
	got := config.ExperimentConfig{}.GetLayouts(config.BuildingConfig{Elevators: 2, Stairs: 4})
	assert.Equal(t, []config.Layout{{Elevators: 2, Stairs: 4}}, got)
}
