// Package config loads mallpath's YAML configuration: the facility layout,
// the planners to compare and the batch experiment to run.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mallpath/agent"
	"github.com/katalvlaran/mallpath/builder"
)

// ErrInvalid is returned by Validate for unusable settings.
var ErrInvalid = errors.New("config: invalid")

// Config is the root of a mallpath YAML file.
type Config struct {
	Building   BuildingConfig   `yaml:"building"`
	Planner    PlannerConfig    `yaml:"planner"`
	Experiment ExperimentConfig `yaml:"experiment"`
}

// BuildingConfig mirrors builder.Config plus the obstacle density fallback.
type BuildingConfig struct {
	Rows              int `yaml:"rows"`
	Cols              int `yaml:"cols"`
	Floors            int `yaml:"floors"`
	Elevators         int `yaml:"elevators"`
	Stairs            int `yaml:"stairs"`
	StoresPerFloor    int `yaml:"stores_per_floor"`
	ObstaclesPerFloor int `yaml:"obstacles_per_floor,omitempty"`

	// ObstacleDensity applies when ObstaclesPerFloor is 0.
	// Default: builder.DefaultObstacleDensity
	ObstacleDensity *float64 `yaml:"obstacle_density,omitempty"`
}

// PlannerConfig selects and tunes the agents.
type PlannerConfig struct {
	// Algorithms lists agent keys. Default: every registered agent.
	Algorithms []string `yaml:"algorithms,omitempty"`
	// Budget caps expansions per run; 0 means unlimited.
	Budget int `yaml:"budget,omitempty"`
	// EarlyStop selects the textbook D* Lite termination rule.
	EarlyStop bool `yaml:"early_stop,omitempty"`
}

// Layout overrides the vertical connections of a building.
type Layout struct {
	Elevators int `yaml:"elevators"`
	Stairs    int `yaml:"stairs"`
}

// String renders the layout as "E<n>/S<n>".
func (l Layout) String() string { return fmt.Sprintf("E%d/S%d", l.Elevators, l.Stairs) }

// ExperimentConfig describes a batch of trials.
type ExperimentConfig struct {
	Seeds     int      `yaml:"seeds"`
	FirstSeed int64    `yaml:"first_seed,omitempty"`
	Layouts   []Layout `yaml:"layouts,omitempty"`

	// OutputDir receives the CSV, chart and database.
	// Default: "results"
	OutputDir string `yaml:"output_dir,omitempty"`

	// Timeout bounds the whole batch.
	// Format: Go duration string (e.g., "90s", "5m"). Empty means no limit.
	Timeout string `yaml:"timeout,omitempty"`
}

// Default returns the facility and batch of the reference benchmark:
// five 45×45 floors, 13 stores per floor, ten seeds over two layouts.
func Default() *Config {
	return &Config{
		Building: BuildingConfig{
			Rows:           45,
			Cols:           45,
			Floors:         5,
			Elevators:      2,
			Stairs:         2,
			StoresPerFloor: 13,
		},
		Planner: PlannerConfig{
			Algorithms: append([]string(nil), agent.Keys...),
		},
		Experiment: ExperimentConfig{
			Seeds: 10,
			Layouts: []Layout{
				{Elevators: 5, Stairs: 5},
				{Elevators: 3, Stairs: 3},
			},
			OutputDir: "results",
		},
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first unusable setting.
func (c *Config) Validate() error {
	if err := c.Building.Builder().Validate(); err != nil {
		return fmt.Errorf("%w: building: %w", ErrInvalid, err)
	}
	if d := c.Building.ObstacleDensity; d != nil && (*d < 0 || *d > 1) {
		return fmt.Errorf("%w: obstacle_density %.2f outside [0,1]", ErrInvalid, *d)
	}
	if len(c.Planner.Algorithms) == 0 {
		return fmt.Errorf("%w: no algorithms", ErrInvalid)
	}
	for _, key := range c.Planner.Algorithms {
		if _, err := agent.New(key); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	if c.Planner.Budget < 0 {
		return fmt.Errorf("%w: budget %d", ErrInvalid, c.Planner.Budget)
	}
	if c.Experiment.Seeds < 1 {
		return fmt.Errorf("%w: seeds %d", ErrInvalid, c.Experiment.Seeds)
	}
	for _, l := range c.Experiment.Layouts {
		if err := c.Building.With(l).Validate(); err != nil {
			return fmt.Errorf("%w: layout %s: %w", ErrInvalid, l, err)
		}
	}
	if c.Experiment.Timeout != "" {
		if _, err := time.ParseDuration(c.Experiment.Timeout); err != nil {
			return fmt.Errorf("%w: timeout: %w", ErrInvalid, err)
		}
	}
	return nil
}

// Builder converts the section to a builder.Config.
func (b BuildingConfig) Builder() builder.Config {
	return builder.Config{
		Rows:              b.Rows,
		Cols:              b.Cols,
		Floors:            b.Floors,
		Elevators:         b.Elevators,
		Stairs:            b.Stairs,
		StoresPerFloor:    b.StoresPerFloor,
		ObstaclesPerFloor: b.ObstaclesPerFloor,
	}
}

// With returns the builder.Config with l's vertical connections.
func (b BuildingConfig) With(l Layout) builder.Config {
	cfg := b.Builder()
	cfg.Elevators = l.Elevators
	cfg.Stairs = l.Stairs
	return cfg
}

// GetObstacleDensity returns the configured density or the builder default.
func (b BuildingConfig) GetObstacleDensity() float64 {
	if b.ObstacleDensity == nil {
		return builder.DefaultObstacleDensity
	}
	return *b.ObstacleDensity
}

// AgentOptions returns the agent options this section implies.
func (p PlannerConfig) AgentOptions() []agent.Option {
	var opts []agent.Option
	if p.Budget > 0 {
		opts = append(opts, agent.WithBudget(p.Budget))
	}
	if p.EarlyStop {
		opts = append(opts, agent.WithEarlyStop())
	}
	return opts
}

// GetLayouts returns the configured layouts, or the building's own
// connections when none are listed.
func (e ExperimentConfig) GetLayouts(b BuildingConfig) []Layout {
	if len(e.Layouts) == 0 {
		return []Layout{{Elevators: b.Elevators, Stairs: b.Stairs}}
	}
	return e.Layouts
}

// GetOutputDir returns the output directory or the default value.
func (e ExperimentConfig) GetOutputDir() string {
	if e.OutputDir == "" {
		return "results"
	}
	return e.OutputDir
}

// GetTimeout parses the timeout string. Zero means no limit.
func (e ExperimentConfig) GetTimeout() time.Duration {
	if e.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(e.Timeout)
	if err != nil {
		return 0
	}
	return d
}
