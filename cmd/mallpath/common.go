package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mallpath/builder"
	"github.com/katalvlaran/mallpath/config"
)

// newLogger builds the slog handler selected by --log-level and --log-format.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("invalid --log-format %q (want text or json)", format)
}

// setup reads the global flags shared by every command.
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	level, _ := cmd.Flags().GetString("log-level")
	format, _ := cmd.Flags().GetString("log-format")
	log, err := newLogger(cmd.ErrOrStderr(), level, format)
	if err != nil {
		return nil, nil, err
	}

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Default(), log, nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	log.Debug("config loaded", "path", path)
	return cfg, log, nil
}

// buildFacility generates the configured building for seed.
func buildFacility(cfg *config.Config, seed int64, log *slog.Logger) (*builder.Building, error) {
	return builder.Build(cfg.Building.Builder(),
		builder.WithSeed(seed),
		builder.WithLogger(log),
		builder.WithObstacleDensity(cfg.Building.GetObstacleDensity()),
	)
}
