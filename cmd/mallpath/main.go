// Command mallpath generates multi-floor facilities and compares the A*,
// D* Lite and multi-goal navigation agents on them.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mallpath",
		Short: "Pathfinding agents in multi-floor facilities",
		Long: `mallpath builds procedurally generated multi-floor facilities with
elevators, stairs, stores and obstacles, then sends navigation agents
(A*, D* Lite and multi-goal A*) to find the one store holding an item.

Settings come from a YAML file (--config); without one the defaults
of the reference benchmark are used.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(
		newGenerateCmd(),
		newRunCmd(),
		newBatchCmd(),
		newReportCmd(),
	)
	return rootCmd
}
