package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mallpath/experiment"
	"github.com/katalvlaran/mallpath/store"
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [run-id]",
		Short: "List archived runs or summarize one of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := setup(cmd)
			if err != nil {
				return err
			}
			path, _ := cmd.Flags().GetString("db")
			if path == "" {
				path = filepath.Join(cfg.Experiment.GetOutputDir(), dbName)
			}
			db, err := store.Open(path)
			if err != nil {
				return err
			}
			defer db.Close()

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				runs, err := db.Runs(cmd.Context())
				if err != nil {
					return err
				}
				if len(runs) == 0 {
					fmt.Fprintln(out, "No runs archived.")
					return nil
				}
				for _, r := range runs {
					fmt.Fprintf(out, "%s  %s  %d trials, %d found\n",
						r.ID, r.CreatedAt.Format(time.RFC3339), r.Trials, r.Found)
				}
				return nil
			}

			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid run id %q: %w", args[0], err)
			}
			trials, err := db.Trials(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Run %s: %d trials\n", id, len(trials))
			return experiment.WriteSummary(out, experiment.Summarize(trials))
		},
	}
	cmd.Flags().String("db", "", "SQLite archive (default <output_dir>/mallpath.db)")
	return cmd
}
