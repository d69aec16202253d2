package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mallpath/experiment"
	"github.com/katalvlaran/mallpath/store"
)

const (
	csvName  = "batch_results.csv"
	plotName = "summary.png"
	htmlName = "summary.html"
	dbName   = "mallpath.db"
)

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run every agent over seeds × layouts and record the results",
		Long: `batch builds one facility per (layout, seed) pair, runs every configured
agent on it and writes:

  <output>/batch_results.csv   per-trial metrics
  <output>/summary.png         mean expansions per layout and agent
  <output>/summary.html        interactive expansions and cost charts
  <output>/mallpath.db         SQLite archive (see 'mallpath report')`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			if dir, _ := cmd.Flags().GetString("output"); dir != "" {
				cfg.Experiment.OutputDir = dir
			}
			if seeds, _ := cmd.Flags().GetInt("seeds"); seeds > 0 {
				cfg.Experiment.Seeds = seeds
			}
			noPlot, _ := cmd.Flags().GetBool("no-plot")
			noDB, _ := cmd.Flags().GetBool("no-db")
			quiet, _ := cmd.Flags().GetBool("quiet")

			dir := cfg.Experiment.GetOutputDir()
			if err = os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			r, err := experiment.NewRunner(cfg, experiment.WithLogger(log))
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			trials, runErr := r.Run(ctx)
			if len(trials) == 0 {
				return runErr
			}
			if runErr != nil {
				log.Warn("batch interrupted, keeping finished trials", "trials", len(trials), "err", runErr)
			}

			out := cmd.OutOrStdout()
			sums := experiment.Summarize(trials)
			if !quiet {
				if err = experiment.WriteTrials(out, trials); err != nil {
					return err
				}
				fmt.Fprintln(out, "\n--- Averages ---")
			}
			if err = experiment.WriteSummary(out, sums); err != nil {
				return err
			}

			// 1) CSV
			csvPath := filepath.Join(dir, csvName)
			f, err := os.Create(csvPath)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", csvName, err)
			}
			if err = experiment.WriteCSV(f, trials); err != nil {
				f.Close()
				return err
			}
			if err = f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nWrote %s\n", csvPath)

			// 2) Chart
			if !noPlot {
				plotPath := filepath.Join(dir, plotName)
				if err = experiment.PlotSummary(plotPath, sums); err != nil {
					return err
				}
				fmt.Fprintf(out, "Wrote %s\n", plotPath)

				htmlPath := filepath.Join(dir, htmlName)
				h, err := os.Create(htmlPath)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", htmlName, err)
				}
				if err = experiment.ChartHTML(h, sums); err != nil {
					h.Close()
					return err
				}
				if err = h.Close(); err != nil {
					return err
				}
				fmt.Fprintf(out, "Wrote %s\n", htmlPath)
			}

			// 3) Archive
			if !noDB {
				db, err := store.Open(filepath.Join(dir, dbName))
				if err != nil {
					return err
				}
				defer db.Close()
				if err = db.SaveTrials(cmd.Context(), trials); err != nil {
					return err
				}
				fmt.Fprintf(out, "Archived run %s\n", r.RunID())
			}
			return runErr
		},
	}
	cmd.Flags().String("output", "", "Output directory (overrides experiment.output_dir)")
	cmd.Flags().Int("seeds", 0, "Seeds per layout (overrides experiment.seeds)")
	cmd.Flags().Bool("no-plot", false, "Skip the PNG and HTML summary charts")
	cmd.Flags().Bool("no-db", false, "Skip the SQLite archive")
	cmd.Flags().Bool("quiet", false, "Print only the averages table")
	return cmd
}
