package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mallpath/agent"
	"github.com/katalvlaran/mallpath/render"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Send one agent through a generated facility",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			seed, _ := cmd.Flags().GetInt64("seed")
			key, _ := cmd.Flags().GetString("algorithm")
			show, _ := cmd.Flags().GetBool("show")

			b, err := buildFacility(cfg, seed, log)
			if err != nil {
				return err
			}
			opts := append(cfg.Planner.AgentOptions(), agent.WithLogger(log))
			a, err := agent.New(key, opts...)
			if err != nil {
				return err
			}

			g := b.Graph()
			res, runErr := a.Run(g, b.Start(), b.Stores())
			if runErr != nil && !errors.Is(runErr, agent.ErrBudgetExhausted) {
				return runErr
			}

			out := cmd.OutOrStdout()
			if show {
				if err = render.Building(out, g, res.Trail); err != nil {
					return err
				}
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "Agent:          %s\n", a.Name())
			fmt.Fprintf(out, "Goal reached:   %v\n", res.Found)
			fmt.Fprintf(out, "Total steps:    %d\n", res.Length)
			fmt.Fprintf(out, "Total cost:     %.2f\n", res.Cost)
			fmt.Fprintf(out, "Stores visited: %d\n", len(res.Visited))
			fmt.Fprintf(out, "Expansions:     %d\n", res.Expansions)
			fmt.Fprintf(out, "Replans:        %d\n", res.Replans)
			fmt.Fprintf(out, "Compute time:   %s\n", res.Elapsed)
			if end := res.End(); end >= 0 {
				fmt.Fprintf(out, "Ends at:        %s\n", g.Coord(end))
			}
			return runErr
		},
	}
	cmd.Flags().Int64("seed", 0, "Random seed for the layout")
	cmd.Flags().String("algorithm", agent.KeyAStar, "Agent to run (astar, dstarlite, multigoal)")
	cmd.Flags().Bool("show", false, "Print every floor with the path overlaid")
	return cmd
}
