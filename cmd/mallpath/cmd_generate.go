package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mallpath/bfs"
	"github.com/katalvlaran/mallpath/render"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build a facility and print its floors",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			seed, _ := cmd.Flags().GetInt64("seed")
			b, err := buildFacility(cfg, seed, log)
			if err != nil {
				return err
			}

			g := b.Graph()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Facility %dx%dx%d, seed %d\n", g.Rows(), g.Cols(), g.Floors(), seed)
			fmt.Fprintf(out, "Start: %s\n", g.Coord(b.Start()))
			fmt.Fprintf(out, "Goal store: %s\n", g.Coord(b.GoalStore()))
			comps, err := bfs.Components(g)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Stores: %d  Elevators: %d  Stair pairs: %d  Obstacles: %d (rejected %d)\n",
				len(b.Stores()), len(b.Elevators()), len(b.Stairs()), len(b.Obstacles()), b.Rejected())
			fmt.Fprintf(out, "Connected regions: %d\n\n", len(comps))
			return render.Building(out, g, nil)
		},
	}
	cmd.Flags().Int64("seed", 0, "Random seed for the layout")
	return cmd
}
