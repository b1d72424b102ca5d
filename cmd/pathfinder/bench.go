package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathfinder/astar"
)

func newBenchCmd(a *app) *cobra.Command {
	var runs int
	cmd := &cobra.Command{
		Use:   "bench [name...]",
		Short: "Time grid construction plus search over the size catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("runs") {
				runs = a.cfg.Bench.Runs
			}
			if runs <= 0 {
				return fmt.Errorf("runs must be positive, got %d", runs)
			}
			entries, err := selectEntries("size", args)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Timing %d runs per maze\n\n", runs)
			for _, e := range entries {
				var (
					total time.Duration
					res   astar.Result
				)
				for i := 0; i < runs; i++ {
					begin := time.Now()
					g, err := e.Grid(a.gridOptions()...)
					if err != nil {
						return err
					}
					eng, err := astar.New(g)
					if err != nil {
						return err
					}
					res, err = eng.Search()
					if err != nil {
						return err
					}
					total += time.Since(begin)
				}
				mean := float64(total.Microseconds()) / float64(runs) / 1000

				fmt.Fprintf(w, "%s\n", e.Title)
				if res.Found {
					fmt.Fprintf(w, "  path found: %d moves\n", res.Path.Steps())
				} else {
					fmt.Fprintln(w, "  no solution")
				}
				fmt.Fprintf(w, "  expanded: %d nodes\n", res.Expanded)
				fmt.Fprintf(w, "  mean time: %.3f ms\n\n", mean)
				a.logger.Debug("bench", "maze", e.Name, "runs", runs, "total", total)
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&runs, "runs", 0, "repetitions per maze (default from config)")

	return cmd
}
