package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathfinder/internal/catalog"
)

func newExamplesCmd(a *app) *cobra.Command {
	var (
		group string
		stats bool
	)
	cmd := &cobra.Command{
		Use:   "examples [name...]",
		Short: "Solve the built-in example mazes",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := selectEntries(group, args)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i, e := range entries {
				if i > 0 {
					fmt.Fprintln(w)
				}
				g, err := e.Grid(a.gridOptions()...)
				if err != nil {
					return err
				}
				if err := a.report(w, e.Title, g, stats); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&group, "group", "all", "catalog group (all|demo|variation|size)")
	cmd.Flags().BoolVar(&stats, "stats", false, "print frontier statistics")

	return cmd
}

// selectEntries resolves explicit names first, then the group filter.
func selectEntries(group string, names []string) ([]catalog.Entry, error) {
	if len(names) > 0 {
		out := make([]catalog.Entry, 0, len(names))
		for _, n := range names {
			e, err := catalog.Lookup(n)
			if err != nil {
				return nil, err
			}
			out = append(out, e)
		}
		return out, nil
	}

	switch catalog.Group(group) {
	case "all":
		return catalog.All(), nil
	case catalog.GroupDemo, catalog.GroupVariation, catalog.GroupSize:
		return catalog.ByGroup(catalog.Group(group)), nil
	default:
		return nil, fmt.Errorf("unknown group %q", group)
	}
}
