package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathfinder/maze"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		format string
		stats  bool
	)
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve a maze read from a file or stdin",
		Long: `Solve reads a maze with one row per line (S, E, 0, 1, optionally
space separated, '#' comment lines) or a YAML document with a rows list.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			title := "stdin"
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
				title = args[0]
				if format == "" {
					format = formatFor(args[0])
				}
			}

			g, name, err := readGrid(in, format, a.gridOptions()...)
			if err != nil {
				return fmt.Errorf("%s: %w", title, err)
			}
			if name != "" {
				title = name
			}

			return a.report(cmd.OutOrStdout(), title, g, stats)
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "input format (text|yaml); inferred from the file extension")
	cmd.Flags().BoolVar(&stats, "stats", false, "print frontier statistics")

	return cmd
}

// formatFor infers the input format from a file name.
func formatFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "text"
	}
}

func readGrid(r io.Reader, format string, opts ...maze.Option) (*maze.Grid, string, error) {
	switch format {
	case "", "text":
		g, err := maze.Parse(r, opts...)
		return g, "", err
	case "yaml":
		return maze.ParseYAML(r, opts...)
	default:
		return nil, "", fmt.Errorf("unknown format %q", format)
	}
}
