package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/pathfinder/astar"
	"github.com/katalvlaran/pathfinder/internal/config"
	"github.com/katalvlaran/pathfinder/maze"
	"github.com/katalvlaran/pathfinder/render"
)

// app carries the settings resolved before any subcommand runs.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	color  bool
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default()}

	root := &cobra.Command{
		Use:           "pathfinder",
		Short:         "Shortest paths through 2D mazes with A*",
		Long:          `pathfinder finds the shortest route between S and E in a maze of free (0) and blocked (1) cells.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "path to a TOML config file (default ./"+config.FileName+" if present)")
	root.PersistentFlags().String("color", "", "colorize output (auto|on|off)")
	root.PersistentFlags().String("marker", "", "character drawn on path cells")
	root.PersistentFlags().String("log-level", "", "log level (debug|info|warn|error)")
	root.PersistentFlags().Bool("strict", false, "reject mazes with more than one S or E")

	root.AddCommand(
		newSolveCmd(a),
		newExamplesCmd(a),
		newBenchCmd(a),
		newBuildCmd(a),
		newVersionCmd(),
	)

	return root
}

// setup loads the config file, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if flags.Changed("color") {
		cfg.Color, _ = flags.GetString("color")
	}
	if flags.Changed("marker") {
		cfg.Marker, _ = flags.GetString("marker")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("strict") {
		cfg.Strict, _ = flags.GetBool("strict")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	lvl, _ := cfg.Level()

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
	a.color = resolveColor(cfg.Color, cmd.OutOrStdout())
	a.logger.Debug("config resolved", "color", a.color, "marker", cfg.Marker, "strict", cfg.Strict)

	return nil
}

// resolveColor maps auto to whether w is a terminal.
func resolveColor(mode string, w io.Writer) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	}
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

func (a *app) gridOptions() []maze.Option {
	if a.cfg.Strict {
		return []maze.Option{maze.WithStrictEndpoints()}
	}

	return nil
}

func (a *app) renderOptions() []render.Option {
	return []render.Option{render.WithMarker(a.cfg.MarkerRune()), render.WithColor(a.color)}
}

// report solves g and prints the maze, the outcome and the highlighted route.
func (a *app) report(w io.Writer, title string, g *maze.Grid, stats bool) error {
	eng, err := astar.New(g, astar.WithLogger(a.logger.With("maze", title)))
	if err != nil {
		return err
	}
	res, err := eng.Search()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s\n", title)
	fmt.Fprintf(w, "%s\n\n", dashes(title))
	fmt.Fprintf(w, "Maze:\n%s\n\n", g)
	if !res.Found {
		fmt.Fprintln(w, "No solution: there is no path between S and E.")
		if stats {
			fmt.Fprintf(w, "expanded=%d pushed=%d stale=%d\n", res.Expanded, res.Pushed, res.Stale)
		}
		return nil
	}

	fmt.Fprintf(w, "Path found: %d moves through %d cells.\n", res.Path.Steps(), res.Path.Len())
	fmt.Fprintf(w, "Shortest path: %s\n\n", render.Path(res.Path))
	fmt.Fprintf(w, "Highlighted:\n%s\n", render.Grid(g, res.Path, a.renderOptions()...))
	if stats {
		fmt.Fprintf(w, "expanded=%d pushed=%d stale=%d\n", res.Expanded, res.Pushed, res.Stale)
	}

	return nil
}

func dashes(s string) string {
	return strings.Repeat("-", utf8.RuneCountInString(s))
}
