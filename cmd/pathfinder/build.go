package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathfinder/maze"
)

// errInputClosed reports that stdin ended before the maze was complete.
var errInputClosed = errors.New("input ended before the maze was complete")

func newBuildCmd(a *app) *cobra.Command {
	var stats bool
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a maze cell by cell and solve it",
		Long: `Build prompts for the number of rows and columns, then for every cell
(S start, E goal, 0 free, 1 blocked). Invalid cells are asked again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			p := &prompter{sc: bufio.NewScanner(cmd.InOrStdin()), w: w}

			rows, err := p.positive("Rows: ")
			if err != nil {
				return err
			}
			cols, err := p.positive("Columns: ")
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "\nBuilding a %dx%d maze. Enter S, E, 0 or 1 for each cell.\n\n", rows, cols)

			codes := make([][]rune, rows)
			for r := 0; r < rows; r++ {
				codes[r] = make([]rune, cols)
				for c := 0; c < cols; c++ {
					code, err := p.cell(r, c)
					if err != nil {
						return err
					}
					codes[r][c] = code
				}
			}

			g, err := maze.New(codes, a.gridOptions()...)
			if err != nil {
				return err
			}
			fmt.Fprintln(w)

			return a.report(w, "Your maze", g, stats)
		},
	}
	cmd.Flags().BoolVar(&stats, "stats", false, "print frontier statistics")

	return cmd
}

// prompter reads one answer per line.
type prompter struct {
	sc *bufio.Scanner
	w  io.Writer
}

func (p *prompter) ask(question string) (string, error) {
	fmt.Fprint(p.w, question)
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}

	return strings.TrimSpace(p.sc.Text()), nil
}

// positive asks once for a positive integer.
func (p *prompter) positive(question string) (int, error) {
	answer, err := p.ask(question)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid dimension %q: want a positive integer", answer)
	}

	return n, nil
}

// cell asks until a valid code is given. Lowercase s and e are accepted.
func (p *prompter) cell(r, c int) (rune, error) {
	for {
		answer, err := p.ask(fmt.Sprintf("Cell [%d][%d]: ", r, c))
		if err != nil {
			return 0, err
		}
		answer = strings.ToUpper(answer)
		if len(answer) == 1 {
			if _, err := maze.ParseCell(rune(answer[0])); err == nil {
				return rune(answer[0]), nil
			}
		}
		fmt.Fprintln(p.w, "  invalid cell, use S, E, 0 or 1")
	}
}
