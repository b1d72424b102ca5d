package maze

import (
	"fmt"
	"strings"
	"unicode"
)

// New constructs a Grid from a non-empty, rectangular matrix of cell codes
// ('S', 'E', '0', '1'). The input is copied; later changes to it do not
// affect the Grid.
//
// Validation order: ErrEmptyGrid, ErrNonRectangular, ErrUnknownCell,
// then endpoints (ErrMissingStart before ErrMissingGoal).
// Complexity: O(R×C) time and memory.
func New(codes [][]rune, opts ...Option) (*Grid, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(codes) == 0 || len(codes[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(codes), len(codes[0])
	for r, row := range codes {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
	}

	g := &Grid{rows: rows, cols: cols, cells: make([][]Cell, rows)}
	var starts, goals int
	for r := 0; r < rows; r++ {
		g.cells[r] = make([]Cell, cols)
		for c := 0; c < cols; c++ {
			cell, err := ParseCell(codes[r][c])
			if err != nil {
				return nil, fmt.Errorf("%w at (%d, %d)", err, r, c)
			}
			g.cells[r][c] = cell
			switch cell {
			case Start:
				g.start = Coord{r, c}
				starts++
			case Goal:
				g.goal = Coord{r, c}
				goals++
			}
		}
	}

	if starts == 0 {
		return nil, ErrMissingStart
	}
	if goals == 0 {
		return nil, ErrMissingGoal
	}
	if cfg.StrictEndpoints {
		if starts > 1 {
			return nil, fmt.Errorf("%w: found %d", ErrDuplicateStart, starts)
		}
		if goals > 1 {
			return nil, fmt.Errorf("%w: found %d", ErrDuplicateGoal, goals)
		}
	}

	return g, nil
}

// FromStrings builds a Grid with one string per row. Whitespace inside a
// row is ignored, so "S 0 1" and "S01" describe the same row.
func FromStrings(rows []string, opts ...Option) (*Grid, error) {
	codes := make([][]rune, 0, len(rows))
	for _, row := range rows {
		codes = append(codes, compact(row))
	}

	return New(codes, opts...)
}

// compact returns the runes of s with all whitespace removed.
func compact(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		out = append(out, r)
	}

	return out
}

// Dimensions returns the row and column counts.
func (g *Grid) Dimensions() (rows, cols int) {
	return g.rows, g.cols
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Start returns the recorded Start coordinate.
func (g *Grid) Start() Coord { return g.start }

// Goal returns the recorded Goal coordinate.
func (g *Grid) Goal() Coord { return g.goal }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the cell kind at c. Out-of-bounds coordinates report Blocked.
func (g *Grid) At(c Coord) Cell {
	if !g.InBounds(c) {
		return Blocked
	}

	return g.cells[c.Row][c.Col]
}

// IsPassable reports whether c is in bounds and not Blocked.
// Start and Goal cells are passable.
func (g *Grid) IsPassable(c Coord) bool {
	return g.InBounds(c) && g.cells[c.Row][c.Col] != Blocked
}

// Neighbors returns the in-bounds passable cells orthogonally adjacent to c,
// in N, S, W, E order.
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(offsets))
	for _, d := range offsets {
		n := Coord{c.Row + d.Row, c.Col + d.Col}
		if g.IsPassable(n) {
			out = append(out, n)
		}
	}

	return out
}

// Cells returns a copy of the cell matrix.
func (g *Grid) Cells() [][]Cell {
	out := make([][]Cell, g.rows)
	for r := range g.cells {
		out[r] = make([]Cell, g.cols)
		copy(out[r], g.cells[r])
	}

	return out
}

// String renders the grid with cells separated by single spaces and rows by
// newlines, the same layout Parse accepts.
func (g *Grid) String() string {
	var sb strings.Builder
	for r, row := range g.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, cell := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(cell.Rune())
		}
	}

	return sb.String()
}
