package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrUnknownCell indicates a cell code outside S, E, 0, 1.
	ErrUnknownCell = errors.New("maze: unknown cell code")
	// ErrMissingStart indicates that no 'S' cell was found.
	ErrMissingStart = errors.New("maze: start cell 'S' not found")
	// ErrMissingGoal indicates that no 'E' cell was found.
	ErrMissingGoal = errors.New("maze: goal cell 'E' not found")
	// ErrDuplicateStart indicates more than one 'S' cell under WithStrictEndpoints.
	ErrDuplicateStart = errors.New("maze: more than one start cell 'S'")
	// ErrDuplicateGoal indicates more than one 'E' cell under WithStrictEndpoints.
	ErrDuplicateGoal = errors.New("maze: more than one goal cell 'E'")
)

// Cell is the kind of a single grid cell.
type Cell uint8

const (
	// Free is an open cell ('0').
	Free Cell = iota
	// Blocked is a wall ('1').
	Blocked
	// Start is the unique origin ('S').
	Start
	// Goal is the unique destination ('E').
	Goal
)

// ParseCell maps a single-character code to its Cell.
func ParseCell(r rune) (Cell, error) {
	switch r {
	case 'S':
		return Start, nil
	case 'E':
		return Goal, nil
	case '0':
		return Free, nil
	case '1':
		return Blocked, nil
	}

	return Free, fmt.Errorf("%w: %q", ErrUnknownCell, r)
}

// Rune returns the single-character code of c.
func (c Cell) Rune() rune {
	switch c {
	case Start:
		return 'S'
	case Goal:
		return 'E'
	case Blocked:
		return '1'
	default:
		return '0'
	}
}

func (c Cell) String() string {
	switch c {
	case Start:
		return "start"
	case Goal:
		return "goal"
	case Blocked:
		return "blocked"
	default:
		return "free"
	}
}

// Coord identifies a cell by row and column.
type Coord struct {
	Row, Col int
}

// String renders c as "(row, col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Options holds construction parameters for a Grid.
type Options struct {
	// StrictEndpoints rejects duplicate Start or Goal cells.
	StrictEndpoints bool
}

// Option configures grid construction.
type Option func(*Options)

// WithStrictEndpoints makes construction fail with ErrDuplicateStart or
// ErrDuplicateGoal when an endpoint appears more than once.
func WithStrictEndpoints() Option {
	return func(o *Options) {
		o.StrictEndpoints = true
	}
}

// DefaultOptions returns the lenient defaults: the last Start and the last
// Goal seen in row-major order are recorded.
func DefaultOptions() Options {
	return Options{StrictEndpoints: false}
}

// Grid is an immutable rectangular maze. The zero value is not usable;
// build one with New, FromStrings, Parse or ParseYAML.
type Grid struct {
	rows, cols  int
	cells       [][]Cell
	start, goal Coord
}

// offsets lists the neighbor deltas in N, S, W, E order.
var offsets = [4]Coord{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
