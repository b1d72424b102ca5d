// Package catalog holds the built-in example mazes used by the CLI's
// examples and bench commands.
package catalog

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathfinder/maze"
)

// ErrUnknownEntry indicates Lookup found no entry with the given name.
var ErrUnknownEntry = errors.New("catalog: unknown maze")

// Group tags what an entry is used for.
type Group string

const (
	// GroupDemo is the introductory set, one of which has no solution.
	GroupDemo Group = "demo"
	// GroupVariation covers corridor, L-turn, multi-route and spiral shapes.
	GroupVariation Group = "variation"
	// GroupSize is the small/medium/large timing set.
	GroupSize Group = "size"
)

// Entry is a named maze in text form.
type Entry struct {
	Name  string
	Title string
	Group Group
	Rows  []string
}

// Grid builds the entry's grid.
func (e Entry) Grid(opts ...maze.Option) (*maze.Grid, error) {
	g, err := maze.FromStrings(e.Rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", e.Name, err)
	}

	return g, nil
}

var entries = []Entry{
	{
		Name: "statement", Title: "Problem statement maze", Group: GroupDemo,
		Rows: []string{
			"S 0 1 0 0",
			"0 0 1 0 1",
			"1 0 1 0 0",
			"1 0 0 E 1",
		},
	},
	{
		Name: "complex", Title: "Complex maze", Group: GroupDemo,
		Rows: []string{
			"S 0 0 1 0 0",
			"1 1 0 1 0 1",
			"0 0 0 0 0 0",
			"0 1 1 1 1 0",
			"0 0 0 0 0 E",
		},
	},
	{
		Name: "unsolvable", Title: "Maze without a solution", Group: GroupDemo,
		Rows: []string{
			"S 0 1 0",
			"1 0 1 0",
			"0 0 1 0",
			"0 1 1 E",
		},
	},
	{
		Name: "corridor", Title: "Direct path", Group: GroupVariation,
		Rows: []string{
			"S 0 0 0 E",
		},
	},
	{
		Name: "l-turn", Title: "L-shaped path", Group: GroupVariation,
		Rows: []string{
			"S 0 0",
			"1 1 0",
			"E 0 0",
		},
	},
	{
		Name: "multi-route", Title: "Several routes, shortest wins", Group: GroupVariation,
		Rows: []string{
			"S 0 0 0 0",
			"0 1 1 1 0",
			"0 0 0 0 0",
			"0 1 1 1 0",
			"0 0 0 0 E",
		},
	},
	{
		Name: "spiral", Title: "Winding maze", Group: GroupVariation,
		Rows: []string{
			"S 0 0 0 0 0 0",
			"1 1 1 1 1 1 0",
			"0 0 0 0 0 0 0",
			"0 1 1 1 1 1 1",
			"0 0 0 0 0 0 E",
		},
	},
	{
		Name: "small", Title: "Small (5x5)", Group: GroupSize,
		Rows: []string{
			"S 0 0 0 0",
			"0 1 1 1 0",
			"0 0 0 0 0",
			"0 1 1 1 0",
			"0 0 0 0 E",
		},
	},
	{
		Name: "medium", Title: "Medium (10x10)", Group: GroupSize,
		Rows: []string{
			"S 0 0 0 0 0 0 0 0 0",
			"0 1 1 1 1 1 1 1 1 0",
			"0 0 0 0 0 0 0 0 0 0",
			"0 1 1 1 1 1 1 1 0 0",
			"0 0 0 0 0 0 0 1 0 0",
			"0 1 1 1 1 1 0 1 0 0",
			"0 0 0 0 0 0 0 1 0 0",
			"0 1 1 1 1 1 1 1 0 0",
			"0 0 0 0 0 0 0 0 0 0",
			"0 0 0 0 0 0 0 0 0 E",
		},
	},
	{
		Name: "large", Title: "Large (15x15)", Group: GroupSize,
		Rows: []string{
			"S 0 0 0 0 0 0 0 0 0 0 0 0 0 0",
			"0 1 1 1 1 1 1 1 1 1 1 1 1 1 0",
			"0 0 0 0 0 0 0 0 0 0 0 0 0 0 0",
			"0 1 1 1 1 1 1 1 1 1 1 1 1 1 0",
			"0 0 0 0 0 0 0 0 0 0 0 0 0 0 0",
			"0 1 1 1 1 1 1 1 1 1 1 1 1 1 0",
			"0 0 0 0 0 0 0 0 0 0 0 0 0 0 0",
			"0 1 1 1 1 1 1 1 1 1 1 1 1 1 0",
			"0 0 0 0 0 0 0 0 0 0 0 0 0 0 0",
			"0 1 1 1 1 1 1 1 1 1 1 1 1 1 0",
			"0 0 0 0 0 0 0 0 0 0 0 0 0 0 0",
			"0 1 1 1 1 1 1 1 1 1 1 1 1 1 0",
			"0 0 0 0 0 0 0 0 0 0 0 0 0 0 0",
			"0 1 1 1 1 1 1 1 1 1 1 1 1 1 0",
			"0 0 0 0 0 0 0 0 0 0 0 0 0 0 E",
		},
	},
}

// All returns every entry in catalog order.
func All() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)

	return out
}

// ByGroup returns the entries tagged with g, in catalog order.
func ByGroup(g Group) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Group == g {
			out = append(out, e)
		}
	}

	return out
}

// Lookup finds an entry by name.
func Lookup(name string) (Entry, error) {
	for _, e := range entries {
		if e.Name == name {
			return e, nil
		}
	}

	return Entry{}, fmt.Errorf("%w: %q", ErrUnknownEntry, name)
}
