package astar

import (
	"iter"

	"github.com/katalvlaran/pathfinder/maze"
)

// Path is an ordered sequence of coordinates from start to goal inclusive.
// A Path returned by a successful search has at least one coordinate.
type Path struct {
	coords []maze.Coord
}

// NewPath builds a Path from coords. The slice is copied.
func NewPath(coords ...maze.Coord) Path {
	out := make([]maze.Coord, len(coords))
	copy(out, coords)

	return Path{coords: out}
}

// Len returns the number of coordinates.
func (p Path) Len() int { return len(p.coords) }

// Steps returns the number of moves, Len()-1, or 0 for an empty path.
func (p Path) Steps() int {
	if len(p.coords) == 0 {
		return 0
	}

	return len(p.coords) - 1
}

// Start returns the first coordinate. ok is false for an empty path.
func (p Path) Start() (c maze.Coord, ok bool) {
	if len(p.coords) == 0 {
		return maze.Coord{}, false
	}

	return p.coords[0], true
}

// Goal returns the last coordinate. ok is false for an empty path.
func (p Path) Goal() (c maze.Coord, ok bool) {
	if len(p.coords) == 0 {
		return maze.Coord{}, false
	}

	return p.coords[len(p.coords)-1], true
}

// Coords returns a copy of the coordinates.
func (p Path) Coords() []maze.Coord {
	out := make([]maze.Coord, len(p.coords))
	copy(out, p.coords)

	return out
}

// All yields (index, coordinate) pairs in start-to-goal order.
func (p Path) All() iter.Seq2[int, maze.Coord] {
	return func(yield func(int, maze.Coord) bool) {
		for i, c := range p.coords {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Contains reports whether c lies on the path.
func (p Path) Contains(c maze.Coord) bool {
	for _, pc := range p.coords {
		if pc == c {
			return true
		}
	}

	return false
}
