package render

import (
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/pathfinder/astar"
	"github.com/katalvlaran/pathfinder/maze"
)

// DefaultMarker is drawn on intermediate path cells.
const DefaultMarker = '*'

// Options controls grid rendering.
type Options struct {
	// Marker replaces intermediate path cells.
	Marker rune
	// Color enables ANSI styling of markers, endpoints and walls.
	Color bool
}

// Option configures rendering.
type Option func(*Options)

// WithMarker sets the path marker. The zero rune keeps DefaultMarker.
func WithMarker(r rune) Option {
	return func(o *Options) {
		if r != 0 {
			o.Marker = r
		}
	}
}

// WithColor toggles ANSI styling.
func WithColor(on bool) Option {
	return func(o *Options) {
		o.Color = on
	}
}

// DefaultOptions returns plain-text rendering with DefaultMarker.
func DefaultOptions() Options {
	return Options{Marker: DefaultMarker}
}

// palette holds the styles used when Options.Color is set.
type palette struct {
	path, start, goal, wall *color.Color
}

func newPalette(on bool) palette {
	p := palette{
		path:  color.New(color.FgYellow, color.Bold),
		start: color.New(color.FgGreen, color.Bold),
		goal:  color.New(color.FgRed, color.Bold),
		wall:  color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.path, p.start, p.goal, p.wall} {
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// Grid renders g with path overlaid: cells separated by single spaces,
// rows by newlines, no trailing newline. Path coordinates equal to the
// grid's start or goal keep their letters; out-of-bounds coordinates are
// ignored.
func Grid(g *maze.Grid, path astar.Path, opts ...Option) string {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	pal := newPalette(cfg.Color)

	onPath := make(map[maze.Coord]bool, path.Len())
	for _, c := range path.All() {
		if c != g.Start() && c != g.Goal() {
			onPath[c] = true
		}
	}

	rows, cols := g.Dimensions()
	var sb strings.Builder
	for r := 0; r < rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			pos := maze.Coord{Row: r, Col: c}
			cell := g.At(pos)
			switch {
			case onPath[pos]:
				sb.WriteString(pal.path.Sprint(string(cfg.Marker)))
			case cell == maze.Start:
				sb.WriteString(pal.start.Sprint(string(cell.Rune())))
			case cell == maze.Goal:
				sb.WriteString(pal.goal.Sprint(string(cell.Rune())))
			case cell == maze.Blocked:
				sb.WriteString(pal.wall.Sprint(string(cell.Rune())))
			default:
				sb.WriteRune(cell.Rune())
			}
		}
	}

	return sb.String()
}

// Path renders p as "[S(0, 0), (0, 1), E(0, 2)]". An empty path renders
// "[]"; a single coordinate is tagged as the start.
func Path(p astar.Path) string {
	if p.Len() == 0 {
		return "[]"
	}
	parts := make([]string, 0, p.Len())
	last := p.Len() - 1
	for i, c := range p.All() {
		switch {
		case i == 0:
			parts = append(parts, "S"+c.String())
		case i == last:
			parts = append(parts, "E"+c.String())
		default:
			parts = append(parts, c.String())
		}
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
