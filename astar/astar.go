package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/pathfinder/maze"
)

// Engine runs A* over one grid. It holds no per-search state, so a single
// Engine may serve concurrent searches.
type Engine struct {
	grid    *maze.Grid
	options Options
}

// New binds an Engine to g.
// Returns ErrNilGrid if g is nil.
func New(g *maze.Grid, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{grid: g, options: cfg}, nil
}

// Grid returns the grid the engine searches.
func (e *Engine) Grid() *maze.Grid { return e.grid }

// FindPath returns a minimum-step path from the grid's start to its goal.
// ok is false when the goal is unreachable or the engine's context ended
// before the search completed.
func (e *Engine) FindPath() (path Path, ok bool) {
	res, err := e.Search()
	if err != nil {
		return Path{}, false
	}

	return res.Path, res.Found
}

// FindPathBetween is FindPath between two arbitrary cells. from == to
// yields the single-coordinate path when the cell is passable.
func (e *Engine) FindPathBetween(from, to maze.Coord) (path Path, ok bool) {
	res, err := e.SearchBetween(from, to)
	if err != nil {
		return Path{}, false
	}

	return res.Path, res.Found
}

// Search runs A* from the grid's start to its goal and reports the path
// along with frontier statistics. The only error is the engine context's
// error, returned when the context is done between iterations.
//
// Complexity: O(N log N) time, O(N) space, N = passable cells.
func (e *Engine) Search() (Result, error) {
	return e.SearchBetween(e.grid.Start(), e.grid.Goal())
}

// SearchBetween is Search between two arbitrary cells. A blocked or
// out-of-bounds endpoint yields Found == false without exploring.
func (e *Engine) SearchBetween(from, to maze.Coord) (Result, error) {
	log := e.options.Logger.With("start", from.String(), "goal", to.String())
	if !e.grid.IsPassable(from) || !e.grid.IsPassable(to) {
		log.Debug("astar: endpoint not passable")
		return Result{}, nil
	}

	r := newRunner(e.grid, from, to)
	log.Debug("astar: search started")

	res, err := r.run(e.options)
	if err != nil {
		log.Debug("astar: search aborted", "err", err, "expanded", res.Expanded)
		return res, fmt.Errorf("astar: search aborted: %w", err)
	}
	log.Debug("astar: search finished",
		"found", res.Found,
		"steps", res.Path.Steps(),
		"expanded", res.Expanded,
		"pushed", res.Pushed,
		"stale", res.Stale,
	)

	return res, nil
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
func Manhattan(a, b maze.Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// node is one search record. parent indexes the arena, -1 for the seed.
type node struct {
	pos    maze.Coord
	g, h   int
	parent int
}

// runner holds the mutable state of a single search.
type runner struct {
	grid        *maze.Grid
	start, goal maze.Coord
	arena       []node
	open        frontier
	closed      map[maze.Coord]bool
	bestG       map[maze.Coord]int
	seq         int
	res         Result
}

func newRunner(g *maze.Grid, start, goal maze.Coord) *runner {
	rows, cols := g.Dimensions()
	n := rows * cols

	return &runner{
		grid:   g,
		start:  start,
		goal:   goal,
		arena:  make([]node, 0, n),
		open:   make(frontier, 0, n),
		closed: make(map[maze.Coord]bool, n),
		bestG:  make(map[maze.Coord]int, n),
	}
}

// push appends a node to the arena and its handle to the frontier.
func (r *runner) push(pos maze.Coord, g, parent int) {
	h := Manhattan(pos, r.goal)
	r.arena = append(r.arena, node{pos: pos, g: g, h: h, parent: parent})
	heap.Push(&r.open, frontierItem{node: len(r.arena) - 1, f: g + h, seq: r.seq})
	r.seq++
	r.res.Pushed++
}

func (r *runner) run(cfg Options) (Result, error) {
	r.bestG[r.start] = 0
	r.push(r.start, 0, -1)

	for r.open.Len() > 0 {
		// Abandoning here leaves nothing half-updated.
		if err := cfg.Ctx.Err(); err != nil {
			return r.res, err
		}

		item := heap.Pop(&r.open).(frontierItem)
		cur := r.arena[item.node]

		// Superseded entry for a finalized cell.
		if r.closed[cur.pos] {
			r.res.Stale++
			continue
		}
		r.closed[cur.pos] = true
		r.res.Expanded++

		if cur.pos == r.goal {
			r.res.Path = r.reconstruct(item.node)
			r.res.Found = true
			return r.res, nil
		}

		for _, nb := range r.grid.Neighbors(cur.pos) {
			if r.closed[nb] {
				continue
			}
			cand := cur.g + 1
			if best, seen := r.bestG[nb]; seen && cand >= best {
				continue
			}
			r.bestG[nb] = cand
			r.push(nb, cand, item.node)
		}
	}

	return r.res, nil
}

// reconstruct walks parent links from the arena node at idx back to the
// seed and returns the coordinates in start-to-goal order.
func (r *runner) reconstruct(idx int) Path {
	var coords []maze.Coord
	for i := idx; i >= 0; i = r.arena[i].parent {
		coords = append(coords, r.arena[i].pos)
	}
	for i, j := 0, len(coords)-1; i < j; i, j = i+1, j-1 {
		coords[i], coords[j] = coords[j], coords[i]
	}

	return Path{coords: coords}
}
