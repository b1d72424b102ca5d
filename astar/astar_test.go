package astar_test

import (
	"bytes"
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pathfinder/astar"
	"github.com/katalvlaran/pathfinder/maze"
)

// EngineSuite exercises the A* engine on fixed and random grids.
type EngineSuite struct {
	suite.Suite
}

func (s *EngineSuite) mustEngine(rows ...string) *astar.Engine {
	g, err := maze.FromStrings(rows)
	require.NoError(s.T(), err)
	eng, err := astar.New(g)
	require.NoError(s.T(), err)

	return eng
}

// TestSingleDirectPath verifies a corridor returns every cell in order.
func (s *EngineSuite) TestSingleDirectPath() {
	eng := s.mustEngine("S 0 0 0 E")
	path, ok := eng.FindPath()
	require.True(s.T(), ok)

	want := []maze.Coord{{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}}
	if diff := cmp.Diff(want, path.Coords()); diff != "" {
		s.T().Errorf("path mismatch (-want +got):\n%s", diff)
	}
	require.Equal(s.T(), 5, path.Len())
	require.Equal(s.T(), 4, path.Steps())
}

// TestBlockedGoal verifies a walled-off goal yields absence.
func (s *EngineSuite) TestBlockedGoal() {
	eng := s.mustEngine(
		"S 0 1",
		"1 1 1",
		"1 1 E",
	)
	path, ok := eng.FindPath()
	require.False(s.T(), ok)
	require.Zero(s.T(), path.Len())
}

// TestMultipleEqualRoutes checks a 4-step route is returned and that the
// push-order tie-break picks the southern detour.
func (s *EngineSuite) TestMultipleEqualRoutes() {
	eng := s.mustEngine(
		"S 0 0",
		"0 1 0",
		"0 0 E",
	)
	path, ok := eng.FindPath()
	require.True(s.T(), ok)
	require.Equal(s.T(), 4, path.Steps())

	want := []maze.Coord{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}
	if diff := cmp.Diff(want, path.Coords()); diff != "" {
		s.T().Errorf("path mismatch (-want +got):\n%s", diff)
	}
}

// TestDegenerate verifies start == goal is a single-coordinate path.
func (s *EngineSuite) TestDegenerate() {
	eng := s.mustEngine(
		"S 0",
		"0 E",
	)
	c := maze.Coord{Row: 0, Col: 1}
	path, ok := eng.FindPathBetween(c, c)
	require.True(s.T(), ok)
	require.Equal(s.T(), []maze.Coord{c}, path.Coords())
	require.Zero(s.T(), path.Steps())

	res, err := eng.SearchBetween(c, c)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, res.Expanded)
	require.Equal(s.T(), 1, res.Pushed)
}

// TestBlockedEndpoints verifies walls and out-of-bounds cells are never endpoints.
func (s *EngineSuite) TestBlockedEndpoints() {
	eng := s.mustEngine(
		"S 1",
		"0 E",
	)
	_, ok := eng.FindPathBetween(maze.Coord{Row: 0, Col: 0}, maze.Coord{Row: 0, Col: 1})
	require.False(s.T(), ok)
	_, ok = eng.FindPathBetween(maze.Coord{Row: -1, Col: 0}, maze.Coord{Row: 1, Col: 1})
	require.False(s.T(), ok)
}

// TestStatementMaze checks the first demo maze end to end.
func (s *EngineSuite) TestStatementMaze() {
	eng := s.mustEngine(
		"S 0 1 0 0",
		"0 0 1 0 1",
		"1 0 1 0 0",
		"1 0 0 E 1",
	)
	path, ok := eng.FindPath()
	require.True(s.T(), ok)

	want := []maze.Coord{{0, 0}, {1, 0}, {1, 1}, {2, 1}, {3, 1}, {3, 2}, {3, 3}}
	if diff := cmp.Diff(want, path.Coords()); diff != "" {
		s.T().Errorf("path mismatch (-want +got):\n%s", diff)
	}
}

// TestStats verifies the counters on an obstacle-free corridor.
func (s *EngineSuite) TestStats() {
	eng := s.mustEngine("S 0 0 0 E")
	res, err := eng.Search()
	require.NoError(s.T(), err)
	require.True(s.T(), res.Found)
	require.Equal(s.T(), 5, res.Expanded)
	require.Equal(s.T(), 5, res.Pushed)
	require.Zero(s.T(), res.Stale)
}

// TestDeterminism verifies repeated calls return identical paths.
func (s *EngineSuite) TestDeterminism() {
	eng := s.mustEngine(
		"S 0 0 0 0",
		"0 1 1 1 0",
		"0 0 0 0 0",
		"0 1 1 1 0",
		"0 0 0 0 E",
	)
	first, ok := eng.FindPath()
	require.True(s.T(), ok)
	for i := 0; i < 10; i++ {
		again, ok := eng.FindPath()
		require.True(s.T(), ok)
		require.Equal(s.T(), first.Coords(), again.Coords())
	}
}

// TestAgainstBFS compares step counts with plain BFS on random grids.
func (s *EngineSuite) TestAgainstBFS() {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 300; i++ {
		g := randomGrid(s.T(), rng, 1+rng.Intn(12), 1+rng.Intn(12), 0.35)
		eng, err := astar.New(g)
		require.NoError(s.T(), err)

		path, ok := eng.FindPath()
		steps, reachable := g.StepsFrom(g.Start())[g.Goal()]
		require.Equalf(s.T(), reachable, ok, "grid %d:\n%s", i, g)
		if !ok {
			continue
		}
		require.Equalf(s.T(), steps, path.Steps(), "grid %d:\n%s", i, g)
		assertValidPath(s.T(), g, path)
	}
}

// TestConcurrentSearches shares one engine across goroutines.
func (s *EngineSuite) TestConcurrentSearches() {
	eng := s.mustEngine(
		"S 0 0 1 0 0",
		"1 1 0 1 0 1",
		"0 0 0 0 0 0",
		"0 1 1 1 1 0",
		"0 0 0 0 0 E",
	)
	want, ok := eng.FindPath()
	require.True(s.T(), ok)

	var wg sync.WaitGroup
	results := make([]astar.Path, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = eng.FindPath()
		}(i)
	}
	wg.Wait()
	for _, got := range results {
		require.Equal(s.T(), want.Coords(), got.Coords())
	}
}

// TestCancelledContext verifies a done context aborts between iterations.
func (s *EngineSuite) TestCancelledContext() {
	g, err := maze.FromStrings([]string{"S 0 0 0 E"})
	require.NoError(s.T(), err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	eng, err := astar.New(g, astar.WithContext(ctx))
	require.NoError(s.T(), err)
	_, err = eng.Search()
	require.ErrorIs(s.T(), err, context.Canceled)

	_, ok := eng.FindPath()
	require.False(s.T(), ok)
}

// TestLogger verifies debug records reach a supplied logger.
func (s *EngineSuite) TestLogger() {
	g, err := maze.FromStrings([]string{"S 0 E"})
	require.NoError(s.T(), err)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	eng, err := astar.New(g, astar.WithLogger(logger))
	require.NoError(s.T(), err)
	_, ok := eng.FindPath()
	require.True(s.T(), ok)
	require.Contains(s.T(), buf.String(), "astar: search finished")
	require.Contains(s.T(), buf.String(), "found=true")
}

func (s *EngineSuite) TestNilGrid() {
	_, err := astar.New(nil)
	require.ErrorIs(s.T(), err, astar.ErrNilGrid)
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func TestManhattan(t *testing.T) {
	require.Equal(t, 0, astar.Manhattan(maze.Coord{Row: 2, Col: 2}, maze.Coord{Row: 2, Col: 2}))
	require.Equal(t, 7, astar.Manhattan(maze.Coord{Row: 0, Col: 5}, maze.Coord{Row: 3, Col: 1}))
}

func TestPath(t *testing.T) {
	p := astar.NewPath(maze.Coord{Row: 0, Col: 0}, maze.Coord{Row: 0, Col: 1})
	start, ok := p.Start()
	require.True(t, ok)
	require.Equal(t, maze.Coord{Row: 0, Col: 0}, start)
	goal, ok := p.Goal()
	require.True(t, ok)
	require.Equal(t, maze.Coord{Row: 0, Col: 1}, goal)
	require.True(t, p.Contains(maze.Coord{Row: 0, Col: 1}))
	require.False(t, p.Contains(maze.Coord{Row: 1, Col: 1}))

	var seen []int
	for i, c := range p.All() {
		seen = append(seen, i)
		if c.Col == 0 {
			continue
		}
		break
	}
	require.Equal(t, []int{0, 1}, seen)

	var empty astar.Path
	_, ok = empty.Start()
	require.False(t, ok)
	_, ok = empty.Goal()
	require.False(t, ok)
	require.Zero(t, empty.Steps())
}

// randomGrid builds a rows×cols grid with the given wall density and
// distinct random Start and Goal cells. A 1×1 request is widened to 1×2.
func randomGrid(t testing.TB, rng *rand.Rand, rows, cols int, density float64) *maze.Grid {
	t.Helper()
	if rows*cols < 2 {
		cols = 2
	}
	codes := make([][]rune, rows)
	for r := range codes {
		codes[r] = make([]rune, cols)
		for c := range codes[r] {
			codes[r][c] = '0'
			if rng.Float64() < density {
				codes[r][c] = '1'
			}
		}
	}
	s := rng.Intn(rows * cols)
	e := rng.Intn(rows*cols - 1)
	if e >= s {
		e++
	}
	codes[s/cols][s%cols] = 'S'
	codes[e/cols][e%cols] = 'E'

	g, err := maze.New(codes)
	require.NoError(t, err)

	return g
}

// assertValidPath checks endpoints, adjacency and passability of every step.
func assertValidPath(t testing.TB, g *maze.Grid, p astar.Path) {
	t.Helper()
	coords := p.Coords()
	require.NotEmpty(t, coords)
	require.Equal(t, g.Start(), coords[0])
	require.Equal(t, g.Goal(), coords[len(coords)-1])
	for i, c := range coords {
		require.Truef(t, g.IsPassable(c), "step %d %v not passable", i, c)
		if i > 0 {
			require.Equalf(t, 1, astar.Manhattan(coords[i-1], c), "step %d not adjacent", i)
		}
	}
}
