package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathfinder/astar"
	"github.com/katalvlaran/pathfinder/maze"
)

// BenchmarkFindPath_Open measures an obstacle-free 200×200 grid corner to corner.
func BenchmarkFindPath_Open(b *testing.B) {
	const n = 200
	codes := make([][]rune, n)
	for r := range codes {
		codes[r] = make([]rune, n)
		for c := range codes[r] {
			codes[r][c] = '0'
		}
	}
	codes[0][0] = 'S'
	codes[n-1][n-1] = 'E'
	g, err := maze.New(codes)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	eng, _ := astar.New(g)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = eng.FindPath()
	}
}

// BenchmarkFindPath_Random measures a 200×200 grid with 30% walls.
func BenchmarkFindPath_Random(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	g := randomGrid(b, rng, 200, 200, 0.3)
	eng, _ := astar.New(g)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = eng.FindPath()
	}
}
