// Command pathfinder solves 2D mazes with A* and prints the highlighted route.
//
// Usage:
//
//	pathfinder solve maze.txt
//	pathfinder solve --format yaml < maze.yaml
//	pathfinder examples --group variation
//	pathfinder bench --runs 50
//	pathfinder build
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
