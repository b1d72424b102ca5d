// Package astar finds a minimum-step path between the Start and Goal cells
// of a maze.Grid using A* with the Manhattan-distance heuristic.
//
// Movement is 4-directional with uniform step cost 1. Manhattan distance
// never overestimates the remaining steps and is consistent for this move
// set, so the first time the goal is popped from the frontier its cost is
// optimal.
//
// Algorithm:
//
//   - The frontier is a binary min-heap ordered by f = g + h; among equal f
//     the entry pushed first wins, so every run over the same grid returns
//     the same path.
//   - A closed set records finalized coordinates and a cost map records the
//     best g seen so far.
//   - Improvements push a fresh node instead of decreasing a key in place.
//     Stale entries remain in the heap and are dropped when popped, because
//     their coordinate is already closed.
//   - Nodes live in an arena indexed by creation order; each node stores the
//     index of its parent, set once. The chain is walked once on success.
//
// Complexity:
//
//   - Time:  O(N log N), N = R×C passable cells (each cell pushed at most 4 times).
//   - Space: O(N) for the arena, the heap, the closed set and the cost map.
//
// Options:
//
//   - WithLogger(l):  debug logging of each search (default discards).
//   - WithContext(c): polled between iterations; Search returns c.Err() when done.
//
// Errors:
//
//   - ErrNilGrid: New was given a nil grid.
//
// "No path" is not an error: FindPath returns ok == false and Search
// returns Result.Found == false.
//
// Example:
//
//	g, _ := maze.FromStrings([]string{"S 0 0 0 E"})
//	eng, _ := astar.New(g)
//	if path, ok := eng.FindPath(); ok {
//	    fmt.Println(path.Steps()) // 4
//	}
package astar
