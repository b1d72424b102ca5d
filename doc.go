// Package pathfinder finds shortest routes through 2D mazes with A*.
//
// What is in the box:
//
//	maze/    — immutable grid model: cells, coordinates, S/E lookup, N/S/W/E adjacency, text and YAML input
//	astar/   — the A* engine with Manhattan heuristic, lazy deletion and deterministic tie-breaking
//	render/  — path overlay and path formatting for terminals
//	cmd/pathfinder — CLI: solve, examples, bench, build
//
// Quick ASCII example:
//
//	S 0 1        S 0 1
//	0 0 1   →    * * 1
//	1 0 E        1 * E
//
// Mazes use 'S' for the start, 'E' for the goal, '0' for free cells and
// '1' for walls. Movement is orthogonal with unit step cost.
package pathfinder
