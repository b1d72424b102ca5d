// Package render turns a maze.Grid and an astar.Path into printable text.
//
// Grid overlays a marker on every path cell except the start and goal;
// Path formats the coordinate list with the first element tagged S and
// the last tagged E. Both are read-only projections of their inputs.
package render
