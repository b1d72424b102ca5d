// Package maze models a 2D maze as an immutable grid of cells with a single
// Start and a single Goal, and answers the adjacency queries a path search
// needs.
//
// What:
//
//   - Cell is a closed enumeration: Start ('S'), Goal ('E'), Free ('0'), Blocked ('1').
//   - Coord is a (Row, Col) value, comparable and usable as a map key.
//   - Grid is built once (New, FromStrings, Parse, ParseYAML), deep-copied and never mutated.
//   - Neighbors yields orthogonal passable cells in the fixed order N, S, W, E.
//   - StepsFrom and Reachable give plain BFS step counts over passable cells.
//
// Why:
//
//   - A read-only grid can be shared by any number of concurrent searches.
//   - A fixed neighbor order keeps every search over the grid deterministic.
//
// Complexity:
//
//   - Construction:       O(R×C), Memory: O(R×C).
//   - IsPassable, At:      O(1).
//   - Neighbors:          O(1) (at most 4 results).
//   - StepsFrom:          O(R×C), Memory: O(R×C).
//
// Options:
//
//   - WithStrictEndpoints(): reject grids with more than one Start or Goal.
//     Without it the last occurrence in row-major order wins.
//
// Errors:
//
//   - ErrEmptyGrid:      input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownCell:    a code other than S, E, 0, 1.
//   - ErrMissingStart:   no Start cell.
//   - ErrMissingGoal:    no Goal cell.
//   - ErrDuplicateStart, ErrDuplicateGoal: strict mode only.
package maze
