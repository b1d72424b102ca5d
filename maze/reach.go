package maze

// StepsFrom runs a breadth-first search from src over passable cells and
// returns the minimum number of orthogonal steps to every reachable cell.
// src itself maps to 0. A blocked or out-of-bounds src yields an empty map.
//
// Time:   O(R·C).
// Memory: O(R·C) for the queue and the distance map.
func (g *Grid) StepsFrom(src Coord) map[Coord]int {
	dist := make(map[Coord]int)
	if !g.IsPassable(src) {
		return dist
	}

	queue := []Coord{src}
	dist[src] = 0
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range g.Neighbors(u) {
			if _, seen := dist[v]; seen {
				continue
			}
			dist[v] = dist[u] + 1
			queue = append(queue, v)
		}
	}

	return dist
}

// Reachable reports whether the goal can be reached from the start.
func (g *Grid) Reachable() bool {
	_, ok := g.StepsFrom(g.start)[g.goal]

	return ok
}
