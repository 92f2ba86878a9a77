package world

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// Reachable returns all open cells reachable from start via N/E/S/W.
// A walled or out-of-bounds start yields an empty set.
func Reachable(g *Grid, start Point) mapset.Set[Point] {
	reachable := mapset.New[Point]()
	if g == nil || !g.IsPath(start) {
		return reachable
	}

	q := queue.New[Point]()
	q.Enqueue(start)
	reachable.Put(start)

	for !q.Empty() {
		current := q.Dequeue()
		for _, n := range current.Neighbors() {
			if g.IsPath(n) && !reachable.Has(n) {
				reachable.Put(n)
				q.Enqueue(n)
			}
		}
	}

	return reachable
}

// ShortestPath returns the cells of a shortest N/E/S/W route from start to end,
// both included. It returns nil when end cannot be reached.
func ShortestPath(g *Grid, start, end Point) []Point {
	if g == nil || !g.IsPath(start) || !g.IsPath(end) {
		return nil
	}

	cameFrom := map[Point]Point{start: start}
	q := queue.New[Point]()
	q.Enqueue(start)

	for !q.Empty() {
		current := q.Dequeue()
		if current == end {
			var path []Point
			for p := end; p != start; p = cameFrom[p] {
				path = append(path, p)
			}
			path = append(path, start)
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, n := range current.Neighbors() {
			if _, seen := cameFrom[n]; !seen && g.IsPath(n) {
				cameFrom[n] = current
				q.Enqueue(n)
			}
		}
	}
	return nil
}

// IsFullyConnected reports whether every open cell is reachable from the start cell
func IsFullyConnected(g *Grid) bool {
	reachable := Reachable(g, g.Start())
	return reachable.Size() == g.CountTiles(Path)
}
