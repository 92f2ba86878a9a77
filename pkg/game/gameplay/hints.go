package gameplay

import (
	"mazeadventure/pkg/engine/world"
)

// NextStep returns the direction of the first step on a shortest route home and
// the number of steps left. ok is false when the goal cannot be reached.
func NextStep(grid *world.Grid, from world.Point) (dir world.Direction, steps int, ok bool) {
	path := world.ShortestPath(grid, from, grid.Goal())
	if path == nil {
		return 0, 0, false
	}
	if len(path) == 1 {
		return 0, 0, true
	}

	dx, dy := path[1].X-path[0].X, path[1].Y-path[0].Y
	for _, d := range world.AllDirections() {
		if ddx, ddy := d.Delta(); ddx == dx && ddy == dy {
			dir = d
		}
	}
	return dir, len(path) - 1, true
}

// Hint announces how far the goal is and which way to head
func (c *Controller) Hint() {
	g := c.Game
	if g.Grid == nil {
		return
	}

	dir, steps, ok := NextStep(g.Grid, g.Player)
	switch {
	case !ok:
		c.announce(c.text.Get("HINT_NONE"))
	case steps == 0:
		c.announce(c.text.Get("HINT_AT_GOAL"))
	default:
		c.announce(c.text.Get("HINT", steps, c.text.Direction(dir)))
	}
}
