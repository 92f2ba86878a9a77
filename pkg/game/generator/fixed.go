package generator

import "mazeadventure/pkg/engine/world"

// starterLayout is the hand-drawn practice maze. 1 is wall, 0 is path, and the
// start (1, 1) and goal (5, 5) are open.
var starterLayout = [][]world.Tile{
	{1, 1, 1, 1, 1, 1, 1},
	{1, 0, 0, 1, 0, 0, 1},
	{1, 1, 0, 1, 0, 1, 1},
	{1, 0, 0, 0, 0, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 0, 0, 1, 0, 1},
	{1, 1, 1, 1, 1, 1, 1},
}

// FixedGenerator always returns the 7x7 practice maze regardless of level.
type FixedGenerator struct{}

// Name returns the generator name
func (FixedGenerator) Name() string {
	return NameFixed
}

// Generate returns a fresh copy of the practice maze
func (FixedGenerator) Generate(int) *world.Grid {
	grid, err := world.NewGridFromTiles(starterLayout)
	if err != nil {
		panic(err)
	}
	return grid
}
