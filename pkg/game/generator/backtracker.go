package generator

import (
	"log"

	"mazeadventure/pkg/engine/world"
)

// Backtracker generates mazes by depth-first carving followed by a loop pass.
type Backtracker struct {
	rng Rand
}

// NewBacktracker creates a backtracking generator drawing from rng
func NewBacktracker(rng Rand) *Backtracker {
	return &Backtracker{rng: rng}
}

// NewSeeded creates a backtracking generator with its own seeded source.
// Seed 0 picks a time based seed.
func NewSeeded(seed int64) *Backtracker {
	return NewBacktracker(NewRand(seed))
}

// Name returns the generator name
func (b *Backtracker) Name() string {
	return NameBacktracker
}

// Generate creates the maze for a level
func (b *Backtracker) Generate(level int) *world.Grid {
	return GenerateMaze(level, b.rng)
}

// GenerateMaze builds a framed maze for level: size from the level curve, a
// depth-first carve, the goal corner forced open, a bounded loop pass, and
// finally the wall border.
func GenerateMaze(level int, rng Rand) *world.Grid {
	size := InteriorSize(level)
	interior := newInterior(size)

	Carve(interior, rng)
	interior[size-1][size-1] = world.Path
	opened := AddLoops(interior, LoopCount(level, size), rng)

	grid := world.FrameInterior(interior)
	if problem := grid.Validate(); problem != "" {
		log.Printf("[GEN] [WARN] level %d: %s", level, problem)
	}
	log.Printf("[GEN] [INFO] level %d: %dx%d maze, %d loops", level, grid.Width(), grid.Height(), opened)
	return grid
}
