package generator

import (
	"github.com/zyedidia/generic/stack"

	"mazeadventure/pkg/engine/world"
)

// carveSteps are the node-to-node jumps on the half-resolution lattice
var carveSteps = [4]world.Point{{X: 0, Y: -2}, {X: 2, Y: 0}, {X: 0, Y: 2}, {X: -2, Y: 0}}

// carveFrame is one pending node of the depth-first carve: the node, its
// shuffled jump order and the index of the next jump to try.
type carveFrame struct {
	node  world.Point
	steps [4]world.Point
	next  int
}

// newInterior returns a size x size block of walls
func newInterior(size int) [][]world.Tile {
	interior := make([][]world.Tile, size)
	for y := range interior {
		interior[y] = make([]world.Tile, size)
		for x := range interior[y] {
			interior[y][x] = world.Wall
		}
	}
	return interior
}

func shuffled(steps [4]world.Point, rng Rand) [4]world.Point {
	rng.Shuffle(len(steps), func(i, j int) {
		steps[i], steps[j] = steps[j], steps[i]
	})
	return steps
}

// Carve turns an all-wall interior into a perfect maze by randomized depth-first
// backtracking from (0, 0). Nodes sit on even coordinates; the odd cell between two
// nodes is opened when the walk crosses it. Each node shuffles its jumps once, when
// it is entered, so the walk matches the recursive formulation step for step.
func Carve(interior [][]world.Tile, rng Rand) {
	size := len(interior)
	if size == 0 {
		return
	}

	inside := func(p world.Point) bool {
		return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
	}

	origin := world.Point{}
	interior[origin.Y][origin.X] = world.Path

	frames := stack.New[*carveFrame]()
	frames.Push(&carveFrame{node: origin, steps: shuffled(carveSteps, rng)})

	for frames.Size() > 0 {
		top := frames.Peek()
		if top.next == len(top.steps) {
			frames.Pop()
			continue
		}

		step := top.steps[top.next]
		top.next++

		next := top.node.Add(step.X, step.Y)
		if !inside(next) || interior[next.Y][next.X] != world.Wall {
			continue
		}

		mid := top.node.Add(step.X/2, step.Y/2)
		interior[mid.Y][mid.X] = world.Path
		interior[next.Y][next.X] = world.Path
		frames.Push(&carveFrame{node: next, steps: shuffled(carveSteps, rng)})
	}
}
