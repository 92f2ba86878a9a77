package generator

import "mazeadventure/pkg/engine/world"

// AddLoops opens up to count extra walls between carve nodes that are already
// connected, turning the perfect maze into one with alternate routes. Each attempt
// picks a random node and tries its four directions in shuffled order; the first
// closed wall between two open nodes is removed. At most count*10 attempts are made.
// It returns the number of walls opened.
func AddLoops(interior [][]world.Tile, count int, rng Rand) int {
	size := len(interior)
	if size < 3 || count <= 0 {
		return 0
	}

	nodesPerSide := (size + 1) / 2
	inside := func(p world.Point) bool {
		return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
	}
	isPath := func(p world.Point) bool {
		return inside(p) && interior[p.Y][p.X] == world.Path
	}

	opened := 0
	for attempt := 0; attempt < count*attemptsPerHit && opened < count; attempt++ {
		node := world.Point{X: rng.Intn(nodesPerSide) * 2, Y: rng.Intn(nodesPerSide) * 2}
		if !isPath(node) {
			continue
		}
		for _, step := range shuffled(carveSteps, rng) {
			far := node.Add(step.X, step.Y)
			mid := node.Add(step.X/2, step.Y/2)
			if !isPath(far) || interior[mid.Y][mid.X] != world.Wall {
				continue
			}
			interior[mid.Y][mid.X] = world.Path
			opened++
			break
		}
	}
	return opened
}
