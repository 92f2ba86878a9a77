package generator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazeadventure/pkg/engine/world"
)

func TestInteriorSize(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{-3, 5},
		{0, 5},
		{1, 5},
		{2, 5},
		{3, 7},
		{4, 7},
		{6, 9},
		{30, 25},
		{31, 25},
		{1000, 25},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InteriorSize(tt.level), "InteriorSize(%d)", tt.level)
	}
}

func TestInteriorSize_OddBoundedMonotonic(t *testing.T) {
	for level := 1; level <= 100; level++ {
		size := InteriorSize(level)
		assert.Equal(t, 1, size%2, "InteriorSize(%d) = %d is even", level, size)
		assert.GreaterOrEqual(t, size, BaseSize)
		assert.LessOrEqual(t, size, MaxSize)
		assert.LessOrEqual(t, size, InteriorSize(level+1))
		assert.LessOrEqual(t, size, InteriorSize(level+3))
	}
}

func TestLoopCount(t *testing.T) {
	assert.Equal(t, 5, LoopCount(1, 5))
	assert.Equal(t, 5, LoopCount(0, 5))
	assert.Equal(t, 7, LoopCount(4, 7))
	assert.Equal(t, 9, LoopCount(8, 9))
	assert.Equal(t, 20, LoopCount(30, 25))
	assert.Equal(t, 25, LoopCount(100, 25))
}

func TestCarve_PerfectMaze(t *testing.T) {
	for _, size := range []int{1, 3, 5, 11, 25} {
		interior := newInterior(size)
		Carve(interior, rand.New(rand.NewSource(int64(size))))

		nodes := ((size + 1) / 2) * ((size + 1) / 2)
		open := 0
		for y := range interior {
			for x := range interior[y] {
				if interior[y][x] == world.Path {
					open++
				}
				if x%2 == 0 && y%2 == 0 {
					assert.Equal(t, world.Path, interior[y][x], "size %d: node (%d, %d) not carved", size, x, y)
				}
				if x%2 == 1 && y%2 == 1 {
					assert.Equal(t, world.Wall, interior[y][x], "size %d: pillar (%d, %d) carved", size, x, y)
				}
			}
		}
		// A spanning tree over N nodes has N-1 edges, each opening one midpoint.
		assert.Equal(t, 2*nodes-1, open, "size %d", size)
	}
}

// carveRecursive is the textbook recursive carve used to check visit order.
func carveRecursive(interior [][]world.Tile, node world.Point, rng Rand) {
	size := len(interior)
	for _, step := range shuffled(carveSteps, rng) {
		next := node.Add(step.X, step.Y)
		if next.X < 0 || next.Y < 0 || next.X >= size || next.Y >= size || interior[next.Y][next.X] != world.Wall {
			continue
		}
		interior[node.Y+step.Y/2][node.X+step.X/2] = world.Path
		interior[next.Y][next.X] = world.Path
		carveRecursive(interior, next, rng)
	}
}

func TestCarve_MatchesRecursiveOrder(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		iterative := newInterior(15)
		Carve(iterative, rand.New(rand.NewSource(seed)))

		recursive := newInterior(15)
		recursive[0][0] = world.Path
		carveRecursive(recursive, world.Point{}, rand.New(rand.NewSource(seed)))

		assert.Equal(t, recursive, iterative, "seed %d", seed)
	}
}

func TestAddLoops_Bounded(t *testing.T) {
	for level := 1; level <= 30; level++ {
		size := InteriorSize(level)
		rng := rand.New(rand.NewSource(int64(level)))
		interior := newInterior(size)
		Carve(interior, rng)
		before := countPath(interior)

		budget := LoopCount(level, size)
		opened := AddLoops(interior, budget, rng)

		assert.LessOrEqual(t, opened, budget, "level %d", level)
		assert.Equal(t, before+opened, countPath(interior), "level %d: reported count differs from grid", level)
	}
}

func TestAddLoops_OpensWallsBetweenNodes(t *testing.T) {
	interior := newInterior(9)
	rng := rand.New(rand.NewSource(42))
	Carve(interior, rng)
	carved := cloneTiles(interior)

	opened := AddLoops(interior, 5, rng)
	require.Positive(t, opened)

	for y := range interior {
		for x := range interior[y] {
			if carved[y][x] == interior[y][x] {
				continue
			}
			assert.Equal(t, world.Wall, carved[y][x])
			assert.True(t, (x+y)%2 == 1, "opened (%d, %d) is not a midpoint", x, y)
		}
	}
}

func TestAddLoops_NoBudget(t *testing.T) {
	interior := newInterior(5)
	rng := rand.New(rand.NewSource(7))
	Carve(interior, rng)
	assert.Zero(t, AddLoops(interior, 0, rng))
	assert.Zero(t, AddLoops(newInterior(1), 3, rng))
}

func TestGenerateMaze_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for level := 1; level <= 30; level++ {
		grid := GenerateMaze(level, rng)
		side := InteriorSize(level) + 2

		require.Equal(t, side, grid.Width(), "level %d", level)
		require.Equal(t, side, grid.Height(), "level %d", level)
		assert.Equal(t, world.Point{X: 1, Y: 1}, grid.Start())
		assert.Equal(t, world.Point{X: side - 2, Y: side - 2}, grid.Goal())
		assert.Empty(t, grid.Validate(), "level %d", level)
		assert.NotNil(t, world.ShortestPath(grid, grid.Start(), grid.Goal()), "level %d: goal unreachable", level)
		assert.True(t, world.IsFullyConnected(grid), "level %d: stray open cell", level)

		grid.ForEachCell(func(p world.Point, tile world.Tile) {
			if grid.IsOnPerimeter(p) {
				assert.Equal(t, world.Wall, tile, "level %d: border %v open", level, p)
			}
		})
	}
}

func TestGenerateMaze_Scenarios(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	first := GenerateMaze(1, rng)
	assert.Equal(t, 7, first.Width())
	assert.Equal(t, 7, first.Height())
	assert.Equal(t, world.Point{X: 5, Y: 5}, first.Goal())

	fourth := GenerateMaze(4, rng)
	assert.Equal(t, 9, fourth.Width())
}

func TestGenerateMaze_InvalidLevelClamps(t *testing.T) {
	grid := GenerateMaze(0, rand.New(rand.NewSource(3)))
	assert.Equal(t, BaseSize+2, grid.Width())
	assert.Empty(t, grid.Validate())
}

func TestNewSeeded_Deterministic(t *testing.T) {
	a := NewSeeded(99).Generate(10)
	b := NewSeeded(99).Generate(10)
	assert.Equal(t, a.Tiles(), b.Tiles())
	assert.Equal(t, NameBacktracker, NewSeeded(99).Name())
}

func TestFixed(t *testing.T) {
	grid := Fixed.Generate(12)
	assert.Equal(t, 7, grid.Width())
	assert.Equal(t, world.Point{X: 5, Y: 5}, grid.Goal())
	assert.Empty(t, grid.Validate())
	assert.True(t, grid.IsWall(world.Point{X: 1, Y: 2}))
	assert.NotNil(t, world.ShortestPath(grid, grid.Start(), grid.Goal()))
}

func TestByName(t *testing.T) {
	gen, err := ByName("", 5)
	require.NoError(t, err)
	assert.Equal(t, NameBacktracker, gen.Name())

	gen, err = ByName(NameFixed, 0)
	require.NoError(t, err)
	assert.Equal(t, NameFixed, gen.Name())

	_, err = ByName("bsp", 0)
	assert.Error(t, err)
}

func countPath(tiles [][]world.Tile) int {
	n := 0
	for _, row := range tiles {
		for _, t := range row {
			if t == world.Path {
				n++
			}
		}
	}
	return n
}

func cloneTiles(tiles [][]world.Tile) [][]world.Tile {
	out := make([][]world.Tile, len(tiles))
	for i := range tiles {
		out[i] = append([]world.Tile(nil), tiles[i]...)
	}
	return out
}
