package world

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidGrid is returned when caller supplied rows cannot form a Grid
var ErrInvalidGrid = errors.New("invalid grid")

// minGridSide is the smallest side that still has an interior inside the border
const minGridSide = 3

// Grid represents the maze with encapsulated cell storage.
// A Grid is not modified after construction; the next level gets a new Grid.
type Grid struct {
	cells  [][]Tile
	width  int
	height int

	start Point
	goal  Point
}

// NewGrid creates a grid filled with walls. Start is the first interior cell
// and goal the last one.
func NewGrid(width, height int) *Grid {
	if width < minGridSide || height < minGridSide {
		panic("Grid dimensions must be at least 3x3")
	}

	cells := make([][]Tile, height)
	for y := range cells {
		cells[y] = make([]Tile, width)
		for x := range cells[y] {
			cells[y][x] = Wall
		}
	}
	return newGrid(cells)
}

// NewGridFromTiles builds a grid from rows of tiles. The rows are copied.
// Rows must be rectangular and at least 3x3.
func NewGridFromTiles(rows [][]Tile) (*Grid, error) {
	if len(rows) < minGridSide {
		return nil, fmt.Errorf("%w: %d rows, need at least %d", ErrInvalidGrid, len(rows), minGridSide)
	}
	width := len(rows[0])
	if width < minGridSide {
		return nil, fmt.Errorf("%w: %d columns, need at least %d", ErrInvalidGrid, width, minGridSide)
	}

	cells := make([][]Tile, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidGrid, y, len(row), width)
		}
		cells[y] = make([]Tile, width)
		for x, t := range row {
			if t != Wall && t != Path {
				return nil, fmt.Errorf("%w: unknown tile %d at (%d, %d)", ErrInvalidGrid, t, x, y)
			}
			cells[y][x] = t
		}
	}
	return newGrid(cells), nil
}

// FrameInterior wraps a square or rectangular interior in a one-cell wall border.
// The interior is copied; the last interior cell is forced open so the goal is always walkable.
func FrameInterior(interior [][]Tile) *Grid {
	innerH := len(interior)
	innerW := 0
	if innerH > 0 {
		innerW = len(interior[0])
	}

	g := NewGrid(innerW+2, innerH+2)
	for y := 0; y < innerH; y++ {
		copy(g.cells[y+1][1:innerW+1], interior[y])
	}
	if innerW > 0 && innerH > 0 {
		g.cells[g.goal.Y][g.goal.X] = Path
	}
	return g
}

func newGrid(cells [][]Tile) *Grid {
	height := len(cells)
	width := len(cells[0])
	return &Grid{
		cells:  cells,
		width:  width,
		height: height,
		start:  Point{X: 1, Y: 1},
		goal:   Point{X: width - 2, Y: height - 2},
	}
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// Start returns the starting cell
func (g *Grid) Start() Point {
	return g.start
}

// Goal returns the goal cell
func (g *Grid) Goal() Point {
	return g.goal
}

// InBounds checks if a position is within grid bounds
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// IsPlayablePosition checks if a position is within the interior (not on the perimeter)
func (g *Grid) IsPlayablePosition(p Point) bool {
	return p.X >= 1 && p.X < g.width-1 && p.Y >= 1 && p.Y < g.height-1
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(p Point) bool {
	return g.InBounds(p) && !g.IsPlayablePosition(p)
}

// At returns the tile at p. Positions outside the grid read as Wall.
func (g *Grid) At(p Point) Tile {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[p.Y][p.X]
}

// IsWall reports whether p is a wall or outside the grid
func (g *Grid) IsWall(p Point) bool {
	return g.At(p) == Wall
}

// IsPath reports whether p is inside the grid and open
func (g *Grid) IsPath(p Point) bool {
	return g.InBounds(p) && g.cells[p.Y][p.X] == Path
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(p Point, t Tile)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(Point{X: x, Y: y}, g.cells[y][x])
		}
	}
}

// CountTiles returns how many cells hold the given tile
func (g *Grid) CountTiles(t Tile) int {
	n := 0
	g.ForEachCell(func(_ Point, tile Tile) {
		if tile == t {
			n++
		}
	})
	return n
}

// Tiles returns a deep copy of the rows
func (g *Grid) Tiles() [][]Tile {
	out := make([][]Tile, g.height)
	for y := range g.cells {
		out[y] = make([]Tile, g.width)
		copy(out[y], g.cells[y])
	}
	return out
}

// Validate checks the grid for common issues and returns an error description or empty string if valid
func (g *Grid) Validate() string {
	if g.width < minGridSide || g.height < minGridSide {
		return "Grid has invalid dimensions"
	}

	if !g.IsPath(g.start) {
		return "Start cell is not open"
	}

	if !g.IsPath(g.goal) {
		return "Goal cell is not open"
	}

	broken := ""
	g.ForEachCell(func(p Point, t Tile) {
		if broken == "" && t == Path && g.IsOnPerimeter(p) {
			broken = fmt.Sprintf("Border cell %v is open", p)
		}
	})
	return broken
}

// String renders the grid with '#' for walls and ' ' for paths, one row per line
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] == Wall {
				b.WriteByte('#')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
