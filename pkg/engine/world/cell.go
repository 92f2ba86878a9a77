// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

import "fmt"

// Tile is the content of a single grid cell.
// The numeric values match the 0/1 encoding web clients exchange.
type Tile int

// Tile values
const (
	Path Tile = 0
	Wall Tile = 1
)

// String returns "wall" or "path"
func (t Tile) String() string {
	if t == Wall {
		return "wall"
	}
	return "path"
}

// Point is a cell coordinate. X is the column, Y the row; (0, 0) is the top-left corner.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Step returns the adjacent point in the given direction
func (p Point) Step(dir Direction) Point {
	dx, dy := dir.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Add returns p offset by (dx, dy)
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String formats the point as (x, y)
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Neighbors returns the four orthogonally adjacent points in North, East, South, West order
func (p Point) Neighbors() [4]Point {
	return [4]Point{p.Step(North), p.Step(East), p.Step(South), p.Step(West)}
}
