package server

import (
	"mazeadventure/pkg/engine/world"
)

// MazeRequest asks for the maze of a level. Seed 0 picks a random maze.
type MazeRequest struct {
	Level     int    `json:"level"`
	Seed      int64  `json:"seed"`
	Generator string `json:"generator"`
}

// MazeResponse is a generated maze. Cells use 0 for path and 1 for wall.
type MazeResponse struct {
	Level int            `json:"level"`
	Size  int            `json:"size"`
	Start world.Point    `json:"start"`
	Goal  world.Point    `json:"goal"`
	Cells [][]world.Tile `json:"cells"`
}

// MoveRequest asks whether a step is legal on a client held grid.
type MoveRequest struct {
	Cells     [][]world.Tile `json:"cells" binding:"required"`
	Position  world.Point    `json:"position"`
	Direction string         `json:"direction" binding:"required"`
}
