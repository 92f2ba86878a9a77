// Package gameplay provides core game logic for player movement and the session lifecycle.
package gameplay

import (
	"errors"
	"fmt"

	"mazeadventure/pkg/engine/world"
)

// ErrInvalidDirection is returned for a direction other than the four cardinals
var ErrInvalidDirection = errors.New("invalid direction")

// MoveResult is the outcome of a single step attempt
type MoveResult struct {
	Accepted    bool        `json:"accepted"`
	Position    world.Point `json:"position"`
	ReachedGoal bool        `json:"reached_goal"`
}

// TryMove checks a one-cell step from pos. A step off the grid or into a wall is
// rejected and Position stays pos. TryMove has no side effects; feedback is up to
// the caller.
func TryMove(grid *world.Grid, pos world.Point, dir world.Direction) (MoveResult, error) {
	if !dir.IsValid() {
		return MoveResult{Position: pos}, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}

	next := pos.Step(dir)
	if grid == nil || !grid.InBounds(next) || grid.IsWall(next) {
		return MoveResult{Position: pos}, nil
	}

	return MoveResult{
		Accepted:    true,
		Position:    next,
		ReachedGoal: next == grid.Goal(),
	}, nil
}
