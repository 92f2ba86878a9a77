package state

import (
	"mazeadventure/pkg/engine/world"
	"mazeadventure/pkg/game/settings"
)

// maxMessages is how many announcements the message pane keeps
const maxMessages = 5

// Game represents the session state for one player
type Game struct {
	Grid   *world.Grid
	Player world.Point

	Level int  // Current level, starting at 1
	Moves int  // Accepted moves on the current grid
	Won   bool // Player stands on the goal

	Settings settings.Accessibility

	Messages []string
	Subtitle string // Latest announcement, shown only when subtitles are on
}

// NewGame creates a new game instance on level 1 with default settings
func NewGame() *Game {
	return &Game{
		Level:    1,
		Settings: settings.Default(),
		Messages: make([]string, 0),
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
	g.Subtitle = ""
}

// PlaceOnGrid installs a new grid and puts the player on its start cell
func (g *Game) PlaceOnGrid(grid *world.Grid) {
	g.Grid = grid
	g.ResetPosition()
}

// ResetPosition returns the player to the start of the current grid
func (g *Game) ResetPosition() {
	if g.Grid != nil {
		g.Player = g.Grid.Start()
	}
	g.Moves = 0
	g.Won = false
}

// AdvanceLevel increments the level counter and resets level-specific state
func (g *Game) AdvanceLevel() {
	g.Level++
	g.Moves = 0
	g.Won = false
}
