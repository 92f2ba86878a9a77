package renderer

import (
	"mazeadventure/pkg/engine/input"
	"mazeadventure/pkg/game/state"
)

// Renderer defines the interface for game rendering backends
// Implementations include the terminal (TUI) and an Ebiten window.
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame
	// This includes the maze, the status line, subtitles and messages
	RenderFrame(g *state.Game)

	// GetInput blocks until the player does something and returns the intent
	GetInput() input.Intent
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete game frame
func RenderFrame(g *state.Game) {
	if Current != nil {
		Current.RenderFrame(g)
	}
}

// GetInput gets the next intent from the current renderer.
// Without a renderer the session quits.
func GetInput() input.Intent {
	if Current != nil {
		return Current.GetInput()
	}
	return input.Intent{Action: input.ActionQuit}
}
