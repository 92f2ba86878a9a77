// Package ebiten provides an Ebiten-based 2D graphical renderer for Maze Adventure.
package ebiten

import (
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "mazeadventure/pkg/engine/input"
	"mazeadventure/pkg/engine/world"
	"mazeadventure/pkg/game/messages"
	"mazeadventure/pkg/game/settings"
)

// renderSnapshot holds a consistent snapshot of game state for rendering
// This prevents jitter from races between the game loop and Draw
type renderSnapshot struct {
	valid    bool
	grid     *world.Grid
	player   world.Point
	level    int
	moves    int
	won      bool
	settings settings.Accessibility
	messages []string
	subtitle string
}

// slide is the player's glide from one cell to the next
type slide struct {
	from  world.Point
	to    world.Point
	start time.Time
}

// keyRepeatInfo tracks the repeat state for a key or button
type keyRepeatInfo struct {
	firstPressed int64 // Timestamp when first pressed (milliseconds)
	lastRepeat   int64 // Timestamp when last repeat event was sent (milliseconds)
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	text *messages.Catalog

	// Font sources for text rendering
	sansFontSource *text.GoTextFaceSource
	monoFontSource *text.GoTextFaceSource

	// Cached font faces (recreated when the UI size changes)
	cachedUIFontSize float64
	cachedSansFace   *text.GoTextFace
	cachedMonoFace   *text.GoTextFace

	// Cached render snapshot for consistent drawing
	snapshot      renderSnapshot
	snapshotMutex sync.RWMutex

	// Player movement animation
	anim      slide
	animMutex sync.RWMutex

	// Input channel for communication between Ebiten and game loop
	inputChan chan engineinput.Intent

	// Closed once the window goes away or the game loop ends
	done      chan struct{}
	closeOnce sync.Once

	// Flag to track if we've logged window opening
	windowOpenedLogged bool

	// Key repeat state tracking
	// Maps key/button codes to their repeat state
	keyRepeatState      map[string]keyRepeatInfo
	keyRepeatStateMutex sync.Mutex
}
