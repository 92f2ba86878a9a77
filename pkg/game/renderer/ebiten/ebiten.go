package ebiten

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	engineinput "mazeadventure/pkg/engine/input"
	"mazeadventure/pkg/game/messages"
	"mazeadventure/pkg/game/renderer"
	"mazeadventure/pkg/game/state"
)

var _ renderer.Renderer = (*EbitenRenderer)(nil)

// New creates a new Ebiten renderer
func New(text *messages.Catalog) *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:    defaultWindowWidth,
		windowHeight:   defaultWindowHeight,
		text:           text,
		inputChan:      make(chan engineinput.Intent, inputBuffer),
		done:           make(chan struct{}),
		keyRepeatState: make(map[string]keyRepeatInfo),
	}
}

// Init loads fonts and sets up the window
func (e *EbitenRenderer) Init() {
	if err := e.loadFonts(); err != nil {
		log.Printf("[EBITEN] [WARN] Falling back to debug text: %v", err)
	}

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(e.text.Get("TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// Clear is a no-op: Draw repaints the whole screen every frame
func (e *EbitenRenderer) Clear() {}

// RenderFrame captures the game state for the next Draw
func (e *EbitenRenderer) RenderFrame(g *state.Game) {
	snap := renderSnapshot{
		valid:    true,
		grid:     g.Grid,
		player:   g.Player,
		level:    g.Level,
		moves:    g.Moves,
		won:      g.Won,
		settings: g.Settings,
		messages: append([]string(nil), g.Messages...),
		subtitle: g.Subtitle,
	}

	e.snapshotMutex.Lock()
	prev := e.snapshot
	e.snapshot = snap
	e.snapshotMutex.Unlock()

	e.animMutex.Lock()
	defer e.animMutex.Unlock()
	switch {
	case !prev.valid || prev.grid != snap.grid || snap.settings.ReducedMotion:
		e.anim = slide{from: snap.player, to: snap.player}
	case prev.player != snap.player:
		e.anim = slide{from: prev.player, to: snap.player, start: time.Now()}
	}
}

// GetInput blocks until the window produces an intent. Closing the window quits.
func (e *EbitenRenderer) GetInput() engineinput.Intent {
	select {
	case intent := <-e.inputChan:
		return intent
	case <-e.done:
		return engineinput.Intent{Action: engineinput.ActionQuit}
	}
}

// Layout follows the window size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run starts the game loop on its own goroutine and blocks in the Ebiten main loop
// until either side finishes. It must be called from the main goroutine.
func (e *EbitenRenderer) Run(loop func()) error {
	go func() {
		loop()
		e.Close()
	}()

	err := ebiten.RunGame(e)
	e.Close()
	return err
}

// Close ends the Ebiten loop on its next Update and releases GetInput
func (e *EbitenRenderer) Close() {
	e.closeOnce.Do(func() {
		close(e.done)
	})
}

func (e *EbitenRenderer) closed() bool {
	select {
	case <-e.done:
		return true
	default:
		return false
	}
}
