package gameplay

import (
	"log"

	"mazeadventure/pkg/engine/audio"
	"mazeadventure/pkg/engine/speech"
	"mazeadventure/pkg/engine/world"
	"mazeadventure/pkg/game/generator"
	"mazeadventure/pkg/game/messages"
	"mazeadventure/pkg/game/state"
)

// Controller drives one game session: it owns the state and routes feedback to
// the player's chosen channels.
type Controller struct {
	Game *state.Game

	gen     generator.GridGenerator
	tones   audio.TonePlayer
	speaker speech.Speaker
	text    *messages.Catalog
}

// NewController wires a session. Nil capabilities fall back to silent ones and a
// nil catalog loads English.
func NewController(g *state.Game, gen generator.GridGenerator, tones audio.TonePlayer, speaker speech.Speaker, text *messages.Catalog) *Controller {
	if g == nil {
		g = state.NewGame()
	}
	if gen == nil {
		gen = generator.DefaultGenerator
	}
	if tones == nil {
		tones = audio.Silent{}
	}
	if speaker == nil {
		speaker = speech.Silent{}
	}
	if text == nil {
		text = messages.Load(messages.DefaultLocale)
	}
	return &Controller{Game: g, gen: gen, tones: tones, speaker: speaker, text: text}
}

// Start generates the maze for level and places the player at its start
func (c *Controller) Start(level int) {
	if level < 1 {
		level = 1
	}
	c.Game.Level = level
	c.loadLevel()
}

// Advance moves on to the next level with a fresh maze
func (c *Controller) Advance() {
	c.Game.AdvanceLevel()
	c.loadLevel()
}

func (c *Controller) loadLevel() {
	g := c.Game
	g.PlaceOnGrid(c.gen.Generate(g.Level))
	g.ClearMessages()
	log.Printf("[GAME] [INFO] level %d with %s generator, %dx%d", g.Level, c.gen.Name(), g.Grid.Width(), g.Grid.Height())
	c.announce(c.text.Get("LEVEL_START", g.Level))
}

// Reset puts the player back at the start of the current maze
func (c *Controller) Reset() {
	c.Game.ResetPosition()
	c.announce(c.text.Get("RESET"))
}

// Move attempts a step. Moves are ignored once the goal is reached.
func (c *Controller) Move(dir world.Direction) (MoveResult, error) {
	g := c.Game
	if g.Won || g.Grid == nil {
		return MoveResult{Position: g.Player}, nil
	}

	res, err := TryMove(g.Grid, g.Player, dir)
	if err != nil {
		return res, err
	}

	word := c.text.Direction(dir)
	if !res.Accepted {
		c.tone(audio.ToneWall)
		c.announce(c.text.Get("BLOCKED", word))
		return res, nil
	}

	g.Player = res.Position
	g.Moves++
	c.tone(audio.ToneMove)

	if res.ReachedGoal {
		g.Won = true
		c.tone(audio.ToneWin)
		c.announce(c.text.Get("WON", g.Moves))
		c.announce(c.text.Get("CONTINUE_PROMPT"))
		return res, nil
	}

	c.announce(c.text.Get("MOVED", word, res.Position.X+1, res.Position.Y+1))
	return res, nil
}

func (c *Controller) tone(t audio.Tone) {
	if c.Game.Settings.AudioEnabled {
		c.tones.PlayTone(t)
	}
}

// announce logs msg to the message pane and sends it to the enabled channels
func (c *Controller) announce(msg string) {
	g := c.Game
	g.AddMessage(msg)
	if g.Settings.Subtitles {
		g.Subtitle = msg
	}
	if g.Settings.ScreenReader {
		c.speaker.Speak(msg)
	}
}
