package gameplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazeadventure/pkg/engine/audio"
	engineinput "mazeadventure/pkg/engine/input"
	"mazeadventure/pkg/engine/world"
	"mazeadventure/pkg/game/generator"
	"mazeadventure/pkg/game/messages"
	"mazeadventure/pkg/game/state"
)

type recordingTones struct{ played []audio.Tone }

func (r *recordingTones) PlayTone(t audio.Tone) { r.played = append(r.played, t) }

type recordingSpeaker struct{ said []string }

func (r *recordingSpeaker) Speak(text string) { r.said = append(r.said, text) }

// countingGenerator serves the practice maze and counts calls
type countingGenerator struct {
	calls  int
	levels []int
}

func (c *countingGenerator) Generate(level int) *world.Grid {
	c.calls++
	c.levels = append(c.levels, level)
	return generator.Fixed.Generate(level)
}

func (c *countingGenerator) Name() string { return "counting" }

func newTestController(t *testing.T) (*Controller, *recordingTones, *recordingSpeaker, *countingGenerator) {
	t.Helper()
	tones := &recordingTones{}
	voice := &recordingSpeaker{}
	gen := &countingGenerator{}
	c := NewController(state.NewGame(), gen, tones, voice, messages.Load("en"))
	c.Start(1)
	return c, tones, voice, gen
}

// walk is the shortest route through the practice maze
var walk = []world.Direction{world.East, world.South, world.South, world.East, world.East, world.East, world.South, world.South}

func TestController_Start(t *testing.T) {
	c, _, _, gen := newTestController(t)
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, world.Point{X: 1, Y: 1}, c.Game.Player)
	assert.Contains(t, c.Game.Messages[0], "Level 1")
}

func TestController_StartClampsLevel(t *testing.T) {
	c, _, _, gen := newTestController(t)
	c.Start(-2)
	assert.Equal(t, 1, c.Game.Level)
	assert.Equal(t, []int{1, 1}, gen.levels)
}

func TestController_MoveFeedback(t *testing.T) {
	c, tones, voice, _ := newTestController(t)
	c.Game.Settings.ScreenReader = true

	res, err := c.Move(world.East)
	require.NoError(t, err)
	assert.True(t, res.Accepted)
	assert.Equal(t, 1, c.Game.Moves)
	assert.Equal(t, []audio.Tone{audio.ToneMove}, tones.played)
	assert.Equal(t, []string{"Moved right. Position 3, 2."}, voice.said)

	res, err = c.Move(world.North)
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	assert.Equal(t, 1, c.Game.Moves, "rejected move counted")
	assert.Equal(t, audio.ToneWall, tones.played[len(tones.played)-1])
	assert.Equal(t, "Cannot move up. There is a wall.", voice.said[len(voice.said)-1])
}

func TestController_FeedbackGating(t *testing.T) {
	c, tones, voice, _ := newTestController(t)
	c.Game.Settings.AudioEnabled = false
	c.Game.Settings.ScreenReader = false
	c.Game.Settings.Subtitles = false

	_, _ = c.Move(world.East)
	assert.Empty(t, tones.played)
	assert.Empty(t, voice.said)
	assert.Empty(t, c.Game.Subtitle)
	assert.NotEmpty(t, c.Game.Messages, "message pane always gets announcements")

	c.Game.Settings.Subtitles = true
	_, _ = c.Move(world.West)
	assert.Equal(t, "Moved left. Position 2, 2.", c.Game.Subtitle)
}

func TestController_WinThenContinue(t *testing.T) {
	c, tones, _, gen := newTestController(t)
	for _, d := range walk {
		_, err := c.Move(d)
		require.NoError(t, err)
	}
	require.True(t, c.Game.Won)
	assert.Equal(t, len(walk), c.Game.Moves)
	assert.Equal(t, []audio.Tone{audio.ToneMove, audio.ToneWin}, tones.played[len(tones.played)-2:])
	assert.Contains(t, c.Game.Messages, "Congratulations! You found the way home in 8 moves! You won the game!")

	// Moves after a win are ignored.
	res, err := c.Move(world.North)
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	assert.Equal(t, c.Game.Grid.Goal(), c.Game.Player)

	quit := c.ProcessIntent(engineinput.Intent{Action: engineinput.ActionContinue})
	assert.False(t, quit)
	assert.Equal(t, 2, c.Game.Level)
	assert.Equal(t, []int{1, 2}, gen.levels)
	assert.False(t, c.Game.Won)
	assert.Equal(t, c.Game.Grid.Start(), c.Game.Player)
}

func TestController_ContinueBeforeWinIgnored(t *testing.T) {
	c, _, _, gen := newTestController(t)
	c.ProcessIntent(engineinput.Intent{Action: engineinput.ActionContinue})
	assert.Equal(t, 1, c.Game.Level)
	assert.Equal(t, 1, gen.calls)
}

func TestController_Reset(t *testing.T) {
	c, _, _, gen := newTestController(t)
	grid := c.Game.Grid
	_, _ = c.Move(world.East)
	_, _ = c.Move(world.South)

	c.ProcessIntent(engineinput.Intent{Action: engineinput.ActionReset})
	assert.Equal(t, world.Point{X: 1, Y: 1}, c.Game.Player)
	assert.Zero(t, c.Game.Moves)
	assert.Same(t, grid, c.Game.Grid, "reset regenerated the maze")
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, "Game reset. You are back at the starting position.", c.Game.Messages[len(c.Game.Messages)-1])
}

func TestController_Hint(t *testing.T) {
	c, _, _, _ := newTestController(t)
	c.Hint()
	assert.Equal(t, "Home is 8 steps away. Try going right.", c.Game.Messages[len(c.Game.Messages)-1])
}

func TestController_ToggleIntents(t *testing.T) {
	c, _, voice, _ := newTestController(t)

	c.ProcessIntent(engineinput.IntentFor(engineinput.DeviceKeyboard, "5"))
	assert.True(t, c.Game.Settings.ScreenReader)
	assert.Equal(t, []string{"Screen reader on."}, voice.said)

	c.ProcessIntent(engineinput.IntentFor(engineinput.DeviceKeyboard, "8"))
	assert.Equal(t, "Colour mode: protanopia.", c.Game.Messages[len(c.Game.Messages)-1])

	c.ProcessIntent(engineinput.IntentFor(engineinput.DeviceKeyboard, "7"))
	assert.True(t, c.Game.Settings.UseIcons)
	c.ProcessIntent(engineinput.IntentFor(engineinput.DeviceKeyboard, "8"))
	assert.Equal(t, "Colour modes are unavailable while icons are shown.", c.Game.Messages[len(c.Game.Messages)-1])
}

func TestController_MovementIntentAndQuit(t *testing.T) {
	c, _, _, _ := newTestController(t)
	assert.False(t, c.ProcessIntent(engineinput.IntentFor(engineinput.DeviceKeyboard, "d")))
	assert.Equal(t, world.Point{X: 2, Y: 1}, c.Game.Player)
	assert.True(t, c.ProcessIntent(engineinput.IntentFor(engineinput.DeviceKeyboard, "q")))
}

func TestController_InvalidDirection(t *testing.T) {
	c, tones, _, _ := newTestController(t)
	_, err := c.Move(world.Direction(-1))
	assert.ErrorIs(t, err, ErrInvalidDirection)
	assert.Empty(t, tones.played)
}

func TestController_ColorModeTranslated(t *testing.T) {
	c := NewController(state.NewGame(), generator.Fixed, nil, nil, messages.Load("es"))
	c.Start(1)
	c.ProcessIntent(engineinput.Intent{Action: engineinput.ActionCycleColorBlind})
	assert.Equal(t, "Modo de color: protanopía.", c.Game.Messages[len(c.Game.Messages)-1])
}

func TestController_MoveIntentEachDirection(t *testing.T) {
	c, _, _, _ := newTestController(t)
	for _, a := range []engineinput.Action{engineinput.ActionMoveEast, engineinput.ActionMoveWest, engineinput.ActionMoveSouth, engineinput.ActionMoveNorth} {
		assert.False(t, c.ProcessIntent(engineinput.Intent{Action: a}))
	}
	// East and back; south and north are walls from the start
	assert.Equal(t, world.Point{X: 1, Y: 1}, c.Game.Player)
	assert.Equal(t, 2, c.Game.Moves)
}
