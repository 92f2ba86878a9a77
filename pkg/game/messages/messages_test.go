package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mazeadventure/pkg/engine/input"
	"mazeadventure/pkg/engine/world"
	"mazeadventure/pkg/game/settings"
)

func TestLoad_English(t *testing.T) {
	c := Load("en_GB.utf8")
	assert.Equal(t, "en", c.Locale())
	assert.Equal(t, "Moved right. Position 3, 2.", c.Get("MOVED", c.Direction(world.East), 3, 2))
	assert.Equal(t, "Cannot move up. There is a wall.", c.Get("BLOCKED", c.Direction(world.North)))
	assert.Equal(t, "Game reset. You are back at the starting position.", c.Get("RESET"))
}

func TestLoad_Spanish(t *testing.T) {
	c := Load("es-MX")
	assert.Equal(t, "es", c.Locale())
	assert.Equal(t, "abajo", c.Direction(world.South))
	assert.Equal(t, "Nivel 4", c.Get("LEVEL_LABEL", 4))
}

func TestLoad_UnknownFallsBack(t *testing.T) {
	c := Load("klingon")
	assert.Equal(t, DefaultLocale, c.Locale())
	assert.Equal(t, "left", c.Direction(world.West))
}

func TestGet_UnknownKey(t *testing.T) {
	assert.Equal(t, "NO_SUCH_KEY", Load("en").Get("NO_SUCH_KEY"))
}

func TestToggled(t *testing.T) {
	c := Load("en")
	assert.Equal(t, "Subtitles on.", c.Toggled(settings.OptionSubtitles, true))
	assert.Equal(t, "Audio cues off.", c.Toggled(settings.OptionAudio, false))
}

func TestLocales(t *testing.T) {
	assert.Equal(t, []string{"en", "es"}, Locales())
}

func TestGet_KeyFromVariable(t *testing.T) {
	c := Load("en")
	key := "LEVEL_START"
	assert.Equal(t, "Level 2. Find your way home from the top left corner to the bottom right.", c.Get(key, 2))
}

func TestColorBlind(t *testing.T) {
	assert.Equal(t, "protanopia", Load("en").ColorBlind(settings.ColorBlindProtanopia))
	assert.Equal(t, "tritanopía", Load("es").ColorBlind(settings.ColorBlindTritanopia))
	assert.Equal(t, "unknown", Load("en").ColorBlind(settings.ColorBlindMode(9)))
}

func TestAction(t *testing.T) {
	c := Load("es")
	assert.Equal(t, "pista", c.Action(input.ActionHint))
	assert.Equal(t, "Iconos", c.Action(input.ActionToggleIcons))
	assert.Equal(t, "None", c.Action(input.ActionNone))
}

func TestHelpLine(t *testing.T) {
	c := Load("en")
	assert.Equal(t, "↑/k/w up  ↓/j/s down  ←/a/h left  →/d/l right  Enter/Space continue  r reset  ? hint  Esc/q quit", c.HelpLine())
	assert.Equal(t, "1 High contrast  2 Audio cues  3 Large text  4 Reduced motion  5 Screen reader  6 Subtitles  7 Icons  8 Colour mode", c.OptionsLine())
}

func TestHelpLine_FollowsRebinding(t *testing.T) {
	input.SetSingleBinding(input.ActionReset, "x")
	t.Cleanup(func() { input.SetSingleBinding(input.ActionReset, "r") })

	line := Load("es").HelpLine()
	assert.Contains(t, line, "x reiniciar")
	assert.NotContains(t, line, "r reiniciar")
}
