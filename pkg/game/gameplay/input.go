package gameplay

import (
	"log"

	engineinput "mazeadventure/pkg/engine/input"
	"mazeadventure/pkg/engine/world"
	"mazeadventure/pkg/game/settings"
)

var moveDirections = map[engineinput.Action]world.Direction{
	engineinput.ActionMoveNorth: world.North,
	engineinput.ActionMoveEast:  world.East,
	engineinput.ActionMoveSouth: world.South,
	engineinput.ActionMoveWest:  world.West,
}

var toggleOptions = map[engineinput.Action]settings.Option{
	engineinput.ActionToggleHighContrast:  settings.OptionHighContrast,
	engineinput.ActionToggleAudio:         settings.OptionAudio,
	engineinput.ActionToggleLargeText:     settings.OptionLargeText,
	engineinput.ActionToggleReducedMotion: settings.OptionReducedMotion,
	engineinput.ActionToggleScreenReader:  settings.OptionScreenReader,
	engineinput.ActionToggleSubtitles:     settings.OptionSubtitles,
	engineinput.ActionToggleIcons:         settings.OptionIcons,
}

// ProcessIntent handles a high-level input intent from the tiered input system.
// It returns true when the player asked to quit.
func (c *Controller) ProcessIntent(intent engineinput.Intent) (quit bool) {
	g := c.Game

	if intent.Action.IsMove() {
		dir := moveDirections[intent.Action]
		if _, err := c.Move(dir); err != nil {
			log.Printf("[GAME] [WARN] move %v: %v", dir, err)
		}
		return false
	}
	if opt, ok := toggleOptions[intent.Action]; ok {
		on := g.Settings.Toggle(opt)
		c.announce(c.text.Toggled(opt, on))
		return false
	}

	switch intent.Action {
	case engineinput.ActionQuit:
		return true

	case engineinput.ActionContinue:
		if g.Won {
			c.Advance()
		}

	case engineinput.ActionReset:
		c.Reset()

	case engineinput.ActionHint:
		c.Hint()

	case engineinput.ActionCycleColorBlind:
		if g.Settings.UseIcons {
			c.announce(c.text.Get("COLOR_MODE_ICONS"))
			return false
		}
		mode := g.Settings.CycleColorBlind()
		c.announce(c.text.Get("COLOR_MODE", c.text.ColorBlind(mode)))
	}
	return false
}
