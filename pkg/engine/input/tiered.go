package input

import (
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Session
	ActionContinue // Next level after a win (Enter/Space)
	ActionReset    // Back to the start of the current maze
	ActionHint
	ActionQuit

	// Accessibility toggles
	ActionToggleHighContrast
	ActionToggleAudio
	ActionToggleLargeText
	ActionToggleReducedMotion
	ActionToggleScreenReader
	ActionToggleSubtitles
	ActionToggleIcons
	ActionCycleColorBlind
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "w", "arrow_up", "enter").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Codes are normalized to lower case here so Shift+W and w move the same way.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   strings.ToLower(raw.Code),
	}
}

// reserved codes cannot be rebound away from their action
var reserved = map[string]bool{
	"arrow_up":    true,
	"arrow_down":  true,
	"arrow_left":  true,
	"arrow_right": true,
	"enter":       true,
	"escape":      true,
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, WASD, Vim)
	"arrow_up":    ActionMoveNorth,
	"w":           ActionMoveNorth,
	"k":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"s":           ActionMoveSouth,
	"j":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"a":           ActionMoveWest,
	"h":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"d":           ActionMoveEast,
	"l":           ActionMoveEast,

	"enter": ActionContinue,
	"space": ActionContinue,
	" ":     ActionContinue,

	"r": ActionReset,

	"?":    ActionHint,
	"hint": ActionHint,

	"q":      ActionQuit,
	"quit":   ActionQuit,
	"escape": ActionQuit,

	"1": ActionToggleHighContrast,
	"2": ActionToggleAudio,
	"3": ActionToggleLargeText,
	"4": ActionToggleReducedMotion,
	"5": ActionToggleScreenReader,
	"6": ActionToggleSubtitles,
	"7": ActionToggleIcons,
	"8": ActionCycleColorBlind,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// IntentFor runs a code through every layer.
func IntentFor(device Device, code string) Intent {
	return MapToIntent(NewDebouncedInput(RawInput{Device: device, Code: code, Timestamp: time.Now()}))
}

// IsMove reports whether the action is one of the four movement actions.
func (a Action) IsMove() bool {
	return a >= ActionMoveNorth && a <= ActionMoveEast
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move Up"
	case ActionMoveSouth:
		return "Move Down"
	case ActionMoveWest:
		return "Move Left"
	case ActionMoveEast:
		return "Move Right"
	case ActionContinue:
		return "Continue"
	case ActionReset:
		return "Reset"
	case ActionHint:
		return "Hint"
	case ActionQuit:
		return "Quit"
	case ActionToggleHighContrast:
		return "High Contrast"
	case ActionToggleAudio:
		return "Audio Cues"
	case ActionToggleLargeText:
		return "Large Text"
	case ActionToggleReducedMotion:
		return "Reduced Motion"
	case ActionToggleScreenReader:
		return "Screen Reader"
	case ActionToggleSubtitles:
		return "Subtitles"
	case ActionToggleIcons:
		return "Icons"
	case ActionCycleColorBlind:
		return "Color Blind Mode"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable order so the help line doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all non-reserved bindings for the given action with a single code.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if reserved[c] {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	code = strings.ToLower(code)
	if code != "" && !reserved[code] {
		bindings[code] = action
	}
}
