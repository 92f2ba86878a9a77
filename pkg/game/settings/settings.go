// Package settings holds the player's accessibility preferences and the colours
// and glyphs derived from them.
package settings

import (
	"fmt"
	"strings"
)

// ColorBlindMode selects a palette tuned for a colour vision deficiency.
type ColorBlindMode int

const (
	ColorBlindNormal ColorBlindMode = iota
	ColorBlindProtanopia
	ColorBlindDeuteranopia
	ColorBlindTritanopia
)

var colorBlindNames = []string{"normal", "protanopia", "deuteranopia", "tritanopia"}

func (m ColorBlindMode) String() string {
	if m < 0 || int(m) >= len(colorBlindNames) {
		return "unknown"
	}
	return colorBlindNames[m]
}

// ParseColorBlindMode accepts a mode name as produced by String.
func ParseColorBlindMode(s string) (ColorBlindMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range colorBlindNames {
		if s == name {
			return ColorBlindMode(i), nil
		}
	}
	return ColorBlindNormal, fmt.Errorf("unknown color blind mode %q", s)
}

// Option identifies a boolean accessibility switch.
type Option int

const (
	OptionHighContrast Option = iota
	OptionAudio
	OptionLargeText
	OptionReducedMotion
	OptionScreenReader
	OptionSubtitles
	OptionIcons
)

var optionNames = map[Option]string{
	OptionHighContrast:  "High contrast",
	OptionAudio:         "Audio cues",
	OptionLargeText:     "Large text",
	OptionReducedMotion: "Reduced motion",
	OptionScreenReader:  "Screen reader",
	OptionSubtitles:     "Subtitles",
	OptionIcons:         "Icons",
}

// AllOptions returns every boolean option in menu order
func AllOptions() []Option {
	return []Option{
		OptionHighContrast,
		OptionAudio,
		OptionLargeText,
		OptionReducedMotion,
		OptionScreenReader,
		OptionSubtitles,
		OptionIcons,
	}
}

func (o Option) String() string {
	if name, ok := optionNames[o]; ok {
		return name
	}
	return "Unknown"
}

// Accessibility is the full set of player preferences.
type Accessibility struct {
	HighContrast  bool
	AudioEnabled  bool
	LargeText     bool
	ReducedMotion bool
	ScreenReader  bool
	Subtitles     bool
	UseIcons      bool
	ColorBlind    ColorBlindMode
}

// Default returns the out-of-the-box settings: audio cues on, everything else off.
func Default() Accessibility {
	return Accessibility{AudioEnabled: true}
}

// All returns every accommodation switched on. Icons stay off so the colour
// palette keeps working.
func All() Accessibility {
	return Accessibility{
		HighContrast:  true,
		AudioEnabled:  true,
		LargeText:     true,
		ReducedMotion: true,
		ScreenReader:  true,
		Subtitles:     true,
	}
}

// Enabled reports the state of a boolean option.
func (a Accessibility) Enabled(o Option) bool {
	switch o {
	case OptionHighContrast:
		return a.HighContrast
	case OptionAudio:
		return a.AudioEnabled
	case OptionLargeText:
		return a.LargeText
	case OptionReducedMotion:
		return a.ReducedMotion
	case OptionScreenReader:
		return a.ScreenReader
	case OptionSubtitles:
		return a.Subtitles
	case OptionIcons:
		return a.UseIcons
	}
	return false
}

// Toggle flips an option and returns its new state.
// Switching icons on drops any colour-blind palette.
func (a *Accessibility) Toggle(o Option) bool {
	switch o {
	case OptionHighContrast:
		a.HighContrast = !a.HighContrast
	case OptionAudio:
		a.AudioEnabled = !a.AudioEnabled
	case OptionLargeText:
		a.LargeText = !a.LargeText
	case OptionReducedMotion:
		a.ReducedMotion = !a.ReducedMotion
	case OptionScreenReader:
		a.ScreenReader = !a.ScreenReader
	case OptionSubtitles:
		a.Subtitles = !a.Subtitles
	case OptionIcons:
		a.UseIcons = !a.UseIcons
		if a.UseIcons {
			a.ColorBlind = ColorBlindNormal
		}
	}
	return a.Enabled(o)
}

// CycleColorBlind moves to the next colour-blind palette. It does nothing while
// icons are shown, since icons replace colours.
func (a *Accessibility) CycleColorBlind() ColorBlindMode {
	if a.UseIcons {
		return a.ColorBlind
	}
	a.ColorBlind = (a.ColorBlind + 1) % ColorBlindMode(len(colorBlindNames))
	return a.ColorBlind
}
