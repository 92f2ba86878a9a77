// Package messages provides the translated announcements spoken, shown as
// subtitles and logged to the message pane.
package messages

import (
	"embed"
	"log"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
	"github.com/rivo/uniseg"

	"mazeadventure/pkg/engine/input"
	"mazeadventure/pkg/engine/world"
	"mazeadventure/pkg/game/settings"
)

// DefaultLocale is used when the requested locale has no catalog
const DefaultLocale = "en"

//go:embed locales/*.po
var localeFS embed.FS

// poGet looks keys up through a function value so vet does not take Get for a
// printf wrapper; keys are catalog ids, not format strings.
var poGet = (*gotext.Po).Get

// Catalog looks up announcement templates for one locale.
type Catalog struct {
	locale string
	po     *gotext.Po
}

// Locales lists the embedded locales in sorted order.
func Locales() []string {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return []string{DefaultLocale}
	}
	var out []string
	for _, e := range entries {
		out = append(out, strings.TrimSuffix(e.Name(), ".po"))
	}
	sort.Strings(out)
	return out
}

// Load returns the catalog for locale. Region suffixes are ignored ("es_MX" loads
// "es"); unknown locales fall back to English.
func Load(locale string) *Catalog {
	lang := strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(lang, "_-."); i > 0 {
		lang = lang[:i]
	}
	if lang == "" {
		lang = DefaultLocale
	}

	data, err := localeFS.ReadFile("locales/" + lang + ".po")
	if err != nil {
		log.Printf("[I18N] [WARN] no catalog for locale %q, using %s", locale, DefaultLocale)
		lang = DefaultLocale
		data, _ = localeFS.ReadFile("locales/" + DefaultLocale + ".po")
	}

	po := gotext.NewPo()
	po.Parse(data)
	return &Catalog{locale: lang, po: po}
}

// Locale returns the language actually loaded
func (c *Catalog) Locale() string {
	return c.locale
}

// Get translates key and formats it with args. Unknown keys come back untranslated.
func (c *Catalog) Get(key string, args ...any) string {
	return poGet(c.po, key, args...)
}

// Direction returns the spoken word for a direction ("up", "left", ...)
func (c *Catalog) Direction(d world.Direction) string {
	switch d {
	case world.North:
		return c.Get("DIR_UP")
	case world.East:
		return c.Get("DIR_RIGHT")
	case world.South:
		return c.Get("DIR_DOWN")
	case world.West:
		return c.Get("DIR_LEFT")
	}
	return d.String()
}

var optionKeys = map[settings.Option]string{
	settings.OptionHighContrast:  "OPTION_HIGH_CONTRAST",
	settings.OptionAudio:         "OPTION_AUDIO",
	settings.OptionLargeText:     "OPTION_LARGE_TEXT",
	settings.OptionReducedMotion: "OPTION_REDUCED_MOTION",
	settings.OptionScreenReader:  "OPTION_SCREEN_READER",
	settings.OptionSubtitles:     "OPTION_SUBTITLES",
	settings.OptionIcons:         "OPTION_ICONS",
}

// Option returns the display name of an accessibility option
func (c *Catalog) Option(o settings.Option) string {
	if key, ok := optionKeys[o]; ok {
		return c.Get(key)
	}
	return o.String()
}

// Toggled announces the new state of an option
func (c *Catalog) Toggled(o settings.Option, on bool) string {
	if on {
		return c.Get("SETTING_ON", c.Option(o))
	}
	return c.Get("SETTING_OFF", c.Option(o))
}

var colorBlindKeys = map[settings.ColorBlindMode]string{
	settings.ColorBlindNormal:       "COLOR_BLIND_NORMAL",
	settings.ColorBlindProtanopia:   "COLOR_BLIND_PROTANOPIA",
	settings.ColorBlindDeuteranopia: "COLOR_BLIND_DEUTERANOPIA",
	settings.ColorBlindTritanopia:   "COLOR_BLIND_TRITANOPIA",
}

// ColorBlind returns the display name of a colour-blind palette
func (c *Catalog) ColorBlind(m settings.ColorBlindMode) string {
	if key, ok := colorBlindKeys[m]; ok {
		return c.Get(key)
	}
	return m.String()
}

var actionKeys = map[input.Action]string{
	input.ActionMoveNorth:           "ACTION_MOVE_UP",
	input.ActionMoveSouth:           "ACTION_MOVE_DOWN",
	input.ActionMoveWest:            "ACTION_MOVE_LEFT",
	input.ActionMoveEast:            "ACTION_MOVE_RIGHT",
	input.ActionContinue:            "ACTION_CONTINUE",
	input.ActionReset:               "ACTION_RESET",
	input.ActionHint:                "ACTION_HINT",
	input.ActionQuit:                "ACTION_QUIT",
	input.ActionToggleHighContrast:  "OPTION_HIGH_CONTRAST",
	input.ActionToggleAudio:         "OPTION_AUDIO",
	input.ActionToggleLargeText:     "OPTION_LARGE_TEXT",
	input.ActionToggleReducedMotion: "OPTION_REDUCED_MOTION",
	input.ActionToggleScreenReader:  "OPTION_SCREEN_READER",
	input.ActionToggleSubtitles:     "OPTION_SUBTITLES",
	input.ActionToggleIcons:         "OPTION_ICONS",
	input.ActionCycleColorBlind:     "ACTION_COLOR_MODE",
}

// Action returns the translated name of an input action
func (c *Catalog) Action(a input.Action) string {
	if key, ok := actionKeys[a]; ok {
		return c.Get(key)
	}
	return input.ActionName(a)
}

// keyLabels are shown instead of the binding code
var keyLabels = map[string]string{
	"arrow_up":    "↑",
	"arrow_down":  "↓",
	"arrow_left":  "←",
	"arrow_right": "→",
	"enter":       "Enter",
	"space":       "Space",
	"escape":      "Esc",
}

var (
	sessionActions = []input.Action{
		input.ActionMoveNorth, input.ActionMoveSouth, input.ActionMoveWest, input.ActionMoveEast,
		input.ActionContinue, input.ActionReset, input.ActionHint, input.ActionQuit,
	}
	optionActions = []input.Action{
		input.ActionToggleHighContrast, input.ActionToggleAudio, input.ActionToggleLargeText,
		input.ActionToggleReducedMotion, input.ActionToggleScreenReader, input.ActionToggleSubtitles,
		input.ActionToggleIcons, input.ActionCycleColorBlind,
	}
)

// HelpLine lists the keys currently bound to movement and the session actions
func (c *Catalog) HelpLine() string {
	return c.bindingLine(sessionActions)
}

// OptionsLine lists the keys currently bound to the accessibility switches
func (c *Catalog) OptionsLine() string {
	return c.bindingLine(optionActions)
}

func (c *Catalog) bindingLine(actions []input.Action) string {
	bound := input.GetBindingsByAction()
	var parts []string
	for _, a := range actions {
		keys := keysFor(bound[a])
		if len(keys) == 0 {
			continue
		}
		parts = append(parts, strings.Join(keys, "/")+" "+c.Action(a))
	}
	return strings.Join(parts, "  ")
}

// keysFor labels codes, named keys first. Typed command words ("hint") and
// the bare space are line-mode aliases and are left out.
func keysFor(codes []string) []string {
	var named, plain []string
	for _, code := range codes {
		if label, ok := keyLabels[code]; ok {
			named = append(named, label)
			continue
		}
		if strings.TrimSpace(code) != "" && uniseg.GraphemeClusterCount(code) == 1 {
			plain = append(plain, code)
		}
	}
	return append(named, plain...)
}
