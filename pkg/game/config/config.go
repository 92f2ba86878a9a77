// Package config loads game settings from the environment and an optional .env file.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"mazeadventure/pkg/engine/input"
	"mazeadventure/pkg/game/settings"
)

// Config holds the application's configuration values.
type Config struct {
	StartLevel int    // Level to start on
	Seed       int64  // Maze seed, 0 for a random one
	Renderer   string // "tui" or "ebiten"
	Generator  string // "backtracker" or "fixed"
	Locale     string // Announcement language
	ServeAddr  string // When set, run the HTTP API on this address instead of a game

	Accessibility settings.Accessibility

	// Key overrides from MAZE_BIND_<ACTION>, e.g. MAZE_BIND_RESET=x
	Bindings map[input.Action]string
}

// Defaults
const (
	DefaultRenderer  = "tui"
	DefaultGenerator = "backtracker"
	DefaultLocale    = "en"
)

// Load reads files (".env" when none are given) into the environment and builds
// the configuration. Missing files are not an error; malformed values fall back
// to their defaults with a warning.
func Load(files ...string) Config {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	defaults := settings.Default()
	access := settings.Accessibility{
		HighContrast:  getEnvAsBool("MAZE_HIGH_CONTRAST", defaults.HighContrast),
		AudioEnabled:  getEnvAsBool("MAZE_AUDIO", defaults.AudioEnabled),
		LargeText:     getEnvAsBool("MAZE_LARGE_TEXT", defaults.LargeText),
		ReducedMotion: getEnvAsBool("MAZE_REDUCED_MOTION", defaults.ReducedMotion),
		ScreenReader:  getEnvAsBool("MAZE_SCREEN_READER", defaults.ScreenReader),
		Subtitles:     getEnvAsBool("MAZE_SUBTITLES", defaults.Subtitles),
		UseIcons:      getEnvAsBool("MAZE_ICONS", defaults.UseIcons),
	}
	if mode, ok := os.LookupEnv("MAZE_COLOR_BLIND"); ok && !access.UseIcons {
		parsed, err := settings.ParseColorBlindMode(mode)
		if err != nil {
			log.Printf("[APP] [WARN] MAZE_COLOR_BLIND: %v, using %s", err, parsed)
		}
		access.ColorBlind = parsed
	}

	return Config{
		StartLevel:    getEnvAsInt("MAZE_START_LEVEL", 1),
		Seed:          getEnvAsInt64("MAZE_SEED", 0),
		Renderer:      getEnvWithDefault("MAZE_RENDERER", DefaultRenderer),
		Generator:     getEnvWithDefault("MAZE_GENERATOR", DefaultGenerator),
		Locale:        getEnvWithDefault("MAZE_LOCALE", DefaultLocale),
		ServeAddr:     getEnvWithDefault("MAZE_SERVE_ADDR", ""),
		Accessibility: access,
		Bindings:      loadBindings(),
	}
}

// bindingEnvKey names the variable that rebinds a, "Move Up" reads MAZE_BIND_MOVE_UP
func bindingEnvKey(a input.Action) string {
	return "MAZE_BIND_" + strings.ToUpper(strings.ReplaceAll(input.ActionName(a), " ", "_"))
}

func loadBindings() map[input.Action]string {
	out := make(map[input.Action]string)
	for a := input.ActionMoveNorth; a <= input.ActionCycleColorBlind; a++ {
		if code := getEnvWithDefault(bindingEnvKey(a), ""); code != "" {
			out[a] = code
		}
	}
	return out
}

// ApplyBindings installs the configured key overrides. Arrow keys, Enter and
// Escape keep their actions whatever is configured.
func (c Config) ApplyBindings() {
	for a := input.ActionMoveNorth; a <= input.ActionCycleColorBlind; a++ {
		code, ok := c.Bindings[a]
		if !ok {
			continue
		}
		input.SetSingleBinding(a, code)
		log.Printf("[APP] [INFO] %s bound to %q", input.ActionName(a), code)
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	return int(getEnvAsInt64(key, int64(defaultValue)))
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("[APP] [WARN] Environment variable %s must be an integer: %v", key, err)
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("[APP] [WARN] Environment variable %s must be a boolean: %v", key, err)
		return defaultValue
	}
	return value
}
