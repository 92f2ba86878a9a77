package ebiten

import "time"

const (
	defaultWindowWidth  = 960
	defaultWindowHeight = 720

	// Tile size bounds in pixels; large text raises the ceiling
	minTileSize      = 12
	maxTileSize      = 48
	maxLargeTileSize = 72

	frameBorder = 16

	baseFontSize  = 18.0
	largeFontRate = 1.5

	slideDuration = 120 * time.Millisecond
	pulsePeriod   = 2 * time.Second

	inputBuffer = 16

	// Key repeat timings (milliseconds)
	keyRepeatInitialDelay = 250
	keyRepeatInterval     = 90
)
