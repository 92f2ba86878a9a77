package ebiten

import (
	"image/color"
	"math"
	"time"

	gcolor "github.com/gookit/color"
)

// tileSizeFor fits a cols x rows maze into the area below the HUD
func tileSizeFor(width, height, hudHeight, cols, rows int, large bool) int {
	if cols <= 0 || rows <= 0 {
		return minTileSize
	}

	availableWidth := width - frameBorder*2
	availableHeight := height - hudHeight - frameBorder*2
	size := min(availableWidth/cols, availableHeight/rows)

	ceiling := maxTileSize
	if large {
		ceiling = maxLargeTileSize
	}
	return max(minTileSize, min(size, ceiling))
}

// mazeOrigin centers the maze horizontally and places it below the HUD
func mazeOrigin(width, hudHeight, cols, tile int) (x, y float32) {
	x = float32(max(frameBorder, (width-cols*tile)/2))
	y = float32(hudHeight + frameBorder)
	return x, y
}

// hexColor parses "#RRGGBB". Malformed values come out opaque black.
func hexColor(hex string) color.RGBA {
	rgb := gcolor.HexToRgb(hex)
	if len(rgb) != 3 {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: uint8(rgb[0]), G: uint8(rgb[1]), B: uint8(rgb[2]), A: 0xff}
}

// scaleColor multiplies the RGB channels by f
func scaleColor(c color.RGBA, f float64) color.RGBA {
	f = math.Max(0, math.Min(1, f))
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

// slideProgress maps time since a move started to 0..1 with an ease-out curve
func slideProgress(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= slideDuration {
		return 1
	}
	t := float64(elapsed) / float64(slideDuration)
	return 1 - (1-t)*(1-t)
}

func lerp(a, b int, t float64) float64 {
	return float64(a) + float64(b-a)*t
}

// pulseBrightness oscillates between 60% and 100% once per pulsePeriod
func pulseBrightness(now time.Time) float64 {
	phase := float64(now.UnixMilli()%pulsePeriod.Milliseconds()) / float64(pulsePeriod.Milliseconds())
	return 0.6 + 0.4*(math.Sin(phase*2*math.Pi)+1)/2
}
