package ebiten

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mazeadventure/pkg/engine/world"
	"mazeadventure/pkg/game/settings"
)

var (
	colorBackground = color.RGBA{16, 16, 24, 255}
	colorHUD        = color.RGBA{230, 230, 230, 255}
	colorSubtle     = color.RGBA{150, 150, 160, 255}
	colorSubtitleBg = color.RGBA{0, 0, 0, 220}
	colorSubtitleFg = color.RGBA{255, 235, 59, 255}
	colorMortar     = color.RGBA{0, 0, 0, 90}
)

// Draw renders the latest snapshot (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	e.snapshotMutex.RLock()
	snap := e.snapshot
	e.snapshotMutex.RUnlock()

	palette := snap.settings.Palette()
	if snap.settings.HighContrast {
		screen.Fill(hexColor(palette.Floor))
	} else {
		screen.Fill(colorBackground)
	}

	if !snap.valid || snap.grid == nil {
		return
	}

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	fontSize := getUIFontSize(snap.settings.LargeText)
	hudHeight := int(fontSize*2) + frameBorder

	e.drawHUD(screen, snap, fontSize)

	tile := tileSizeFor(width, height-e.footerHeight(snap, fontSize), hudHeight, snap.grid.Width(), snap.grid.Height(), snap.settings.LargeText)
	ox, oy := mazeOrigin(width, hudHeight, snap.grid.Width(), tile)
	e.drawMaze(screen, snap, palette, ox, oy, float32(tile))

	mazeBottom := oy + float32(tile*snap.grid.Height())
	e.drawFooter(screen, snap, fontSize, mazeBottom)
}

// drawMaze draws walls, floor, goal and the player
func (e *EbitenRenderer) drawMaze(screen *ebiten.Image, snap renderSnapshot, palette settings.Palette, ox, oy, tile float32) {
	wall := hexColor(palette.Wall)
	floor := hexColor(palette.Floor)
	goal := hexColor(palette.Goal)
	icons := snap.settings.UseIcons

	snap.grid.ForEachCell(func(p world.Point, t world.Tile) {
		x := ox + float32(p.X)*tile
		y := oy + float32(p.Y)*tile
		if t == world.Wall {
			vector.DrawFilledRect(screen, x, y, tile, tile, wall, false)
			if icons {
				drawBricks(screen, x, y, tile)
			}
			return
		}
		vector.DrawFilledRect(screen, x, y, tile, tile, floor, false)
	})

	// Goal pulses unless motion is reduced
	g := snap.grid.Goal()
	gx := ox + float32(g.X)*tile
	gy := oy + float32(g.Y)*tile
	if !snap.settings.ReducedMotion && !snap.won {
		goal = scaleColor(goal, pulseBrightness(time.Now()))
	}
	if icons {
		drawHouse(screen, gx, gy, tile, goal)
	} else {
		inset := tile * 0.1
		vector.DrawFilledRect(screen, gx+inset, gy+inset, tile-inset*2, tile-inset*2, goal, false)
	}

	px, py := e.playerPosition(snap)
	cx := ox + float32(px)*tile + tile/2
	cy := oy + float32(py)*tile + tile/2
	player := hexColor(palette.Player)
	if icons {
		drawStar(screen, cx, cy, tile*0.45, player)
	} else {
		vector.DrawFilledCircle(screen, cx, cy, tile*0.38, player, true)
	}
}

// playerPosition interpolates the slide toward the current cell
func (e *EbitenRenderer) playerPosition(snap renderSnapshot) (float64, float64) {
	e.animMutex.RLock()
	anim := e.anim
	e.animMutex.RUnlock()

	if snap.settings.ReducedMotion || anim.to != snap.player || anim.start.IsZero() {
		return float64(snap.player.X), float64(snap.player.Y)
	}
	t := slideProgress(time.Since(anim.start))
	return lerp(anim.from.X, anim.to.X, t), lerp(anim.from.Y, anim.to.Y, t)
}

// drawHUD draws the title, level and move counter
func (e *EbitenRenderer) drawHUD(screen *ebiten.Image, snap renderSnapshot, fontSize float64) {
	title := e.text.Get("TITLE") + "  " + e.text.Get("LEVEL_LABEL", snap.level)
	moves := e.text.Get("MOVES_LABEL", snap.moves)

	e.drawText(screen, title, frameBorder, frameBorder, fontSize, colorHUD, false)

	width := screen.Bounds().Dx()
	mw := e.measure(moves, fontSize, true)
	e.drawText(screen, moves, float64(width)-mw-frameBorder, frameBorder, fontSize, colorHUD, true)
}

func (e *EbitenRenderer) footerHeight(snap renderSnapshot, fontSize float64) int {
	lines := 3 // latest message, help and options
	if snap.won {
		lines++
	}
	if snap.settings.Subtitles && snap.subtitle != "" {
		lines++
	}
	return int(float64(lines)*fontSize*1.5) + frameBorder
}

// drawFooter draws the win banner, subtitles, the latest message and the key help
func (e *EbitenRenderer) drawFooter(screen *ebiten.Image, snap renderSnapshot, fontSize float64, top float32) {
	lineHeight := fontSize * 1.5
	y := float64(top) + frameBorder
	width := float64(screen.Bounds().Dx())

	if snap.won {
		banner := e.text.Get("YOU_WON") + " " + e.text.Get("CONTINUE_PROMPT")
		e.drawText(screen, banner, frameBorder, y, fontSize, hexColor(snap.settings.Palette().Goal), false)
		y += lineHeight
	}

	if snap.settings.Subtitles && snap.subtitle != "" {
		w := e.measure(snap.subtitle, fontSize, false)
		x := math.Max(frameBorder, (width-w)/2)
		vector.DrawFilledRect(screen, float32(x-6), float32(y-2), float32(w+12), float32(lineHeight), colorSubtitleBg, false)
		e.drawText(screen, snap.subtitle, x, y, fontSize, colorSubtitleFg, false)
		y += lineHeight
	}

	if n := len(snap.messages); n > 0 {
		e.drawText(screen, snap.messages[n-1], frameBorder, y, fontSize, colorHUD, false)
	}
	y += lineHeight

	e.drawText(screen, e.text.HelpLine(), frameBorder, y, fontSize*0.8, colorSubtle, false)
	y += lineHeight * 0.8
	e.drawText(screen, e.text.OptionsLine(), frameBorder, y, fontSize*0.8, colorSubtle, false)
}

// drawText draws s with its top-left corner at (x, y). Without fonts it falls back to debug text.
func (e *EbitenRenderer) drawText(screen *ebiten.Image, s string, x, y, size float64, clr color.Color, mono bool) {
	face := e.face(size, mono)
	if face == nil {
		ebitenutil.DebugPrintAt(screen, s, int(x), int(y))
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

func (e *EbitenRenderer) measure(s string, size float64, mono bool) float64 {
	face := e.face(size, mono)
	if face == nil {
		return float64(len(s) * 6)
	}
	w, _ := text.Measure(s, face, 0)
	return w
}

func (e *EbitenRenderer) face(size float64, mono bool) *text.GoTextFace {
	if mono {
		return e.getMonoFontFace(size)
	}
	return e.getSansFontFace(size)
}

// drawBricks scores mortar lines across a wall tile
func drawBricks(screen *ebiten.Image, x, y, tile float32) {
	half := tile / 2
	vector.StrokeLine(screen, x, y+half, x+tile, y+half, 1, colorMortar, false)
	vector.StrokeLine(screen, x+half, y, x+half, y+half, 1, colorMortar, false)
	vector.StrokeLine(screen, x+tile/4, y+half, x+tile/4, y+tile, 1, colorMortar, false)
}

// drawHouse draws a roof and a body filling the tile
func drawHouse(screen *ebiten.Image, x, y, tile float32, clr color.Color) {
	var path vector.Path
	m := tile * 0.1
	roof := y + tile*0.45
	path.MoveTo(x+tile/2, y+m)
	path.LineTo(x+tile-m, roof)
	path.LineTo(x+tile-m*2, roof)
	path.LineTo(x+tile-m*2, y+tile-m)
	path.LineTo(x+m*2, y+tile-m)
	path.LineTo(x+m*2, roof)
	path.LineTo(x+m, roof)
	path.Close()

	drawOpts := &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(clr)
	vector.FillPath(screen, &path, nil, drawOpts)
}

// drawStar draws a five-pointed star centered on (cx, cy)
func drawStar(screen *ebiten.Image, cx, cy, radius float32, clr color.Color) {
	var path vector.Path
	inner := radius * 0.45
	for i := 0; i < 10; i++ {
		r := radius
		if i%2 == 1 {
			r = inner
		}
		angle := float64(i)*math.Pi/5 - math.Pi/2
		px := cx + r*float32(math.Cos(angle))
		py := cy + r*float32(math.Sin(angle))
		if i == 0 {
			path.MoveTo(px, py)
		} else {
			path.LineTo(px, py)
		}
	}
	path.Close()

	drawOpts := &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(clr)
	vector.FillPath(screen, &path, nil, drawOpts)
}
