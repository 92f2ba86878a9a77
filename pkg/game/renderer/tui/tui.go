package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/rivo/uniseg"

	"mazeadventure/pkg/engine/input"
	"mazeadventure/pkg/engine/terminal"
	"mazeadventure/pkg/engine/world"
	"mazeadventure/pkg/game/messages"
	"mazeadventure/pkg/game/renderer"
	"mazeadventure/pkg/game/settings"
	"mazeadventure/pkg/game/state"
)

// Glyphs drawn on top of the palette colours so the player and goal never
// depend on colour alone.
const (
	PlayerIcon = "@"
	GoalIcon   = "⌂"
)

const (
	baseCellWidth = 2
	mapMargin     = 4 // Columns kept free on each side of the maze
)

var _ renderer.Renderer = (*TUIRenderer)(nil)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out  io.Writer
	in   *bufio.Reader
	text *messages.Catalog

	colorTitle    color.Style
	colorSubtle   color.Style
	colorWin      color.Style
	colorSubtitle color.Style
}

// New creates a new TUI renderer writing to stdout
func New(text *messages.Catalog) *TUIRenderer {
	return &TUIRenderer{
		out:  os.Stdout,
		in:   bufio.NewReader(os.Stdin),
		text: text,
	}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorTitle = color.Style{color.FgMagenta, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorWin = color.Style{color.FgGreen, color.OpBold}
	t.colorSubtitle = color.Style{color.FgYellow, color.BgBlack, color.OpBold}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	fmt.Fprint(t.out, "\033[H\033[2J")
}

// GetInput gets user input from the terminal and returns a high-level Intent.
// Without a terminal on stdin, each input line is taken as one binding code.
func (t *TUIRenderer) GetInput() input.Intent {
	if !terminal.IsInteractive() {
		return t.readLine()
	}

	code, err := input.ReadKey()
	if errors.Is(err, input.ErrInterrupted) {
		return input.Intent{Action: input.ActionQuit}
	}
	if err != nil {
		log.Printf("[TUI] [WARN] %v", err)
		return t.readLine()
	}
	return input.IntentFor(input.DeviceTerminal, code)
}

func (t *TUIRenderer) readLine() input.Intent {
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return input.Intent{Action: input.ActionQuit}
	}
	code := strings.TrimSpace(line)
	if code == "" {
		code = "enter"
	}
	return input.IntentFor(input.DeviceTerminal, code)
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	width, _ := terminal.GetSize()
	cell := baseCellWidth
	if g.Grid != nil {
		cell = terminal.CellWidth(g.Grid.Width(), baseCellWidth, g.Settings.LargeText, mapMargin*2)
	}
	t.writeFrame(t.out, g, width, cell)
}

func (t *TUIRenderer) writeFrame(w io.Writer, g *state.Game, width, cellWidth int) {
	// Level indicator in top left
	fmt.Fprintf(w, "%s  %s  %s\n\n",
		t.colorTitle.Sprint(t.text.Get("TITLE")),
		t.colorTitle.Sprint(t.text.Get("LEVEL_LABEL", g.Level)),
		t.colorSubtle.Sprint(t.text.Get("MOVES_LABEL", g.Moves)))

	t.writeMap(w, g, cellWidth)

	if g.Won {
		fmt.Fprintf(w, "\n%s %s\n", t.colorWin.Sprint(t.text.Get("YOU_WON")), t.text.Get("CONTINUE_PROMPT"))
	}

	if g.Settings.Subtitles && g.Subtitle != "" {
		fmt.Fprintf(w, "\n%s\n", t.colorSubtitle.Sprint(" "+g.Subtitle+" "))
	}

	t.writeSettings(w, g.Settings)
	t.writeMessagesPane(w, g, width)

	fmt.Fprintln(w, t.colorSubtle.Sprint(t.text.HelpLine()))
	fmt.Fprintln(w, t.colorSubtle.Sprint(t.text.OptionsLine()))
}

// writeMap renders the whole maze; mazes are small enough that no viewport is needed
func (t *TUIRenderer) writeMap(w io.Writer, g *state.Game, cellWidth int) {
	if g.Grid == nil {
		return
	}

	indent := strings.Repeat(" ", mapMargin)
	palette := g.Settings.Palette()

	for y := 0; y < g.Grid.Height(); y++ {
		fmt.Fprint(w, indent)
		for x := 0; x < g.Grid.Width(); x++ {
			fmt.Fprint(w, t.renderCell(g, world.Point{X: x, Y: y}, palette, cellWidth))
		}
		fmt.Fprint(w, "\n")
	}
}

// renderCell returns the string representation of a cell
func (t *TUIRenderer) renderCell(g *state.Game, p world.Point, palette settings.Palette, cellWidth int) string {
	if g.Settings.UseIcons {
		switch {
		case p == g.Player:
			return pad(settings.IconPlayer, cellWidth)
		case p == g.Grid.Goal():
			return pad(settings.IconGoal, cellWidth)
		case g.Grid.IsWall(p):
			return pad(settings.IconWall, cellWidth)
		default:
			return pad("", cellWidth)
		}
	}

	switch {
	case p == g.Player:
		return onColor(palette.Player, palette.Floor).Sprint(pad(PlayerIcon, cellWidth))
	case p == g.Grid.Goal():
		return onColor(palette.Goal, palette.Floor).Sprint(pad(GoalIcon, cellWidth))
	case g.Grid.IsWall(p):
		return color.HEX(palette.Wall, true).Sprint(pad("", cellWidth))
	default:
		return color.HEX(palette.Floor, true).Sprint(pad("", cellWidth))
	}
}

// onColor fills the cell with bg and draws the glyph in the floor colour
func onColor(bg, fg string) *color.RGBStyle {
	return color.NewRGBStyle(color.HEX(fg), color.HEX(bg))
}

// pad left-aligns s in a cell of the given terminal width
func pad(s string, width int) string {
	gap := width - uniseg.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

func (t *TUIRenderer) writeSettings(w io.Writer, a settings.Accessibility) {
	var on []string
	for _, o := range settings.AllOptions() {
		if a.Enabled(o) {
			on = append(on, t.text.Option(o))
		}
	}
	if !a.UseIcons && a.ColorBlind != settings.ColorBlindNormal {
		on = append(on, t.text.ColorBlind(a.ColorBlind))
	}
	if len(on) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\n", t.colorSubtle.Sprint(t.text.Get("SETTINGS_LABEL", strings.Join(on, ", "))))
}

// writeMessagesPane renders the messages log pane
func (t *TUIRenderer) writeMessagesPane(w io.Writer, g *state.Game, width int) {
	label := " " + t.text.Get("MESSAGES_LABEL") + " "
	labelLen := uniseg.StringWidth(label)
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - labelLen
	if rightLen < 1 {
		rightLen = 1
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, t.colorSubtle.Sprint(strings.Repeat("─", sideLen)+label+strings.Repeat("─", rightLen)))

	if len(g.Messages) == 0 {
		fmt.Fprintln(w, t.colorSubtle.Sprint("  "+t.text.Get("NO_MESSAGES")))
	} else {
		for _, msg := range g.Messages {
			fmt.Fprintf(w, "  %s\n", msg)
		}
	}

	fmt.Fprintln(w, t.colorSubtle.Sprint(strings.Repeat("─", max(width, 1))))
}
