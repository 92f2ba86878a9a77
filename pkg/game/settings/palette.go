package settings

// Palette holds the hex colours used to draw a maze.
type Palette struct {
	Wall   string
	Player string
	Goal   string
	Floor  string
}

// Icons used instead of colours when UseIcons is on.
const (
	IconWall   = "🧱"
	IconPlayer = "⭐"
	IconGoal   = "🏠"
)

var (
	highContrastPalette = Palette{Wall: "#BBBBBB", Player: "#FFFFFF", Goal: "#FF00FF", Floor: "#000000"}

	modePalettes = map[ColorBlindMode]Palette{
		ColorBlindNormal:       {Wall: "#444444", Player: "#007BFF", Goal: "#28A745", Floor: "#FFFFFF"},
		ColorBlindProtanopia:   {Wall: "#444444", Player: "#0072B2", Goal: "#E69F00", Floor: "#FFFFFF"},
		ColorBlindDeuteranopia: {Wall: "#444444", Player: "#0072B2", Goal: "#F0E442", Floor: "#FFFFFF"},
		ColorBlindTritanopia:   {Wall: "#444444", Player: "#D55E00", Goal: "#009E73", Floor: "#FFFFFF"},
	}
)

// Palette returns the colours for the current settings. High contrast wins over
// any colour-blind mode.
func (a Accessibility) Palette() Palette {
	if a.HighContrast {
		return highContrastPalette
	}
	if p, ok := modePalettes[a.ColorBlind]; ok {
		return p
	}
	return modePalettes[ColorBlindNormal]
}
