// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/zyedidia/generic/mapset"

	"mazeadventure/pkg/engine/world"
	"mazeadventure/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// Map symbols
const (
	SymbolWall     = '#'
	SymbolPath     = '.'
	SymbolStart    = 'S'
	SymbolGoal     = 'G'
	SymbolPlayer   = '@'
	SymbolSolution = '*'
)

// cellSymbol returns the symbol for p, overlays first.
func cellSymbol(grid *world.Grid, p, player world.Point, route mapset.Set[world.Point]) rune {
	switch {
	case p == player:
		return SymbolPlayer
	case p == grid.Goal():
		return SymbolGoal
	case p == grid.Start():
		return SymbolStart
	case grid.IsWall(p):
		return SymbolWall
	case route.Has(p):
		return SymbolSolution
	default:
		return SymbolPath
	}
}

// WriteMap writes grid as ASCII with the player and the shortest route from the
// player to the goal marked.
func WriteMap(w io.Writer, grid *world.Grid, player world.Point) error {
	if grid == nil {
		return fmt.Errorf("no grid")
	}

	route := mapset.New[world.Point]()
	for _, p := range world.ShortestPath(grid, player, grid.Goal()) {
		route.Put(p)
	}

	for y := 0; y < grid.Height(); y++ {
		line := make([]rune, 0, grid.Width())
		for x := 0; x < grid.Width(); x++ {
			line = append(line, cellSymbol(grid, world.Point{X: x, Y: y}, player, route))
		}
		if _, err := fmt.Fprintln(w, string(line)); err != nil {
			return err
		}
	}
	return nil
}

// WriteDump writes metadata, a legend and the map for the current session.
func WriteDump(w io.Writer, g *state.Game) error {
	if g.Grid == nil {
		return fmt.Errorf("no grid")
	}
	grid := g.Grid

	fmt.Fprintln(w, "=== MAP DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "level: %d\n", g.Level)
	fmt.Fprintf(w, "grid_width: %d\n", grid.Width())
	fmt.Fprintf(w, "grid_height: %d\n", grid.Height())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=horizontal, y=vertical, border included)\n")
	fmt.Fprintf(w, "start: %d,%d\n", grid.Start().X, grid.Start().Y)
	fmt.Fprintf(w, "goal: %d,%d\n", grid.Goal().X, grid.Goal().Y)
	fmt.Fprintf(w, "player: %d,%d\n", g.Player.X, g.Player.Y)
	fmt.Fprintf(w, "moves: %d\n", g.Moves)
	fmt.Fprintf(w, "won: %v\n", g.Won)
	fmt.Fprintf(w, "open_cells: %d\n", grid.CountTiles(world.Path))
	if path := world.ShortestPath(grid, g.Player, grid.Goal()); path != nil {
		fmt.Fprintf(w, "steps_to_goal: %d\n", len(path)-1)
	} else {
		fmt.Fprintln(w, "steps_to_goal: unreachable")
	}
	if problem := grid.Validate(); problem != "" {
		fmt.Fprintf(w, "invalid: %s\n", problem)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, "# = wall  . = path  S = start  G = goal  @ = player  * = shortest route to goal")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map ---")
	return WriteMap(w, grid, g.Player)
}

// DumpMapToFile writes WriteDump output to map.txt in the working directory and
// returns its absolute path.
func DumpMapToFile(g *state.Game) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteDump(f, g); err != nil {
		return "", err
	}
	return absPath, nil
}
