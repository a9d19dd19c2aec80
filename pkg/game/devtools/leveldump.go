// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"os"
	"path/filepath"

	"wallbreaker/pkg/engine/world"
	"wallbreaker/pkg/game/generator"
)

// cellSymbol returns the single-character symbol for a cell in a dump.
func cellSymbol(cell *world.Cell) rune {
	if cell == nil {
		return '#'
	}
	switch cell.Kind {
	case world.Empty:
		return '.'
	case world.Start:
		return '@'
	case world.Goal:
		return '$'
	case world.Portal:
		return 'O'
	default:
		return '#'
	}
}

// writeMapGrid writes the plain-text map section of a dump.
func writeMapGrid(f *os.File, grid *world.Grid) {
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			fmt.Fprintf(f, "%c", cellSymbol(grid.GetCell(row, col)))
		}
		fmt.Fprintln(f)
	}
}

// DumpLevelToFile writes a full debug dump of a level: metadata, legend,
// map, and portal groups. Format is human- and LLM-readable (sections,
// key: value, consistent structure). Returns the absolute path written.
func DumpLevelToFile(level *generator.Level, filename string) (string, error) {
	if level == nil || level.Grid == nil {
		return "", fmt.Errorf("no level")
	}

	absPath, err := filepath.Abs(filename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	fmt.Fprintln(f, "== METADATA ==")
	fmt.Fprintf(f, "id: %s\n", level.ID)
	fmt.Fprintf(f, "name: %s\n", level.Name)
	fmt.Fprintf(f, "size: %dx%d\n", level.Grid.Rows(), level.Grid.Cols())
	fmt.Fprintf(f, "break budget: %d\n", level.BreakBudget)
	fmt.Fprintf(f, "optimal actions (no breaks): %d\n", level.NoBreakResult.Actions)
	fmt.Fprintf(f, "optimal actions (with breaks): %d\n", level.BreakResult.Actions)
	fmt.Fprintln(f)

	fmt.Fprintln(f, "== LEGEND ==")
	fmt.Fprintln(f, "#: wall")
	fmt.Fprintln(f, ".: empty")
	fmt.Fprintln(f, "@: start")
	fmt.Fprintln(f, "$: goal")
	fmt.Fprintln(f, "O: portal")
	fmt.Fprintln(f)

	fmt.Fprintln(f, "== MAP ==")
	writeMapGrid(f, level.Grid)
	fmt.Fprintln(f)

	fmt.Fprintln(f, "== PORTALS ==")
	for _, portalColor := range level.Grid.PortalColors() {
		fmt.Fprintf(f, "%s:", portalColor)
		for _, cell := range level.Grid.PortalGroup(portalColor) {
			fmt.Fprintf(f, " (%d,%d)", cell.Row, cell.Col)
		}
		fmt.Fprintln(f)
	}

	return absPath, nil
}
