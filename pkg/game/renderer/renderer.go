// Package renderer turns grids and levels into colored terminal text. It is
// an outer layer: it only reads what the core hands it and never influences
// solving or generation.
package renderer

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"wallbreaker/pkg/engine/terminal"
	"wallbreaker/pkg/engine/world"
	"wallbreaker/pkg/game/generator"
)

// Icon constants
const (
	IconWall   = "▒"
	IconEmpty  = "."
	IconStart  = "@"
	IconGoal   = "⌂"
	IconPortal = "O"
)

var (
	ColorWall   color.Style
	ColorEmpty  color.Style
	ColorStart  color.Style
	ColorGoal   color.Style
	ColorPortal color.Style
	ColorSubtle color.Style
)

// InitColors initializes the color styles
func InitColors() {
	ColorWall = color.Style{color.FgGray}
	ColorEmpty = color.Style{color.FgBlue}
	ColorStart = color.Style{color.FgGreen, color.OpBold}
	ColorGoal = color.Style{color.FgYellow, color.OpBold}
	ColorPortal = color.Style{color.FgCyan, color.OpBold}
	ColorSubtle = color.Style{color.FgGray, color.OpBold}
}

// CellIcon returns the plain (uncolored) icon for a cell
func CellIcon(cell *world.Cell) string {
	if cell == nil {
		return IconWall
	}
	switch cell.Kind {
	case world.Empty:
		return IconEmpty
	case world.Start:
		return IconStart
	case world.Goal:
		return IconGoal
	case world.Portal:
		return IconPortal
	default:
		return IconWall
	}
}

// RenderCell returns the colored string representation of a cell
func RenderCell(cell *world.Cell) string {
	icon := CellIcon(cell)
	if cell == nil {
		return ColorWall.Sprint(icon)
	}
	switch cell.Kind {
	case world.Empty:
		return ColorEmpty.Sprint(icon)
	case world.Start:
		return ColorStart.Sprint(icon)
	case world.Goal:
		return ColorGoal.Sprint(icon)
	case world.Portal:
		return ColorPortal.Sprint(icon)
	default:
		return ColorWall.Sprint(icon)
	}
}

// RenderGrid returns the whole grid as colored text, one row per line
func RenderGrid(grid *world.Grid) string {
	var sb strings.Builder
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			sb.WriteString(RenderCell(grid.GetCell(row, col)))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderLevel returns a level header plus its rendered grid. A subtle
// warning line is prepended when the grid is wider than the terminal.
func RenderLevel(level *generator.Level) string {
	var sb strings.Builder

	if !terminal.FitsWidth(level.Grid.Cols()) {
		sb.WriteString(ColorSubtle.Sprint(gotext.Get("GRID_WIDER_THAN_TERMINAL")))
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("%s: %s\n", gotext.Get("LEVEL"), level.Name))
	sb.WriteString(fmt.Sprintf("%s: %d\n", gotext.Get("BREAK_BUDGET"), level.BreakBudget))
	sb.WriteString(fmt.Sprintf("%s: %d\n", gotext.Get("OPTIMAL_NO_BREAKS"), level.NoBreakResult.Actions))
	sb.WriteString(fmt.Sprintf("%s: %d\n", gotext.Get("OPTIMAL_WITH_BREAKS"), level.BreakResult.Actions))
	sb.WriteString(RenderGrid(level.Grid))

	return sb.String()
}
