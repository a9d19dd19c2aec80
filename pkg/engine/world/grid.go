package world

import (
	"sort"
)

// Grid represents a rectangular game map with encapsulated cell storage.
// A grid is built whole, shaped by the setters below, and never mutated
// again once handed to a solver.
type Grid struct {
	cellMap map[int]map[int]*Cell
	rows    int
	cols    int

	startCell *Cell
	goalCell  *Cell

	portalGroups map[PortalColor][]*Cell
}

// NewGrid creates a new all-wall grid with the given dimensions
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Build(rows, cols)
	return g
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols
	g.startCell = nil
	g.goalCell = nil
	g.portalGroups = make(map[PortalColor][]*Cell)

	g.cellMap = make(map[int]map[int]*Cell, rows)
	for currentRow := 0; currentRow < rows; currentRow++ {
		g.cellMap[currentRow] = make(map[int]*Cell, cols)
		for currentCol := 0; currentCol < cols; currentCol++ {
			g.cellMap[currentRow][currentCol] = NewCell(currentRow, currentCol)
		}
	}

	g.buildAllCellConnections()
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// StartCell returns the start cell, or nil if none has been placed
func (g *Grid) StartCell() *Cell {
	return g.startCell
}

// GoalCell returns the goal cell, or nil if none has been placed
func (g *Grid) GoalCell() *Cell {
	return g.goalCell
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// IsInteriorPosition checks if a position is within the interior (not on the perimeter)
// This ensures a 1-cell wall border around the entire map
func (g *Grid) IsInteriorPosition(row, col int) bool {
	return row >= 1 && row < g.rows-1 && col >= 1 && col < g.cols-1
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(row, col int) bool {
	return g.IsValidPosition(row, col) && !g.IsInteriorPosition(row, col)
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(row, col int) *Cell {
	if !g.IsValidPosition(row, col) {
		return nil
	}

	if g.cellMap == nil {
		return nil
	}

	rowMap, found := g.cellMap[row]
	if !found {
		return nil
	}

	return rowMap[col]
}

// GetCellRelative returns the cell adjacent to the given cell in the specified direction
func (g *Grid) GetCellRelative(c *Cell, dir Direction) *Cell {
	if c == nil {
		return nil
	}
	if !dir.IsValid() {
		return nil
	}
	rowRel, colRel := dir.Delta()
	return g.GetCell(c.Row+rowRel, c.Col+colRel)
}

// OpenWallAt converts a wall cell to empty. Returns false if the position
// is out of bounds or the cell is not a wall.
func (g *Grid) OpenWallAt(row, col int) bool {
	cell := g.GetCell(row, col)
	if cell == nil || cell.Kind != Wall {
		return false
	}
	cell.Kind = Empty
	return true
}

// SetStartAt places the start cell. Any previous start cell is demoted to
// empty, so a grid can never hold two starts. Returns false if out of bounds.
func (g *Grid) SetStartAt(row, col int) bool {
	cell := g.GetCell(row, col)
	if cell == nil {
		return false
	}
	if g.startCell != nil && g.startCell != cell {
		g.startCell.Kind = Empty
	}
	cell.Kind = Start
	g.startCell = cell
	return true
}

// SetGoalAt places the goal cell. Any previous goal cell is demoted to
// empty. Returns false if out of bounds.
func (g *Grid) SetGoalAt(row, col int) bool {
	cell := g.GetCell(row, col)
	if cell == nil {
		return false
	}
	if g.goalCell != nil && g.goalCell != cell {
		g.goalCell.Kind = Empty
	}
	cell.Kind = Goal
	g.goalCell = cell
	return true
}

// SetPortalAt marks a cell as a portal of the given color and registers it
// in the color's teleport group. Returns false if out of bounds or the cell
// is already the start, goal, or another portal.
func (g *Grid) SetPortalAt(row, col int, color PortalColor) bool {
	cell := g.GetCell(row, col)
	if cell == nil {
		return false
	}
	if cell.Kind == Start || cell.Kind == Goal || cell.Kind == Portal {
		return false
	}
	cell.Kind = Portal
	cell.Color = color
	g.portalGroups[color] = append(g.portalGroups[color], cell)
	return true
}

// PortalGroup returns the cells sharing the given portal color, in
// placement order
func (g *Grid) PortalGroup(color PortalColor) []*Cell {
	return g.portalGroups[color]
}

// PortalColors returns the portal colors present in the grid, in a
// deterministic order
func (g *Grid) PortalColors() []PortalColor {
	colors := make([]PortalColor, 0, len(g.portalGroups))
	for color := range g.portalGroups {
		colors = append(colors, color)
	}
	sort.Slice(colors, func(i, j int) bool { return colors[i] < colors[j] })
	return colors
}

// ForEachCell iterates over all cells in the grid, calling the provided function for each
func (g *Grid) ForEachCell(fn func(row, col int, cell *Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			cell := g.GetCell(row, col)
			if cell != nil {
				fn(row, col, cell)
			}
		}
	}
}

// buildAllCellConnections connects all cells to their neighbors
func (g *Grid) buildAllCellConnections() {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			cell := g.GetCell(row, col)
			if cell == nil {
				continue
			}
			for _, dir := range AllDirections() {
				adj := g.GetCellRelative(cell, dir)
				if adj == nil {
					continue
				}
				cell.SetNeighbor(dir, adj)
				adj.SetNeighbor(dir.Opposite(), cell)
			}
		}
	}
}

// Clone returns a deep copy of the grid. The copy shares no cells with the
// original, so a play session can break walls in its copy without touching
// the canonical grid.
func (g *Grid) Clone() *Grid {
	clone := NewGrid(g.rows, g.cols)

	g.ForEachCell(func(row, col int, cell *Cell) {
		target := clone.GetCell(row, col)
		switch cell.Kind {
		case Empty:
			target.Kind = Empty
		case Start:
			clone.SetStartAt(row, col)
		case Goal:
			clone.SetGoalAt(row, col)
		case Portal:
			clone.SetPortalAt(row, col, cell.Color)
		}
	})

	return clone
}

// Validate checks the grid for structural issues and returns an error
// description, or empty string if valid. A valid grid has exactly one start,
// exactly one goal, and at least two members in every portal color present.
func (g *Grid) Validate() string {
	if g.rows <= 0 || g.cols <= 0 {
		return "Grid has invalid dimensions"
	}

	startCount := 0
	goalCount := 0
	g.ForEachCell(func(row, col int, cell *Cell) {
		switch cell.Kind {
		case Start:
			startCount++
		case Goal:
			goalCount++
		}
	})

	if g.startCell == nil || startCount == 0 {
		return "Grid has no start cell"
	}
	if startCount > 1 {
		return "Grid has more than one start cell"
	}
	if g.goalCell == nil || goalCount == 0 {
		return "Grid has no goal cell"
	}
	if goalCount > 1 {
		return "Grid has more than one goal cell"
	}

	for _, color := range g.PortalColors() {
		if len(g.portalGroups[color]) < 2 {
			return "Portal color " + color.String() + " has fewer than two members"
		}
	}

	return ""
}
