// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// CellKind identifies what occupies a cell.
type CellKind int

// Cell kinds. The zero value is Wall so a freshly built grid is solid
// rock until something carves it.
const (
	Wall CellKind = iota
	Empty
	Start
	Goal
	Portal
)

// String returns the string representation of a cell kind
func (k CellKind) String() string {
	switch k {
	case Wall:
		return "Wall"
	case Empty:
		return "Empty"
	case Start:
		return "Start"
	case Goal:
		return "Goal"
	case Portal:
		return "Portal"
	default:
		return "Unknown"
	}
}

// PortalColor tags a portal cell with its group. Portals sharing a
// color form one teleport group.
type PortalColor int

// Portal colors (closed set)
const (
	Blue PortalColor = iota
	Red
	Green
	Yellow
)

// String returns the string representation of a portal color
func (c PortalColor) String() string {
	switch c {
	case Blue:
		return "Blue"
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Yellow:
		return "Yellow"
	default:
		return "Unknown"
	}
}

// Position is a plain (row, col) value, used for paths and reporting
// without handing out cell pointers.
type Position struct {
	Row int
	Col int
}

// Cell represents a single cell/tile in the grid.
type Cell struct {
	// Grid position
	Row int
	Col int

	// What occupies this cell
	Kind CellKind

	// Portal group membership; only meaningful when Kind == Portal
	Color PortalColor

	// Navigation - links to adjacent cells
	North *Cell
	East  *Cell
	South *Cell
	West  *Cell
}

// NewCell creates a new wall cell at the given position
func NewCell(row, col int) *Cell {
	return &Cell{
		Row: row,
		Col: col,
	}
}

// Position returns the cell's coordinates as a Position value
func (c *Cell) Position() Position {
	return Position{Row: c.Row, Col: c.Col}
}

// Walkable returns true if the cell can be occupied without breaking it
func (c *Cell) Walkable() bool {
	return c != nil && c.Kind != Wall
}

// GetNeighbor returns the neighboring cell in the given direction
func (c *Cell) GetNeighbor(dir Direction) *Cell {
	if c == nil {
		return nil
	}
	switch dir {
	case North:
		return c.North
	case East:
		return c.East
	case South:
		return c.South
	case West:
		return c.West
	default:
		return nil
	}
}

// SetNeighbor sets the neighboring cell in the given direction
func (c *Cell) SetNeighbor(dir Direction, neighbor *Cell) {
	if c == nil {
		return
	}
	switch dir {
	case North:
		c.North = neighbor
	case East:
		c.East = neighbor
	case South:
		c.South = neighbor
	case West:
		c.West = neighbor
	}
}

// GetNeighbors returns all non-nil adjacent cells
func (c *Cell) GetNeighbors() []*Cell {
	var neighbors []*Cell
	if c.North != nil {
		neighbors = append(neighbors, c.North)
	}
	if c.East != nil {
		neighbors = append(neighbors, c.East)
	}
	if c.South != nil {
		neighbors = append(neighbors, c.South)
	}
	if c.West != nil {
		neighbors = append(neighbors, c.West)
	}
	return neighbors
}
