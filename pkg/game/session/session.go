// Package session runs a live play-through of a level. A session works on
// its own deep copy of the level's grid, so wall breaks take permanent
// in-session effect while the canonical level stays pristine.
package session

import (
	"errors"

	"wallbreaker/pkg/engine/world"
	"wallbreaker/pkg/game/generator"
)

// Action errors. All leave the session unchanged.
var (
	ErrOutOfBounds  = errors.New("no cell in that direction")
	ErrNoBreaksLeft = errors.New("wall break budget exhausted")
	ErrNotOnPortal  = errors.New("not standing on a portal")
	ErrLonePortal   = errors.New("portal has no other member to jump to")
)

// Session is the state of one play-through. Optimality is not tracked
// during play; the level's precomputed results are the only optima.
type Session struct {
	level   *generator.Level
	grid    *world.Grid
	current *world.Cell

	BreaksLeft   int
	ActionsTaken int
}

// New starts a session on a private copy of the level's grid, standing on
// the start cell with the full break budget.
func New(level *generator.Level) *Session {
	grid := level.Grid.Clone()
	return &Session{
		level:      level,
		grid:       grid,
		current:    grid.StartCell(),
		BreaksLeft: level.BreakBudget,
	}
}

// Level returns the canonical level this session was started from
func (s *Session) Level() *generator.Level {
	return s.level
}

// Grid returns the session's private grid copy
func (s *Session) Grid() *world.Grid {
	return s.grid
}

// Position returns the player's current position
func (s *Session) Position() world.Position {
	return s.current.Position()
}

// Completed returns true once the player stands on the goal cell
func (s *Session) Completed() bool {
	return s.current == s.grid.GoalCell()
}

// Move steps one cell in the given direction. Stepping into a wall breaks
// it: the wall becomes empty for the rest of the session and one break is
// consumed. Moving off the grid or breaking with no budget left is an error
// and costs no action.
func (s *Session) Move(dir world.Direction) error {
	neighbor := s.grid.GetCellRelative(s.current, dir)
	if neighbor == nil {
		return ErrOutOfBounds
	}

	if neighbor.Kind == world.Wall {
		if s.BreaksLeft == 0 {
			return ErrNoBreaksLeft
		}
		s.grid.OpenWallAt(neighbor.Row, neighbor.Col)
		s.BreaksLeft--
	}

	s.current = neighbor
	s.ActionsTaken++
	return nil
}

// Teleport jumps to another member of the portal group the player stands
// on. With a group larger than a pair, the first other member in placement
// order is chosen.
func (s *Session) Teleport() error {
	if s.current.Kind != world.Portal {
		return ErrNotOnPortal
	}

	for _, dest := range s.grid.PortalGroup(s.current.Color) {
		if dest != s.current {
			s.current = dest
			s.ActionsTaken++
			return nil
		}
	}
	return ErrLonePortal
}
