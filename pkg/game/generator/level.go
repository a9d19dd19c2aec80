package generator

import (
	"fmt"

	"github.com/google/uuid"

	"wallbreaker/pkg/engine/world"
	"wallbreaker/pkg/game/solver"
)

// Level is a validated, playable grid plus its creation-time metadata.
// NoBreakResult and BreakResult are the solver's verdicts with zero breaks
// and with the full BreakBudget; they are computed once when the level is
// built and never recomputed during play.
type Level struct {
	ID          string
	Name        string
	Grid        *world.Grid
	BreakBudget int

	NoBreakResult solver.Result
	BreakResult   solver.Result
}

// newLevel wraps a validated grid and its two solver results into a Level
// with a fresh id and a display name derived from it.
func newLevel(grid *world.Grid, budget int, noBreak, withBreak solver.Result) *Level {
	id := uuid.NewString()
	return &Level{
		ID:            id,
		Name:          fmt.Sprintf("Level %s", id[:8]),
		Grid:          grid,
		BreakBudget:   budget,
		NoBreakResult: noBreak,
		BreakResult:   withBreak,
	}
}
