// Package generator procedurally builds levels: it carves a random maze,
// places the start, goal, and a portal pair, punches extra openings for loop
// structure, and keeps only candidates the solver confirms are reachable
// both with and without wall breaks.
package generator

import (
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"

	"wallbreaker/pkg/game/solver"
)

// LevelGenerator is an interface for level generation algorithms
type LevelGenerator interface {
	Generate(breakBudget int) *Level
	Name() string
}

// DefaultGenerator is the default level generator
var DefaultGenerator LevelGenerator = NewMaze(DefaultRows, DefaultCols, rand.New(rand.NewSource(time.Now().UnixNano())))

// Default maze parameters. Dimensions must be odd so the step-2 carve
// lattice reaches the whole interior while keeping the border sealed.
const (
	DefaultRows = 15
	DefaultCols = 21

	// Probability that an interior wall is punched open after carving,
	// turning the perfect maze into one with cycles.
	defaultPunchProbability = 0.05

	// Fresh carves per Generate call before giving up and returning the
	// fallback corridor.
	defaultMaxAttempts = 10
)

// MazeGenerator builds levels by randomized recursive backtracking on a
// half-resolution lattice, then validates every candidate with the solver.
type MazeGenerator struct {
	rows        int
	cols        int
	maxAttempts int
	punchProb   float64
	rng         *rand.Rand
}

// NewMaze creates a maze generator for the given grid dimensions. Even
// dimensions are rounded down to the nearest odd value so the carve lattice
// lines up with the sealed border.
func NewMaze(rows, cols int, rng *rand.Rand) *MazeGenerator {
	if rows%2 == 0 {
		rows--
	}
	if cols%2 == 0 {
		cols--
	}
	if rows < 3 {
		rows = 3
	}
	if cols < 3 {
		cols = 3
	}
	return &MazeGenerator{
		rows:        rows,
		cols:        cols,
		maxAttempts: defaultMaxAttempts,
		punchProb:   defaultPunchProbability,
		rng:         rng,
	}
}

// Name returns the name of this generator
func (g *MazeGenerator) Name() string {
	return "Recursive Backtracker"
}

// Generate returns a validated, solvable level for the given break budget.
// It never fails: candidates that the solver rejects are discarded and
// re-carved, and if every attempt fails the hand-built fallback corridor is
// returned instead.
func (g *MazeGenerator) Generate(breakBudget int) *Level {
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		grid := g.carve()
		g.placeGoal(grid)
		g.placePortalPair(grid)
		g.punchOpenings(grid)

		if issue := grid.Validate(); issue != "" {
			log.WithFields(log.Fields{
				"attempt": attempt,
				"issue":   issue,
			}).Debug("discarding structurally invalid candidate")
			continue
		}

		noBreak, err := solver.Solve(grid, 0)
		if err != nil || !noBreak.Reachable {
			log.WithField("attempt", attempt).Debug("discarding candidate unreachable without breaks")
			continue
		}
		withBreak, err := solver.Solve(grid, breakBudget)
		if err != nil || !withBreak.Reachable {
			log.WithField("attempt", attempt).Debug("discarding candidate unreachable with breaks")
			continue
		}

		return newLevel(grid, breakBudget, noBreak, withBreak)
	}

	log.WithFields(log.Fields{
		"attempts": g.maxAttempts,
		"budget":   breakBudget,
	}).Warn("all generation attempts failed, using fallback corridor")

	return fallbackLevel(breakBudget)
}
