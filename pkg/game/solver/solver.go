// Package solver computes the minimum number of actions needed to walk a
// grid from its start cell to its goal cell, given a budget of wall breaks.
// An action is one cardinal move, one wall break (a move into a wall that
// consumes budget), or one portal teleport.
package solver

import (
	"errors"

	"github.com/zyedidia/generic/mapset"

	"wallbreaker/pkg/engine/world"
)

// Contract violations: these are caller errors, not search outcomes. The
// returned Result still reports Reachable == false so callers that only
// look at the result see non-reachability.
var (
	ErrNoStart = errors.New("grid has no start cell")
	ErrNoGoal  = errors.New("grid has no goal cell")
)

// Result is the outcome of a solve. Actions and Path are meaningful only
// when Reachable is true. When multiple optimal paths exist, Path is one of
// them; Actions is the same on every call.
type Result struct {
	Reachable bool
	Actions   int
	Path      []world.Position
}

// state is a node in the augmented search space: a grid position plus the
// number of walls broken to get there. The same position with a different
// break count is a distinct state.
type state struct {
	row    int
	col    int
	breaks int
}

// frontierNode pairs a state with its depth and the cell it occupies.
type frontierNode struct {
	state state
	cell  *world.Cell
	depth int
}

// Solve returns the minimum number of actions to reach the goal from the
// start with at most maxBreaks wall breaks, or Reachable == false if the
// goal cannot be reached. The grid is never mutated; a broken wall is open
// only along the search path that broke it.
//
// Solve is a breadth-first search where every edge costs one action, so the
// first time the goal position is dequeued its depth is minimal. Each
// (position, breaks) state is enqueued at most once, bounding the search by
// rows ⨯ cols ⨯ (maxBreaks+1) states. Solve holds no state between calls, so
// concurrent calls are independent.
func Solve(grid *world.Grid, maxBreaks int) (Result, error) {
	startCell := grid.StartCell()
	if startCell == nil {
		return Result{}, ErrNoStart
	}
	goalCell := grid.GoalCell()
	if goalCell == nil {
		return Result{}, ErrNoGoal
	}

	startState := state{row: startCell.Row, col: startCell.Col}
	visited := mapset.New[state]()
	visited.Put(startState)
	parents := make(map[state]state)

	queue := []frontierNode{{state: startState, cell: startCell}}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.state.row == goalCell.Row && current.state.col == goalCell.Col {
			return Result{
				Reachable: true,
				Actions:   current.depth,
				Path:      buildPath(parents, startState, current.state),
			}, nil
		}

		for _, next := range successors(grid, current, maxBreaks) {
			if visited.Has(next.state) {
				continue
			}
			visited.Put(next.state)
			parents[next.state] = current.state
			next.depth = current.depth + 1
			queue = append(queue, next)
		}
	}

	return Result{}, nil
}

// successors generates the states one action away from the current one.
// Teleport edges and cardinal edges are produced by separate passes: only
// cardinal moves into walls touch the break budget.
func successors(grid *world.Grid, current frontierNode, maxBreaks int) []frontierNode {
	var out []frontierNode

	if current.cell.Kind == world.Portal {
		for _, dest := range grid.PortalGroup(current.cell.Color) {
			if dest == current.cell {
				continue
			}
			out = append(out, frontierNode{
				state: state{row: dest.Row, col: dest.Col, breaks: current.state.breaks},
				cell:  dest,
			})
		}
	}

	for _, dir := range world.AllDirections() {
		neighbor := current.cell.GetNeighbor(dir)
		if neighbor == nil {
			continue
		}
		breaks := current.state.breaks
		if neighbor.Kind == world.Wall {
			breaks++
			if breaks > maxBreaks {
				continue
			}
		}
		out = append(out, frontierNode{
			state: state{row: neighbor.Row, col: neighbor.Col, breaks: breaks},
			cell:  neighbor,
		})
	}

	return out
}

// buildPath walks the parent links back from the goal state and returns the
// visited positions in start-to-goal order.
func buildPath(parents map[state]state, start, goal state) []world.Position {
	var reversed []world.Position
	for current := goal; ; {
		reversed = append(reversed, world.Position{Row: current.row, Col: current.col})
		if current == start {
			break
		}
		current = parents[current]
	}

	path := make([]world.Position, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		path = append(path, reversed[i])
	}
	return path
}
