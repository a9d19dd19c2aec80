package generator

import (
	"wallbreaker/pkg/engine/world"
	"wallbreaker/pkg/game/solver"
)

// carveOrigin is the fixed interior lattice cell every carve starts from.
// It doubles as the start cell of the generated level.
const carveOrigin = 1

// carve produces a perfect-maze skeleton by randomized recursive
// backtracking on a step-2 lattice: opening both the two-away neighbor and
// the cell between them always leaves a one-cell wall between parallel
// corridors and keeps the outer border sealed.
func (g *MazeGenerator) carve() *world.Grid {
	grid := world.NewGrid(g.rows, g.cols)

	grid.OpenWallAt(carveOrigin, carveOrigin)
	stack := []*world.Cell{grid.GetCell(carveOrigin, carveOrigin)}

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		candidates := g.unvisitedLatticeNeighbors(grid, current)
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[g.rng.Intn(len(candidates))]
		between := grid.GetCell((current.Row+next.Row)/2, (current.Col+next.Col)/2)
		grid.OpenWallAt(between.Row, between.Col)
		grid.OpenWallAt(next.Row, next.Col)
		stack = append(stack, next)
	}

	grid.SetStartAt(carveOrigin, carveOrigin)
	return grid
}

// unvisitedLatticeNeighbors returns the still-walled lattice cells two away
// from current in each cardinal direction, skipping any that would leave the
// interior.
func (g *MazeGenerator) unvisitedLatticeNeighbors(grid *world.Grid, current *world.Cell) []*world.Cell {
	var out []*world.Cell
	for _, dir := range world.AllDirections() {
		rowDelta, colDelta := dir.Delta()
		row := current.Row + rowDelta*2
		col := current.Col + colDelta*2
		if !grid.IsInteriorPosition(row, col) {
			continue
		}
		neighbor := grid.GetCell(row, col)
		if neighbor.Kind == world.Wall {
			out = append(out, neighbor)
		}
	}
	return out
}

// placeGoal runs a BFS distance sweep over the carved cells from the start
// and puts the goal on the reachable cell with the strictly greatest
// distance, ties resolved by first-found in traversal order.
func (g *MazeGenerator) placeGoal(grid *world.Grid) {
	start := grid.StartCell()
	if start == nil {
		return
	}

	type cellDist struct {
		cell *world.Cell
		dist int
	}

	visited := make(map[*world.Cell]bool)
	queue := []cellDist{{start, 0}}
	visited[start] = true

	furthest := start
	maxDist := 0

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.dist > maxDist {
			maxDist = current.dist
			furthest = current.cell
		}

		for _, neighbor := range current.cell.GetNeighbors() {
			if neighbor.Walkable() && !visited[neighbor] {
				visited[neighbor] = true
				queue = append(queue, cellDist{neighbor, current.dist + 1})
			}
		}
	}

	grid.SetGoalAt(furthest.Row, furthest.Col)
}

// placePortalPair picks two empty cells uniformly at random and marks them
// as a blue portal pair. If fewer than two empty cells remain after start
// and goal placement, no portals are placed.
func (g *MazeGenerator) placePortalPair(grid *world.Grid) {
	var empties []*world.Cell
	grid.ForEachCell(func(row, col int, cell *world.Cell) {
		if cell.Kind == world.Empty {
			empties = append(empties, cell)
		}
	})

	if len(empties) < 2 {
		return
	}

	g.rng.Shuffle(len(empties), func(i, j int) {
		empties[i], empties[j] = empties[j], empties[i]
	})
	grid.SetPortalAt(empties[0].Row, empties[0].Col, world.Blue)
	grid.SetPortalAt(empties[1].Row, empties[1].Col, world.Blue)
}

// punchOpenings independently converts each interior wall to empty with a
// small fixed probability, adding cycles so the maze is not a strict tree.
// Loops are what make break and portal strategies diverge from the plain
// shortest path.
func (g *MazeGenerator) punchOpenings(grid *world.Grid) {
	grid.ForEachCell(func(row, col int, cell *world.Cell) {
		if cell.Kind != world.Wall || !grid.IsInteriorPosition(row, col) {
			return
		}
		if g.rng.Float64() < g.punchProb {
			grid.OpenWallAt(row, col)
		}
	})
}

// fallbackLevel builds the guaranteed-solvable 1x3 corridor used when every
// generation attempt fails validation: start, open cell, goal, two actions
// end to end under any budget.
func fallbackLevel(breakBudget int) *Level {
	grid := world.NewGrid(1, 3)
	grid.SetStartAt(0, 0)
	grid.OpenWallAt(0, 1)
	grid.SetGoalAt(0, 2)

	corridor := solver.Result{
		Reachable: true,
		Actions:   2,
		Path: []world.Position{
			{Row: 0, Col: 0},
			{Row: 0, Col: 1},
			{Row: 0, Col: 2},
		},
	}

	return newLevel(grid, breakBudget, corridor, corridor)
}
