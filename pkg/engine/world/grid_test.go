package world

import (
	"testing"
)

func TestNewGrid_StartsAllWall(t *testing.T) {
	grid := NewGrid(3, 4)
	grid.ForEachCell(func(row, col int, cell *Cell) {
		if cell.Kind != Wall {
			t.Errorf("fresh cell (%d,%d) kind = %v, want Wall", row, col, cell.Kind)
		}
	})
}

func TestGetCell_OutOfBounds(t *testing.T) {
	grid := NewGrid(2, 2)
	if grid.GetCell(-1, 0) != nil || grid.GetCell(0, 2) != nil {
		t.Error("GetCell out of bounds returned a cell, want nil")
	}
}

func TestOpenWallAt(t *testing.T) {
	grid := NewGrid(2, 2)
	if !grid.OpenWallAt(0, 0) {
		t.Fatal("OpenWallAt(0,0) = false on a wall cell")
	}
	if grid.GetCell(0, 0).Kind != Empty {
		t.Error("opened cell is not Empty")
	}
	if grid.OpenWallAt(0, 0) {
		t.Error("OpenWallAt on an already-open cell = true, want false")
	}
	if grid.OpenWallAt(5, 5) {
		t.Error("OpenWallAt out of bounds = true, want false")
	}
}

func TestSetStartAt_DemotesPreviousStart(t *testing.T) {
	grid := NewGrid(1, 3)
	grid.SetStartAt(0, 0)
	grid.SetStartAt(0, 2)

	if grid.StartCell() != grid.GetCell(0, 2) {
		t.Error("StartCell() is not the most recently placed start")
	}
	if grid.GetCell(0, 0).Kind != Empty {
		t.Errorf("previous start kind = %v, want Empty", grid.GetCell(0, 0).Kind)
	}
	if issue := validateStartOnly(grid); issue != "" {
		t.Error(issue)
	}
}

func validateStartOnly(grid *Grid) string {
	count := 0
	grid.ForEachCell(func(row, col int, cell *Cell) {
		if cell.Kind == Start {
			count++
		}
	})
	if count != 1 {
		return "grid holds more than one start cell after reassignment"
	}
	return ""
}

func TestSetPortalAt_RejectsOccupiedCells(t *testing.T) {
	grid := NewGrid(1, 4)
	grid.SetStartAt(0, 0)
	grid.SetGoalAt(0, 3)
	grid.SetPortalAt(0, 1, Blue)

	if grid.SetPortalAt(0, 0, Red) {
		t.Error("SetPortalAt on the start cell = true, want false")
	}
	if grid.SetPortalAt(0, 3, Red) {
		t.Error("SetPortalAt on the goal cell = true, want false")
	}
	if grid.SetPortalAt(0, 1, Red) {
		t.Error("SetPortalAt on an existing portal = true, want false")
	}
	if len(grid.PortalGroup(Blue)) != 1 {
		t.Errorf("blue group size = %d, want 1", len(grid.PortalGroup(Blue)))
	}
	if len(grid.PortalGroup(Red)) != 0 {
		t.Errorf("red group size = %d, want 0", len(grid.PortalGroup(Red)))
	}
}

func TestValidate(t *testing.T) {
	grid := NewGrid(2, 3)
	if grid.Validate() == "" {
		t.Error("Validate on a grid with no start = \"\", want error")
	}

	grid.SetStartAt(0, 0)
	if grid.Validate() == "" {
		t.Error("Validate on a grid with no goal = \"\", want error")
	}

	grid.SetGoalAt(0, 2)
	if issue := grid.Validate(); issue != "" {
		t.Errorf("Validate on start+goal grid = %q, want \"\"", issue)
	}

	grid.SetPortalAt(1, 0, Blue)
	if grid.Validate() == "" {
		t.Error("Validate with a one-member portal group = \"\", want error")
	}

	grid.SetPortalAt(1, 2, Blue)
	if issue := grid.Validate(); issue != "" {
		t.Errorf("Validate with a full portal pair = %q, want \"\"", issue)
	}
}

func TestClone_IsIndependentDeepCopy(t *testing.T) {
	grid := NewGrid(2, 3)
	grid.SetStartAt(0, 0)
	grid.SetGoalAt(0, 2)
	grid.SetPortalAt(1, 0, Blue)
	grid.SetPortalAt(1, 2, Blue)

	clone := grid.Clone()

	if issue := clone.Validate(); issue != "" {
		t.Fatalf("clone invalid: %s", issue)
	}
	if clone.StartCell() == grid.StartCell() {
		t.Error("clone shares its start cell with the original")
	}
	if len(clone.PortalGroup(Blue)) != 2 {
		t.Errorf("clone blue group size = %d, want 2", len(clone.PortalGroup(Blue)))
	}

	// Breaking a wall in the clone must not touch the original.
	if !clone.OpenWallAt(0, 1) {
		t.Fatal("clone OpenWallAt(0,1) failed")
	}
	if grid.GetCell(0, 1).Kind != Wall {
		t.Error("opening a wall in the clone mutated the original grid")
	}
}

func TestPortalColorsDeterministicOrder(t *testing.T) {
	grid := NewGrid(2, 4)
	grid.SetPortalAt(0, 0, Yellow)
	grid.SetPortalAt(0, 1, Yellow)
	grid.SetPortalAt(1, 0, Blue)
	grid.SetPortalAt(1, 1, Blue)

	colors := grid.PortalColors()
	if len(colors) != 2 || colors[0] != Blue || colors[1] != Yellow {
		t.Errorf("PortalColors() = %v, want [Blue Yellow]", colors)
	}
}
