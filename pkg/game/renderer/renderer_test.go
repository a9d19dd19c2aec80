package renderer

import (
	"strings"
	"testing"

	"wallbreaker/pkg/engine/world"
)

func TestCellIcon(t *testing.T) {
	grid := world.NewGrid(1, 5)
	grid.SetStartAt(0, 0)
	grid.OpenWallAt(0, 1)
	grid.SetPortalAt(0, 2, world.Blue)
	grid.SetGoalAt(0, 4)

	wantIcons := []string{IconStart, IconEmpty, IconPortal, IconWall, IconGoal}
	for col, want := range wantIcons {
		if got := CellIcon(grid.GetCell(0, col)); got != want {
			t.Errorf("CellIcon(cell %d) = %q, want %q", col, got, want)
		}
	}
	if got := CellIcon(nil); got != IconWall {
		t.Errorf("CellIcon(nil) = %q, want wall icon", got)
	}
}

func TestRenderGrid_OneLinePerRow(t *testing.T) {
	InitColors()
	grid := world.NewGrid(4, 6)
	out := RenderGrid(grid)
	if lines := strings.Count(out, "\n"); lines != 4 {
		t.Errorf("RenderGrid produced %d lines, want 4", lines)
	}
}
