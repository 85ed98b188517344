package crossing

import (
	"math"
	"testing"
)

func TestGemAlignedToGrid(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		g, _ := newTestGame(t, seed, nil)
		gm := g.Gem()

		// x + 1.5*spriteWidth lands on a tile boundary in 1..columns.
		col := (gm.X() + 1.5*gm.Width()) / g.TileWidth
		if col != math.Trunc(col) || col < 1 || col > float64(g.Columns) {
			t.Fatalf("seed %d: gem x %g not aligned (column %g)", seed, gm.X(), col)
		}
		row := (gm.Y() - g.TileHeight/2) / g.TileHeight
		if row != math.Trunc(row) || row < 1 || row > float64(g.Rows-1) {
			t.Fatalf("seed %d: gem y %g not aligned (row %g)", seed, gm.Y(), row)
		}
	}
}

func TestGemResetOnlyWhileRunning(t *testing.T) {
	g, _ := newTestGame(t, 4, nil)
	first := g.Gem()

	g.paused = true
	g.ReplaceGem()
	if g.Gem() != first {
		t.Error("gem replaced while paused")
	}
	g.paused = false
	g.over = true
	g.ReplaceGem()
	if g.Gem() != first {
		t.Error("gem replaced after game over")
	}

	g.over = false
	g.ReplaceGem()
	if g.Gem() == first {
		t.Error("gem not replaced while running")
	}
}
