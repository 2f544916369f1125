package engine

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// bruteCount counts mines among the up-to-8 neighbors without using Grid helpers.
func bruteCount(g *Grid, row, col int) int {
	n := 0
	for r := row - 1; r <= row+1; r++ {
		for c := col - 1; c <= col+1; c++ {
			if r < 0 || r >= g.Rows || c < 0 || c >= g.Cols || (r == row && c == col) {
				continue
			}
			if g.Counts[r][c] == Mine {
				n++
			}
		}
	}
	return n
}

func TestGridCountsMatchNeighbors(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 2024} {
		g := NewGrid(10, 10)
		g.Seed(rand.New(rand.NewSource(seed)), 0.3)

		for r := range g.Rows {
			for c := range g.Cols {
				if g.Counts[r][c] == Mine {
					continue
				}
				if want := bruteCount(g, r, c); g.Counts[r][c] != want {
					t.Errorf("seed %d: Counts[%d][%d] = %d, expected %d", seed, r, c, g.Counts[r][c], want)
				}
			}
		}
	}
}

func TestGridFixedLayout(t *testing.T) {
	g := NewGrid(4, 5)
	g.SetMine(0, 0)
	g.SetMine(0, 1)
	g.SetMine(1, 0)
	g.SetMine(3, 4)
	g.SetMine(9, 9) // out of bounds, ignored
	g.Recount()

	tests := []struct {
		row, col, expected int
	}{
		{1, 1, 3},    // three mines in the corner block
		{0, 2, 1},    // top edge
		{2, 0, 1},    // left edge
		{2, 3, 1},    // diagonal to (3, 4)
		{3, 3, 1},    // beside (3, 4)
		{2, 2, 0},    // nothing around
		{0, 0, Mine}, // mines keep the sentinel
	}
	for _, tc := range tests {
		if got := g.Counts[tc.row][tc.col]; got != tc.expected {
			t.Errorf("Counts[%d][%d] = %d, expected %d", tc.row, tc.col, got, tc.expected)
		}
	}
	if g.MineCount() != 4 {
		t.Errorf("MineCount() = %d, expected 4", g.MineCount())
	}
}

func TestGridRevealOnce(t *testing.T) {
	g := NewGrid(3, 3)
	if _, ok := g.Reveal(1, 1); !ok {
		t.Fatal("first Reveal() should succeed")
	}
	if _, ok := g.Reveal(1, 1); ok {
		t.Error("second Reveal() of the same cell should be ignored")
	}
	if _, ok := g.Reveal(-1, 0); ok {
		t.Error("Reveal() out of bounds should be ignored")
	}
	if _, ok := g.Reveal(0, 3); ok {
		t.Error("Reveal() out of bounds should be ignored")
	}
	if g.RevealedCount() != 1 {
		t.Errorf("RevealedCount() = %d, expected 1", g.RevealedCount())
	}
}

func TestGridProbabilityExtremes(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	g := NewGrid(10, 10)
	g.Seed(rng, 0)
	if g.MineCount() != 0 {
		t.Errorf("p=0 MineCount() = %d, expected 0", g.MineCount())
	}

	g.Seed(rng, 1)
	if g.MineCount() != 100 {
		t.Errorf("p=1 MineCount() = %d, expected 100", g.MineCount())
	}
}

// minesweeperWithMine builds a board with a single mine at (row, col).
func minesweeperWithMine(t *testing.T, row, col int) *Engine {
	t.Helper()
	e := newTestEngine(t, config.DefaultMinesweeperConfig())
	e.world.Grid = NewGrid(10, 10)
	e.world.Grid.SetMine(row, col)
	e.world.Grid.Recount()
	return e
}

func cellCenter(row, col int) (float64, float64) {
	return float64(col)*60 + 30, float64(row)*60 + 30
}

func TestRevealTerminalEndsGame(t *testing.T) {
	e := minesweeperWithMine(t, 4, 4)

	e.OnClick(cellCenter(0, 0))
	if e.Score() != 10 {
		t.Fatalf("Score() = %d after safe reveal, expected 10", e.Score())
	}

	e.OnClick(cellCenter(4, 4))
	if e.Phase() != core.PhaseOver {
		t.Fatalf("Phase() = %v after terminal reveal, expected Over", e.Phase())
	}
	if e.Score() != 10 {
		t.Errorf("terminal reveal changed score to %d", e.Score())
	}
	if !hasEvent(e.Drain(), EventTerminal) {
		t.Error("terminal reveal should emit EventTerminal")
	}

	// Nothing but a restart may touch the board while Over.
	revealed := e.world.Grid.RevealedCount()
	e.reveal(e.viewport.ToSurface(cellCenter(2, 2)))
	e.Step()
	e.OnPointerMove(cellCenter(3, 3))
	if e.world.Grid.RevealedCount() != revealed || e.Score() != 10 {
		t.Errorf("board changed while Over: revealed %d, score %d", e.world.Grid.RevealedCount(), e.Score())
	}
	if e.Phase() != core.PhaseOver {
		t.Errorf("Phase() = %v, expected Over", e.Phase())
	}
}

func TestRestartRegeneratesBoard(t *testing.T) {
	e := minesweeperWithMine(t, 0, 0)
	old := e.world.Grid

	e.OnClick(cellCenter(5, 5))
	e.OnClick(cellCenter(0, 0))
	if e.Phase() != core.PhaseOver {
		t.Fatalf("Phase() = %v, expected Over", e.Phase())
	}

	dl := core.NewDrawList()
	e.Attach(dl)
	e.OnClick(cellCenter(7, 7))

	if e.Phase() != core.PhasePlaying {
		t.Errorf("Phase() = %v after restart, expected Playing", e.Phase())
	}
	if e.Score() != 0 {
		t.Errorf("Score() = %d after restart, expected 0", e.Score())
	}
	if e.world.Grid == old {
		t.Error("restart should build a new grid")
	}
	if e.world.Grid.RevealedCount() != 0 {
		t.Errorf("RevealedCount() = %d after restart, expected 0", e.world.Grid.RevealedCount())
	}
	if !hasEvent(e.Drain(), EventRestart) {
		t.Error("restart should emit EventRestart")
	}

	// The restart click redraws at once, without the banner.
	if dl.Len() == 0 || dl.Ops[0].Kind != core.OpClear {
		t.Fatal("restart click should redraw the attached surface")
	}
	for _, s := range dl.Texts() {
		if s == "Game Over! Click to restart" {
			t.Error("redraw after restart should not show the banner")
		}
	}
}

func TestAllSafeBoardScores1000(t *testing.T) {
	cfg := config.DefaultMinesweeperConfig()
	cfg.Grid.TerminalProbability = 0
	e := newTestEngine(t, cfg)

	for r := range 10 {
		for c := range 10 {
			e.OnClick(cellCenter(r, c))
			if e.Phase() != core.PhasePlaying {
				t.Fatalf("Phase() = %v at cell (%d, %d), expected Playing", e.Phase(), r, c)
			}
		}
	}

	if e.Score() != 1000 {
		t.Errorf("Score() = %d, expected 1000", e.Score())
	}
	if e.world.Grid.RevealedCount() != 100 {
		t.Errorf("RevealedCount() = %d, expected 100", e.world.Grid.RevealedCount())
	}
}

func TestClickBesideGridIgnored(t *testing.T) {
	cfg := config.DefaultMinesweeperConfig()
	cfg.Grid.TerminalProbability = 0
	e := newTestEngine(t, cfg)

	// The 10x10 board spans 600x600 of the 800x600 surface.
	e.OnClick(700, 30)
	if e.Score() != 0 || e.world.Grid.RevealedCount() != 0 {
		t.Error("click right of the grid should be ignored")
	}
}
