package engine

import "math/rand"

// Mine marks a terminal cell in Grid.Counts.
const Mine = -1

// Grid is the reveal board: adjacency counts with the Mine sentinel,
// plus a parallel revealed map. Indexed [row][col].
type Grid struct {
	Rows, Cols int
	Counts     [][]int
	Revealed   [][]bool
}

// NewGrid creates an empty grid with no mines.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{Rows: rows, Cols: cols}
	g.Counts = make([][]int, rows)
	g.Revealed = make([][]bool, rows)
	for r := range rows {
		g.Counts[r] = make([]int, cols)
		g.Revealed[r] = make([]bool, cols)
	}
	return g
}

// Seed marks each cell as a mine with probability p, then recounts.
func (g *Grid) Seed(rng *rand.Rand, p float64) {
	for r := range g.Rows {
		for c := range g.Cols {
			if rng.Float64() < p {
				g.Counts[r][c] = Mine
			} else {
				g.Counts[r][c] = 0
			}
		}
	}
	g.Recount()
}

// SetMine marks a cell as a mine. Call Recount afterwards.
func (g *Grid) SetMine(row, col int) {
	if g.InBounds(row, col) {
		g.Counts[row][col] = Mine
	}
}

// Recount recomputes the count of every non-mine cell from its
// up-to-8 neighbors.
func (g *Grid) Recount() {
	for r := range g.Rows {
		for c := range g.Cols {
			if g.Counts[r][c] != Mine {
				g.Counts[r][c] = g.minesAround(r, c)
			}
		}
	}
}

func (g *Grid) minesAround(row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.IsMine(row+dr, col+dc) {
				n++
			}
		}
	}
	return n
}

// InBounds reports whether (row, col) addresses a cell.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// IsMine reports whether the cell is a mine. Out-of-bounds cells are not.
func (g *Grid) IsMine(row, col int) bool {
	return g.InBounds(row, col) && g.Counts[row][col] == Mine
}

// Reveal uncovers a hidden cell and returns its value.
// ok is false for out-of-bounds or already revealed cells.
func (g *Grid) Reveal(row, col int) (value int, ok bool) {
	if !g.InBounds(row, col) || g.Revealed[row][col] {
		return 0, false
	}
	g.Revealed[row][col] = true
	return g.Counts[row][col], true
}

// MineCount returns the number of mines on the board.
func (g *Grid) MineCount() int {
	n := 0
	for r := range g.Rows {
		for c := range g.Cols {
			if g.Counts[r][c] == Mine {
				n++
			}
		}
	}
	return n
}

// RevealedCount returns the number of revealed cells.
func (g *Grid) RevealedCount() int {
	n := 0
	for r := range g.Rows {
		for c := range g.Cols {
			if g.Revealed[r][c] {
				n++
			}
		}
	}
	return n
}
