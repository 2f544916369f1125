package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// ansiCodes maps palette entries to 256-color terminal codes.
var ansiCodes = map[core.Color]lipgloss.Color{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorBlack:         "16",
	core.ColorDarkGray:      "238",
	core.ColorSky:           "117",
}

// cellStyle returns the style for a foreground/background pair.
// ColorDefault leaves the terminal's own color in place.
func cellStyle(fg, bg core.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if code, ok := ansiCodes[fg]; ok {
		style = style.Foreground(code)
	}
	if code, ok := ansiCodes[bg]; ok {
		style = style.Background(code)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start.Color || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(cellStyle(start.Color, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}

// statusLine is the TUI score sink: the game pushes every score change
// into it and the view prints it under the playfield.
type statusLine struct {
	title string
	score int
	high  int
}

func (s *statusLine) SetScore(score int) {
	s.score = score
}

var statusStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("229")).
	Background(lipgloss.Color("57"))

// View renders the status line padded to width.
func (s *statusLine) View(state core.GameState, width int) string {
	left := fmt.Sprintf(" %s  Score: %d", s.title, s.score)
	if s.high > 0 {
		left += fmt.Sprintf("  Best: %d", max(s.high, s.score))
	}
	right := "mouse: play  r: restart  q: quit "
	switch {
	case state.Paused:
		right = "PAUSED  p: resume  q: quit "
	case state.GameOver:
		right = "GAME OVER  click or r: restart  b: menu "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return statusStyle.Render(left)
	}
	return statusStyle.Render(left + strings.Repeat(" ", gap) + right)
}
