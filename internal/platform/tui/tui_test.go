package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/games/minigame"
)

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.MouseMsg
		want []core.PointerKind
	}{
		{"motion", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionMotion}, []core.PointerKind{core.PointerMove}},
		{"left press", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, []core.PointerKind{core.PointerDown}},
		{"right press", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, nil},
		{"release", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}, []core.PointerKind{core.PointerUp, core.PointerClick}},
	}

	for _, tt := range tests {
		got := km.MapMouse(tt.msg)
		if len(got) != len(tt.want) {
			t.Errorf("%s: MapMouse() = %v, expected kinds %v", tt.name, got, tt.want)
			continue
		}
		for i, ev := range got {
			if ev.Kind != tt.want[i] {
				t.Errorf("%s: event %d kind = %v, expected %v", tt.name, i, ev.Kind, tt.want[i])
			}
			if ev.X != 3.5 || ev.Y != 4.5 {
				t.Errorf("%s: event at (%v, %v), expected the cell center (3.5, 4.5)", tt.name, ev.X, ev.Y)
			}
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		key  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.key); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.key.String(), got, tt.want)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.Paint(core.ColorSky)
	s.DrawText(1, 0, "hi", core.ColorBlack)
	s.SetCell(5, 1, '●', core.ColorOrange)

	out := RenderScreen(s)
	if !strings.Contains(out, "hi") || !strings.Contains(out, "●") {
		t.Errorf("RenderScreen() lost glyphs: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() should emit one line per row")
	}
}

func TestStatusLine(t *testing.T) {
	s := &statusLine{title: "Minesweeper", high: 50}
	s.SetScore(20)

	line := s.View(core.GameState{Score: 20}, 80)
	if !strings.Contains(line, "Score: 20") || !strings.Contains(line, "Best: 50") {
		t.Errorf("status = %q", line)
	}
	if over := s.View(core.GameState{GameOver: true}, 80); !strings.Contains(over, "GAME OVER") {
		t.Errorf("status after game over = %q", over)
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	game := minigame.New(config.GameClicker)
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1})
	m.Init()
	return m
}

func step(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelMouseStartsGame(t *testing.T) {
	m := newTestModel(t)
	if m.game.State().Phase != core.PhaseNotStarted {
		t.Fatalf("Phase = %v, expected NotStarted", m.game.State().Phase)
	}

	m = step(m, tea.MouseMsg{X: 40, Y: 12, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = step(m, TickMsg{})

	if m.gameState.Phase != core.PhasePlaying {
		t.Errorf("Phase = %v after a click, expected Playing", m.gameState.Phase)
	}
	if len(m.inputFrame.Pointers) != 0 {
		t.Error("input frame should be cleared after the tick")
	}
}

func TestModelViewHasStatusLine(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 25 {
		t.Errorf("View() has %d lines, expected 24 playfield rows and a status line", len(lines))
	}
	if !strings.Contains(lines[len(lines)-1], "Click Targets") {
		t.Errorf("status line = %q, expected the game title", lines[len(lines)-1])
	}
}

func TestModelPauseHoldsInput(t *testing.T) {
	m := newTestModel(t)
	m = step(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	m = step(m, tea.MouseMsg{X: 40, Y: 12, Action: tea.MouseActionRelease})
	m = step(m, TickMsg{})

	if m.game.State().Phase != core.PhaseNotStarted {
		t.Error("clicks while paused should be ignored")
	}
}

func TestModelResizeUpdatesViewport(t *testing.T) {
	m := newTestModel(t)
	m = step(m, tea.WindowSizeMsg{Width: 160, Height: 49})

	if m.raster.Screen().Width() != 160 || m.raster.Screen().Height() != 48 {
		t.Errorf("screen = %dx%d, expected 160x48", m.raster.Screen().Width(), m.raster.Screen().Height())
	}

	// Cell (80, 24) is the surface center at the new size.
	m = step(m, tea.MouseMsg{X: 80, Y: 24, Action: tea.MouseActionRelease})
	m = step(m, TickMsg{})
	if m.gameState.Phase != core.PhasePlaying {
		t.Errorf("Phase = %v, click at the new center should start the game", m.gameState.Phase)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

type attachRecorder struct {
	*minigame.Game
	attached core.Surface
}

func (a *attachRecorder) Attach(dst core.Surface) {
	a.attached = dst
	a.Game.Attach(dst)
}

func TestModelAttachesRaster(t *testing.T) {
	rec := &attachRecorder{Game: minigame.New(config.GameClicker)}
	m := NewModel(rec, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1})
	if rec.attached != core.Surface(m.raster) {
		t.Error("model should attach its raster for immediate redraws")
	}
}

func TestFrameInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / defaultTickRate},
		{-5, time.Second / defaultTickRate},
		{1000, time.Second / maxTickRate},
		{pausedTickRate, 250 * time.Millisecond},
	}
	for _, tc := range tests {
		if got := frameInterval(tc.rate); got != tc.want {
			t.Errorf("frameInterval(%d) = %v, expected %v", tc.rate, got, tc.want)
		}
	}
}
