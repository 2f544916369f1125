package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

func sessionKey(m SessionModel, msg tea.KeyMsg) SessionModel {
	next, _ := m.Update(msg)
	return next.(SessionModel)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSessionReportsRoundOnQuit(t *testing.T) {
	type round struct {
		id    string
		score int
	}
	var rounds []round
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1}
	m := NewSessionModel(nil, cfg, func(id string, score int) {
		rounds = append(rounds, round{id, score})
	})

	m = sessionKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.gameModel == nil {
		t.Fatal("enter should start the selected game")
	}
	m.gameModel.Init()

	m = sessionKey(m, runes("q"))
	if !m.quitting {
		t.Error("q should end the session")
	}
	want := registry.List()[0].ID
	if len(rounds) != 1 || rounds[0] != (round{want, 0}) {
		t.Errorf("rounds = %v, expected one %s round with score 0", rounds, want)
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60}
	m := NewSessionModel(nil, cfg, nil)

	m = sessionKey(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard == nil {
		t.Fatal("tab should open the scoreboard")
	}

	m = sessionKey(m, runes("b"))
	if m.scoreboard != nil || m.quitting {
		t.Error("b should return to the menu")
	}
	if m.View() == "" {
		t.Error("menu view should not be empty")
	}
}

func TestSessionBackNeedsPause(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1}
	rounds := 0
	m := NewSessionModel(nil, cfg, func(string, int) { rounds++ })

	m = sessionKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	m.gameModel.Init()

	m = sessionKey(m, runes("b"))
	if m.gameModel == nil {
		t.Fatal("b while playing should be ignored")
	}

	m = sessionKey(m, runes("p"))
	m = sessionKey(m, runes("b"))
	if m.gameModel != nil {
		t.Error("b while paused should return to the menu")
	}
	if rounds != 1 {
		t.Errorf("rounds = %d, expected 1", rounds)
	}
}
