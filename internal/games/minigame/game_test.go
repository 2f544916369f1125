package minigame

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/canvas-arcade/internal/catalog"
	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

func click(x, y float64) core.InputFrame {
	in := core.NewInputFrame()
	in.Push(core.PointerEvent{Kind: core.PointerClick, X: x, Y: y})
	return in
}

func newGame(t *testing.T, id string, seed int64) *Game {
	t.Helper()
	g := New(id)
	g.Reset(core.RuntimeConfig{Seed: seed})
	if g.Engine() == nil {
		t.Fatalf("%s: Reset() left no engine", id)
	}
	return g
}

func TestRegisteredGames(t *testing.T) {
	for _, id := range config.GameIDs {
		if !registry.Exists(id) {
			t.Errorf("game %q is not registered", id)
			continue
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) error = %v", id, err)
		}
		if g.ID() != id || g.Title() == "" {
			t.Errorf("Create(%q) = id %q title %q", id, g.ID(), g.Title())
		}

		g.Reset(core.RuntimeConfig{Seed: 1})
		dl := core.NewDrawList()
		g.Render(dl)
		if dl.Len() == 0 || dl.Ops[0].Kind != core.OpClear {
			t.Errorf("%s: Render() should start with clear", id)
		}
	}
}

func TestSize(t *testing.T) {
	w, h := New(config.GameMinesweeper).Size()
	if w != 800 || h != 600 {
		t.Errorf("Size() = %vx%v, expected 800x600", w, h)
	}
}

func TestStepBeforeReset(t *testing.T) {
	g := New(config.GameBubble)
	res := g.Step(click(10, 10))
	if res.State.Score != 0 || len(res.Events) != 0 {
		t.Errorf("Step() before Reset = %+v, expected zero result", res)
	}
	dl := core.NewDrawList()
	g.Render(dl)
	if dl.Count(core.OpClear) != 1 {
		t.Error("Render() before Reset should still clear the surface")
	}
}

func TestStepReplaysPointers(t *testing.T) {
	g := newGame(t, config.GameClicker, 7)
	if g.State().Phase != core.PhaseNotStarted {
		t.Fatalf("Phase = %v, expected NotStarted", g.State().Phase)
	}

	res := g.Step(click(400, 300))
	if res.State.Phase != core.PhasePlaying {
		t.Errorf("Phase = %v after start click, expected Playing", res.State.Phase)
	}
	if len(res.Events) == 0 || res.Events[0] != "start" {
		t.Errorf("Events = %v, expected start first", res.Events)
	}
	if g.Engine().Ticks() != 1 {
		t.Errorf("Ticks() = %d, expected 1", g.Engine().Ticks())
	}

	// Hit the first target through the frame queue.
	c := g.Engine().World().Targets[0].Center()
	res = g.Step(click(c.X(), c.Y()))
	if res.State.Score != 10 {
		t.Errorf("Score = %d, expected 10", res.State.Score)
	}
}

func TestPointerOrderWithinFrame(t *testing.T) {
	g := newGame(t, config.GameBasketball, 1)

	in := core.NewInputFrame()
	in.Push(core.PointerEvent{Kind: core.PointerDown, X: 400, Y: 500})
	in.Push(core.PointerEvent{Kind: core.PointerMove, X: 400, Y: 400})
	in.Push(core.PointerEvent{Kind: core.PointerUp, X: 400, Y: 400})
	res := g.Step(in)

	if g.Engine().World().Ball.Resting {
		t.Error("down, move, up in one frame should throw the ball")
	}
	found := false
	for _, ev := range res.Events {
		if ev == "fire" {
			found = true
		}
	}
	if !found {
		t.Errorf("Events = %v, expected fire", res.Events)
	}
}

func TestViewportMapping(t *testing.T) {
	g := newGame(t, config.GameClicker, 3)
	g.SetViewport(core.Viewport{ScaleX: 2, ScaleY: 2})
	g.Step(click(200, 150))

	c := g.Engine().World().Targets[0].Center()
	g.Step(click(c.X()/2, c.Y()/2))
	if g.State().Score != 10 {
		t.Errorf("Score = %d, scaled click should hit", g.State().Score)
	}
}

func TestViewportSurvivesReset(t *testing.T) {
	g := New(config.GameClicker)
	g.SetViewport(core.Viewport{ScaleX: 2, ScaleY: 2})
	g.Reset(core.RuntimeConfig{Seed: 3})

	// (500, 350) maps off the 800x600 surface and is ignored.
	g.Step(click(500, 350))
	if g.State().Phase != core.PhaseNotStarted {
		t.Errorf("Phase = %v, off-surface click should be ignored", g.State().Phase)
	}
}

func TestRestartAction(t *testing.T) {
	g := newGame(t, config.GameMinesweeper, 11)
	grid := g.Engine().World().Grid
	row, col := -1, -1
	for r := range grid.Rows {
		for c := range grid.Cols {
			if grid.IsMine(r, c) && row < 0 {
				row, col = r, c
			}
		}
	}
	if row < 0 {
		t.Skip("seed produced no mines")
	}

	g.Step(click(float64(col)*60+30, float64(row)*60+30))
	if !g.State().GameOver {
		t.Fatal("revealing a mine should end the game")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	res := g.Step(in)
	if res.State.GameOver || res.State.Score != 0 {
		t.Errorf("State = %+v after restart, expected a fresh game", res.State)
	}
}

func TestScoreSink(t *testing.T) {
	var got []int
	g := New(config.GameClicker)
	g.SetScoreSink(func(score int) { got = append(got, score) })
	g.Reset(core.RuntimeConfig{Seed: 5})

	g.Step(click(400, 300))
	c := g.Engine().World().Targets[0].Center()
	g.Step(click(c.X(), c.Y()))

	if len(got) == 0 || got[len(got)-1] != 10 {
		t.Errorf("sink scores = %v, expected to end with 10", got)
	}

	g.SetScoreSink(nil)
	c = g.Engine().World().Targets[0].Center()
	g.Step(click(c.X(), c.Y()))
	if got[len(got)-1] != 10 {
		t.Error("detached sink should not receive scores")
	}
}

func TestNumberedGame(t *testing.T) {
	if _, err := NewNumbered(catalog.First - 1); !errors.Is(err, catalog.ErrOutOfRange) {
		t.Errorf("NewNumbered(103) error = %v, expected ErrOutOfRange", err)
	}

	a, err := NewNumbered(2021)
	if err != nil {
		t.Fatalf("NewNumbered(2021) error = %v", err)
	}
	if a.ID() != "game2021" || a.Title() != "Shoot Game 2021" {
		t.Errorf("ID/Title = %q/%q", a.ID(), a.Title())
	}

	b, _ := NewNumbered(2021)
	a.Reset(core.RuntimeConfig{Seed: 1})
	b.Reset(core.RuntimeConfig{Seed: 99})
	a.Step(click(400, 300))
	b.Step(click(400, 300))

	sa, sb := a.Engine().Snapshot(), b.Engine().Snapshot()
	if sa.Hash() != sb.Hash() {
		t.Error("numbered games should replay identically regardless of runtime seed")
	}
	if a.Engine().Config().Targets.Shape != config.ShapeCircle {
		t.Error("odd numbered game should use circle targets")
	}
}

func TestDifficultyPreset(t *testing.T) {
	SetDifficultyPreset("easy")
	defer SetDifficultyPreset("")

	g := newGame(t, config.GameClicker, 2)
	g.Step(click(400, 300))
	if n := len(g.Engine().World().Targets); n != 7 {
		t.Errorf("targets = %d with easy preset, expected 7", n)
	}
}

func TestConfigPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clicker.yaml")
	if err := os.WriteFile(path, []byte("targets:\n  count: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	defer SetConfigPath("")

	g := newGame(t, config.GameClicker, 2)
	g.Step(click(400, 300))
	if n := len(g.Engine().World().Targets); n != 3 {
		t.Errorf("targets = %d, expected 3 from the custom config", n)
	}
	if g.ConfigError() != nil {
		t.Errorf("ConfigError() = %v", g.ConfigError())
	}
}

func TestBrokenConfigFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("targets:\n  count: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	defer SetConfigPath("")

	g := newGame(t, config.GameClicker, 2)
	if g.ConfigError() == nil {
		t.Error("ConfigError() = nil, expected the validation error")
	}
	g.Step(click(400, 300))
	if n := len(g.Engine().World().Targets); n != 5 {
		t.Errorf("targets = %d, expected the default 5", n)
	}
}

func TestAttachedSurfaceRedrawsOnStartClick(t *testing.T) {
	g := New(config.GameClicker)
	dl := core.NewDrawList()
	g.Attach(dl)
	g.Reset(core.RuntimeConfig{Seed: 1})

	if dl.Len() != 0 {
		t.Fatalf("Len() = %d before any click, expected 0", dl.Len())
	}

	g.Engine().OnClick(400, 300)

	// Redrawn during the click itself, no Render call in between
	if dl.Len() == 0 || dl.Ops[0].Kind != core.OpClear {
		t.Fatalf("attached surface not redrawn: %d ops", dl.Len())
	}
	for _, text := range dl.Texts() {
		if text == "Click to Start!" {
			t.Error("redraw after the start click should not show the prompt")
		}
	}
	if n := dl.Count(core.OpFillRect); n != 5 {
		t.Errorf("Count(fillRect) = %d, expected 5 targets", n)
	}
}

func TestAttachSurvivesResetAndDetaches(t *testing.T) {
	g := newGame(t, config.GameClicker, 1)
	dl := core.NewDrawList()
	g.Attach(dl)
	g.Reset(core.RuntimeConfig{Seed: 2})

	g.Step(click(400, 300))
	if dl.Len() == 0 {
		t.Fatal("surface attached before Reset should still be redrawn")
	}

	g.Attach(nil)
	dl.Reset()
	g.Reset(core.RuntimeConfig{Seed: 3})
	g.Step(click(400, 300))
	if dl.Len() != 0 {
		t.Errorf("Len() = %d after detaching, expected 0", dl.Len())
	}
}
