package engine

import (
	"errors"
	"testing"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
)

func newTestEngine(t *testing.T, cfg config.GameConfig, opts ...Option) *Engine {
	t.Helper()
	e, err := New(cfg, append([]Option{WithSeed(42)}, opts...)...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return e
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, ev := range events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

type recordingSink struct {
	scores []int
}

func (s *recordingSink) SetScore(score int) {
	s.scores = append(s.scores, score)
}

func (s *recordingSink) last() int {
	if len(s.scores) == 0 {
		return -1
	}
	return s.scores[len(s.scores)-1]
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultMinesweeperConfig()
	cfg.Grid.Rows = -1

	_, err := New(cfg)
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("New() error = %v, expected ErrInvalidConfig", err)
	}

	cfg = config.DefaultClickerConfig()
	cfg.Viewport.Width = -800
	if _, err := New(cfg); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("New() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestInitialPhase(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.GameConfig
		expected core.Phase
	}{
		{"bubble", config.DefaultBubbleConfig(), core.PhasePlaying},
		{"minesweeper", config.DefaultMinesweeperConfig(), core.PhasePlaying},
		{"basketball", config.DefaultBasketballConfig(), core.PhasePlaying},
		{"clicker", config.DefaultClickerConfig(), core.PhaseNotStarted},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEngine(t, tc.cfg)
			if e.Phase() != tc.expected {
				t.Errorf("Phase() = %v, expected %v", e.Phase(), tc.expected)
			}
			if e.Score() != 0 {
				t.Errorf("Score() = %d, expected 0", e.Score())
			}
		})
	}
}

func TestScoreSinkReceivesChanges(t *testing.T) {
	cfg := config.DefaultMinesweeperConfig()
	cfg.Grid.TerminalProbability = 0
	sink := &recordingSink{}
	e := newTestEngine(t, cfg, WithScoreSink(sink))

	if sink.last() != 0 {
		t.Errorf("initial published score = %d, expected 0", sink.last())
	}

	e.OnClick(30, 30)
	e.OnClick(90, 30)
	if sink.last() != 20 {
		t.Errorf("published score = %d, expected 20", sink.last())
	}

	// Re-clicking a revealed cell changes nothing and publishes nothing.
	n := len(sink.scores)
	e.OnClick(30, 30)
	if len(sink.scores) != n {
		t.Errorf("sink called %d times for an ignored click", len(sink.scores)-n)
	}

	e.SetScoreSink(ScoreFunc(func(score int) { sink.scores = append(sink.scores, score*100) }))
	if sink.last() != 2000 {
		t.Errorf("SetScoreSink() should publish current score, got %d", sink.last())
	}
}

func TestStateReflectsPhase(t *testing.T) {
	e := newTestEngine(t, config.DefaultMinesweeperConfig())
	e.world.Grid = NewGrid(10, 10)
	e.world.Grid.SetMine(0, 0)
	e.world.Grid.Recount()

	e.OnClick(10, 10)
	st := e.State()
	if !st.GameOver || st.Phase != core.PhaseOver {
		t.Errorf("State() = %+v, expected game over", st)
	}
}

func TestDeterminism(t *testing.T) {
	run := func(seed int64) uint64 {
		e, err := New(config.DefaultClickerConfig(), WithSeed(seed))
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		e.OnClick(400, 300)
		for i := range 300 {
			e.Step()
			if i%50 == 0 {
				c := e.World().Targets[0].Center()
				e.OnClick(c.X(), c.Y())
			}
		}
		snap := e.Snapshot()
		return snap.Hash()
	}

	h1 := run(12345)
	h2 := run(12345)
	if h1 != h2 {
		t.Errorf("same seed produced different hashes: %d vs %d", h1, h2)
	}
	if h3 := run(54321); h3 == h1 {
		t.Errorf("different seeds produced the same hash %d", h3)
	}
}

func TestSeededGridDeterminism(t *testing.T) {
	a := newTestEngine(t, config.DefaultMinesweeperConfig(), WithSeed(7))
	b := newTestEngine(t, config.DefaultMinesweeperConfig(), WithSeed(7))

	sa, sb := a.Snapshot(), b.Snapshot()
	if sa.Hash() != sb.Hash() {
		t.Error("equal seeds should produce equal grids")
	}
}

func TestPointerOutsideViewportIgnored(t *testing.T) {
	cfg := config.DefaultMinesweeperConfig()
	cfg.Grid.TerminalProbability = 0
	e := newTestEngine(t, cfg)

	e.OnClick(-5, 30)
	e.OnClick(30, 650)
	e.OnClick(900, 30)
	if e.Score() != 0 || e.world.Grid.RevealedCount() != 0 {
		t.Errorf("off-surface clicks changed state: score %d, revealed %d", e.Score(), e.world.Grid.RevealedCount())
	}
}

func TestViewportConversion(t *testing.T) {
	cfg := config.DefaultMinesweeperConfig()
	cfg.Grid.TerminalProbability = 0
	e := newTestEngine(t, cfg, WithViewport(core.Viewport{OriginX: 100, OriginY: 50, ScaleX: 1, ScaleY: 1}))

	// Client (130, 80) is surface (30, 30): cell (0, 0).
	e.OnClick(130, 80)
	if !e.world.Grid.Revealed[0][0] {
		t.Error("client click should reveal cell (0, 0) after viewport conversion")
	}

	e.SetViewport(core.Viewport{ScaleX: 2, ScaleY: 2})
	// Client (45, 15) is surface (90, 30): cell (0, 1).
	e.OnClick(45, 15)
	if !e.world.Grid.Revealed[0][1] {
		t.Error("scaled click should reveal cell (0, 1)")
	}
}

func TestHandlePointerDispatch(t *testing.T) {
	e := newTestEngine(t, config.DefaultBubbleConfig())

	e.HandlePointer(core.PointerEvent{Kind: core.PointerMove, X: 600, Y: 550})
	if e.world.Shooter.Angle != 0 {
		t.Errorf("Angle = %v after move, expected 0", e.world.Shooter.Angle)
	}

	e.HandlePointer(core.PointerEvent{Kind: core.PointerClick, X: 600, Y: 550})
	if len(e.world.Projectiles) != 1 {
		t.Errorf("Projectiles = %d after click, expected 1", len(e.world.Projectiles))
	}
}

func TestTickStepsAndRenders(t *testing.T) {
	e := newTestEngine(t, config.DefaultClickerConfig())
	e.OnClick(400, 300)

	dl := core.NewDrawList()
	e.Tick(dl)

	if e.Ticks() != 1 {
		t.Errorf("Ticks() = %d, expected 1", e.Ticks())
	}
	if dl.Len() == 0 || dl.Ops[0].Kind != core.OpClear {
		t.Error("Tick() should render a frame starting with clear")
	}
}

func TestStepIsNoOpUnlessPlaying(t *testing.T) {
	e := newTestEngine(t, config.DefaultClickerConfig())
	before := e.Snapshot()
	for range 10 {
		e.Step()
	}
	after := e.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("Step() changed state while NotStarted")
	}
}

func TestDrainEmptiesBuffer(t *testing.T) {
	e := newTestEngine(t, config.DefaultClickerConfig())
	e.OnClick(400, 300)

	events := e.Drain()
	if !hasEvent(events, EventStart) {
		t.Errorf("Drain() = %v, expected a start event", events)
	}
	if len(e.Drain()) != 0 {
		t.Error("second Drain() should be empty")
	}
}

func TestEventBufferBounded(t *testing.T) {
	e := newTestEngine(t, config.DefaultBubbleConfig())
	for range maxPendingEvents + 50 {
		e.OnClick(400, 300)
	}
	if n := len(e.Drain()); n != maxPendingEvents {
		t.Errorf("pending events = %d, expected %d", n, maxPendingEvents)
	}
}

func TestEventKindString(t *testing.T) {
	if EventBasket.String() != "basket" {
		t.Errorf("EventBasket.String() = %q", EventBasket.String())
	}
	if EventKind(99).String() != "unknown" {
		t.Errorf("EventKind(99).String() = %q", EventKind(99).String())
	}
}
