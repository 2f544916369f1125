// Package minigame adapts the shared engine to the registry.Game contract.
// It registers the four built-in variants and builds numbered catalog games
// on demand.
package minigame

import (
	"github.com/vovakirdan/canvas-arcade/internal/catalog"
	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/engine"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names select fixed.
func SetDifficultyPreset(preset string) {
	difficultyPreset, _ = config.ParsePreset(preset)
}

func init() {
	for _, id := range config.GameIDs {
		registry.Register(id, func() registry.Game {
			return New(id)
		})
	}
}

// Game runs one engine-backed mini-game.
type Game struct {
	id    string
	title string

	// Numbered games carry their own config and seed.
	entry    *catalog.Entry
	cfg      config.GameConfig
	loadErr  error
	eng      *engine.Engine
	viewport core.Viewport
	sink     func(score int)
	surface  core.Surface
}

// New creates a built-in variant. Unknown ids fall back to the click-target game.
func New(id string) *Game {
	cfg, ok := config.DefaultConfig(id)
	if !ok {
		cfg = config.DefaultClickerConfig()
	}
	return &Game{
		id:       id,
		title:    cfg.Title,
		cfg:      cfg,
		viewport: core.IdentityViewport(),
	}
}

// NewNumbered creates catalog game n.
func NewNumbered(n int) (*Game, error) {
	entry, err := catalog.Lookup(n)
	if err != nil {
		return nil, err
	}
	return &Game{
		id:       entry.ID(),
		title:    entry.Config.Title,
		entry:    &entry,
		cfg:      entry.Config,
		viewport: core.IdentityViewport(),
	}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Size returns the world size.
func (g *Game) Size() (float64, float64) {
	return g.cfg.Viewport.Width, g.cfg.Viewport.Height
}

// ConfigError reports why the last Reset fell back to the built-in defaults.
func (g *Game) ConfigError() error {
	return g.loadErr
}

// Engine exposes the running engine, nil before the first Reset.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}

// Reset loads the configuration and builds a fresh engine.
// Numbered games ignore the runtime seed so they replay identically.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := g.loadConfig()
	g.loadErr = err

	seed := runtime.Seed
	if g.entry != nil {
		seed = g.entry.Seed
	}

	eng, err := engine.New(cfg, g.engineOptions(seed)...)
	if err != nil {
		// A preset can push values out of range.
		g.loadErr = err
		cfg = g.defaults()
		eng, _ = engine.New(cfg, g.engineOptions(seed)...)
	}
	g.cfg = cfg
	g.eng = eng
}

func (g *Game) engineOptions(seed int64) []engine.Option {
	opts := []engine.Option{
		engine.WithSeed(seed),
		engine.WithViewport(g.viewport),
	}
	if g.sink != nil {
		opts = append(opts, engine.WithScoreSink(engine.ScoreFunc(g.sink)))
	}
	if g.surface != nil {
		opts = append(opts, engine.WithSurface(g.surface))
	}
	return opts
}

func (g *Game) defaults() config.GameConfig {
	if g.entry != nil {
		return g.entry.Config
	}
	cfg, ok := config.DefaultConfig(g.id)
	if !ok {
		cfg = config.DefaultClickerConfig()
	}
	return cfg
}

// loadConfig resolves the config file and applies the difficulty preset.
// On a load error the defaults are used and the error is returned.
func (g *Game) loadConfig() (config.GameConfig, error) {
	var (
		cfg config.GameConfig
		err error
	)
	if g.entry != nil {
		cfg = g.entry.Config
	} else {
		cfg, err = config.Load(g.id, configPath)
		if err != nil {
			cfg = g.defaults()
		}
	}

	if !config.IsFixedPreset(difficultyPreset) {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	return cfg, err
}

// Step replays the frame's pointer events in arrival order, then advances
// one tick. Each event runs to completion before the next.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.eng == nil {
		return core.StepResult{}
	}

	if in.Has(core.ActionRestart) && g.eng.Phase() == core.PhaseOver {
		g.eng.Restart()
	}
	for _, ev := range in.Pointers {
		g.eng.HandlePointer(ev)
	}
	g.eng.Step()

	var names []string
	for _, ev := range g.eng.Drain() {
		names = append(names, ev.Kind.String())
	}
	return core.StepResult{
		State:  g.eng.State(),
		Events: names,
	}
}

// Render draws the current frame.
func (g *Game) Render(dst core.Surface) {
	if g.eng == nil {
		dst.Clear(core.ColorBlack)
		return
	}
	g.eng.Render(dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{}
	}
	return g.eng.State()
}

// SetViewport sets the pointer mapping, applied immediately if running.
func (g *Game) SetViewport(v core.Viewport) {
	g.viewport = v
	if g.eng != nil {
		g.eng.SetViewport(v)
	}
}

// Attach sets the surface redrawn immediately on a start or restart
// click. It survives Reset. Pass nil to detach.
func (g *Game) Attach(dst core.Surface) {
	g.surface = dst
	if g.eng != nil {
		g.eng.Attach(dst)
	}
}

// SetScoreSink routes score changes to sink.
func (g *Game) SetScoreSink(sink func(score int)) {
	g.sink = sink
	if g.eng == nil {
		return
	}
	if sink == nil {
		g.eng.SetScoreSink(nil)
		return
	}
	g.eng.SetScoreSink(engine.ScoreFunc(sink))
}

var (
	_ registry.Game            = (*Game)(nil)
	_ registry.ScoreReporter   = (*Game)(nil)
	_ registry.SurfaceAttacher = (*Game)(nil)
)
