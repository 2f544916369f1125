// Package engine implements the pointer-driven 2D mini-game core shared by
// every arcade variant. One Engine owns one World; hosts deliver pointer
// events between frames and drive Tick once per frame. Variants differ only
// in configuration: the layout picks how the world is populated and which
// input plays, the collision rule picks how hits are tested.
//
// An Engine is not safe for concurrent use. Hosts serialize input and
// ticks on a single goroutine.
package engine

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// ScoreSink receives the score after every change. The engine never reads it back.
type ScoreSink interface {
	SetScore(score int)
}

// ScoreFunc adapts a function to ScoreSink.
type ScoreFunc func(score int)

// SetScore calls f(score).
func (f ScoreFunc) SetScore(score int) { f(score) }

// Option configures an Engine.
type Option func(*Engine)

// WithSeed seeds the engine RNG. Equal seeds replay identically.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.seed = seed }
}

// WithScoreSink sets where score changes are published.
func WithScoreSink(sink ScoreSink) Option {
	return func(e *Engine) { e.sink = sink }
}

// WithViewport sets the client-to-surface coordinate mapping.
func WithViewport(v core.Viewport) Option {
	return func(e *Engine) { e.viewport = v }
}

// WithSurface attaches the surface redrawn at once when a click leaves a
// paused phase.
func WithSurface(dst core.Surface) Option {
	return func(e *Engine) { e.surface = dst }
}

// Engine runs one game instance.
type Engine struct {
	cfg      config.GameConfig
	world    World
	rng      *rand.Rand
	seed     int64
	tick     uint64
	viewport core.Viewport
	surface  core.Surface
	sink     ScoreSink
	events   []Event

	background core.Color
	palette    []core.Color
}

// New validates cfg and builds an initialized engine.
// Invalid configuration fails here rather than being clamped.
func New(cfg config.GameConfig, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	e := &Engine{
		cfg:        cfg,
		viewport:   core.IdentityViewport(),
		background: core.ColorBlack,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.rng = rand.New(rand.NewSource(e.seed))

	if c, ok := core.ColorByName(cfg.Background); ok {
		e.background = c
	}
	for _, name := range cfg.Palette {
		c, _ := core.ColorByName(name)
		e.palette = append(e.palette, c)
	}

	e.initWorld()
	return e, nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.GameConfig {
	return e.cfg
}

// World exposes the live world for hosts and tests. Callers must not
// mutate it while the engine is running.
func (e *Engine) World() *World {
	return &e.world
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.world.Score
}

// Phase returns the lifecycle phase.
func (e *Engine) Phase() core.Phase {
	return e.world.Phase
}

// State returns the host-facing game state.
func (e *Engine) State() core.GameState {
	return core.GameState{
		Score:    e.world.Score,
		Phase:    e.world.Phase,
		GameOver: e.world.Phase == core.PhaseOver,
	}
}

// Ticks returns how many simulation steps ran since the last init.
func (e *Engine) Ticks() uint64 {
	return e.tick
}

// SetViewport replaces the client-to-surface mapping, e.g. after a resize.
func (e *Engine) SetViewport(v core.Viewport) {
	e.viewport = v
}

// Attach sets the surface redrawn immediately when a click restarts
// a paused game. Pass nil to detach.
func (e *Engine) Attach(dst core.Surface) {
	e.surface = dst
}

// SetScoreSink replaces the score sink and publishes the current score to it.
func (e *Engine) SetScoreSink(sink ScoreSink) {
	e.sink = sink
	e.publish()
}

// Reset re-initializes the world with score 0.
func (e *Engine) Reset() {
	e.initWorld()
}

// Restart re-initializes the world and records a restart event.
func (e *Engine) Restart() {
	e.restart()
}

// Tick advances one frame and redraws dst.
func (e *Engine) Tick(dst core.Surface) {
	e.Step()
	e.Render(dst)
}

// randomColor picks a palette entry.
func (e *Engine) randomColor() core.Color {
	if len(e.palette) == 0 {
		return core.ColorWhite
	}
	return e.palette[e.rng.Intn(len(e.palette))]
}

func (e *Engine) redraw() {
	if e.surface != nil {
		e.Render(e.surface)
	}
}

var _ core.Ticker = (*Engine)(nil)
