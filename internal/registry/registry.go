// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// Game is the core interface that all arcade games must implement.
// Games contain pure logic with no host dependencies (no Bubble Tea, no sockets).
// The platform handles pointer mapping, timing, and presentation.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "bubble", "game104").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Bubble Shooter").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides the RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step replays the frame's queued pointer events in order, then
	// advances the simulation by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render redraws the whole surface for the current state.
	Render(dst core.Surface)

	// State returns the current game state (score, phase).
	State() core.GameState

	// Size returns the drawing surface size in world units.
	Size() (width, height float64)

	// SetViewport sets how pointer coordinates in input frames map to the surface.
	SetViewport(v core.Viewport)
}

// SurfaceAttacher is implemented by games that redraw a host surface
// themselves when a click restarts a paused game, without waiting for the
// next frame.
type SurfaceAttacher interface {
	Attach(dst core.Surface)
}

// ScoreReporter is implemented by games that push every score change to
// the host. The host never feeds scores back.
type ScoreReporter interface {
	SetScoreSink(sink func(score int))
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
