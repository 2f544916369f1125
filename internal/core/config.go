package core

// RuntimeConfig contains configuration passed to games at initialization.
// Hosts fill it from CLI flags; Seed 0 means the host picks one.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the lifecycle position of a game.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhasePlaying
	PhaseOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhasePlaying:
		return "Playing"
	case PhaseOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int   // Current score
	Phase    Phase // Lifecycle phase
	GameOver bool  // Phase == PhaseOver
	Paused   bool  // Host-side pause
}

// StepResult is returned by Game.Step() after each simulation tick.
// Events names what happened during the tick, in order.
type StepResult struct {
	State  GameState
	Events []string
}
