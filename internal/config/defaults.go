package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/bubble.yaml
var defaultBubbleYAML []byte

//go:embed defaults/minesweeper.yaml
var defaultMinesweeperYAML []byte

//go:embed defaults/basketball.yaml
var defaultBasketballYAML []byte

//go:embed defaults/clicker.yaml
var defaultClickerYAML []byte

// Game identifiers with embedded defaults.
const (
	GameBubble      = "bubble"
	GameMinesweeper = "minesweeper"
	GameBasketball  = "basketball"
	GameClicker     = "clicker"
)

// GameIDs lists the games with embedded defaults, in menu order.
var GameIDs = []string{GameBubble, GameMinesweeper, GameBasketball, GameClicker}

func baseConfig() GameConfig {
	return GameConfig{
		Viewport:   ViewportConfig{Width: 800, Height: 600},
		Background: "black",
		Reward:     10,
		Rules: RulesConfig{
			Collision: CollisionDistance,
		},
	}
}

// DefaultBubbleConfig returns the default bubble shooter configuration.
func DefaultBubbleConfig() GameConfig {
	cfg := baseConfig()
	cfg.Title = "Bubble Shooter"
	cfg.Rules.Layout = LayoutBubbles
	cfg.Rules.TagMatch = true
	cfg.Palette = []string{"red", "green", "blue", "yellow"}
	cfg.Bubbles = BubblesConfig{
		Rows:     8,
		Cols:     10,
		Radius:   25,
		SpacingX: 70,
		SpacingY: 50,
		OffsetX:  50,
		OffsetY:  50,
	}
	cfg.Shooter = ShooterConfig{
		Bottom: 50,
		Radius: 20,
		Barrel: 30,
		Angle:  -math.Pi / 2,
	}
	cfg.Projectile = ProjectileConfig{
		Speed:  5,
		Radius: 10,
	}
	return cfg
}

// DefaultMinesweeperConfig returns the default minesweeper configuration.
func DefaultMinesweeperConfig() GameConfig {
	cfg := baseConfig()
	cfg.Title = "Minesweeper"
	cfg.Background = "dark_gray"
	cfg.Rules.Layout = LayoutGrid
	cfg.Rules.Collision = CollisionRect
	cfg.Rules.GameOverText = "Game Over! Click to restart"
	cfg.Grid = GridConfig{
		Rows:                10,
		Cols:                10,
		CellSize:            60,
		Inset:               2,
		TerminalProbability: 0.15,
	}
	return cfg
}

// DefaultBasketballConfig returns the default basketball configuration.
func DefaultBasketballConfig() GameConfig {
	cfg := baseConfig()
	cfg.Title = "Basketball"
	cfg.Background = "sky"
	cfg.Reward = 2
	cfg.Rules.Layout = LayoutCourt
	cfg.Rules.Collision = CollisionRect
	cfg.Physics = PhysicsConfig{
		Gravity:      0.3,
		Damping:      0.98,
		MaxPower:     15,
		PowerDivisor: 10,
		FallMargin:   100,
	}
	cfg.Ball = BallConfig{Radius: 20, Bottom: 100}
	cfg.Hoop = HoopConfig{X: 400, Y: 300, Width: 100, Height: 10, Rim: 30}
	return cfg
}

// DefaultClickerConfig returns the default click-the-targets configuration.
func DefaultClickerConfig() GameConfig {
	cfg := baseConfig()
	cfg.Title = "Click Targets"
	cfg.Rules.Layout = LayoutScatter
	cfg.Rules.Collision = CollisionRect
	cfg.Rules.StartPrompt = "Click to Start!"
	cfg.Palette = []string{"bright_red", "bright_green", "bright_yellow", "bright_blue", "bright_magenta", "bright_cyan", "orange"}
	cfg.Targets = TargetsConfig{
		Count:  5,
		Width:  40,
		Height: 40,
		Speed:  2,
		Shape:  ShapeRect,
	}
	return cfg
}

// DefaultConfig returns the hard-coded configuration for a game id.
func DefaultConfig(gameID string) (GameConfig, bool) {
	switch gameID {
	case GameBubble:
		return DefaultBubbleConfig(), true
	case GameMinesweeper:
		return DefaultMinesweeperConfig(), true
	case GameBasketball:
		return DefaultBasketballConfig(), true
	case GameClicker:
		return DefaultClickerConfig(), true
	default:
		return GameConfig{}, false
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case GameBubble:
		return defaultBubbleYAML
	case GameMinesweeper:
		return defaultMinesweeperYAML
	case GameBasketball:
		return defaultBasketballYAML
	case GameClicker:
		return defaultClickerYAML
	default:
		return nil
	}
}
