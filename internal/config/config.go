// Package config provides YAML-based game configuration loading and
// start-time difficulty presets for the arcade platform.
package config

// Layouts select how a world is populated and which input drives play.
const (
	LayoutBubbles = "bubbles" // aimed shooter firing tagged projectiles at a bubble lattice
	LayoutGrid    = "grid"    // reveal cells, terminal cells end the game
	LayoutCourt   = "court"   // drag to throw a gravity ball through a hoop
	LayoutScatter = "scatter" // click wandering targets
)

// Collision rules for matching a point or projectile against targets.
const (
	CollisionDistance = "distance" // center distance below sum of radii
	CollisionRect     = "rect"     // point in bounding box, edges inclusive
	CollisionCircle   = "circle"   // point in inscribed circle
)

// GameConfig contains all configuration for one game instance.
// Sections a layout does not use are ignored.
type GameConfig struct {
	Title      string           `yaml:"title"`
	Viewport   ViewportConfig   `yaml:"viewport"`
	Rules      RulesConfig      `yaml:"rules"`
	Background string           `yaml:"background"`
	Palette    []string         `yaml:"palette"`
	Reward     int              `yaml:"reward"`
	Grid       GridConfig       `yaml:"grid"`
	Bubbles    BubblesConfig    `yaml:"bubbles"`
	Shooter    ShooterConfig    `yaml:"shooter"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Ball       BallConfig       `yaml:"ball"`
	Hoop       HoopConfig       `yaml:"hoop"`
	Targets    TargetsConfig    `yaml:"targets"`
}

// ViewportConfig is the drawing surface size in surface units.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RulesConfig selects the engine behavior.
type RulesConfig struct {
	Layout    string `yaml:"layout"`
	Collision string `yaml:"collision"`
	TagMatch  bool   `yaml:"tag_match"` // projectile color must equal target color
	// StartPrompt, when set, keeps the game in NotStarted until the first click.
	StartPrompt  string `yaml:"start_prompt"`
	GameOverText string `yaml:"game_over_text"`
}

// GridConfig defines the reveal grid.
type GridConfig struct {
	Rows                int     `yaml:"rows"`
	Cols                int     `yaml:"cols"`
	CellSize            float64 `yaml:"cell_size"`
	Inset               float64 `yaml:"inset"` // gap between cell and its drawn box
	TerminalProbability float64 `yaml:"terminal_probability"`
}

// BubblesConfig defines the bubble lattice.
type BubblesConfig struct {
	Rows     int     `yaml:"rows"`
	Cols     int     `yaml:"cols"`
	Radius   float64 `yaml:"radius"`
	SpacingX float64 `yaml:"spacing_x"`
	SpacingY float64 `yaml:"spacing_y"`
	OffsetX  float64 `yaml:"offset_x"`
	OffsetY  float64 `yaml:"offset_y"`
}

// ShooterConfig defines the aimed actor of the bubbles layout.
type ShooterConfig struct {
	Bottom float64 `yaml:"bottom"` // distance from the bottom edge
	Radius float64 `yaml:"radius"`
	Barrel float64 `yaml:"barrel"` // aim indicator length
	Angle  float64 `yaml:"angle"`  // initial angle in radians
}

// ProjectileConfig defines fired projectiles.
type ProjectileConfig struct {
	Speed     float64 `yaml:"speed"`
	Radius    float64 `yaml:"radius"`
	Tolerance float64 `yaml:"tolerance"` // added to the sum of radii
}

// PhysicsConfig defines the per-frame integration of the court ball.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	Damping      float64 `yaml:"damping"`
	MaxPower     float64 `yaml:"max_power"`
	PowerDivisor float64 `yaml:"power_divisor"`
	FallMargin   float64 `yaml:"fall_margin"` // respawn once below height + margin
}

// BallConfig defines the thrown ball.
type BallConfig struct {
	Radius float64 `yaml:"radius"`
	Bottom float64 `yaml:"bottom"` // origin distance from the bottom edge
}

// HoopConfig defines the scoring rectangle.
type HoopConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Rim    float64 `yaml:"rim"` // net arc radius
}

// TargetsConfig defines wandering click targets.
type TargetsConfig struct {
	Count    int     `yaml:"count"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Speed    float64 `yaml:"speed"`     // random walk amplitude
	SpeedMax float64 `yaml:"speed_max"` // when above Speed, each target draws from [Speed, SpeedMax)
	Shape    string  `yaml:"shape"`     // "rect" or "circle"
}

// Target shapes.
const (
	ShapeRect   = "rect"
	ShapeCircle = "circle"
)
