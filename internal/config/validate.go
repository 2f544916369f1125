package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// ErrInvalidConfig is returned for configurations a game cannot start with.
var ErrInvalidConfig = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
}

// Validate checks the sections the configured layout uses.
// Out-of-range values are rejected, never clamped.
func (c GameConfig) Validate() error {
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return invalid("viewport must be positive, got %vx%v", c.Viewport.Width, c.Viewport.Height)
	}
	if c.Reward < 0 {
		return invalid("reward must not be negative, got %d", c.Reward)
	}
	if c.Background != "" {
		if _, ok := core.ColorByName(c.Background); !ok {
			return invalid("unknown background color %q", c.Background)
		}
	}
	for _, name := range c.Palette {
		if _, ok := core.ColorByName(name); !ok {
			return invalid("unknown palette color %q", name)
		}
	}

	switch c.Rules.Collision {
	case CollisionDistance, CollisionRect, CollisionCircle:
	default:
		return invalid("unknown collision rule %q", c.Rules.Collision)
	}

	switch c.Rules.Layout {
	case LayoutBubbles:
		return c.validateBubbles()
	case LayoutGrid:
		return c.validateGrid()
	case LayoutCourt:
		return c.validateCourt()
	case LayoutScatter:
		return c.validateScatter()
	default:
		return invalid("unknown layout %q", c.Rules.Layout)
	}
}

func (c GameConfig) validateBubbles() error {
	b := c.Bubbles
	if b.Rows < 0 || b.Cols < 0 {
		return invalid("bubble lattice must not be negative, got %dx%d", b.Rows, b.Cols)
	}
	if b.Radius <= 0 {
		return invalid("bubble radius must be positive, got %v", b.Radius)
	}
	if len(c.Palette) == 0 {
		return invalid("bubbles layout needs a palette")
	}
	if c.Projectile.Speed <= 0 || c.Projectile.Radius <= 0 {
		return invalid("projectile speed and radius must be positive")
	}
	if c.Projectile.Tolerance < 0 {
		return invalid("projectile tolerance must not be negative, got %v", c.Projectile.Tolerance)
	}
	if c.Shooter.Bottom < 0 || c.Shooter.Bottom > c.Viewport.Height {
		return invalid("shooter must sit inside the viewport")
	}
	if b.Rows > 0 && b.Cols > 0 {
		left, top := b.OffsetX-b.Radius, b.OffsetY-b.Radius
		right := float64(b.Cols-1)*b.SpacingX + b.OffsetX + b.Radius
		bottom := float64(b.Rows-1)*b.SpacingY + b.OffsetY + b.Radius
		if left < 0 || top < 0 || right > c.Viewport.Width || bottom > c.Viewport.Height {
			return invalid("bubble lattice %v,%v..%v,%v leaves the %vx%v viewport",
				left, top, right, bottom, c.Viewport.Width, c.Viewport.Height)
		}
	}
	return nil
}

func (c GameConfig) validateGrid() error {
	g := c.Grid
	if g.Rows <= 0 || g.Cols <= 0 {
		return invalid("grid must be positive, got %dx%d", g.Rows, g.Cols)
	}
	if g.CellSize <= 0 {
		return invalid("cell size must be positive, got %v", g.CellSize)
	}
	if g.Inset < 0 || 2*g.Inset >= g.CellSize {
		return invalid("cell inset %v does not fit cell size %v", g.Inset, g.CellSize)
	}
	if g.TerminalProbability < 0 || g.TerminalProbability > 1 {
		return invalid("terminal probability must be in [0, 1], got %v", g.TerminalProbability)
	}
	// Cells past the viewport could never be clicked.
	if w, h := float64(g.Cols)*g.CellSize, float64(g.Rows)*g.CellSize; w > c.Viewport.Width || h > c.Viewport.Height {
		return invalid("%dx%d grid of %v cells does not fit the %vx%v viewport",
			g.Rows, g.Cols, g.CellSize, c.Viewport.Width, c.Viewport.Height)
	}
	return nil
}

func (c GameConfig) validateCourt() error {
	p := c.Physics
	if p.Gravity < 0 {
		return invalid("gravity must not be negative, got %v", p.Gravity)
	}
	if p.Damping <= 0 || p.Damping > 1 {
		return invalid("damping must be in (0, 1], got %v", p.Damping)
	}
	if p.MaxPower <= 0 || p.PowerDivisor <= 0 {
		return invalid("max power and power divisor must be positive")
	}
	if p.FallMargin < 0 {
		return invalid("fall margin must not be negative, got %v", p.FallMargin)
	}
	if c.Ball.Radius <= 0 || 2*c.Ball.Radius > c.Viewport.Width {
		return invalid("ball radius %v does not fit the viewport", c.Ball.Radius)
	}
	h := c.Hoop
	if h.Width <= 0 || h.Height <= 0 {
		return invalid("hoop must be positive, got %vx%v", h.Width, h.Height)
	}
	if h.X < 0 || h.Y < 0 || h.X+h.Width > c.Viewport.Width || h.Y+h.Height > c.Viewport.Height {
		return invalid("hoop %vx%v at %v,%v leaves the %vx%v viewport",
			h.Width, h.Height, h.X, h.Y, c.Viewport.Width, c.Viewport.Height)
	}
	return nil
}

func (c GameConfig) validateScatter() error {
	t := c.Targets
	if t.Count < 0 {
		return invalid("target count must not be negative, got %d", t.Count)
	}
	if t.Width <= 0 || t.Height <= 0 {
		return invalid("target size must be positive, got %vx%v", t.Width, t.Height)
	}
	if t.Width > c.Viewport.Width || t.Height > c.Viewport.Height {
		return invalid("targets larger than the viewport")
	}
	if t.Speed < 0 || t.SpeedMax < 0 {
		return invalid("target speed must not be negative")
	}
	switch t.Shape {
	case ShapeRect:
	case ShapeCircle:
		// The disc is inscribed in the box; only a square box contains it.
		if t.Width != t.Height {
			return invalid("circle targets must be square, got %vx%v", t.Width, t.Height)
		}
	default:
		return invalid("unknown target shape %q", t.Shape)
	}
	if len(c.Palette) == 0 {
		return invalid("scatter layout needs a palette")
	}
	return nil
}
