package engine

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// populate builds the layout's static parts: lattice, grid, shooter, court.
// Scatter targets are spawned separately once the game is Playing.
func (e *Engine) populate() {
	w := &e.world
	switch e.cfg.Rules.Layout {
	case config.LayoutBubbles:
		e.spawnLattice()
		w.Shooter = Shooter{
			Pos:   mgl64.Vec2{w.Width / 2, w.Height - e.cfg.Shooter.Bottom},
			Angle: e.cfg.Shooter.Angle,
		}
	case config.LayoutGrid:
		g := e.cfg.Grid
		w.Grid = NewGrid(g.Rows, g.Cols)
		w.Grid.Seed(e.rng, g.TerminalProbability)
	case config.LayoutCourt:
		h := e.cfg.Hoop
		w.Hoop = core.NewRect(h.X, h.Y, h.Width, h.Height)
		w.Ball.Radius = e.cfg.Ball.Radius
		e.resetBall()
	}
}

func (e *Engine) spawnLattice() {
	b := e.cfg.Bubbles
	e.world.Targets = make([]Entity, 0, b.Rows*b.Cols)
	for i := range b.Rows {
		for j := range b.Cols {
			x := float64(j)*b.SpacingX + b.OffsetX
			y := float64(i)*b.SpacingY + b.OffsetY
			e.world.Targets = append(e.world.Targets, Entity{
				Box:    core.NewRect(x-b.Radius, y-b.Radius, 2*b.Radius, 2*b.Radius),
				Shape:  ShapeCircle,
				Tag:    e.randomColor(),
				Active: true,
			})
		}
	}
}

// spawnTargets fills the scatter layout with its configured count.
func (e *Engine) spawnTargets() {
	if e.cfg.Rules.Layout != config.LayoutScatter {
		return
	}
	e.world.Targets = make([]Entity, 0, e.cfg.Targets.Count)
	for range e.cfg.Targets.Count {
		e.spawnTarget()
	}
}

// spawnTarget places one target uniformly at random, fully inside the viewport.
// Overlap with other targets is allowed.
func (e *Engine) spawnTarget() Entity {
	t := e.cfg.Targets
	shape := ShapeRect
	if t.Shape == config.ShapeCircle {
		shape = ShapeCircle
	}
	speed := t.Speed
	if t.SpeedMax > t.Speed {
		speed = t.Speed + e.rng.Float64()*(t.SpeedMax-t.Speed)
	}
	ent := Entity{
		Box: core.NewRect(
			e.rng.Float64()*(e.world.Width-t.Width),
			e.rng.Float64()*(e.world.Height-t.Height),
			t.Width, t.Height,
		),
		Shape:  shape,
		Tag:    e.randomColor(),
		Speed:  speed,
		Active: true,
	}
	e.world.Targets = append(e.world.Targets, ent)
	return ent
}

// ballOrigin is where the ball rests between throws.
func (e *Engine) ballOrigin() mgl64.Vec2 {
	return mgl64.Vec2{e.world.Width / 2, e.world.Height - e.cfg.Ball.Bottom}
}

func (e *Engine) resetBall() {
	b := &e.world.Ball
	b.Pos = e.ballOrigin()
	b.Vel = mgl64.Vec2{}
	b.Resting = true
	b.Aiming = false
	b.Power = 0
}
