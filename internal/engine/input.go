package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// HandlePointer dispatches a queued pointer event.
func (e *Engine) HandlePointer(ev core.PointerEvent) {
	switch ev.Kind {
	case core.PointerMove:
		e.OnPointerMove(ev.X, ev.Y)
	case core.PointerDown:
		e.OnPointerDown(ev.X, ev.Y)
	case core.PointerUp:
		e.OnPointerUp(ev.X, ev.Y)
	case core.PointerClick:
		e.OnClick(ev.X, ev.Y)
	}
}

// toSurface converts client coordinates and reports whether the point
// lies on the surface. Off-surface input is ignored by every handler.
func (e *Engine) toSurface(x, y float64) (mgl64.Vec2, bool) {
	p := e.viewport.ToSurface(x, y)
	return p, e.world.Contains(p)
}

// OnPointerMove updates the aim: the shooter angle follows the pointer,
// a ball being aimed gains power with drag distance.
func (e *Engine) OnPointerMove(x, y float64) {
	p, ok := e.toSurface(x, y)
	if !ok || e.world.Phase != core.PhasePlaying {
		return
	}

	switch e.cfg.Rules.Layout {
	case config.LayoutBubbles:
		s := &e.world.Shooter
		d := p.Sub(s.Pos)
		s.Angle = math.Atan2(d.Y(), d.X())
	case config.LayoutCourt:
		b := &e.world.Ball
		if b.Aiming {
			b.Aim = p
			b.Power = e.power(p)
		}
	}
}

// OnPointerDown starts aiming a resting ball.
func (e *Engine) OnPointerDown(x, y float64) {
	p, ok := e.toSurface(x, y)
	if !ok || e.world.Phase != core.PhasePlaying || e.cfg.Rules.Layout != config.LayoutCourt {
		return
	}
	b := &e.world.Ball
	if !b.Resting {
		return
	}
	b.Aiming = true
	b.Power = 0
	b.Aim = p
}

// OnPointerUp throws the ball toward the release point.
func (e *Engine) OnPointerUp(x, y float64) {
	p, ok := e.toSurface(x, y)
	if !ok || e.world.Phase != core.PhasePlaying || e.cfg.Rules.Layout != config.LayoutCourt {
		return
	}
	b := &e.world.Ball
	if !b.Aiming {
		return
	}
	b.Aiming = false

	d := p.Sub(b.Pos)
	dist := d.Len()
	power := e.power(p)
	if dist == 0 || power == 0 {
		b.Power = 0
		return
	}
	b.Power = power
	b.Vel = d.Mul(power / dist)
	b.Resting = false
	e.emit(EventFire, b.Pos)
}

// power is the drag distance from the ball scaled and capped.
func (e *Engine) power(p mgl64.Vec2) float64 {
	ph := e.cfg.Physics
	return math.Min(ph.MaxPower, p.Sub(e.world.Ball.Pos).Len()/ph.PowerDivisor)
}

// OnClick handles a discrete click. While the game is paused in
// NotStarted or Over the click is consumed by the transition and the
// attached surface is redrawn at once.
func (e *Engine) OnClick(x, y float64) {
	p, ok := e.toSurface(x, y)
	if !ok {
		return
	}

	switch e.world.Phase {
	case core.PhaseNotStarted:
		e.start()
		e.redraw()
		return
	case core.PhaseOver:
		e.restart()
		e.redraw()
		return
	}

	switch e.cfg.Rules.Layout {
	case config.LayoutBubbles:
		e.fire()
	case config.LayoutGrid:
		e.reveal(p)
	case config.LayoutScatter:
		e.clickTarget(p)
	}
}

// fire launches a projectile from the shooter along its angle.
func (e *Engine) fire() {
	s := e.world.Shooter
	pr := e.cfg.Projectile
	dir := mgl64.Vec2{math.Cos(s.Angle), math.Sin(s.Angle)}
	e.world.Projectiles = append(e.world.Projectiles, Projectile{
		Pos:    s.Pos,
		Vel:    dir.Mul(pr.Speed),
		Radius: pr.Radius,
		Tag:    e.randomColor(),
	})
	e.emit(EventFire, s.Pos)
}

// reveal uncovers the grid cell under p. Revealed cells and clicks
// beside the grid are ignored.
func (e *Engine) reveal(p mgl64.Vec2) {
	if e.world.Phase != core.PhasePlaying {
		return
	}
	g := e.world.Grid
	cell := e.cfg.Grid.CellSize
	col := int(math.Floor(p.X() / cell))
	row := int(math.Floor(p.Y() / cell))

	value, ok := g.Reveal(row, col)
	if !ok {
		return
	}
	at := mgl64.Vec2{(float64(col) + 0.5) * cell, (float64(row) + 0.5) * cell}
	if value == Mine {
		e.over(at)
		return
	}
	e.addScore(e.cfg.Reward)
	e.emit(EventReveal, at)
}

// clickTarget consumes the first live target under p and spawns a replacement.
func (e *Engine) clickTarget(p mgl64.Vec2) {
	i := e.pointHit(p)
	if i < 0 {
		return
	}
	hit := e.world.Targets[i]
	e.world.Targets = append(e.world.Targets[:i], e.world.Targets[i+1:]...)
	e.addScore(e.cfg.Reward)
	e.emit(EventHit, hit.Center())

	spawned := e.spawnTarget()
	e.emit(EventSpawn, spawned.Center())
}
