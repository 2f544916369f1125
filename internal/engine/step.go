package engine

import (
	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// Step advances the simulation by one frame. It is a no-op unless Playing.
func (e *Engine) Step() {
	if e.world.Phase != core.PhasePlaying {
		return
	}
	e.tick++

	switch e.cfg.Rules.Layout {
	case config.LayoutBubbles:
		e.stepProjectiles()
	case config.LayoutCourt:
		e.stepBall()
	case config.LayoutScatter:
		e.wander()
	}
}

// stepProjectiles moves every projectile, credits at most one target per
// projectile, and drops projectiles that scored or left the viewport.
func (e *Engine) stepProjectiles() {
	w := &e.world
	kept := w.Projectiles[:0]
	for _, pr := range w.Projectiles {
		pr.Pos = pr.Pos.Add(pr.Vel)

		if i := e.projectileHit(pr); i >= 0 {
			w.Targets[i].Active = false
			e.addScore(e.cfg.Reward)
			e.emit(EventHit, w.Targets[i].Center())
			continue
		}
		if pr.Pos.X() < 0 || pr.Pos.X() > w.Width || pr.Pos.Y() < 0 || pr.Pos.Y() > w.Height {
			continue
		}
		kept = append(kept, pr)
	}
	w.Projectiles = kept
}

// stepBall integrates a thrown ball: gravity, position, damping, then
// wall bounce, basket and fall-out checks.
func (e *Engine) stepBall() {
	b := &e.world.Ball
	if b.Resting {
		return
	}
	ph := e.cfg.Physics
	w := e.world.Width

	b.Vel[1] += ph.Gravity
	b.Pos = b.Pos.Add(b.Vel)
	b.Vel = b.Vel.Mul(ph.Damping)

	if b.Pos.X()-b.Radius < 0 || b.Pos.X()+b.Radius > w {
		b.Vel[0] = -b.Vel[0]
		b.Pos[0] = core.ClampF(b.Pos.X(), b.Radius, w-b.Radius)
	}

	if inBasket(*b, e.world.Hoop) {
		at := b.Pos
		e.addScore(e.cfg.Reward)
		e.emit(EventBasket, at)
		e.resetBall()
		return
	}

	if b.Pos.Y() > e.world.Height+ph.FallMargin {
		at := b.Pos
		e.resetBall()
		e.emit(EventRespawn, at)
	}
}

// wander applies a random walk to each live target, clamped so the
// target stays fully inside the viewport.
func (e *Engine) wander() {
	w := &e.world
	for i := range w.Targets {
		t := &w.Targets[i]
		if !t.Active || t.Speed == 0 {
			continue
		}
		t.Box.X += (e.rng.Float64() - 0.5) * t.Speed
		t.Box.Y += (e.rng.Float64() - 0.5) * t.Speed
		t.Box.X = core.ClampF(t.Box.X, 0, w.Width-t.Box.W)
		t.Box.Y = core.ClampF(t.Box.Y, 0, w.Height-t.Box.H)
	}
}
