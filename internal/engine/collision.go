package engine

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// pointHit returns the index of the first live target containing p, or -1.
// The rect rule tests the bounding box with inclusive edges; the circle
// and distance rules test the inscribed circle.
func (e *Engine) pointHit(p mgl64.Vec2) int {
	for i, t := range e.world.Targets {
		if !t.Active {
			continue
		}
		var hit bool
		switch e.cfg.Rules.Collision {
		case config.CollisionRect:
			hit = t.Box.Contains(p)
		default:
			hit = t.Circle().Contains(p)
		}
		if hit {
			return i
		}
	}
	return -1
}

// touches reports whether a projectile overlaps a target under the
// configured rule. Distance equal to the sum of radii is a miss.
func (e *Engine) touches(pr Projectile, t Entity) bool {
	tol := e.cfg.Projectile.Tolerance
	switch e.cfg.Rules.Collision {
	case config.CollisionRect:
		grow := pr.Radius + tol
		box := core.NewRect(t.Box.X-grow, t.Box.Y-grow, t.Box.W+2*grow, t.Box.H+2*grow)
		return box.Contains(pr.Pos)
	default:
		return core.CirclesTouch(t.Circle(), pr.Circle(), tol)
	}
}

// projectileHit returns the index of the first live target the projectile
// scores against, or -1. With tag matching on, an overlapping target of a
// different tag is passed through: neither side changes.
func (e *Engine) projectileHit(pr Projectile) int {
	for i, t := range e.world.Targets {
		if !t.Active || !e.touches(pr, t) {
			continue
		}
		if e.cfg.Rules.TagMatch && pr.Tag != t.Tag {
			continue
		}
		return i
	}
	return -1
}

// inBasket reports whether the ball is strictly inside the hoop
// rectangle while falling.
func inBasket(b Ball, hoop core.Rect) bool {
	x, y := b.Pos.X(), b.Pos.Y()
	return y > hoop.Y && y < hoop.Bottom() &&
		x > hoop.X && x < hoop.Right() &&
		b.Vel.Y() > 0
}
