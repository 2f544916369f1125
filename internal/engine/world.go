package engine

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// Shape selects how a target is drawn and hit-tested.
type Shape int

const (
	ShapeRect Shape = iota
	ShapeCircle
)

// Entity is a bubble or click target. Circles are inscribed in Box.
type Entity struct {
	Box    core.Rect
	Shape  Shape
	Tag    core.Color
	Speed  float64 // random walk amplitude, 0 for static targets
	Active bool
}

// Center returns the center of the entity box.
func (e Entity) Center() mgl64.Vec2 {
	return e.Box.Center()
}

// Circle returns the circle inscribed in the entity box. A non-square box
// gets the disc of its shorter side so the disc never leaves the box.
func (e Entity) Circle() core.Circle {
	return core.Circle{C: e.Box.Center(), R: min(e.Box.W, e.Box.H) / 2}
}

// Projectile is a fired bullet.
type Projectile struct {
	Pos    mgl64.Vec2
	Vel    mgl64.Vec2
	Radius float64
	Tag    core.Color
}

// Circle returns the projectile disc.
func (p Projectile) Circle() core.Circle {
	return core.Circle{C: p.Pos, R: p.Radius}
}

// Shooter is the fixed aimed actor of the bubbles layout.
type Shooter struct {
	Pos   mgl64.Vec2
	Angle float64
}

// Ball is the thrown ball of the court layout.
// A resting ball sits at its origin and is not integrated.
type Ball struct {
	Pos     mgl64.Vec2
	Vel     mgl64.Vec2
	Radius  float64
	Resting bool
	Aiming  bool
	Power   float64
	Aim     mgl64.Vec2 // last pointer position while aiming
}

// World is the mutable state of one game instance.
type World struct {
	Width, Height float64
	Score         int
	Phase         core.Phase

	Targets     []Entity
	Projectiles []Projectile
	Shooter     Shooter
	Ball        Ball
	Hoop        core.Rect
	Grid        *Grid
}

// ActiveTargets returns the number of live targets.
func (w *World) ActiveTargets() int {
	n := 0
	for _, t := range w.Targets {
		if t.Active {
			n++
		}
	}
	return n
}

// Contains reports whether a surface point lies inside the viewport.
func (w *World) Contains(p mgl64.Vec2) bool {
	return p.X() >= 0 && p.X() <= w.Width && p.Y() >= 0 && p.Y() <= w.Height
}
