// Package core provides fundamental types and utilities for the arcade platform.
// It contains no host dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "github.com/go-gl/mathgl/mgl64"

// Rect is an axis-aligned box in surface coordinates.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point lies inside the rectangle.
// Both edges are inclusive, so a click on the border is a hit.
func (r Rect) Contains(p mgl64.Vec2) bool {
	return p.X() >= r.X && p.X() <= r.Right() && p.Y() >= r.Y && p.Y() <= r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() mgl64.Vec2 {
	return mgl64.Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Circle is a disc in surface coordinates.
type Circle struct {
	C mgl64.Vec2
	R float64
}

// NewCircle creates a circle centered at (x, y).
func NewCircle(x, y, r float64) Circle {
	return Circle{C: mgl64.Vec2{x, y}, R: r}
}

// Contains returns true if the point lies inside or on the circle.
func (c Circle) Contains(p mgl64.Vec2) bool {
	return p.Sub(c.C).Len() <= c.R
}

// Bounds returns the bounding box of the circle.
func (c Circle) Bounds() Rect {
	return Rect{X: c.C.X() - c.R, Y: c.C.Y() - c.R, W: 2 * c.R, H: 2 * c.R}
}

// CirclesTouch reports whether the center distance is strictly below
// a.R + b.R + tolerance. Exactly touching circles do not collide.
func CirclesTouch(a, b Circle, tolerance float64) bool {
	return a.C.Sub(b.C).Len() < a.R+b.R+tolerance
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
