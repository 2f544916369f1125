package core

import "github.com/go-gl/mathgl/mgl64"

// Action represents a semantic host action, abstracted from physical key presses.
// Gameplay itself is pointer driven; actions steer the session around it.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // K, Up arrow - move menu cursor
	ActionDown           // J, Down arrow - move menu cursor
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// PointerKind distinguishes the pointer events a host delivers.
type PointerKind int

const (
	PointerMove PointerKind = iota
	PointerDown
	PointerUp
	PointerClick
)

var pointerNames = [...]string{"move", "down", "up", "click"}

// String returns the wire name of the pointer kind.
func (k PointerKind) String() string {
	if int(k) < len(pointerNames) {
		return pointerNames[k]
	}
	return "unknown"
}

// ParsePointerKind maps a wire name back to a PointerKind.
func ParsePointerKind(s string) (PointerKind, bool) {
	for i, name := range pointerNames {
		if name == s {
			return PointerKind(i), true
		}
	}
	return PointerMove, false
}

// PointerEvent is a pointer event in client coordinates.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// Viewport converts client coordinates into surface coordinates.
// A zero Viewport is treated as the identity.
type Viewport struct {
	OriginX, OriginY float64 // Client position of the surface origin
	ScaleX, ScaleY   float64 // Surface units per client unit
}

// IdentityViewport maps client coordinates one to one.
func IdentityViewport() Viewport {
	return Viewport{ScaleX: 1, ScaleY: 1}
}

// ToSurface converts a client point into surface coordinates.
func (v Viewport) ToSurface(x, y float64) mgl64.Vec2 {
	sx, sy := v.ScaleX, v.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return mgl64.Vec2{(x - v.OriginX) * sx, (y - v.OriginY) * sy}
}

// InputFrame collects the input of one simulation tick.
// Pointer events keep their arrival order; actions are a set.
type InputFrame struct {
	Actions  map[Action]bool
	Pointers []PointerEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Push appends a pointer event to the frame queue.
func (f *InputFrame) Push(ev PointerEvent) {
	f.Pointers = append(f.Pointers, ev)
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointers = f.Pointers[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if len(f.Pointers) > 0 {
		clone.Pointers = append([]PointerEvent(nil), f.Pointers...)
	}
	return clone
}
