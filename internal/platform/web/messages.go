package web

import "github.com/vovakirdan/canvas-arcade/internal/core"

// Message types on the socket.
const (
	MessageTypeHello   = "hello"   // server -> client, once after connect
	MessageTypeFrame   = "frame"   // server -> client, every tick
	MessageTypePointer = "pointer" // client -> server
	MessageTypeResize  = "resize"  // client -> server, displayed canvas size
)

// ClientMessage is anything the browser sends. Pointer coordinates are
// relative to the canvas element in CSS pixels.
type ClientMessage struct {
	Type   string  `json:"type"`
	Kind   string  `json:"kind,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// HelloMessage tells the client which game it is connected to and the
// surface size to allocate.
type HelloMessage struct {
	Type   string  `json:"type"`
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// FrameMessage carries one rendered frame as draw ops.
type FrameMessage struct {
	Type   string    `json:"type"`
	Ops    []core.Op `json:"ops"`
	Score  int       `json:"score"`
	Phase  string    `json:"phase"`
	Events []string  `json:"events,omitempty"`
}

// pointerEvent converts a pointer message; ok is false for anything else.
func (m ClientMessage) pointerEvent() (core.PointerEvent, bool) {
	if m.Type != MessageTypePointer {
		return core.PointerEvent{}, false
	}
	kind, ok := core.ParsePointerKind(m.Kind)
	if !ok {
		return core.PointerEvent{}, false
	}
	return core.PointerEvent{Kind: kind, X: m.X, Y: m.Y}, true
}
