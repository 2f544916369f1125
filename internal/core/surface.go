package core

import "github.com/go-gl/mathgl/mgl64"

// Align controls horizontal text placement relative to the anchor point.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// String returns the CSS textAlign name.
func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// TextStyle describes how a string is drawn.
type TextStyle struct {
	Color Color
	Size  float64 // Font size in surface units
	Align Align
}

// Surface is an immediate-mode 2D drawing target.
// Games redraw the whole surface every frame; there is no partial invalidation.
type Surface interface {
	// Clear fills the entire surface with the given color.
	Clear(c Color)
	FillRect(r Rect, c Color)
	FillCircle(circle Circle, c Color)
	StrokeCircle(circle Circle, c Color, width float64)
	StrokeLine(from, to mgl64.Vec2, c Color, width float64)
	// FillPath fills the closed polygon through the given points.
	FillPath(points []mgl64.Vec2, c Color)
	Text(at mgl64.Vec2, text string, style TextStyle)
}

// Ticker is the single operation a host drives once per display frame:
// advance the simulation, then redraw dst.
type Ticker interface {
	Tick(dst Surface)
}
