package core

import "github.com/go-gl/mathgl/mgl64"

// OpKind identifies a recorded drawing primitive.
type OpKind string

const (
	OpClear        OpKind = "clear"
	OpFillRect     OpKind = "fillRect"
	OpFillCircle   OpKind = "fillCircle"
	OpStrokeCircle OpKind = "strokeCircle"
	OpStrokeLine   OpKind = "strokeLine"
	OpFillPath     OpKind = "fillPath"
	OpText         OpKind = "text"
)

// Op is one recorded drawing call. Fields not used by a kind are omitted
// from the JSON form so the browser host receives compact frames.
type Op struct {
	Kind   OpKind       `json:"op"`
	Color  string       `json:"color"`
	X      float64      `json:"x,omitempty"`
	Y      float64      `json:"y,omitempty"`
	W      float64      `json:"w,omitempty"`
	H      float64      `json:"h,omitempty"`
	R      float64      `json:"r,omitempty"`
	X2     float64      `json:"x2,omitempty"`
	Y2     float64      `json:"y2,omitempty"`
	Width  float64      `json:"lineWidth,omitempty"`
	Points [][2]float64 `json:"points,omitempty"`
	Text   string       `json:"text,omitempty"`
	Size   float64      `json:"size,omitempty"`
	Align  string       `json:"align,omitempty"`

	// Palette entry the op was drawn with; not serialized.
	Paint Color `json:"-"`
}

// DrawList is a Surface that records every call in order.
// The web host ships it to the browser; tests inspect it.
type DrawList struct {
	Ops []Op
}

// NewDrawList creates an empty draw list.
func NewDrawList() *DrawList {
	return &DrawList{Ops: make([]Op, 0, 64)}
}

// Reset drops all recorded ops, keeping capacity.
func (d *DrawList) Reset() {
	d.Ops = d.Ops[:0]
}

// Len returns the number of recorded ops.
func (d *DrawList) Len() int {
	return len(d.Ops)
}

// Count returns how many ops of the given kind were recorded.
func (d *DrawList) Count(kind OpKind) int {
	n := 0
	for _, op := range d.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Texts returns the strings of all text ops in draw order.
func (d *DrawList) Texts() []string {
	var out []string
	for _, op := range d.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

func (d *DrawList) add(op Op, c Color) {
	op.Color = c.Hex()
	op.Paint = c
	d.Ops = append(d.Ops, op)
}

// Clear starts a new frame: earlier ops are dropped and a full-surface
// fill is recorded.
func (d *DrawList) Clear(c Color) {
	d.Reset()
	d.add(Op{Kind: OpClear}, c)
}

// FillRect records a filled rectangle.
func (d *DrawList) FillRect(r Rect, c Color) {
	d.add(Op{Kind: OpFillRect, X: r.X, Y: r.Y, W: r.W, H: r.H}, c)
}

// FillCircle records a filled circle.
func (d *DrawList) FillCircle(circle Circle, c Color) {
	d.add(Op{Kind: OpFillCircle, X: circle.C.X(), Y: circle.C.Y(), R: circle.R}, c)
}

// StrokeCircle records a circle outline.
func (d *DrawList) StrokeCircle(circle Circle, c Color, width float64) {
	d.add(Op{Kind: OpStrokeCircle, X: circle.C.X(), Y: circle.C.Y(), R: circle.R, Width: width}, c)
}

// StrokeLine records a line segment.
func (d *DrawList) StrokeLine(from, to mgl64.Vec2, c Color, width float64) {
	d.add(Op{Kind: OpStrokeLine, X: from.X(), Y: from.Y(), X2: to.X(), Y2: to.Y(), Width: width}, c)
}

// FillPath records a filled polygon.
func (d *DrawList) FillPath(points []mgl64.Vec2, c Color) {
	pts := make([][2]float64, len(points))
	for i, p := range points {
		pts[i] = [2]float64{p.X(), p.Y()}
	}
	d.add(Op{Kind: OpFillPath, Points: pts}, c)
}

// Text records a text draw.
func (d *DrawList) Text(at mgl64.Vec2, text string, style TextStyle) {
	d.add(Op{
		Kind:  OpText,
		X:     at.X(),
		Y:     at.Y(),
		Text:  text,
		Size:  style.Size,
		Align: style.Align.String(),
	}, style.Color)
}
