package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Glyphs used when a shape is too small to cover a whole cell.
const (
	glyphDot    = '●'
	glyphRing   = 'o'
	glyphStroke = '•'
)

// Raster is a Surface that draws world-unit shapes into a character Screen.
// A cell is covered by a filled shape when the cell center lies inside it.
type Raster struct {
	screen *Screen
	worldW float64
	worldH float64
	sx, sy float64 // cells per world unit
}

// NewRaster maps a worldW×worldH surface onto screen.
func NewRaster(screen *Screen, worldW, worldH float64) *Raster {
	r := &Raster{screen: screen, worldW: worldW, worldH: worldH}
	r.rescale()
	return r
}

func (r *Raster) rescale() {
	r.sx, r.sy = 0, 0
	if r.worldW > 0 {
		r.sx = float64(r.screen.Width()) / r.worldW
	}
	if r.worldH > 0 {
		r.sy = float64(r.screen.Height()) / r.worldH
	}
}

// Screen returns the underlying cell buffer.
func (r *Raster) Screen() *Screen {
	return r.screen
}

// Resize changes the cell grid; world dimensions are kept.
func (r *Raster) Resize(cols, rows int) {
	r.screen.Resize(cols, rows)
	r.rescale()
}

// Viewport returns the mapping from cell-center coordinates to world units.
// Hosts pass a mouse cell (col, row) as client point (col+0.5, row+0.5).
func (r *Raster) Viewport() Viewport {
	v := Viewport{ScaleX: 1, ScaleY: 1}
	if r.sx > 0 {
		v.ScaleX = 1 / r.sx
	}
	if r.sy > 0 {
		v.ScaleY = 1 / r.sy
	}
	return v
}

// cellOf returns the cell containing a world point.
func (r *Raster) cellOf(p mgl64.Vec2) (int, int) {
	return int(math.Floor(p.X() * r.sx)), int(math.Floor(p.Y() * r.sy))
}

// centerOf returns the world position of a cell center.
func (r *Raster) centerOf(col, row int) mgl64.Vec2 {
	return mgl64.Vec2{(float64(col) + 0.5) / r.sx, (float64(row) + 0.5) / r.sy}
}

// span returns the inclusive cell range touched by a world-unit box.
func (r *Raster) span(b Rect) (c0, r0, c1, r1 int) {
	c0, r0 = r.cellOf(mgl64.Vec2{b.X, b.Y})
	c1, r1 = r.cellOf(mgl64.Vec2{b.Right(), b.Bottom()})
	c0 = Clamp(c0, 0, r.screen.Width()-1)
	c1 = Clamp(c1, 0, r.screen.Width()-1)
	r0 = Clamp(r0, 0, r.screen.Height()-1)
	r1 = Clamp(r1, 0, r.screen.Height()-1)
	return
}

func (r *Raster) ready() bool {
	return r.sx > 0 && r.sy > 0 && r.screen.Width() > 0 && r.screen.Height() > 0
}

// Clear paints every cell with the background color.
func (r *Raster) Clear(c Color) {
	r.screen.Paint(c)
}

// FillRect paints the cells whose centers lie inside rect.
func (r *Raster) FillRect(rect Rect, c Color) {
	if !r.ready() {
		return
	}
	painted := false
	c0, r0, c1, r1 := r.span(rect)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if rect.Contains(r.centerOf(col, row)) {
				r.screen.SetBg(col, row, c)
				painted = true
			}
		}
	}
	if !painted {
		col, row := r.cellOf(rect.Center())
		r.screen.SetCell(col, row, glyphDot, c)
	}
}

// FillCircle paints the cells whose centers lie inside circle.
// A circle smaller than a cell becomes a dot glyph.
func (r *Raster) FillCircle(circle Circle, c Color) {
	if !r.ready() {
		return
	}
	painted := false
	c0, r0, c1, r1 := r.span(circle.Bounds())
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if circle.Contains(r.centerOf(col, row)) {
				r.screen.SetBg(col, row, c)
				painted = true
			}
		}
	}
	if !painted {
		col, row := r.cellOf(circle.C)
		r.screen.SetCell(col, row, glyphDot, c)
	}
}

// StrokeCircle marks the cells along the circumference.
func (r *Raster) StrokeCircle(circle Circle, c Color, _ float64) {
	if !r.ready() {
		return
	}
	steps := int(2*math.Pi*circle.R*math.Max(r.sx, r.sy)) * 2
	if steps < 16 {
		steps = 16
	}
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		p := circle.C.Add(mgl64.Vec2{math.Cos(a), math.Sin(a)}.Mul(circle.R))
		col, row := r.cellOf(p)
		r.screen.SetCell(col, row, glyphRing, c)
	}
}

// StrokeLine marks the cells crossed by the segment.
func (r *Raster) StrokeLine(from, to mgl64.Vec2, c Color, _ float64) {
	if !r.ready() {
		return
	}
	c0, r0 := r.cellOf(from)
	c1, r1 := r.cellOf(to)
	steps := Max(Abs(c1-c0), Abs(r1-r0))
	if steps == 0 {
		r.screen.SetCell(c0, r0, glyphStroke, c)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		col := int(math.Round(float64(c0) + t*float64(c1-c0)))
		row := int(math.Round(float64(r0) + t*float64(r1-r0)))
		r.screen.SetCell(col, row, glyphStroke, c)
	}
}

// FillPath paints the cells whose centers lie inside the polygon (even-odd rule).
func (r *Raster) FillPath(points []mgl64.Vec2, c Color) {
	if !r.ready() || len(points) < 3 {
		return
	}
	minX, minY := points[0].X(), points[0].Y()
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX, maxX = math.Min(minX, p.X()), math.Max(maxX, p.X())
		minY, maxY = math.Min(minY, p.Y()), math.Max(maxY, p.Y())
	}
	c0, r0, c1, r1 := r.span(NewRect(minX, minY, maxX-minX, maxY-minY))
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if insidePolygon(points, r.centerOf(col, row)) {
				r.screen.SetBg(col, row, c)
			}
		}
	}
}

func insidePolygon(points []mgl64.Vec2, p mgl64.Vec2) bool {
	inside := false
	j := len(points) - 1
	for i := range points {
		a, b := points[i], points[j]
		if (a.Y() > p.Y()) != (b.Y() > p.Y()) {
			x := a.X() + (p.Y()-a.Y())*(b.X()-a.X())/(b.Y()-a.Y())
			if p.X() < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// Text writes the string on the row containing the anchor, keeping
// the backgrounds already painted underneath.
func (r *Raster) Text(at mgl64.Vec2, text string, style TextStyle) {
	if !r.ready() {
		return
	}
	col, row := r.cellOf(at)
	n := len([]rune(text))
	switch style.Align {
	case AlignCenter:
		col -= n / 2
	case AlignRight:
		col -= n
	}
	r.screen.DrawText(col, row, text, style.Color)
}
