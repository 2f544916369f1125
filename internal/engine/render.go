package engine

import (
	"math"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// Text sizes in surface units.
const (
	countTextSize   = 30
	promptTextSize  = 30
	bannerTextSize  = 40
	bannerHeight    = 60
	netSegments     = 8
	aimIndicatorLen = 5 // indicator length per unit of power
)

// Render redraws the whole surface for the current state. It runs in every
// phase so the start prompt and game-over banner stay visible.
// Layers: background, board, entities, moving actors, player actor, overlay.
func (e *Engine) Render(dst core.Surface) {
	dst.Clear(e.background)
	e.drawBoard(dst)
	e.drawEntities(dst)
	e.drawActors(dst)
	e.drawPlayer(dst)
	e.drawOverlay(dst)
}

func (e *Engine) drawBoard(dst core.Surface) {
	switch e.cfg.Rules.Layout {
	case config.LayoutGrid:
		e.drawGrid(dst)
	case config.LayoutCourt:
		e.drawHoop(dst)
	}
}

func (e *Engine) drawGrid(dst core.Surface) {
	g := e.world.Grid
	size := e.cfg.Grid.CellSize
	inset := e.cfg.Grid.Inset
	for r := range g.Rows {
		for c := range g.Cols {
			x, y := float64(c)*size, float64(r)*size
			box := core.NewRect(x+inset, y+inset, size-2*inset, size-2*inset)
			if !g.Revealed[r][c] {
				dst.FillRect(box, core.ColorGray)
				continue
			}
			if g.Counts[r][c] == Mine {
				dst.FillRect(box, core.ColorRed)
				continue
			}
			dst.FillRect(box, core.ColorWhite)
			if n := g.Counts[r][c]; n > 0 {
				dst.Text(mgl64.Vec2{x + size/2, y + size/2 + 10}, strconv.Itoa(n), core.TextStyle{
					Color: core.ColorBlack,
					Size:  countTextSize,
					Align: core.AlignCenter,
				})
			}
		}
	}
}

func (e *Engine) drawHoop(dst core.Surface) {
	hoop := e.world.Hoop
	dst.FillRect(hoop, core.ColorOrange)

	// Net: lower half circle hanging under the rim.
	rim := e.cfg.Hoop.Rim
	if rim <= 0 {
		return
	}
	center := mgl64.Vec2{hoop.X + hoop.W/2, hoop.Y}
	prev := center.Add(mgl64.Vec2{rim, 0})
	for i := 1; i <= netSegments; i++ {
		a := math.Pi * float64(i) / netSegments
		next := center.Add(mgl64.Vec2{math.Cos(a), math.Sin(a)}.Mul(rim))
		dst.StrokeLine(prev, next, core.ColorBlack, 3)
		prev = next
	}
}

func (e *Engine) drawEntities(dst core.Surface) {
	for _, t := range e.world.Targets {
		if !t.Active {
			continue
		}
		if t.Shape == ShapeCircle {
			dst.FillCircle(t.Circle(), t.Tag)
		} else {
			dst.FillRect(t.Box, t.Tag)
		}
	}
}

func (e *Engine) drawActors(dst core.Surface) {
	for _, pr := range e.world.Projectiles {
		dst.FillCircle(pr.Circle(), pr.Tag)
	}

	b := e.world.Ball
	if e.cfg.Rules.Layout == config.LayoutCourt && b.Aiming {
		d := b.Aim.Sub(b.Pos)
		if l := d.Len(); l > 0 {
			tip := b.Pos.Add(d.Mul(b.Power * aimIndicatorLen / l))
			dst.StrokeLine(b.Pos, tip, core.ColorWhite, 3)
		}
	}
}

func (e *Engine) drawPlayer(dst core.Surface) {
	switch e.cfg.Rules.Layout {
	case config.LayoutBubbles:
		s := e.world.Shooter
		dst.FillCircle(core.Circle{C: s.Pos, R: e.cfg.Shooter.Radius}, core.ColorWhite)
		tip := s.Pos.Add(mgl64.Vec2{math.Cos(s.Angle), math.Sin(s.Angle)}.Mul(e.cfg.Shooter.Barrel))
		dst.StrokeLine(s.Pos, tip, core.ColorWhite, 5)
	case config.LayoutCourt:
		b := e.world.Ball
		ball := core.Circle{C: b.Pos, R: b.Radius}
		dst.FillCircle(ball, core.ColorOrange)
		dst.StrokeCircle(ball, core.ColorBlack, 2)
	}
}

// drawOverlay draws the start prompt or the game-over banner last.
func (e *Engine) drawOverlay(dst core.Surface) {
	c := e.center()
	switch e.world.Phase {
	case core.PhaseNotStarted:
		dst.Text(c, e.cfg.Rules.StartPrompt, core.TextStyle{
			Color: core.ColorWhite,
			Size:  promptTextSize,
			Align: core.AlignCenter,
		})
	case core.PhaseOver:
		text := e.cfg.Rules.GameOverText
		if text == "" {
			text = "Game Over! Click to restart"
		}
		dst.FillRect(core.NewRect(0, c.Y()-bannerHeight*0.75, e.world.Width, bannerHeight), core.ColorBlack)
		dst.Text(c, text, core.TextStyle{
			Color: core.ColorWhite,
			Size:  bannerTextSize,
			Align: core.AlignCenter,
		})
	}
}
