package engine

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// initWorld builds a fresh world. Games with a start prompt wait in NotStarted;
// everything else starts Playing.
func (e *Engine) initWorld() {
	e.world = World{
		Width:  e.cfg.Viewport.Width,
		Height: e.cfg.Viewport.Height,
		Phase:  core.PhasePlaying,
	}
	e.tick = 0
	e.populate()

	if e.cfg.Rules.StartPrompt != "" {
		e.world.Phase = core.PhaseNotStarted
	} else {
		e.spawnTargets()
	}
	e.publish()
}

// start consumes the first click of a prompted game.
func (e *Engine) start() {
	if e.world.Phase != core.PhaseNotStarted {
		return
	}
	e.world.Phase = core.PhasePlaying
	e.spawnTargets()
	e.emit(EventStart, e.center())
}

// over ends the round. Only a Playing game can end.
func (e *Engine) over(at mgl64.Vec2) {
	if e.world.Phase != core.PhasePlaying {
		return
	}
	e.world.Phase = core.PhaseOver
	e.emit(EventTerminal, at)
}

func (e *Engine) restart() {
	e.initWorld()
	e.emit(EventRestart, e.center())
}

func (e *Engine) addScore(n int) {
	e.world.Score += n
	e.publish()
}

func (e *Engine) publish() {
	if e.sink != nil {
		e.sink.SetScore(e.world.Score)
	}
}

func (e *Engine) center() mgl64.Vec2 {
	return mgl64.Vec2{e.world.Width / 2, e.world.Height / 2}
}
