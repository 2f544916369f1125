package engine

import "github.com/go-gl/mathgl/mgl64"

// EventKind names something that happened inside the engine.
type EventKind int

const (
	EventStart    EventKind = iota // NotStarted -> Playing
	EventHit                       // target consumed
	EventReveal                    // safe cell revealed
	EventTerminal                  // terminal cell revealed, Playing -> Over
	EventRestart                   // world re-initialized
	EventBasket                    // ball scored through the hoop
	EventRespawn                   // ball fell out and returned to origin
	EventSpawn                     // replacement target created
	EventFire                      // projectile or ball launched
)

var eventNames = [...]string{
	EventStart:    "start",
	EventHit:      "hit",
	EventReveal:   "reveal",
	EventTerminal: "terminal",
	EventRestart:  "restart",
	EventBasket:   "basket",
	EventRespawn:  "respawn",
	EventSpawn:    "spawn",
	EventFire:     "fire",
}

// String returns the event name.
func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event records one engine occurrence with the score after it and
// where it happened in surface coordinates.
type Event struct {
	Kind  EventKind
	Score int
	At    mgl64.Vec2
}

// maxPendingEvents bounds the buffer for hosts that never drain.
const maxPendingEvents = 256

func (e *Engine) emit(kind EventKind, at mgl64.Vec2) {
	if len(e.events) >= maxPendingEvents {
		copy(e.events, e.events[1:])
		e.events = e.events[:len(e.events)-1]
	}
	e.events = append(e.events, Event{Kind: kind, Score: e.world.Score, At: at})
}

// Drain returns the events since the previous call, oldest first.
func (e *Engine) Drain() []Event {
	out := e.events
	e.events = nil
	return out
}
