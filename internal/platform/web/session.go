package web

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
	"github.com/vovakirdan/canvas-arcade/internal/storage"
)

const (
	inboxSize = 256
	writeWait = 5 * time.Second
)

// session owns one game for one socket. The run goroutine is the only one
// touching the game and the only writer; readLoop is the only reader and
// hands messages over through inbox.
type session struct {
	conn     *websocket.Conn
	game     registry.Game
	recorder *storage.Recorder
	cfg      ServerConfig
	logger   *log.Logger

	inbox chan ClientMessage
	frame core.InputFrame
	draw  *core.DrawList
}

func newSession(conn *websocket.Conn, game registry.Game, store *storage.Store, cfg ServerConfig, logger *log.Logger) *session {
	var saver storage.ScoreSaver
	if store != nil {
		saver = store
	}
	s := &session{
		conn:     conn,
		game:     game,
		recorder: storage.NewRecorder(saver, game.ID()),
		cfg:      cfg,
		logger:   logger,
		inbox:    make(chan ClientMessage, inboxSize),
		frame:    core.NewInputFrame(),
		draw:     core.NewDrawList(),
	}
	if a, ok := game.(registry.SurfaceAttacher); ok {
		a.Attach(s.draw)
	}
	return s
}

// run plays until the client goes away or ctx ends.
func (s *session) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer s.conn.Close()

	s.game.Reset(core.RuntimeConfig{
		TickRate: s.cfg.TickRate,
		Seed:     time.Now().UnixNano(),
	})
	defer func() {
		if err := s.recorder.Finish(s.game.State()); err != nil {
			s.logger.Warn("cannot save score", "game", s.game.ID(), "error", err)
		}
	}()

	w, h := s.game.Size()
	hello := HelloMessage{Type: MessageTypeHello, ID: s.game.ID(), Title: s.game.Title(), Width: w, Height: h}
	if err := s.write(hello); err != nil {
		return
	}
	if err := s.sendFrame(core.StepResult{State: s.game.State()}); err != nil {
		return
	}

	go s.readLoop(cancel)

	ticker := time.NewTicker(time.Second / time.Duration(s.cfg.TickRate))
	defer ticker.Stop()
	ping := time.NewTicker(s.cfg.PingInterval)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.tick(); err != nil {
				s.logger.Debug("frame write failed", "error", err)
				return
			}
		case <-ping.C:
			if err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

// readLoop queues client messages. When the inbox is full the message is
// dropped: a stalled tick loop must not block the reader.
func (s *session) readLoop(cancel context.CancelFunc) {
	defer cancel()

	pongWait := 3 * s.cfg.PingInterval
	s.conn.SetReadDeadline(time.Now().Add(pongWait)) //nolint:errcheck // reset on every message
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg ClientMessage
		if err := s.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("read failed", "error", err)
			}
			return
		}
		s.conn.SetReadDeadline(time.Now().Add(pongWait)) //nolint:errcheck // next read reports it

		select {
		case s.inbox <- msg:
		default:
			s.logger.Debug("inbox full, dropping message", "type", msg.Type)
		}
	}
}

// tick drains the inbox into one input frame, steps once and sends the frame.
func (s *session) tick() error {
	s.drain()
	result := s.game.Step(s.frame)
	s.frame.Clear()

	for _, ev := range result.Events {
		s.logger.Debug("game event", "game", s.game.ID(), "event", ev, "score", result.State.Score)
	}
	if err := s.recorder.Observe(result.State); err != nil {
		s.logger.Warn("cannot save score", "game", s.game.ID(), "error", err)
	}
	return s.sendFrame(result)
}

func (s *session) drain() {
	for {
		select {
		case msg := <-s.inbox:
			s.apply(msg)
		default:
			return
		}
	}
}

func (s *session) apply(msg ClientMessage) {
	if ev, ok := msg.pointerEvent(); ok {
		s.frame.Push(ev)
		return
	}
	if msg.Type == MessageTypeResize && msg.Width > 0 && msg.Height > 0 {
		w, h := s.game.Size()
		s.game.SetViewport(core.Viewport{ScaleX: w / msg.Width, ScaleY: h / msg.Height})
	}
}

func (s *session) sendFrame(result core.StepResult) error {
	s.game.Render(s.draw)
	return s.write(FrameMessage{
		Type:   MessageTypeFrame,
		Ops:    s.draw.Ops,
		Score:  result.State.Score,
		Phase:  result.State.Phase.String(),
		Events: result.Events,
	})
}

func (s *session) write(v any) error {
	s.conn.SetWriteDeadline(time.Now().Add(writeWait)) //nolint:errcheck // WriteJSON reports it
	return s.conn.WriteJSON(v)
}
