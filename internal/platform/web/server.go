// Package web serves the arcade to browsers. The page draws on a canvas;
// the game runs on the server and streams draw ops over a WebSocket.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/canvas-arcade/internal/catalog"
	"github.com/vovakirdan/canvas-arcade/internal/games/minigame"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
	"github.com/vovakirdan/canvas-arcade/internal/storage"
)

//go:embed static
var staticFiles embed.FS

// ServerConfig holds configuration for the web server.
type ServerConfig struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// DBPath is the path to the scores database. Empty disables scores.
	DBPath string

	// TickRate is the simulation and frame rate of every connection.
	TickRate int

	// PingInterval is how often idle connections are pinged.
	PingInterval time.Duration
}

// DefaultServerConfig returns a config with sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Address:      ":8080",
		DBPath:       storage.DefaultPath,
		TickRate:     60,
		PingInterval: 10 * time.Second,
	}
}

// Server streams games to browser canvases.
type Server struct {
	config   ServerConfig
	store    *storage.Store
	logger   *log.Logger
	upgrader websocket.Upgrader
	http     *http.Server

	// ctx is cancelled on shutdown; hijacked sockets do not see
	// http.Server.Shutdown.
	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a web server. A missing scores database is logged
// and the server runs without a leaderboard.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.PingInterval <= 0 {
		cfg.PingInterval = 10 * time.Second
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade-web",
	})

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		config: cfg,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}

	if cfg.DBPath != "" {
		store, err := storage.Open(cfg.DBPath)
		if err != nil {
			logger.Warn("could not open scores database", "error", err)
		} else {
			s.store = store
		}
	}

	s.http = &http.Server{
		Addr:              cfg.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	return s, nil
}

// SetLogger replaces the server logger.
func (s *Server) SetLogger(l *log.Logger) {
	s.logger = l
}

// Handler returns the HTTP routes: the canvas page at /, the game list at
// /api/games and the game socket at /ws?game=<id|number>.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("web: embedded assets: %v", err))
	}
	mux.Handle("/", http.FileServer(http.FS(static)))
	mux.HandleFunc("/api/games", s.handleGames)
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

func (s *Server) handleGames(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(registry.List()); err != nil {
		s.logger.Warn("cannot encode game list", "error", err)
	}
}

// resolveGame accepts a registered id or a catalog number ("2021", "game2021").
func resolveGame(id string) (registry.Game, error) {
	if registry.Exists(id) {
		return registry.Create(id)
	}
	if n, ok := catalog.ParseNumber(id); ok {
		return minigame.NewNumbered(n)
	}
	return nil, fmt.Errorf("web: unknown game %q", id)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("game")
	if id == "" {
		id = "clicker"
	}
	game, err := resolveGame(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	s.logger.Info("session started", "game", game.ID(), "remote", r.RemoteAddr)
	sess := newSession(conn, game, s.store, s.config, s.logger)
	sess.run(r.Context())
	s.logger.Info("session ended", "game", game.ID(), "remote", r.RemoteAddr, "score", game.State().Score)
}

// ListenAndServe starts the server and blocks until SIGINT or SIGTERM.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting web server", "address", s.config.Address)

	errc := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("web: %w", err)
		}
		return nil
	case <-done:
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server and closes the leaderboard.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.cancel()
	err := s.http.Shutdown(ctx)
	if s.store != nil {
		s.store.Close()
	}
	return err
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.config.Address
}
