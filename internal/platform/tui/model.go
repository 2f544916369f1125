package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
	"github.com/vovakirdan/canvas-arcade/internal/storage"
)

// statusRows is the height reserved under the playfield.
const statusRows = 1

// Model is the Bubble Tea model for running one arcade game.
type Model struct {
	game       registry.Game
	raster     *core.Raster
	store      *storage.Store
	recorder   *storage.Recorder
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	status     *statusLine
	keyMapper  *KeyMapper
	paused     bool
	inSession  bool // b/esc returns to the session menu
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	w, h := game.Size()
	screen := core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-statusRows))
	raster := core.NewRaster(screen, w, h)
	game.SetViewport(raster.Viewport())

	status := &statusLine{title: game.Title()}
	if store != nil {
		if high, err := store.HighScore(game.ID()); err == nil {
			status.high = high
		}
	}
	if r, ok := game.(registry.ScoreReporter); ok {
		r.SetScoreSink(status.SetScore)
	}
	if a, ok := game.(registry.SurfaceAttacher); ok {
		a.Attach(raster)
	}

	return Model{
		game:       game,
		raster:     raster,
		store:      store,
		recorder:   newRecorder(store, game.ID()),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		status:     status,
		keyMapper:  NewKeyMapper(),
	}
}

// newRecorder keeps a nil store from becoming a non-nil interface.
func newRecorder(store *storage.Store, gameID string) *storage.Recorder {
	if store == nil {
		return storage.NewRecorder(nil, gameID)
	}
	return storage.NewRecorder(store, gameID)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.paused {
			for _, ev := range m.keyMapper.MapMouse(msg) {
				m.inputFrame.Push(ev)
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch action {
	case core.ActionQuit:
		if isQuit {
			m.finish()
			m.quitting = true
			return m, tea.Quit
		}
	case core.ActionPause:
		if !m.gameState.GameOver {
			m.paused = !m.paused
		}
	case core.ActionBack:
		if m.inSession && (m.gameState.GameOver || m.paused) {
			m.finish()
			m.backToMenu = true
		}
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	}
	return m, nil
}

// handleResize refits the playfield. The world keeps its size; only the
// cell mapping and therefore the pointer viewport change.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.raster.Resize(msg.Width, max(1, msg.Height-statusRows))
	m.game.SetViewport(m.raster.Viewport())
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}
	if m.paused {
		m.inputFrame.Clear()
		return m, tickCmd(pausedTickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	//nolint:errcheck // Best-effort save, game continues regardless
	m.recorder.Observe(m.gameState)
	if m.gameState.GameOver && m.gameState.Score > m.status.high {
		m.status.high = m.gameState.Score
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// finish records a score left on the board when the player walks away.
func (m Model) finish() {
	//nolint:errcheck // Best-effort save on exit
	m.recorder.Finish(m.game.State())
}

// saveScreenshot saves the current frame as text.
func (m Model) saveScreenshot() {
	m.game.Render(m.raster)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.raster.Screen().String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.raster)

	state := m.gameState
	state.Paused = m.paused

	var b strings.Builder
	b.WriteString(RenderScreen(m.raster.Screen()))
	b.WriteString("\n")
	b.WriteString(m.status.View(state, m.config.ScreenW))
	return b.String()
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Hover drives aiming
	)

	_, err := p.Run()
	return err
}
