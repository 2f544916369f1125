package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/canvas-arcade/internal/catalog"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
	"github.com/vovakirdan/canvas-arcade/internal/storage"
)

const (
	maxScores    = 100 // rows loaded per game page
	scoreDateFmt = "Jan 02 15:04"
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardWarnStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Next  key.Binding
	Prev  key.Binding
	Clear key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Clear, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Clear, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		Next:  key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next page")),
		Prev:  key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev page")),
		Clear: key.NewBinding(key.WithKeys("x"), key.WithHelp("x x", "clear game")),
		Back:  key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// scorePage is one screen of the scoreboard. The overview page has no id.
type scorePage struct {
	id    string
	title string
}

func (p scorePage) overview() bool { return p.id == "" }

// ScoreboardModel shows an overview of every played game followed by one
// page per game: the registered games, then any numbered game with scores.
type ScoreboardModel struct {
	store    *storage.Store
	pages    []scorePage
	page     int
	scores   []storage.ScoreEntry
	stats    *storage.GameStats
	overview []*storage.GameStats
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int

	armedClear bool // first clear press seen
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a scoreboard positioned on the overview page.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.loadPages()
	m.loadPage()
	return m
}

// loadPages collects the pages. Numbered games only get a page once
// someone has played them.
func (m *ScoreboardModel) loadPages() {
	m.pages = []scorePage{{title: "All games"}}
	for _, g := range registry.List() {
		m.pages = append(m.pages, scorePage{id: g.ID, title: g.Title})
	}

	m.overview = nil
	if m.store == nil {
		return
	}
	all, err := m.store.GetAllGamesStats()
	if err != nil {
		return
	}
	var numbered []int
	for id, gs := range all {
		m.overview = append(m.overview, gs)
		if n, ok := catalog.ParseNumber(id); ok && !registry.Exists(id) {
			numbered = append(numbered, n)
		}
	}
	sort.Slice(m.overview, func(i, j int) bool {
		if m.overview[i].HighScore != m.overview[j].HighScore {
			return m.overview[i].HighScore > m.overview[j].HighScore
		}
		return m.overview[i].GameID < m.overview[j].GameID
	})
	sort.Ints(numbered)
	for _, n := range numbered {
		m.pages = append(m.pages, scorePage{id: catalog.ID(n), title: gameTitle(catalog.ID(n))})
	}
}

// gameTitle resolves a stored game id to a display title.
func gameTitle(id string) string {
	if g, err := registry.Create(id); err == nil {
		return g.Title()
	}
	if n, ok := catalog.ParseNumber(id); ok {
		if e, err := catalog.Lookup(n); err == nil {
			return e.Config.Title
		}
	}
	return id
}

// loadPage rebuilds the table for the current page.
func (m *ScoreboardModel) loadPage() {
	m.armedClear = false
	m.scores, m.stats = nil, nil

	p := m.pages[m.page]
	if p.overview() {
		m.table = m.newTable([]table.Column{
			{Title: "Game", Width: 22},
			{Title: "Played", Width: 7},
			{Title: "Best", Width: 8},
			{Title: "Avg", Width: 8},
		})
		rows := make([]table.Row, len(m.overview))
		for i, gs := range m.overview {
			rows[i] = table.Row{
				gameTitle(gs.GameID),
				strconv.Itoa(gs.GamesCount),
				strconv.Itoa(gs.HighScore),
				strconv.FormatFloat(gs.AvgScore, 'f', 1, 64),
			}
		}
		m.table.SetRows(rows)
		return
	}

	if m.store != nil {
		if scores, err := m.store.TopScores(p.id, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(p.id); err == nil {
			m.stats = stats
		}
	}
	m.table = m.newTable([]table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 14},
	})
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{"#" + strconv.Itoa(i+1), strconv.Itoa(s.Score), s.CreatedAt.Format(scoreDateFmt)}
	}
	m.table.SetRows(rows)
}

func (m ScoreboardModel) newTable(columns []table.Column) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // title, tabs, stats, frame, help
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.page = (m.page + 1) % len(m.pages)
			m.loadPage()
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.page = (m.page + len(m.pages) - 1) % len(m.pages)
			m.loadPage()
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.clear()
			return m, nil
		}
		m.armedClear = false

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.loadPage()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// clear wipes the current game's scores on the second consecutive press.
func (m *ScoreboardModel) clear() {
	p := m.pages[m.page]
	if p.overview() || m.store == nil || len(m.scores) == 0 {
		return
	}
	if !m.armedClear {
		m.armedClear = true
		return
	}
	if err := m.store.ClearScores(p.id); err != nil {
		m.armedClear = false
		return
	}
	m.loadPages()
	m.page = min(m.page, len(m.pages)-1)
	m.loadPage()
}

// statsLine summarizes the current game page.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("%d played  |  best %d  |  avg %.1f  |  last %s",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore,
		m.stats.LastPlayed.Format(scoreDateFmt))
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}
	p := m.pages[m.page]

	var b strings.Builder
	b.WriteString(centerText(boardTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("< %s >  %d/%d", p.title, m.page+1, len(m.pages)), m.width))
	b.WriteString("\n")

	switch {
	case m.armedClear:
		b.WriteString(centerText(boardWarnStyle.Render("Press x again to delete every score for "+p.title), m.width))
	case p.overview():
		b.WriteString(centerText(boardDimStyle.Render(strconv.Itoa(len(m.overview))+" games played"), m.width))
	default:
		b.WriteString(centerText(boardDimStyle.Render(m.statsLine()), m.width))
	}
	b.WriteString("\n")

	body := m.table.View()
	if len(m.table.Rows()) == 0 {
		body = boardDimStyle.Italic(true).Padding(2, 4).
			Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boardFrameStyle.Render(body)))
	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
