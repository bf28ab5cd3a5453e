package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/xenon/internal/storage"
)

const maxRuns = 100

// RunHistory reads stored runs of one game.
type RunHistory interface {
	TopRuns(gameID string, limit int) ([]storage.RunRecord, error)
	RunByID(runID string) (*storage.RunRecord, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Details   key.Binding
	Victories key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Details, k.Victories, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Details}, {k.Victories, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "prev run")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "next run")),
		Details:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run details")),
		Victories: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "victories only")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel browses the run history of one game.
type ScoreboardModel struct {
	gameID  string
	title   string
	store   RunHistory
	runs    []storage.RunRecord // every loaded run, best first
	shown   []storage.RunRecord // runs after the victory filter
	stats   *storage.GameStats
	detail  *storage.RunRecord // run opened with enter, nil when closed
	wonOnly bool
	seedCol bool
	err     error

	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel loads the history of gameID. store may be nil.
func NewScoreboardModel(store RunHistory, gameID, title string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		gameID: gameID,
		title:  title,
		store:  store,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.load()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "Outcome", Width: 8},
		{Title: "Time", Width: 6},
		{Title: "Date", Width: 12},
	}
	// Seeds are long; show them only when they fit.
	m.seedCol = m.width >= 72
	if m.seedCol {
		columns = append(columns, table.Column{Title: "Seed", Width: 20})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-11, 3)), // title, stats, borders, help
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("16")).
		Background(lipgloss.Color("51")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *ScoreboardModel) load() {
	m.runs, m.stats, m.err = nil, nil, nil
	if m.store != nil {
		if m.runs, m.err = m.store.TopRuns(m.gameID, maxRuns); m.err == nil {
			m.stats, m.err = m.store.GetGameStats(m.gameID)
		}
	}
	m.applyFilter()
}

func (m *ScoreboardModel) applyFilter() {
	m.shown = m.runs
	if m.wonOnly {
		m.shown = nil
		for _, r := range m.runs {
			if r.Outcome == storage.OutcomeVictory {
				m.shown = append(m.shown, r)
			}
		}
	}

	rows := make([]table.Row, len(m.shown))
	for i, r := range m.shown {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Score),
			r.Outcome,
			playTime(r.Ticks),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
		if m.seedCol {
			rows[i] = append(rows[i], strconv.FormatInt(r.Seed, 10))
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// playTime formats a tick count at the default 60 ticks per second.
func playTime(ticks int) string {
	d := time.Duration(ticks) * time.Second / 60
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.detail != nil {
			// Any key closes the detail panel, q still quits.
			m.detail = nil
			if k := msg.String(); k == "q" || k == "ctrl+c" {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Victories):
			m.wonOnly = !m.wonOnly
			m.applyFilter()
			return m, nil
		case key.Matches(msg, m.keys.Details):
			m.openDetail()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table = m.newTable()
		m.applyFilter()
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// openDetail re-reads the selected run so the panel shows stored data.
func (m *ScoreboardModel) openDetail() {
	i := m.table.Cursor()
	if m.store == nil || i < 0 || i >= len(m.shown) {
		return
	}
	r, err := m.store.RunByID(m.shown[i].RunID)
	if err != nil {
		m.err = err
		return
	}
	m.detail = r
}

var (
	boardTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	boardDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardBox   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	title := "HIGH SCORES - " + m.title
	if m.wonOnly {
		title += " (victories)"
	}

	var body string
	switch {
	case m.err != nil:
		body = boardDim.Render("Cannot read runs: " + m.err.Error())
	case m.detail != nil:
		body = m.renderDetail(*m.detail)
	case len(m.shown) == 0:
		body = boardDim.Italic(true).Padding(1, 2).Render("No runs recorded yet.\nFinish a run to set a high score!")
	default:
		body = m.table.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		boardTitle.Render(title),
		m.renderStats(),
		boardBox.Render(body),
		boardDim.Render(m.help.View(m.keys)),
	)
}

func (m ScoreboardModel) renderStats() string {
	st := m.stats
	if st == nil || st.RunsCount == 0 {
		return boardDim.Render("no runs yet")
	}
	winRate := 100 * float64(st.Victories) / float64(st.RunsCount)
	line := fmt.Sprintf("best %d  avg %.0f  runs %d  victories %d (%.0f%%)",
		st.HighScore, st.AvgScore, st.RunsCount, st.Victories, winRate)
	if !st.LastPlayed.IsZero() {
		line += "  last " + st.LastPlayed.Format("Jan 02 15:04")
	}
	return boardDim.Render(line)
}

func (m ScoreboardModel) renderDetail(r storage.RunRecord) string {
	rows := [][2]string{
		{"Run", r.RunID},
		{"Score", strconv.Itoa(r.Score)},
		{"Outcome", r.Outcome},
		{"Ticks", fmt.Sprintf("%d (%s)", r.Ticks, playTime(r.Ticks))},
		{"Seed", strconv.FormatInt(r.Seed, 10)},
		{"Played", r.CreatedAt.Format("2006-01-02 15:04:05")},
	}
	var b strings.Builder
	for _, kv := range rows {
		fmt.Fprintf(&b, "%-8s %s\n", kv[0], kv[1])
	}
	b.WriteString(boardDim.Render(fmt.Sprintf("\nreplay: xenon play --seed %d", r.Seed)))
	return b.String()
}

// RunScoreboard shows the run history of one game until the user quits.
func RunScoreboard(store RunHistory, gameID, title string, width, height int) error {
	p := tea.NewProgram(NewScoreboardModel(store, gameID, title, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
