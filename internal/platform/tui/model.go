// Package tui runs registered games in a terminal with Bubble Tea, locally
// or over SSH, and shows the stored run history.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/xenon/internal/core"
	"github.com/vovakirdan/xenon/internal/registry"
	"github.com/vovakirdan/xenon/internal/storage"
)

// RunStore is where finished runs go.
type RunStore interface {
	SaveRun(r storage.RunRecord) (string, error)
	HighScore(gameID string) (int, error)
}

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// statusRows is the space below the arena kept for the status bar.
const statusRows = 1

// Model is the Bubble Tea model for running a game in a terminal.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      RunStore
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	gameState  core.GameState
	quitting   bool

	runID    string
	runTicks int
	runSaved bool // whether the current run has been recorded
	best     int  // best stored score when the run started
	newBest  bool // the finished run beat best
}

// NewModel creates a new Bubble Tea model for the given game.
// store may be nil.
func NewModel(game registry.Game, store RunStore, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, arenaRows(cfg.ScreenH)),
		store:      store,
		logger:     log.New(io.Discard),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		runID:      uuid.NewString(),
	}
	if store != nil {
		if best, err := store.HighScore(game.ID()); err == nil {
			m.best = best
		}
	}
	return m
}

func arenaRows(screenH int) int {
	return max(screenH-statusRows, 1)
}

// WithLogger returns a copy of m that logs to l.
func (m Model) WithLogger(l *log.Logger) Model {
	if l != nil {
		m.logger = l
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

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

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveRun(storage.OutcomeQuit)
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
// The arena is scaled to the screen, so the run survives a resize.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, arenaRows(msg.Height))
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if !m.gameState.Paused {
		m.runTicks++
	}

	switch {
	case m.gameState.GameOver && !m.runSaved:
		m.saveRun(m.gameState.Outcome())
	case wasOver && !m.gameState.GameOver:
		// the game restarted itself
		m.runID = uuid.NewString()
		m.runTicks = 0
		m.runSaved = false
		m.newBest = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the current run once. Runs that never scored are skipped.
func (m *Model) saveRun(outcome string) {
	if m.runSaved {
		return
	}
	m.runSaved = true
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	if m.gameState.Score > m.best {
		m.best = m.gameState.Score
		m.newBest = true
	}

	_, err := m.store.SaveRun(storage.RunRecord{
		RunID:   m.runID,
		GameID:  m.game.ID(),
		Score:   m.gameState.Score,
		Outcome: outcome,
		Seed:    m.config.Seed,
		Ticks:   m.runTicks,
	})
	if err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("could not save run", "run", m.runID, "err", err)
		return
	}
	m.logger.Info("run saved", "run", m.runID, "score", m.gameState.Score, "outcome", outcome)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".xenon", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.statusLine()
}

func (m Model) statusLine() string {
	left := fmt.Sprintf(" %s  run %s", m.game.Title(), shortID(m.runID))
	right := fmt.Sprintf("BEST %d ", max(m.best, m.gameState.Score))
	switch {
	case m.gameState.GameOver && m.newBest:
		right = fmt.Sprintf("NEW HIGH SCORE %d ", m.best)
	case m.gameState.Paused:
		right = "PAUSED  " + right
	}
	return statusBar(m.config.ScreenW, left, right, m.newBest)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store RunStore, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg).WithLogger(logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
