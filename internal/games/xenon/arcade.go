package xenon

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/xenon/internal/config"
	"github.com/vovakirdan/xenon/internal/core"
	"github.com/vovakirdan/xenon/internal/registry"
)

// Registry metadata.
const (
	gameID    = "xenon"
	gameTitle = "Xenon 2000"
)

// Terminal hosts only see key presses, never releases. A pressed key keeps
// its action alive for holdTicks ticks and key repeat refreshes it.
const defaultHoldTicks = 8

// Minimum terminal size the arena is legible at.
const (
	minScreenW = 40
	minScreenH = 12
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// LoadConfig resolves the configuration the CLI flags point at.
func LoadConfig() (config.XenonConfig, error) {
	cfg, err := config.LoadXenon(configPath)
	if err != nil {
		return cfg, err
	}
	if difficultyPreset != "" {
		config.ApplyXenonPreset(&cfg, difficultyPreset)
	}
	return cfg, nil
}

// Arcade runs a Game on a character screen. It implements registry.Game.
type Arcade struct {
	game    *Game
	atlas   *core.Atlas
	canvas  *core.Canvas
	screen  *core.Screen
	runtime core.RuntimeConfig
	logger  *log.Logger

	held      map[core.Action]int
	holdTicks int
	paused    bool
	err       error
}

// NewArcade creates an unstarted terminal adapter. Reset starts it.
func NewArcade() *Arcade {
	return &Arcade{
		held:      make(map[core.Action]int),
		holdTicks: defaultHoldTicks,
		logger:    log.New(io.Discard),
	}
}

// SetLogger routes simulation logs to l.
func (a *Arcade) SetLogger(l *log.Logger) {
	if l != nil {
		a.logger = l
	}
}

// ID returns the unique identifier for this game.
func (a *Arcade) ID() string {
	return gameID
}

// Title returns the display name for this game.
func (a *Arcade) Title() string {
	return gameTitle
}

// Reset builds a fresh run seeded from cfg.
func (a *Arcade) Reset(cfg core.RuntimeConfig) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	a.runtime = cfg
	a.paused = false
	clear(a.held)

	xcfg, err := LoadConfig()
	if err != nil {
		a.fail(err)
		return
	}
	a.atlas = TerminalAtlas(xcfg)
	a.canvas = nil

	g, err := New(Context{
		Assets: a.atlas,
		Config: xcfg,
		Rand:   rand.New(rand.NewSource(cfg.Seed)),
		Logger: a.logger,
	})
	if err != nil {
		a.fail(err)
		return
	}
	a.game = g
	a.err = nil
}

func (a *Arcade) fail(err error) {
	a.err = err
	a.game = nil
	a.logger.Error("xenon: cannot start", "err", err)
}

// Err returns the error that stopped the last Reset, if any.
func (a *Arcade) Err() error {
	return a.err
}

// Step advances the simulation by one tick.
func (a *Arcade) Step(in core.InputFrame) core.StepResult {
	if a.game == nil {
		return core.StepResult{State: a.State()}
	}
	if in.Has(core.ActionPause) && !a.game.fsm.Terminal() {
		a.paused = !a.paused
	}
	if a.paused {
		return core.StepResult{State: a.State()}
	}

	a.press(in)
	fire := a.active(core.ActionFire)
	a.game.HandleInput(Intents{
		Left:  a.active(core.ActionLeft),
		Right: a.active(core.ActionRight),
		Up:    a.active(core.ActionUp),
		Down:  a.active(core.ActionDown),
	}, fire, in.Has(core.ActionRestart))
	a.game.Update(1.0 / float64(a.runtime.TickRate))
	a.decay()

	return core.StepResult{State: a.State()}
}

var opposite = map[core.Action]core.Action{
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
}

func (a *Arcade) press(in core.InputFrame) {
	for _, act := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown, core.ActionFire} {
		if !in.Has(act) {
			continue
		}
		a.held[act] = a.holdTicks
		if o, ok := opposite[act]; ok {
			delete(a.held, o)
		}
	}
}

func (a *Arcade) active(act core.Action) bool {
	return a.held[act] > 0
}

func (a *Arcade) decay() {
	for act, n := range a.held {
		if n <= 1 {
			delete(a.held, act)
		} else {
			a.held[act] = n - 1
		}
	}
}

// Render draws the arena scaled to the whole screen.
func (a *Arcade) Render(dst *core.Screen) {
	dst.Clear()
	if a.game == nil {
		dst.DrawTextCentered(dst.Height()/2-1, "XENON CANNOT START")
		if a.err != nil {
			dst.DrawTextCentered(dst.Height()/2+1, a.err.Error())
		}
		return
	}
	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	if a.canvas == nil || a.screen != dst {
		w, h := a.game.Arena()
		a.canvas = core.NewCanvas(dst, a.atlas, w, h)
		a.screen = dst
	}
	a.canvas.Begin()
	a.game.Render(a.canvas)

	if a.paused {
		dst.DrawTextCentered(dst.Height()/2, " PAUSED ")
	}
}

// State reports the run status to the host.
func (a *Arcade) State() core.GameState {
	if a.game == nil {
		return core.GameState{GameOver: true}
	}
	st := a.game.State()
	return core.GameState{
		Score:    a.game.Score(),
		GameOver: st == StateGameOver || st == StateVictory,
		Won:      st == StateVictory,
		Paused:   a.paused,
	}
}

// Game exposes the running simulation, nil before a successful Reset.
func (a *Arcade) Game() *Game {
	return a.game
}

// TerminalAtlas binds every configured asset path to a character glyph.
// The shield and background are left out: on a character grid they would
// hide what is underneath, so the shield shows as a HUD bar instead.
func TerminalAtlas(cfg config.XenonConfig) *core.Atlas {
	paths := cfg.Assets
	a := core.NewAtlas()
	a.Register(paths.Ship, core.Glyph{Rune: '▲', Color: core.ColorBrightCyan})
	a.Register(paths.Missile, core.Glyph{Rune: '|', Color: core.ColorBrightYellow})
	a.Register(paths.Loner, core.Glyph{Rune: 'W', Color: core.ColorBrightRed})
	a.Register(paths.Rusher, core.Glyph{Rune: 'V', Color: core.ColorMagenta})
	a.Register(paths.EnemyProjectile, core.Glyph{Rune: '•', Color: core.ColorRed})
	a.Register(paths.Explosion, core.Glyph{Rune: '*', Color: core.ColorOrange})
	a.Register(paths.Asteroid, core.Glyph{Rune: '@', Color: core.ColorGray})
	a.Register(paths.Boss, core.Glyph{Rune: '█', Color: core.ColorBrightMagenta})
	a.Register(paths.PowerUp, core.Glyph{Rune: '+', Color: core.ColorBrightGreen})
	a.Register(paths.Bar, core.Glyph{Rune: '=', Color: core.ColorGreen})
	a.Register(paths.Font, core.Glyph{
		Font:        true,
		FontColumns: cfg.HUD.FontColumns,
		FontCellW:   cfg.HUD.FontCellW,
		FontCellH:   cfg.HUD.FontCellH,
		Color:       core.ColorBrightWhite,
	})

	dust := []core.Glyph{
		{Rune: '.', Color: core.ColorGray},
		{Rune: '.', Color: core.ColorWhite},
		{Rune: ':', Color: core.ColorBrightWhite},
	}
	for i, l := range cfg.Dust.Layers {
		a.Register(l.Asset, dust[min(i, len(dust)-1)])
	}
	return a
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          gameID,
		Title:       gameTitle,
		Description: "Vertical shooter: waves, asteroids, power-ups and a boss",
	}, func() registry.Game {
		return NewArcade()
	})
}
