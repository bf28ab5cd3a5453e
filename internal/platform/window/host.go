package window

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/xenon/internal/games/xenon"
)

// StickDeadzone is the left-stick travel ignored as noise.
const StickDeadzone = 0.25

// Host drives a Game from the ebiten loop. It implements ebiten.Game.
type Host struct {
	game     *xenon.Game
	canvas   *Canvas
	settings Settings
	store    *SettingsStore
	logger   *log.Logger
	paused   bool
}

// NewHost wraps game. store may be nil.
func NewHost(game *xenon.Game, loader *Loader, settings Settings, store *SettingsStore, logger *log.Logger) *Host {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Host{
		game:     game,
		canvas:   NewCanvas(loader),
		settings: settings.normalized(),
		store:    store,
		logger:   logger,
	}
}

// Apply pushes the window settings to ebiten.
func (h *Host) Apply(title string) {
	w, ht := h.game.Arena()
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(int(w*h.settings.Scale), int(ht*h.settings.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(h.settings.Fullscreen)
}

// Update advances the game one tick.
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		h.toggleFullscreen()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		h.paused = !h.paused
	}
	if h.paused {
		return nil
	}

	in, fire, restart := readInput()
	h.game.HandleInput(in, fire, restart)
	h.game.Update(1 / float64(ebiten.TPS()))
	return nil
}

func (h *Host) toggleFullscreen() {
	h.settings.Fullscreen = !ebiten.IsFullscreen()
	ebiten.SetFullscreen(h.settings.Fullscreen)
	if err := h.store.Save(h.settings); err != nil {
		h.logger.Warn("could not save window settings", "err", err)
	}
}

// Draw renders the game.
func (h *Host) Draw(screen *ebiten.Image) {
	h.canvas.SetTarget(screen)
	h.game.Render(h.canvas)
}

// Layout keeps the logical screen at the arena size; ebiten scales it.
func (h *Host) Layout(_, _ int) (int, int) {
	w, ht := h.game.Arena()
	return int(w), int(ht)
}

func readInput() (xenon.Intents, bool, bool) {
	in := xenon.Intents{
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
	}
	fire := ebiten.IsKeyPressed(ebiten.KeySpace)
	restart := inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)

	for _, id := range ebiten.AppendGamepadIDs(nil) {
		var ax, ay float64
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			ax = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
			ay = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
			fire = fire || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
			restart = restart || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
		} else {
			ax = ebiten.GamepadAxisValue(id, 0)
			ay = ebiten.GamepadAxisValue(id, 1)
			fire = fire || ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton0)
		}
		in = mergeIntents(in, stickIntents(ax, ay, StickDeadzone))
	}
	return in, fire, restart
}

// stickIntents turns stick deflection into digital directions.
func stickIntents(ax, ay, deadzone float64) xenon.Intents {
	var in xenon.Intents
	if math.Abs(ax) > deadzone {
		in.Left = ax < 0
		in.Right = ax > 0
	}
	if math.Abs(ay) > deadzone {
		in.Up = ay < 0
		in.Down = ay > 0
	}
	return in
}

func mergeIntents(a, b xenon.Intents) xenon.Intents {
	return xenon.Intents{
		Left:  a.Left || b.Left,
		Right: a.Right || b.Right,
		Up:    a.Up || b.Up,
		Down:  a.Down || b.Down,
	}
}
