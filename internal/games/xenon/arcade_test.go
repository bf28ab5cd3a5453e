package xenon

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/xenon/internal/core"
	"github.com/vovakirdan/xenon/internal/registry"
)

func newTestArcade(t *testing.T) *Arcade {
	t.Helper()
	a := NewArcade()
	a.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3})
	if a.Err() != nil {
		t.Fatalf("Reset() error = %v", a.Err())
	}
	return a
}

func press(acts ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, act := range acts {
		in.Set(act)
	}
	return in
}

func TestArcadeHeldKeyDecays(t *testing.T) {
	a := newTestArcade(t)
	start := a.Game().Ship().Rect.X

	a.Step(press(core.ActionLeft))
	for range 20 {
		a.Step(core.NewInputFrame())
	}

	// one press keeps moving for defaultHoldTicks ticks at 300 px/s
	moved := start - a.Game().Ship().Rect.X
	want := float64(defaultHoldTicks) * 300.0 / 60.0
	if math.Abs(moved-want) > 1e-6 {
		t.Errorf("ship moved %v px, expected %v", moved, want)
	}
}

func TestArcadeOppositeKeyWins(t *testing.T) {
	a := newTestArcade(t)
	a.Step(press(core.ActionLeft))
	x := a.Game().Ship().Rect.X

	a.Step(press(core.ActionRight))
	if a.Game().Ship().Rect.X <= x {
		t.Error("pressing right should cancel a held left")
	}
}

func TestArcadePause(t *testing.T) {
	a := newTestArcade(t)
	a.Step(core.NewInputFrame())

	res := a.Step(press(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("pause should be reported")
	}
	ticks := a.Game().Ticks()
	for range 10 {
		a.Step(core.NewInputFrame())
	}
	if a.Game().Ticks() != ticks {
		t.Error("simulation advanced while paused")
	}

	a.Step(press(core.ActionPause))
	if a.State().Paused || a.Game().Ticks() != ticks+1 {
		t.Error("second pause press should resume")
	}
}

func TestArcadeStateMapping(t *testing.T) {
	a := newTestArcade(t)
	g := a.Game()
	g.lives = 1
	g.onPlayerHit()

	st := a.State()
	if !st.GameOver || st.Won || st.Outcome() != "defeat" {
		t.Errorf("state after defeat = %+v", st)
	}

	a.Step(press(core.ActionRestart))
	if a.State().GameOver || g.State() != StatePlaying {
		t.Error("restart key should start a new run")
	}
}

func TestArcadeRender(t *testing.T) {
	a := newTestArcade(t)
	a.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	a.Render(screen)
	if !strings.Contains(screen.String(), "▲") {
		t.Errorf("ship missing from terminal frame:\n%s", screen.String())
	}

	small := core.NewScreen(20, 6)
	a.Render(small)
	if !strings.Contains(small.String(), "too small") {
		t.Errorf("expected a size warning, got:\n%s", small.String())
	}
}

func TestArcadeRegistered(t *testing.T) {
	if !registry.Exists("xenon") {
		t.Fatal("xenon should register itself")
	}
	g, err := registry.Create("xenon")
	if err != nil {
		t.Fatal(err)
	}
	info, _ := registry.Lookup("xenon")
	if g.Title() != "Xenon 2000" || info.Title != g.Title() {
		t.Errorf("Title() = %q, registered title %q", g.Title(), info.Title)
	}
}
