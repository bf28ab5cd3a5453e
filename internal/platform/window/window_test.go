package window

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/vovakirdan/xenon/internal/core"
	"github.com/vovakirdan/xenon/internal/games/xenon"
)

func TestStickIntents(t *testing.T) {
	tests := []struct {
		name   string
		ax, ay float64
		want   xenon.Intents
	}{
		{"centered", 0, 0, xenon.Intents{}},
		{"inside deadzone", 0.2, -0.24, xenon.Intents{}},
		{"left", -0.9, 0, xenon.Intents{Left: true}},
		{"right and down", 0.5, 0.6, xenon.Intents{Right: true, Down: true}},
		{"up", 0.1, -1, xenon.Intents{Up: true}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := stickIntents(tc.ax, tc.ay, StickDeadzone); got != tc.want {
				t.Errorf("stickIntents(%v, %v) = %+v, expected %+v", tc.ax, tc.ay, got, tc.want)
			}
		})
	}
}

func TestMergeIntents(t *testing.T) {
	got := mergeIntents(xenon.Intents{Left: true}, xenon.Intents{Up: true})
	if got != (xenon.Intents{Left: true, Up: true}) {
		t.Errorf("mergeIntents() = %+v", got)
	}
}

func TestDecodeSpriteAppliesColorKey(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, ColorKey)
	src.Set(1, 0, color.RGBA{R: 10, G: 20, B: 30, A: 0xFF})

	var buf bytes.Buffer
	if err := bmp.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}

	img, err := decodeSprite(&buf, ColorKey)
	if err != nil {
		t.Fatalf("decodeSprite() error = %v", err)
	}
	if c := img.NRGBAAt(0, 0); c.A != 0 {
		t.Errorf("key pixel = %+v, expected transparent", c)
	}
	if c := img.NRGBAAt(1, 0); c != (color.NRGBA{R: 10, G: 20, B: 30, A: 0xFF}) {
		t.Errorf("opaque pixel = %+v", c)
	}
}

func TestDecodeSpriteRejectsOtherFormats(t *testing.T) {
	_, err := decodeSprite(strings.NewReader("not an image"), ColorKey)
	if !errors.Is(err, ErrNotBMP) {
		t.Errorf("decodeSprite() error = %v, expected ErrNotBMP", err)
	}
}

func TestLoaderMissingFile(t *testing.T) {
	l := NewLoader(t.TempDir())
	if _, err := l.Load("graphics/nothing.bmp"); err == nil {
		t.Error("Load() of a missing file should fail")
	}
	if l.Image(0) != nil || l.Image(5) != nil {
		t.Error("unknown handles should have no image")
	}
}

func TestSourceRect(t *testing.T) {
	bounds := image.Rect(0, 0, 128, 64)
	tests := []struct {
		name string
		src  core.FRect
		want image.Rectangle
		ok   bool
	}{
		{"frame", core.NewFRect(64, 0, 64, 64), image.Rect(64, 0, 128, 64), true},
		{"clipped", core.NewFRect(100, 32, 64, 64), image.Rect(100, 32, 128, 64), true},
		{"outside", core.NewFRect(200, 0, 8, 8), image.Rectangle{}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := sourceRect(tc.src, bounds)
			if ok != tc.ok || (ok && got != tc.want) {
				t.Errorf("sourceRect() = %v, %v; expected %v, %v", got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", home)

	store, err := OpenSettings("xenon_test")
	if err != nil {
		t.Fatalf("OpenSettings() error = %v", err)
	}

	st, err := store.Load()
	if err != nil || st != DefaultSettings() {
		t.Fatalf("Load() on an empty store = %+v, %v", st, err)
	}

	want := Settings{Scale: 2, Fullscreen: true}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := store.Load()
	if err != nil || got != want {
		t.Errorf("Load() = %+v, %v; expected %+v", got, err, want)
	}
}

func TestSettingsWithoutManager(t *testing.T) {
	var store *SettingsStore
	if err := store.Save(Settings{Scale: 3}); err != nil {
		t.Errorf("Save() on a nil store = %v", err)
	}
	st, _ := store.Load()
	if st != DefaultSettings() {
		t.Errorf("Load() on a nil store = %+v", st)
	}
	if (Settings{Scale: 9}).normalized().Scale != 1 {
		t.Error("out of range scale should reset to 1")
	}
}
