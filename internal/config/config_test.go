package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedMatchesDefaults(t *testing.T) {
	if got, want := EmbeddedXenon(), DefaultXenonConfig(); !reflect.DeepEqual(got, want) {
		t.Errorf("embedded yaml and DefaultXenonConfig diverge:\n got  %+v\n want %+v", got, want)
	}
	if err := DefaultXenonConfig().Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadXenonCustomPathOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xenon.yaml")
	data := []byte("player:\n  lives: 7\nboss:\n  score_threshold: 500\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadXenon(path)
	if err != nil {
		t.Fatalf("LoadXenon() error = %v", err)
	}
	if cfg.Player.Lives != 7 {
		t.Errorf("lives = %d, expected 7", cfg.Player.Lives)
	}
	if cfg.Boss.ScoreThreshold != 500 {
		t.Errorf("score_threshold = %d, expected 500", cfg.Boss.ScoreThreshold)
	}
	// untouched keys keep their defaults
	if cfg.Player.Speed != 300 {
		t.Errorf("speed = %v, expected default 300", cfg.Player.Speed)
	}
}

func TestLoadXenonErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadXenon(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadXenon(bad); err == nil {
		t.Error("malformed yaml should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("powerups:\n  shield_policy: sometimes\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadXenon(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("unknown shield policy error = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*XenonConfig)
	}{
		{"zero arena", func(c *XenonConfig) { c.Arena.Width = 0 }},
		{"no lives", func(c *XenonConfig) { c.Player.Lives = 0 }},
		{"spread too short", func(c *XenonConfig) {
			c.Weapons.MaxLevel = 2
			c.Weapons.SpreadSpeeds = c.Weapons.SpreadSpeeds[:1]
		}},
		{"level above two", func(c *XenonConfig) {
			c.Weapons.MaxLevel = 3
			c.Weapons.SpreadSpeeds = []float64{120, 240, 360}
		}},
		{"negative level", func(c *XenonConfig) { c.Weapons.MaxLevel = -1 }},
		{"no asteroid sizes", func(c *XenonConfig) { c.Asteroids.Sizes = nil }},
		{"inverted interval", func(c *XenonConfig) { c.Asteroids.MaxInterval = 1 }},
		{"zero weights", func(c *XenonConfig) { c.PowerUps.Weights = PowerUpWeights{} }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultXenonConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyXenonPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		enabled   bool
		lives     int
		initLevel float64
	}{
		{DifficultyEasy, true, 5, 0.0},
		{DifficultyNormal, true, 3, 0.2},
		{DifficultyHard, true, 2, 0.6},
		{DifficultyFixed, false, 3, 0.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultXenonConfig()
			ApplyXenonPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Player.Lives != tc.lives {
				t.Errorf("lives = %d, expected %d", cfg.Player.Lives, tc.lives)
			}
			if cfg.Difficulty.InitialLevel != tc.initLevel {
				t.Errorf("initial level = %v, expected %v", cfg.Difficulty.InitialLevel, tc.initLevel)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
}
