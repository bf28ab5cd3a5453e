package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const xenonFile = "xenon.yaml"

// LoadXenon loads the Xenon configuration.
// Search order: customPath -> ~/.xenon/configs/xenon.yaml -> ./configs/xenon.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names. Only a custom path reports read or parse errors; the other
// locations fall through silently.
func LoadXenon(customPath string) (XenonConfig, error) {
	if customPath != "" {
		cfg, err := parseXenon(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	if userCfgPath := userConfigPath(xenonFile); userCfgPath != "" {
		if cfg, err := parseXenon(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parseXenon(filepath.Join("configs", xenonFile)); err == nil {
		return cfg, nil
	}

	return EmbeddedXenon(), nil
}

// EmbeddedXenon returns the configuration shipped inside the binary.
func EmbeddedXenon() XenonConfig {
	cfg := DefaultXenonConfig()
	if err := yaml.Unmarshal(defaultXenonYAML, &cfg); err != nil {
		return DefaultXenonConfig()
	}
	return cfg
}

func parseXenon(path string) (XenonConfig, error) {
	cfg := EmbeddedXenon()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".xenon", "configs", filename)
}

// ApplyXenonPreset modifies the config based on a difficulty preset.
func ApplyXenonPreset(cfg *XenonConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Boss.HP = 20
		cfg.PowerUps.DropChance = 0.3
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Boss.HP = 45
		cfg.PowerUps.DropChance = 0.12
	}
}

// ParsePreset converts a flag value to a preset, defaulting to normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}
