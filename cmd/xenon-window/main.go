// xenon-window plays Xenon 2000 in a desktop window with real sprites.
//
// Usage:
//
//	xenon-window [--assets dir] [--config file] [--difficulty preset] [--seed n]
//
// Keys: WASD/Arrows move, Space fires, R restarts, P pauses,
// F toggles fullscreen, Esc quits. Gamepads are supported.
package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/xenon/internal/config"
	"github.com/vovakirdan/xenon/internal/games/xenon"
	"github.com/vovakirdan/xenon/internal/platform/window"
)

var (
	flagConfig     string
	flagDifficulty string
	flagAssets     string
	flagSeed       int64
	flagDebug      bool
)

var rootCmd = &cobra.Command{
	Use:   "xenon-window",
	Short: "Play Xenon 2000 in a window",
	Long: `Opens an 800x600 window and plays Xenon 2000 with BMP sprites.

Sprites are loaded from --assets (or assets.dir in the config file).
Magenta (255,0,255) pixels are transparent.

Examples:
  xenon-window --assets ./graphics
  xenon-window --difficulty hard --seed 42`,
	SilenceUsage: true,
	RunE:         runWindow,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory holding the sprite BMPs")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "xenon-window",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	xenon.SetConfigPath(flagConfig)
	xenon.SetDifficultyPreset(preset)

	cfg, err := xenon.LoadConfig()
	if err != nil {
		return err
	}
	if flagAssets != "" {
		cfg.Assets.Dir = flagAssets
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("starting", "seed", seed, "assets", cfg.Assets.Dir, "difficulty", preset)

	loader := window.NewLoader(cfg.Assets.Dir)
	game, err := xenon.New(xenon.Context{
		Assets: loader,
		Config: cfg,
		Rand:   rand.New(rand.NewSource(seed)),
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("starting game: %w", err)
	}

	settings := window.DefaultSettings()
	store, err := window.OpenSettings("xenon")
	if err != nil {
		logger.Warn("window settings unavailable", "err", err)
	} else if settings, err = store.Load(); err != nil {
		logger.Warn("could not read window settings", "err", err)
		settings = window.DefaultSettings()
	}

	host := window.NewHost(game, loader, settings, store, logger)
	host.Apply("Xenon 2000")

	if err := ebiten.RunGame(host); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
