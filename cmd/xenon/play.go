package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/xenon/internal/config"
	"github.com/vovakirdan/xenon/internal/core"
	"github.com/vovakirdan/xenon/internal/games/xenon"
	"github.com/vovakirdan/xenon/internal/platform/tui"
	"github.com/vovakirdan/xenon/internal/registry"
	"github.com/vovakirdan/xenon/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to xenon.

Controls:
  WASD/Arrows  - Move
  Space        - Fire
  P            - Pause
  R/Enter      - Restart (after game over or victory)
  Q/Esc/Ctrl+C - Quit
  Ctrl+S       - Screenshot to ~/.xenon/screenshots

Difficulty options:
  easy   - 5 lives, weaker boss, more power-ups
  normal - Start at 20% difficulty, progresses to max
  hard   - 2 lives, tougher boss, starts at 60% difficulty
  fixed  - No progression, stays at config's initial level

Examples:
  xenon play
  xenon play --difficulty easy
  xenon play --config ./my-xenon.yaml --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := gameArg(args)
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'xenon list' to see available games", gameID)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	xenon.SetConfigPath(flagConfig)
	xenon.SetDifficultyPreset(preset)

	// Fail before taking over the terminal
	if _, err := xenon.LoadConfig(); err != nil {
		return err
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	if a, ok := game.(*xenon.Arcade); ok {
		a.SetLogger(logger)
	}

	var runs tui.RunStore
	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
	} else {
		runs = store
		defer store.Close()
	}

	if err := tui.Run(game, runs, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
