package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/xenon/internal/platform/tui"
	"github.com/vovakirdan/xenon/internal/registry"
	"github.com/vovakirdan/xenon/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
	flagRunID       string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top 10 runs for a game (default: xenon).

Examples:
  xenon scores
  xenon scores -i            # browse in a table
  xenon scores --run <id>    # show one run and how to replay it
  xenon scores --clear       # forget every stored run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in an interactive table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored runs of the game")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show the run with this ID")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := gameArg(args)
	info, ok := registry.Lookup(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q, run 'xenon list' to see available games", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared all runs of %s.\n", info.Title)
		return nil
	case flagRunID != "":
		return showRun(store, flagRunID)
	case flagInteractive:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, gameID, info.Title, width, height)
	}

	runs, err := store.TopRuns(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'xenon play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %-16s  %s\n", "Rank", "Score", "Outcome", "Date", "Run")
	fmt.Printf("  %-4s  %-10s  %-8s  %-16s  %s\n", "----", "-----", "-------", "----", "---")

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-8s  %-16s  %s\n", i+1, r.Score, r.Outcome, dateStr, r.RunID)
	}

	fmt.Println()
	if best, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Runs: %d  Victories: %d\n", stats.RunsCount, stats.Victories)
	}
	return nil
}

func showRun(store *storage.Store, runID string) error {
	r, err := store.RunByID(runID)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("no run with ID %q", runID)
	}

	fmt.Printf("Run      %s\n", r.RunID)
	fmt.Printf("Game     %s\n", r.GameID)
	fmt.Printf("Score    %d\n", r.Score)
	fmt.Printf("Outcome  %s\n", r.Outcome)
	fmt.Printf("Ticks    %d\n", r.Ticks)
	fmt.Printf("Seed     %d\n", r.Seed)
	fmt.Printf("Played   %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Println()
	fmt.Printf("Replay the same waves with: xenon play %s --seed %d\n", r.GameID, r.Seed)
	return nil
}
