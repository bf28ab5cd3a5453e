package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is what a game reports to its host after each tick.
type GameState struct {
	Score    int
	GameOver bool // run finished, either lost or won
	Won      bool // run finished by defeating the boss
	Paused   bool
}

// Outcome returns a short label for a finished run.
func (s GameState) Outcome() string {
	switch {
	case s.Won:
		return "victory"
	case s.GameOver:
		return "defeat"
	default:
		return "playing"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
