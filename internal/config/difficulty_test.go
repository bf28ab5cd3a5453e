package config

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:      ScalingConfig{SpeedMultiplier: 0.5, IntervalReduction: 0.4},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.2},
		{500, 0.6},
		{1000, 1.0},
		{5000, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); !approx(got, tc.expected) {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 600},
	})
	if got := d.Level(99999, 300); !approx(got, 0.5) {
		t.Errorf("Level at half time = %v, expected 0.5", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{IntervalReduction: 1},
	})
	if d.IsEnabled() {
		t.Error("manager should report disabled")
	}
	if got := d.Level(10000, 10000); !approx(got, 0.3) {
		t.Errorf("disabled Level = %v, expected initial 0.3", got)
	}
}

func TestDifficultyIntervalAndSpeed(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 0.5, IntervalReduction: 0.4},
	})

	if got := d.Interval(2.0, 0, 0); !approx(got, 2.0) {
		t.Errorf("Interval at level 0 = %v, expected 2.0", got)
	}
	if got := d.Interval(2.0, 100, 0); !approx(got, 1.2) {
		t.Errorf("Interval at max = %v, expected 1.2", got)
	}
	if got := d.Speed(120, 100, 0); !approx(got, 180) {
		t.Errorf("Speed at max = %v, expected 180", got)
	}

	harsh := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 1},
		Scaling:     ScalingConfig{IntervalReduction: 5},
	})
	if got := harsh.Interval(2.0, 1, 0); !approx(got, 2.0*minIntervalFactor) {
		t.Errorf("Interval should floor at %v, got %v", 2.0*minIntervalFactor, got)
	}
}
