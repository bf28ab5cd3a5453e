package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/xenon/internal/storage"
)

type fakeHistory struct {
	runs   []storage.RunRecord
	lookup []string
}

func (h *fakeHistory) TopRuns(string, int) ([]storage.RunRecord, error) {
	return h.runs, nil
}

func (h *fakeHistory) RunByID(id string) (*storage.RunRecord, error) {
	h.lookup = append(h.lookup, id)
	for i := range h.runs {
		if h.runs[i].RunID == id {
			r := h.runs[i]
			return &r, nil
		}
	}
	return nil, nil
}

func (h *fakeHistory) GetGameStats(gameID string) (*storage.GameStats, error) {
	st := &storage.GameStats{GameID: gameID, RunsCount: len(h.runs)}
	for _, r := range h.runs {
		if r.Outcome == storage.OutcomeVictory {
			st.Victories++
		}
		st.HighScore = max(st.HighScore, r.Score)
	}
	return st, nil
}

func sampleHistory() *fakeHistory {
	return &fakeHistory{runs: []storage.RunRecord{
		{RunID: "run-a", Score: 900, Outcome: storage.OutcomeDefeat, Seed: 11, Ticks: 3600},
		{RunID: "run-b", Score: 800, Outcome: storage.OutcomeVictory, Seed: 22, Ticks: 5400},
		{RunID: "run-c", Score: 100, Outcome: storage.OutcomeQuit, Seed: 33, Ticks: 60},
	}}
}

func press(t *testing.T, m ScoreboardModel, msg tea.KeyMsg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(ScoreboardModel)
}

func TestScoreboardVictoryFilter(t *testing.T) {
	m := NewScoreboardModel(sampleHistory(), "xenon", "Xenon 2000", 100, 30)
	if len(m.shown) != 3 {
		t.Fatalf("shown = %d runs, expected 3", len(m.shown))
	}

	m = press(t, m, runeKey('v'))
	if len(m.shown) != 1 || m.shown[0].RunID != "run-b" {
		t.Fatalf("victories only = %+v", m.shown)
	}
	if !strings.Contains(m.View(), "(victories)") {
		t.Error("title should mark the filter")
	}

	m = press(t, m, runeKey('v'))
	if len(m.shown) != 3 {
		t.Errorf("filter off: shown = %d", len(m.shown))
	}
}

func TestScoreboardDetailsReadStoredRun(t *testing.T) {
	h := sampleHistory()
	m := NewScoreboardModel(h, "xenon", "Xenon 2000", 100, 30)
	m = press(t, m, runeKey('v'))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.detail == nil || m.detail.RunID != "run-b" {
		t.Fatalf("detail = %+v", m.detail)
	}
	if len(h.lookup) != 1 || h.lookup[0] != "run-b" {
		t.Errorf("RunByID calls = %v", h.lookup)
	}
	view := m.View()
	if !strings.Contains(view, "--seed 22") || !strings.Contains(view, "1:30") {
		t.Errorf("detail view misses replay seed or play time:\n%s", view)
	}

	m = press(t, m, runeKey('x'))
	if m.detail != nil || m.quitting {
		t.Error("a key should close the detail panel without quitting")
	}
}

func TestScoreboardStatsAndEmptyState(t *testing.T) {
	m := NewScoreboardModel(sampleHistory(), "xenon", "Xenon 2000", 100, 30)
	stats := m.renderStats()
	if !strings.Contains(stats, "best 900") || !strings.Contains(stats, "victories 1 (33%)") {
		t.Errorf("stats = %q", stats)
	}

	empty := NewScoreboardModel(nil, "xenon", "Xenon 2000", 100, 30)
	if !strings.Contains(empty.View(), "No runs recorded yet") {
		t.Error("empty history should say so")
	}
	if m := press(t, empty, tea.KeyMsg{Type: tea.KeyEnter}); m.detail != nil {
		t.Error("enter on an empty board opens nothing")
	}
}

func TestScoreboardSeedColumnNeedsWidth(t *testing.T) {
	if m := NewScoreboardModel(sampleHistory(), "xenon", "X", 100, 30); !m.seedCol {
		t.Error("wide board should show seeds")
	}
	if m := NewScoreboardModel(sampleHistory(), "xenon", "X", 50, 30); m.seedCol {
		t.Error("narrow board should hide seeds")
	}
}

func TestPlayTime(t *testing.T) {
	tests := []struct {
		ticks int
		want  string
	}{
		{0, "0:00"},
		{59, "0:00"},
		{60, "0:01"},
		{3600, "1:00"},
		{5430, "1:30"},
	}
	for _, tc := range tests {
		if got := playTime(tc.ticks); got != tc.want {
			t.Errorf("playTime(%d) = %q, expected %q", tc.ticks, got, tc.want)
		}
	}
}
