package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []RunRecord{
		{GameID: "xenon", Score: 100, Outcome: OutcomeDefeat},
		{GameID: "xenon", Score: 50, Outcome: OutcomeQuit},
		{GameID: "xenon", Score: 3200, Outcome: OutcomeVictory, Seed: 42, Ticks: 9000},
		{GameID: "other", Score: 500, Outcome: OutcomeDefeat},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns("xenon", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	if runs[0].Score != 3200 || runs[1].Score != 100 || runs[2].Score != 50 {
		t.Errorf("Runs not sorted by score: %+v", runs)
	}
	best := runs[0]
	if best.Outcome != OutcomeVictory || best.Seed != 42 || best.Ticks != 9000 {
		t.Errorf("Best run fields lost: %+v", best)
	}
	if _, err := uuid.Parse(best.RunID); err != nil {
		t.Errorf("RunID %q is not a UUID: %v", best.RunID, err)
	}
}

func TestStoreSaveRunKeepsGivenID(t *testing.T) {
	store := openTestStore(t)

	id := uuid.NewString()
	got, err := store.SaveRun(RunRecord{RunID: id, GameID: "xenon", Score: 10})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if got != id {
		t.Errorf("SaveRun() = %q, expected %q", got, id)
	}

	r, err := store.RunByID(id)
	if err != nil || r == nil {
		t.Fatalf("RunByID() = %v, %v", r, err)
	}
	if r.Outcome != OutcomeQuit {
		t.Errorf("empty outcome should be stored as %q, got %q", OutcomeQuit, r.Outcome)
	}

	if _, err := store.SaveRun(RunRecord{RunID: id, GameID: "xenon"}); err == nil {
		t.Error("duplicate run ID should be rejected")
	}

	missing, err := store.RunByID(uuid.NewString())
	if err != nil || missing != nil {
		t.Errorf("RunByID() of unknown id = %v, %v", missing, err)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(RunRecord{GameID: "test", Score: (i + 1) * 100})
	}

	runs, err := store.TopRuns("test", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("xenon")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveRun(RunRecord{GameID: "xenon", Score: 100})
	store.SaveRun(RunRecord{GameID: "xenon", Score: 300})
	store.SaveRun(RunRecord{GameID: "xenon", Score: 200})

	high, err = store.HighScore("xenon")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{GameID: "xenon", Score: 100})
	store.SaveRun(RunRecord{GameID: "xenon", Score: 200})
	store.SaveRun(RunRecord{GameID: "other", Score: 300})

	if err := store.ClearRuns("xenon"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	cleared, _ := store.TopRuns("xenon", 10)
	if len(cleared) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(cleared))
	}

	kept, _ := store.TopRuns("other", 10)
	if len(kept) != 1 {
		t.Errorf("Other games should not be affected by clearing xenon")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("xenon")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.RunsCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Empty stats = %+v", empty)
	}

	store.SaveRun(RunRecord{GameID: "xenon", Score: 1000, Outcome: OutcomeDefeat})
	store.SaveRun(RunRecord{GameID: "xenon", Score: 4000, Outcome: OutcomeVictory})

	stats, err := store.GetGameStats("xenon")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.Victories != 1 || stats.HighScore != 4000 || stats.AvgScore != 2500 {
		t.Errorf("Stats = %+v", stats)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
