package storage

import (
	"os"
	"path/filepath"
	"testing"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveAndRecentRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{WorldID: "journey", Outcome: OutcomeCaught, Steps: 1, ElapsedSecs: 12.5, Seed: 42},
		{WorldID: "journey", Outcome: OutcomeTimeout, Steps: 3, ElapsedSecs: 60, Seed: 42},
		{WorldID: "journey", Outcome: OutcomeCompleted, Steps: 5, ElapsedSecs: 48.25, Seed: 7},
		{WorldID: "other", Outcome: OutcomeCompleted, Steps: 2, ElapsedSecs: 10, Seed: 1},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns("journey", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(recent))
	}

	// newest first
	if recent[0].Outcome != OutcomeCompleted || recent[0].Steps != 5 || recent[0].ElapsedSecs != 48.25 || recent[0].Seed != 7 {
		t.Errorf("Newest run = %+v", recent[0])
	}
	if recent[2].Outcome != OutcomeCaught {
		t.Errorf("Oldest run = %+v", recent[2])
	}
	if recent[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}

	limited, err := store.RecentRuns("journey", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 runs with limit, got %d", len(limited))
	}
}

func TestSaveRunRejectsUnknownOutcome(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(Run{WorldID: "journey", Outcome: "abandoned"}); err == nil {
		t.Error("Expected an error for an unknown outcome")
	}
}

func TestBestRuns(t *testing.T) {
	store := openTestStore(t)

	for _, secs := range []float64{50, 41.5, 58} {
		if _, err := store.SaveRun(Run{WorldID: "journey", Outcome: OutcomeCompleted, Steps: 5, ElapsedSecs: secs}); err != nil {
			t.Fatal(err)
		}
	}
	// a fast loss never ranks
	if _, err := store.SaveRun(Run{WorldID: "journey", Outcome: OutcomeCaught, Steps: 0, ElapsedSecs: 3}); err != nil {
		t.Fatal(err)
	}

	best, err := store.BestRuns("journey", 2)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(best))
	}
	if best[0].ElapsedSecs != 41.5 || best[1].ElapsedSecs != 50 {
		t.Errorf("Best order = %v, %v", best[0].ElapsedSecs, best[1].ElapsedSecs)
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("journey")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty != (Stats{}) {
		t.Errorf("Stats on an empty table = %+v", empty)
	}

	for _, r := range []Run{
		{WorldID: "journey", Outcome: OutcomeCompleted, ElapsedSecs: 55},
		{WorldID: "journey", Outcome: OutcomeCompleted, ElapsedSecs: 44},
		{WorldID: "journey", Outcome: OutcomeTimeout, ElapsedSecs: 60},
		{WorldID: "journey", Outcome: OutcomeCaught, ElapsedSecs: 9},
		{WorldID: "journey", Outcome: OutcomeCaught, ElapsedSecs: 20},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatal(err)
		}
	}

	st, err := store.Stats("journey")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	want := Stats{Runs: 5, Completed: 2, Timeouts: 1, Caught: 2, Best: 44}
	if st != want {
		t.Errorf("Stats = %+v, expected %+v", st, want)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(Run{WorldID: "journey", Outcome: OutcomeTimeout}); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveRun(Run{WorldID: "other", Outcome: OutcomeTimeout}); err != nil {
		t.Fatal(err)
	}

	if err := store.ClearRuns("journey"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.RecentRuns("journey", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	other, _ := store.RecentRuns("other", 10)
	if len(other) != 1 {
		t.Error("ClearRuns touched another world")
	}
}

func TestOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.homeward/runs.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".homeward", "runs.db")); err != nil {
		t.Errorf("Database not created under HOME: %v", err)
	}
}
