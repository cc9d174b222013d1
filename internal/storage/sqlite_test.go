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

	id, err := store.SaveRun(Run{Seed: 42, Score: 1735, Emeralds: 12, Total: 12, GoalFound: true, Perfect: true, Steps: 180, Frontend: "window"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveRun() returned non-UUID id %q", id)
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}
	if got.Seed != 42 || got.Score != 1735 || got.Emeralds != 12 || !got.GoalFound || !got.Perfect || got.Aborted {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Frontend != "window" {
		t.Errorf("frontend = %q, expected window", got.Frontend)
	}
	if got.CreatedAt.IsZero() {
		t.Error("created_at was not populated")
	}

	missing, err := store.RunByID("nope")
	if err != nil || missing != nil {
		t.Errorf("RunByID(unknown) = %v, %v; expected nil, nil", missing, err)
	}
}

func TestStoreKeepsGivenID(t *testing.T) {
	store := openTestStore(t)
	want := uuid.NewString()

	id, err := store.SaveRun(Run{ID: want, Score: 10, Frontend: "ssh"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id != want {
		t.Errorf("id = %q, expected %q", id, want)
	}
	if _, err := store.SaveRun(Run{ID: want, Score: 20, Frontend: "ssh"}); err == nil {
		t.Error("duplicate id should be rejected")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveRun(Run{Score: (i + 1) * 100, Frontend: "headless"}); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}

	recent, err := store.RecentRuns(0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 5 {
		t.Errorf("Expected 5 recent runs, got %d", len(recent))
	}
}

func TestStoreBestScoreAndCount(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best score of 0 with no runs, got %d", best)
	}

	for _, score := range []int{100, 300, 200} {
		store.SaveRun(Run{Score: score, Frontend: "terminal"})
	}

	best, err = store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("Expected best score of 300, got %d", best)
	}

	n, err := store.RunCount()
	if err != nil {
		t.Fatalf("RunCount() failed: %v", err)
	}
	if n != 3 {
		t.Errorf("Expected 3 runs, got %d", n)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Score: 600, GoalFound: true, Frontend: "window"})
	store.SaveRun(Run{Score: 2400, GoalFound: true, Perfect: true, Emeralds: 12, Total: 12, Frontend: "window"})
	store.SaveRun(Run{Score: 90, Aborted: true, Frontend: "terminal"})

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.BestScore != 2400 || stats.WizardFound != 2 || stats.Perfect != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 1030 {
		t.Errorf("AvgScore = %v, expected 1030", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not populated")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Score: 100, Frontend: "window"})
	store.SaveRun(Run{Score: 200, Frontend: "window"})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	n, _ := store.RunCount()
	if n != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", n)
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
