package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
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
		t.Error("database file was not created")
	}
}

func TestStoreSaveAndRetrieveRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveRun("dragon", score); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns("dragon", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}

	// Sorted best first
	want := []int{200, 100, 50}
	for i, w := range want {
		if runs[i].Score != w {
			t.Errorf("run %d: score = %d, expected %d", i, runs[i].Score, w)
		}
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 15; i++ {
		if _, err := store.SaveRun("dragon", i); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns("dragon", 5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 5 {
		t.Errorf("expected 5 runs, got %d", len(runs))
	}
	if runs[0].Score != 15 {
		t.Errorf("best run = %d, expected 15", runs[0].Score)
	}

	// Zero limit falls back to the default of 10
	runs, err = store.TopRuns("dragon", 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 10 {
		t.Errorf("expected 10 runs with default limit, got %d", len(runs))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No row yet: zero, no error
	hs, err := store.HighScore("dragon")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 0 {
		t.Errorf("empty high score = %d, expected 0", hs)
	}

	if err := store.SetHighScore("dragon", 12); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	hs, err = store.HighScore("dragon")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 12 {
		t.Errorf("high score = %d, expected 12", hs)
	}

	// Upsert replaces; the store does not compare
	if err := store.SetHighScore("dragon", 7); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	hs, _ = store.HighScore("dragon")
	if hs != 7 {
		t.Errorf("high score after overwrite = %d, expected 7", hs)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("dragon", 10)
	store.SaveRun("dragon", 20)
	store.SetHighScore("dragon", 20)

	if err := store.ClearRuns("dragon"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.TopRuns("dragon", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs after clear, got %d", len(runs))
	}

	// High score survives run history clearing
	hs, _ := store.HighScore("dragon")
	if hs != 20 {
		t.Errorf("high score after ClearRuns = %d, expected 20", hs)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{2, 4, 6} {
		store.SaveRun("dragon", score)
	}

	stats, err := store.Stats("dragon")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.RunsCount != 3 {
		t.Errorf("RunsCount = %d, expected 3", stats.RunsCount)
	}
	if stats.BestRun != 6 {
		t.Errorf("BestRun = %d, expected 6", stats.BestRun)
	}
	if stats.AvgScore != 4 {
		t.Errorf("AvgScore = %v, expected 4", stats.AvgScore)
	}
	if stats.TotalScore != 12 {
		t.Errorf("TotalScore = %d, expected 12", stats.TotalScore)
	}
}

func TestStoreStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats("dragon")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunsCount != 0 || stats.BestRun != 0 {
		t.Errorf("empty stats = %+v", stats)
	}
}
