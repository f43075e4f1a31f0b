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
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreBestMissingIsZero(t *testing.T) {
	store := openTestStore(t)

	for _, key := range []string{KeyBestScore, KeyBestHearts, "unknown"} {
		got, err := store.Best(key)
		if err != nil {
			t.Fatalf("Best(%q) failed: %v", key, err)
		}
		if got != 0 {
			t.Errorf("Best(%q) = %d, want 0", key, got)
		}
	}
}

func TestStoreSetBestMonotonic(t *testing.T) {
	store := openTestStore(t)

	steps := []struct {
		value int
		want  int
	}{
		{5, 5},
		{3, 5},
		{5, 5},
		{12, 12},
		{0, 12},
	}

	for _, s := range steps {
		if err := store.SetBest(KeyBestScore, s.value); err != nil {
			t.Fatalf("SetBest(%d) failed: %v", s.value, err)
		}
		got, err := store.Best(KeyBestScore)
		if err != nil {
			t.Fatalf("Best() failed: %v", err)
		}
		if got != s.want {
			t.Errorf("after SetBest(%d): Best() = %d, want %d", s.value, got, s.want)
		}
	}

	// Slots are independent
	hearts, err := store.Best(KeyBestHearts)
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if hearts != 0 {
		t.Errorf("best_hearts = %d, want 0", hearts)
	}
}

func TestStoreBestSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SetBest(KeyBestHearts, 4); err != nil {
		t.Fatalf("SetBest() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	got, err := store.Best(KeyBestHearts)
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if got != 4 {
		t.Errorf("Best() after reopen = %d, want 4", got)
	}
}

func TestStoreSaveAndRankRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Score: 10, Hearts: 1, Cause: "obstacle", Steps: 900},
		{Score: 3, Hearts: 5, Cause: "floor", Steps: 400},
		{Score: 25, Hearts: 2, Cause: "obstacle", Steps: 2000},
		{Score: 10, Hearts: 3, Cause: "floor", Steps: 950},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	byScore, err := store.TopRuns(ByScore, 10)
	if err != nil {
		t.Fatalf("TopRuns(ByScore) failed: %v", err)
	}
	if len(byScore) != 4 {
		t.Fatalf("Expected 4 runs, got %d", len(byScore))
	}
	wantScores := []int{25, 10, 10, 3}
	for i, want := range wantScores {
		if byScore[i].Score != want {
			t.Errorf("byScore[%d].Score = %d, want %d", i, byScore[i].Score, want)
		}
	}
	// Equal score breaks ties by hearts
	if byScore[1].Hearts != 3 {
		t.Errorf("tie break: byScore[1].Hearts = %d, want 3", byScore[1].Hearts)
	}

	byHearts, err := store.TopRuns(ByHearts, 2)
	if err != nil {
		t.Fatalf("TopRuns(ByHearts) failed: %v", err)
	}
	if len(byHearts) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(byHearts))
	}
	if byHearts[0].Hearts != 5 || byHearts[1].Hearts != 3 {
		t.Errorf("byHearts = %d,%d, want 5,3", byHearts[0].Hearts, byHearts[1].Hearts)
	}

	for _, r := range byScore {
		if r.RunID == "" {
			t.Errorf("run %d has empty RunID", r.ID)
		}
	}
}

func TestStoreSaveRunKeepsRunID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(Run{RunID: "fixed-id", Score: 1, Cause: "floor"}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	runs, err := store.TopRuns(ByScore, 1)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].RunID != "fixed-id" {
		t.Errorf("RunID not preserved: %+v", runs)
	}
}

func TestStoreTopRunsDefaultLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveRun(Run{Score: i, Cause: "floor"}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(ByScore, 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 10 {
		t.Errorf("Expected 10 runs, got %d", len(runs))
	}
	if runs[0].Score != 14 {
		t.Errorf("Expected top score 14, got %d", runs[0].Score)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty store failed: %v", err)
	}
	if empty.Runs != 0 || empty.TotalHearts != 0 || empty.AvgScore != 0 {
		t.Errorf("empty stats = %+v", empty)
	}

	for _, r := range []Run{{Score: 4, Hearts: 1, Cause: "floor"}, {Score: 8, Hearts: 2, Cause: "obstacle"}} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 {
		t.Errorf("Runs = %d, want 2", stats.Runs)
	}
	if stats.TotalHearts != 3 {
		t.Errorf("TotalHearts = %d, want 3", stats.TotalHearts)
	}
	if stats.AvgScore != 6 {
		t.Errorf("AvgScore = %v, want 6", stats.AvgScore)
	}
}

func TestStoreClearRunsKeepsBests(t *testing.T) {
	store := openTestStore(t)

	if err := store.SetBest(KeyBestScore, 9); err != nil {
		t.Fatalf("SetBest() failed: %v", err)
	}
	if _, err := store.SaveRun(Run{Score: 9, Cause: "floor"}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.TopRuns(ByScore, 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}

	best, err := store.Best(KeyBestScore)
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if best != 9 {
		t.Errorf("Best() after clear = %d, want 9", best)
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

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestMemoryStoreMonotonic(t *testing.T) {
	m := NewMemoryStore()

	if got, _ := m.Best(KeyBestScore); got != 0 {
		t.Errorf("empty Best() = %d, want 0", got)
	}

	for _, v := range []int{3, 1, 7, 7, 2} {
		if err := m.SetBest(KeyBestScore, v); err != nil {
			t.Fatalf("SetBest(%d) failed: %v", v, err)
		}
	}
	if got, _ := m.Best(KeyBestScore); got != 7 {
		t.Errorf("Best() = %d, want 7", got)
	}
}
