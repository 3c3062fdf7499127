package storage

import (
	"path/filepath"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "results.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.Close()
}

func TestSaveAndTopResults(t *testing.T) {
	store := testStore(t)

	results := []Result{
		{Outcome: "aborted", Lambdas: 1, Moves: 12, Route: "RRDA"},
		{Outcome: "win", Lambdas: 3, Moves: 20, Route: "RRDDLLUU"},
		{Outcome: "win", Lambdas: 3, Moves: 15, Route: "RRDDLL"},
		{Outcome: "crushed", Lambdas: 2, Moves: 8, Route: "RRDD"},
	}
	for _, r := range results {
		if _, err := store.SaveResult("contest1", r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	entries, err := store.TopResults("contest1", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("TopResults() returned %d entries, want 4", len(entries))
	}

	// Most lambdas first; fewer moves break ties.
	if entries[0].Moves != 15 || entries[0].Outcome != "win" {
		t.Errorf("Top entry = %+v, want the 15-move win", entries[0])
	}
	if entries[1].Moves != 20 {
		t.Errorf("Second entry moves = %d, want 20", entries[1].Moves)
	}
	if entries[3].Lambdas != 1 {
		t.Errorf("Last entry lambdas = %d, want 1", entries[3].Lambdas)
	}
}

func TestTopResultsScopedToLevel(t *testing.T) {
	store := testStore(t)

	if _, err := store.SaveResult("contest1", Result{Outcome: "win", Lambdas: 1, Moves: 5}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if _, err := store.SaveResult("flood1", Result{Outcome: "drowned", Lambdas: 0, Moves: 9}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	entries, err := store.TopResults("contest1", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(entries) != 1 || entries[0].LevelID != "contest1" {
		t.Errorf("TopResults() = %+v, want only contest1 results", entries)
	}
}

func TestBestResult(t *testing.T) {
	store := testStore(t)

	best, err := store.BestResult("unplayed")
	if err != nil {
		t.Fatalf("BestResult() failed: %v", err)
	}
	if best != nil {
		t.Errorf("BestResult() for an unplayed level = %+v, want nil", best)
	}

	store.SaveResult("contest1", Result{Outcome: "aborted", Lambdas: 2, Moves: 30, Route: "RA"})
	store.SaveResult("contest1", Result{Outcome: "win", Lambdas: 3, Moves: 25, Route: "RRR"})

	best, err = store.BestResult("contest1")
	if err != nil {
		t.Fatalf("BestResult() failed: %v", err)
	}
	if best == nil || best.Lambdas != 3 || best.Route != "RRR" {
		t.Errorf("BestResult() = %+v, want the 3-lambda win", best)
	}
}

func TestGetLevelStats(t *testing.T) {
	store := testStore(t)

	stats, err := store.GetLevelStats("contest1")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if stats.Games != 0 || stats.Wins != 0 || stats.BestMoves != 0 {
		t.Errorf("Empty stats = %+v, want zeros", stats)
	}

	store.SaveResult("contest1", Result{Outcome: "win", Lambdas: 3, Moves: 18})
	store.SaveResult("contest1", Result{Outcome: "win", Lambdas: 3, Moves: 22})
	store.SaveResult("contest1", Result{Outcome: "crushed", Lambdas: 1, Moves: 7})

	stats, err = store.GetLevelStats("contest1")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if stats.Games != 3 {
		t.Errorf("Games = %d, want 3", stats.Games)
	}
	if stats.Wins != 2 {
		t.Errorf("Wins = %d, want 2", stats.Wins)
	}
	if stats.BestMoves != 18 {
		t.Errorf("BestMoves = %d, want 18", stats.BestMoves)
	}
}

func TestClearResults(t *testing.T) {
	store := testStore(t)

	store.SaveResult("contest1", Result{Outcome: "win", Lambdas: 1, Moves: 4})
	store.SaveResult("flood1", Result{Outcome: "win", Lambdas: 1, Moves: 6})

	if err := store.ClearResults("contest1"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	entries, err := store.TopResults("contest1", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("TopResults() after clear = %d entries, want 0", len(entries))
	}

	others, err := store.TopResults("flood1", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(others) != 1 {
		t.Errorf("Other level lost results: %d entries, want 1", len(others))
	}
}
