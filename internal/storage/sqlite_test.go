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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("classic", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	// Different world
	if _, err := store.SaveScore("caves", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	for i, want := range []int{200, 100, 50} {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, want)
		}
		if scores[i].WorldID != "classic" {
			t.Errorf("scores[%d].WorldID = %q, expected classic", i, scores[i].WorldID)
		}
	}

	other, err := store.TopScores("caves", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 caves score, got %d", len(other))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 12; i++ {
		store.SaveScore("classic", (i+1)*10)
	}

	// The default limit is 10
	scores, err := store.TopScores("classic", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Expected 10 scores with the default limit, got %d", len(scores))
	}

	scores, _ = store.TopScores("classic", 3)
	if len(scores) != 3 || scores[0].Score != 120 || scores[2].Score != 100 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for an unplayed world, got %d", high)
	}

	store.SaveScore("classic", 100)
	store.SaveScore("classic", 300)
	store.SaveScore("classic", 200)

	high, err = store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("classic", 100)
	store.SaveScore("classic", 200)
	store.SaveScore("caves", 300)

	if err := store.ClearScores("classic"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("classic", 10); len(scores) != 0 {
		t.Errorf("Expected 0 classic scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("caves", 10); len(scores) != 1 {
		t.Errorf("caves scores should not be affected by clearing classic")
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{RunID: "01HZX3B5Q8R0000000000000A1", WorldID: "classic", Score1: 80, Score2: 120, Cycles: 640, Outcome: OutcomeFinished, Recorded: true},
		{WorldID: "classic", Score1: 20, Cycles: 90, Outcome: OutcomeDied},
		{WorldID: "caves", Outcome: OutcomeQuit},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.RunByID("01HZX3B5Q8R0000000000000A1")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() = nil, expected the run")
	}
	if got.Team() != 200 || got.Cycles != 640 || !got.Recorded || got.Outcome != OutcomeFinished {
		t.Errorf("RunByID() = %+v, expected team 200, 640 cycles, recorded, finished", got)
	}

	missing, err := store.RunByID("nope")
	if err != nil || missing != nil {
		t.Errorf("RunByID(nope) = %v, %v, expected nil, nil", missing, err)
	}

	recent, err := store.RecentRuns("classic", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 classic runs, got %d", len(recent))
	}
	if recent[0].Outcome != OutcomeDied || recent[0].RunID == "" {
		t.Errorf("newest run = %+v, expected the died run with a generated id", recent[0])
	}
	if recent[0].Recorded {
		t.Error("died run should not be marked recorded")
	}

	all, _ := store.RecentRuns("", 10)
	if len(all) != 3 {
		t.Errorf("Expected 3 runs across worlds, got %d", len(all))
	}
}

func TestStoreDuplicateRunID(t *testing.T) {
	store := openTestStore(t)

	run := Run{RunID: "01HZX3B5Q8R0000000000000B2", WorldID: "classic", Outcome: OutcomeQuit}
	if _, err := store.SaveRun(run); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun(run); err == nil {
		t.Error("SaveRun() with a duplicate run id succeeded")
	}
}

func TestStoreWorldStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("classic", 100)
	store.SaveScore("classic", 300)

	stats, err := store.GetWorldStats("classic")
	if err != nil {
		t.Fatalf("GetWorldStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("GetWorldStats() = %+v, expected 2 games, high 300, avg 200, total 400", stats)
	}

	empty, err := store.GetWorldStats("caves")
	if err != nil {
		t.Fatalf("GetWorldStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("GetWorldStats(caves) = %+v, expected no games", empty)
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
