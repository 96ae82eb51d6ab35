package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

func mustSave(t *testing.T, store *Store, r Result) {
	t.Helper()
	if _, err := store.SaveScore(r); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
}

func TestStoreOpenCreatesNestedFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Result{GameID: "snake", Score: 100, Duration: 42 * time.Second, Player: "alice"})
	mustSave(t, store, Result{GameID: "snake", Score: 50})
	mustSave(t, store, Result{GameID: "snake", Score: 200})
	mustSave(t, store, Result{GameID: "other", Score: 500})

	scores, err := store.TopScores("snake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}

	alice := scores[1]
	if alice.Player != "alice" || alice.Duration != 42*time.Second {
		t.Errorf("entry = %+v, expected player alice with 42s", alice)
	}
	if alice.GameID != "snake" || alice.ID == 0 {
		t.Errorf("entry = %+v, expected a snake row with an ID", alice)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		mustSave(t, store, Result{GameID: "snake", Score: (i + 1) * 100})
	}

	scores, err := store.TopScores("snake", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, err := store.TopScores("snake", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("non-positive limit should default to 10, got %d rows", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("snake")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	mustSave(t, store, Result{GameID: "snake", Score: 100})
	mustSave(t, store, Result{GameID: "snake", Score: 300})

	if high, _ = store.HighScore("snake"); high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	// A stored high score above the history wins.
	if err := store.SetHighScore("snake", 450); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	if high, _ = store.HighScore("snake"); high != 450 {
		t.Errorf("Expected high score of 450, got %d", high)
	}

	// Updating replaces the stored value.
	if err := store.SetHighScore("snake", 500); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	if high, _ = store.HighScore("snake"); high != 500 {
		t.Errorf("Expected high score of 500, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Result{GameID: "snake", Score: 100})
	mustSave(t, store, Result{GameID: "other", Score: 300})
	if err := store.SetHighScore("snake", 900); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}

	if err := store.ClearScores("snake"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("snake", 10); len(scores) != 0 {
		t.Errorf("Expected 0 snake scores after clear, got %d", len(scores))
	}
	if high, _ := store.HighScore("snake"); high != 0 {
		t.Errorf("Expected the high score to be cleared, got %d", high)
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("Other games should not be affected by clearing snake")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		mustSave(t, store, Result{GameID: "snake", Score: i * 10})
	}

	scores, err := store.AllScores("snake")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("snake")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	mustSave(t, store, Result{GameID: "snake", Score: 10, Duration: 10 * time.Second})
	mustSave(t, store, Result{GameID: "snake", Score: 30, Duration: 50 * time.Second})

	stats, err := store.GetGameStats("snake")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.TotalScore != 40 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, expected 20", stats.AvgScore)
	}
	if stats.TotalPlayed != time.Minute || stats.LongestRound != 50*time.Second {
		t.Errorf("durations = %v/%v, expected 1m/50s", stats.TotalPlayed, stats.LongestRound)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestDBHighScoresAdapter(t *testing.T) {
	store := openTestStore(t)
	scores := store.HighScores("snake", nil)

	if got := scores.LoadHighScore(); got != 0 {
		t.Errorf("LoadHighScore() = %d, expected 0", got)
	}

	scores.SaveHighScore(70)
	if got := scores.LoadHighScore(); got != 70 {
		t.Errorf("LoadHighScore() = %d, expected 70", got)
	}

	if rows, _ := store.AllScores("snake"); len(rows) != 0 {
		t.Errorf("saving a high score should not add history rows, got %d", len(rows))
	}
}

func TestDBHighScoresAfterClose(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	scores := store.HighScores("snake", nil)
	store.Close()

	// Errors are swallowed.
	scores.SaveHighScore(10)
	if got := scores.LoadHighScore(); got != 0 {
		t.Errorf("LoadHighScore() on a closed store = %d, expected 0", got)
	}
}
