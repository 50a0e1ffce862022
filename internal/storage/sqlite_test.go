package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

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

func mustSave(t *testing.T, store *Store, rec ScoreRecord) string {
	t.Helper()
	id, err := store.SaveScore(rec)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	return id
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	mustSave(t, store, ScoreRecord{GameID: "2048", Score: 1200, MaxTile: 128})
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("2048")
	if err != nil || high != 1200 {
		t.Errorf("HighScore() after reopen = %d, %v", high, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id := mustSave(t, store, ScoreRecord{GameID: "2048", Score: 100, MaxTile: 16, Moves: 30, BoardSize: 4})
	mustSave(t, store, ScoreRecord{GameID: "2048", Score: 50, MaxTile: 8, Moves: 12, BoardSize: 4})
	mustSave(t, store, ScoreRecord{GameID: "2048", Score: 200, MaxTile: 32, Moves: 55, BoardSize: 4})
	mustSave(t, store, ScoreRecord{GameID: "2048_endless", Score: 500, MaxTile: 64, BoardSize: 5})

	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveScore() id %q is not a uuid: %v", id, err)
	}

	scores, err := store.TopScores("2048", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	for i, want := range []int{200, 100, 50} {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, want)
		}
	}

	top := scores[0]
	if top.MaxTile != 32 || top.Moves != 55 || top.BoardSize != 4 {
		t.Errorf("top entry = %+v", top)
	}
	if top.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	endless, err := store.TopScores("2048_endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(endless) != 1 || endless[0].BoardSize != 5 {
		t.Errorf("endless scores = %+v", endless)
	}
}

func TestStoreSaveScoreRequiresGameID(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore(ScoreRecord{Score: 10}); err == nil {
		t.Error("SaveScore() without a game id should fail")
	}
}

func TestStoreTopScoresTieBreak(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, ScoreRecord{GameID: "2048", Score: 300, MaxTile: 32})
	mustSave(t, store, ScoreRecord{GameID: "2048", Score: 300, MaxTile: 64})

	scores, err := store.TopScores("2048", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].MaxTile != 64 {
		t.Errorf("equal scores should rank the bigger tile first: %+v", scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		mustSave(t, store, ScoreRecord{GameID: "test", Score: (i + 1) * 100})
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	for _, s := range []int{100, 300, 200} {
		mustSave(t, store, ScoreRecord{GameID: "2048", Score: s})
	}

	high, err = store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, ScoreRecord{GameID: "2048", Score: 100})
	mustSave(t, store, ScoreRecord{GameID: "2048", Score: 200})
	mustSave(t, store, ScoreRecord{GameID: "2048_endless", Score: 300})

	if err := store.ClearScores("2048"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	campaign, _ := store.TopScores("2048", 10)
	if len(campaign) != 0 {
		t.Errorf("Expected 0 campaign scores after clear, got %d", len(campaign))
	}

	endless, _ := store.TopScores("2048_endless", 10)
	if len(endless) != 1 {
		t.Errorf("Endless scores should not be affected by clearing campaign")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := range 20 {
		mustSave(t, store, ScoreRecord{GameID: "test", Score: i * 10})
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)
	played := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	store.now = func() time.Time { return played }

	empty, err := store.GetGameStats("2048")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("stats for an unplayed game = %+v", empty)
	}

	mustSave(t, store, ScoreRecord{GameID: "2048", Score: 100, MaxTile: 16, Moves: 40})
	mustSave(t, store, ScoreRecord{GameID: "2048", Score: 300, MaxTile: 64, Moves: 90})
	mustSave(t, store, ScoreRecord{GameID: "2048_endless", Score: 50, MaxTile: 8, Moves: 10})

	stats, err := store.GetGameStats("2048")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.BestTile != 64 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 || stats.TotalScore != 400 || stats.TotalMoves != 130 {
		t.Errorf("aggregates = %+v", stats)
	}
	if !stats.LastPlayed.Equal(played) {
		t.Errorf("LastPlayed = %v, want %v", stats.LastPlayed, played)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("GetAllGamesStats() returned %d games, want 2", len(all))
	}
	if all["2048_endless"].BestTile != 8 {
		t.Errorf("endless stats = %+v", all["2048_endless"])
	}
}

func TestStoreNestedPath(t *testing.T) {
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
