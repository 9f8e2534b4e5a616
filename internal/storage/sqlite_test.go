package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/snake"
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
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestKV(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Get("missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok %v, err %v", ok, err)
	}
	if err := store.Set("k", "one"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set("k", "two"); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}
	v, ok, err := store.Get("k")
	if err != nil || !ok || v != "two" {
		t.Errorf("Get(k) = %q, %v, %v", v, ok, err)
	}
	if err := store.Delete("k"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, ok, _ := store.Get("k"); ok {
		t.Error("key still present after Delete")
	}
}

func TestHighScoreRoundTrip(t *testing.T) {
	store := openTestStore(t)

	hs, err := store.LoadHighScore()
	if err != nil || hs != 0 {
		t.Fatalf("empty LoadHighScore() = %d, %v", hs, err)
	}
	if err := store.SaveHighScore(42); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	if hs, _ := store.LoadHighScore(); hs != 42 {
		t.Errorf("LoadHighScore() = %d, want 42", hs)
	}
}

func TestCorruptHighScore(t *testing.T) {
	store := openTestStore(t)
	_ = store.Set(KeyHighScore, "lots")

	if _, err := store.LoadHighScore(); err == nil {
		t.Error("expected error for corrupt high score")
	}
}

func TestLeaderboardRoundTrip(t *testing.T) {
	store := openTestStore(t)

	board, err := store.LoadLeaderboard()
	if err != nil || len(board) != 0 {
		t.Fatalf("empty LoadLeaderboard() = %v, %v", board, err)
	}

	want := []snake.LeaderboardEntry{
		{Score: 9, Difficulty: config.DifficultyHard, Date: "2024-03-09"},
		{Score: 4, Difficulty: config.DifficultyEasy, Date: "2024-03-08"},
	}
	if err := store.SaveLeaderboard(want); err != nil {
		t.Fatalf("SaveLeaderboard() failed: %v", err)
	}

	got, err := store.LoadLeaderboard()
	if err != nil {
		t.Fatalf("LoadLeaderboard() failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	raw, _, _ := store.Get(KeyLeaderboard)
	if raw != `[{"score":9,"difficulty":"hard","date":"2024-03-09"},{"score":4,"difficulty":"easy","date":"2024-03-08"}]` {
		t.Errorf("stored JSON = %s", raw)
	}
}

func TestResetRecords(t *testing.T) {
	store := openTestStore(t)
	_ = store.SaveHighScore(3)
	_ = store.SaveLeaderboard([]snake.LeaderboardEntry{{Score: 3}})

	if err := store.ResetRecords(); err != nil {
		t.Fatalf("ResetRecords() failed: %v", err)
	}
	if hs, _ := store.LoadHighScore(); hs != 0 {
		t.Errorf("high score = %d after reset", hs)
	}
	if board, _ := store.LoadLeaderboard(); len(board) != 0 {
		t.Errorf("leaderboard = %v after reset", board)
	}
}

func TestSaveGameAndQuery(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC)

	games := []GameRecord{
		{GameID: "a", Score: 5, Difficulty: config.DifficultyEasy, Length: 6, Ticks: 80, CreatedAt: base},
		{GameID: "b", Score: 12, Difficulty: config.DifficultyHard, Length: 13, Ticks: 200, CreatedAt: base.Add(time.Minute)},
		{GameID: "c", Score: 8, Difficulty: config.DifficultyEasy, Length: 9, Ticks: 120, Won: true, CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, g := range games {
		if _, err := store.SaveGame(g); err != nil {
			t.Fatalf("SaveGame(%s) failed: %v", g.GameID, err)
		}
	}

	// Duplicate game IDs are ignored.
	id, err := store.SaveGame(GameRecord{GameID: "a", Score: 99, Difficulty: config.DifficultyEasy})
	if err != nil || id != 0 {
		t.Errorf("duplicate SaveGame() = %d, %v", id, err)
	}

	top, err := store.TopGames("", 10)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}
	if len(top) != 3 || top[0].GameID != "b" || top[1].GameID != "c" || top[2].GameID != "a" {
		t.Errorf("TopGames order wrong: %+v", top)
	}

	easy, _ := store.TopGames(config.DifficultyEasy, 10)
	if len(easy) != 2 {
		t.Errorf("easy games = %d, want 2", len(easy))
	}

	recent, err := store.RecentGames(1)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(recent) != 1 || recent[0].GameID != "c" || !recent[0].Won || recent[0].Ticks != 120 {
		t.Errorf("RecentGames = %+v", recent)
	}

	g, err := store.GameByID("missing")
	if err != nil || g != nil {
		t.Errorf("GameByID(missing) = %v, %v", g, err)
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)
	for i, score := range []int{10, 20, 30} {
		_, _ = store.SaveGame(GameRecord{
			GameID:     string(rune('a' + i)),
			Score:      score,
			Difficulty: config.DifficultyMedium,
			Won:        i == 2,
		})
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	st := stats[config.DifficultyMedium]
	if st == nil {
		t.Fatal("missing medium stats")
	}
	if st.GamesCount != 3 || st.HighScore != 30 || st.AvgScore != 20 || st.TotalScore != 60 || st.Wins != 1 {
		t.Errorf("stats = %+v", st)
	}
	if _, ok := stats[config.DifficultyHard]; ok {
		t.Error("unplayed difficulty should be absent")
	}
}

func TestHistoryWriter(t *testing.T) {
	store := openTestStore(t)
	w := NewHistoryWriter(store, nil)

	w.OnEvent(snake.TickEvent{})
	w.OnEvent(snake.GameOverEvent{
		GameID:     "g-1",
		Score:      7,
		Difficulty: config.DifficultyHard,
		Length:     8,
		Ticks:      90,
	})

	g, err := store.GameByID("g-1")
	if err != nil || g == nil {
		t.Fatalf("GameByID() = %v, %v", g, err)
	}
	if g.Score != 7 || g.Difficulty != config.DifficultyHard || g.Length != 8 {
		t.Errorf("record = %+v", g)
	}
}

func TestStoreBacksGame(t *testing.T) {
	store := openTestStore(t)
	_ = store.SaveHighScore(1)

	clock := snake.NewManualClock(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC))
	g, err := snake.New(snake.DefaultConfig(config.DifficultyEasy), clock, store)
	if err != nil {
		t.Fatalf("snake.New() failed: %v", err)
	}
	defer g.Close()

	if g.HighScore() != 1 {
		t.Errorf("HighScore = %d, want 1 from store", g.HighScore())
	}
}
