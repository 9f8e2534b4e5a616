package storage

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// GameRecord is one finished game in the history table.
type GameRecord struct {
	ID         int64
	GameID     string
	Score      int
	Difficulty config.Difficulty
	Length     int
	Ticks      uint64
	Won        bool
	CreatedAt  time.Time
}

// GameStats contains aggregated statistics for one difficulty.
type GameStats struct {
	Difficulty config.Difficulty
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	Wins       int
	LastPlayed time.Time
}

// SaveGame records a finished game. Saving the same GameID twice keeps the
// first record. Returns the row ID, or 0 for a duplicate.
func (s *Store) SaveGame(r GameRecord) (int64, error) {
	created := r.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	res, err := s.db.Exec(
		`INSERT OR IGNORE INTO games (game_id, score, difficulty, length, ticks, won, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Score, string(r.Difficulty), r.Length, int64(r.Ticks), r.Won,
		created.UTC().Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save game: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	if n == 0 {
		return 0, nil
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentGames returns the most recently finished games, newest first.
func (s *Store) RecentGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryGames(
		`SELECT id, game_id, score, difficulty, length, ticks, won, created_at
		 FROM games ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
}

// TopGames returns the best games for a difficulty, or for all difficulties
// when d is empty. Ordered by score descending.
func (s *Store) TopGames(d config.Difficulty, limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	if d == "" {
		return s.queryGames(
			`SELECT id, game_id, score, difficulty, length, ticks, won, created_at
			 FROM games ORDER BY score DESC, id ASC LIMIT ?`,
			limit,
		)
	}
	return s.queryGames(
		`SELECT id, game_id, score, difficulty, length, ticks, won, created_at
		 FROM games WHERE difficulty = ? ORDER BY score DESC, id ASC LIMIT ?`,
		string(d), limit,
	)
}

func (s *Store) queryGames(query string, args ...any) ([]GameRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var out []GameRecord
	for rows.Next() {
		var r GameRecord
		var difficulty string
		var ticks int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Score, &difficulty, &r.Length, &ticks, &r.Won, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Difficulty = config.Difficulty(difficulty)
		r.Ticks = uint64(ticks)
		r.CreatedAt = parseTime(createdAt)
		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// Stats returns aggregated statistics per difficulty that has been played.
func (s *Store) Stats() (map[config.Difficulty]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, COUNT(*), MAX(score), AVG(score), SUM(score), SUM(won), MAX(created_at)
		 FROM games
		 GROUP BY difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[config.Difficulty]*GameStats)
	for rows.Next() {
		var st GameStats
		var difficulty string
		var lastPlayed any
		if err := rows.Scan(&difficulty, &st.GamesCount, &st.HighScore, &st.AvgScore, &st.TotalScore, &st.Wins, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.Difficulty = config.Difficulty(difficulty)
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Difficulty] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// ClearHistory deletes every game record.
func (s *Store) ClearHistory() error {
	if _, err := s.db.Exec("DELETE FROM games"); err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	return nil
}

// GameByID returns the record for gameID, or nil if none exists.
func (s *Store) GameByID(gameID string) (*GameRecord, error) {
	games, err := s.queryGames(
		`SELECT id, game_id, score, difficulty, length, ticks, won, created_at
		 FROM games WHERE game_id = ?`,
		gameID,
	)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, nil
	}
	return &games[0], nil
}

// HistoryWriter is a game observer that appends every finished game to the
// history table.
type HistoryWriter struct {
	store  *Store
	logger *log.Logger
}

// NewHistoryWriter creates a HistoryWriter. logger may be nil.
func NewHistoryWriter(store *Store, logger *log.Logger) *HistoryWriter {
	if logger == nil {
		logger = log.Default()
	}
	return &HistoryWriter{store: store, logger: logger}
}

// OnEvent implements snake.Observer.
func (w *HistoryWriter) OnEvent(e snake.Event) {
	ev, ok := e.(snake.GameOverEvent)
	if !ok {
		return
	}
	_, err := w.store.SaveGame(GameRecord{
		GameID:     ev.GameID,
		Score:      ev.Score,
		Difficulty: ev.Difficulty,
		Length:     ev.Length,
		Ticks:      ev.Ticks,
		Won:        ev.Won,
		CreatedAt:  ev.EndedAt,
	})
	if err != nil {
		w.logger.Warn("failed to record game", "game", ev.GameID, "error", err)
	}
}
