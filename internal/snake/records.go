package snake

import (
	"slices"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// DateLayout formats LeaderboardEntry.Date.
const DateLayout = "2006-01-02"

// LeaderboardEntry is one finished game on the leaderboard.
type LeaderboardEntry struct {
	Score      int               `json:"score"`
	Difficulty config.Difficulty `json:"difficulty"`
	Date       string            `json:"date"`
}

// Records persists the high score and leaderboard across sessions.
type Records interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
	LoadLeaderboard() ([]LeaderboardEntry, error)
	SaveLeaderboard(entries []LeaderboardEntry) error
}

// InsertLeaderboard returns a new leaderboard with entry added, sorted by
// score descending and cut to size. An entry tying an existing score goes
// after it.
func InsertLeaderboard(board []LeaderboardEntry, entry LeaderboardEntry, size int) []LeaderboardEntry {
	out := make([]LeaderboardEntry, 0, len(board)+1)
	out = append(out, board...)
	out = append(out, entry)

	slices.SortStableFunc(out, func(a, b LeaderboardEntry) int {
		return b.Score - a.Score
	})

	if size >= 0 && len(out) > size {
		out = out[:size]
	}
	return out
}

// Qualifies reports whether score would enter a leaderboard of the given size.
func Qualifies(board []LeaderboardEntry, score, size int) bool {
	if len(board) < size {
		return true
	}
	return score > board[len(board)-1].Score
}

// MemoryRecords keeps records in memory. It is used in tests and as the
// fallback when no database is available.
type MemoryRecords struct {
	mu        sync.Mutex
	highScore int
	board     []LeaderboardEntry

	// Err, when set, is returned from every call.
	Err error
}

// NewMemoryRecords creates empty in-memory records.
func NewMemoryRecords() *MemoryRecords {
	return &MemoryRecords{}
}

// LoadHighScore returns the stored high score.
func (m *MemoryRecords) LoadHighScore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	return m.highScore, nil
}

// SaveHighScore stores the high score.
func (m *MemoryRecords) SaveHighScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.highScore = score
	return nil
}

// LoadLeaderboard returns a copy of the stored leaderboard.
func (m *MemoryRecords) LoadLeaderboard() ([]LeaderboardEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return slices.Clone(m.board), nil
}

// SaveLeaderboard replaces the stored leaderboard.
func (m *MemoryRecords) SaveLeaderboard(entries []LeaderboardEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.board = slices.Clone(entries)
	return nil
}
