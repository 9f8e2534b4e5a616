package storage

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Keys under which the game records live in the kv table.
const (
	KeyHighScore   = "highScore"
	KeyLeaderboard = "leaderboard"
)

// LoadHighScore implements snake.Records. A missing key reads as 0.
func (s *Store) LoadHighScore() (int, error) {
	v, ok, err := s.Get(KeyHighScore)
	if err != nil || !ok {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("storage: corrupt %s %q: %w", KeyHighScore, v, err)
	}
	return n, nil
}

// SaveHighScore implements snake.Records.
func (s *Store) SaveHighScore(score int) error {
	return s.Set(KeyHighScore, strconv.Itoa(score))
}

// LoadLeaderboard implements snake.Records. A missing key reads as empty.
func (s *Store) LoadLeaderboard() ([]snake.LeaderboardEntry, error) {
	v, ok, err := s.Get(KeyLeaderboard)
	if err != nil || !ok {
		return nil, err
	}
	var entries []snake.LeaderboardEntry
	if err := json.Unmarshal([]byte(v), &entries); err != nil {
		return nil, fmt.Errorf("storage: corrupt %s: %w", KeyLeaderboard, err)
	}
	return entries, nil
}

// SaveLeaderboard implements snake.Records. The board is stored as a JSON
// array of {score, difficulty, date} objects.
func (s *Store) SaveLeaderboard(entries []snake.LeaderboardEntry) error {
	if entries == nil {
		entries = []snake.LeaderboardEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("storage: cannot encode leaderboard: %w", err)
	}
	return s.Set(KeyLeaderboard, string(data))
}

// ResetRecords clears the high score and leaderboard.
func (s *Store) ResetRecords() error {
	if err := s.Delete(KeyHighScore); err != nil {
		return err
	}
	return s.Delete(KeyLeaderboard)
}

var _ snake.Records = (*Store)(nil)
