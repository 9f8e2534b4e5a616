package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func TestDifficultyMenu(t *testing.T) {
	periods := config.Default().TickPeriods()
	m := NewDifficultyMenuModel(periods, config.DifficultyMedium, 12, 80, 24)

	if view := m.View(); !strings.Contains(view, "100ms") || !strings.Contains(view, "High score: 12") {
		t.Errorf("view = %q", view)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("selecting should quit the menu program")
	}
	d, ok := next.(DifficultyMenuModel).Selected()
	if !ok || d != config.DifficultyHard {
		t.Errorf("Selected = %v, %v, want hard", d, ok)
	}
}

func TestDifficultyMenuNumberKey(t *testing.T) {
	m := NewDifficultyMenuModel(config.Default().TickPeriods(), config.DifficultyHard, 0, 80, 24)
	next, _ := m.Update(runeKey('1'))
	if d, ok := next.(DifficultyMenuModel).Selected(); !ok || d != config.DifficultyEasy {
		t.Errorf("Selected = %v, %v, want easy", d, ok)
	}
}

func TestDifficultyMenuQuit(t *testing.T) {
	m := NewDifficultyMenuModel(config.Default().TickPeriods(), config.DifficultyEasy, 0, 80, 24)
	next, _ := m.Update(runeKey('q'))
	if _, ok := next.(DifficultyMenuModel).Selected(); ok {
		t.Error("quit should not select")
	}
	if !next.(DifficultyMenuModel).IsQuitting() {
		t.Error("IsQuitting = false")
	}
}

type fakeSource struct {
	games []storage.GameRecord
}

func (fakeSource) LoadHighScore() (int, error) { return 9, nil }
func (fakeSource) LoadLeaderboard() ([]snake.LeaderboardEntry, error) {
	return []snake.LeaderboardEntry{{Score: 9, Difficulty: config.DifficultyHard, Date: "2024-03-09"}}, nil
}
func (f fakeSource) TopGames(d config.Difficulty, _ int) ([]storage.GameRecord, error) {
	var out []storage.GameRecord
	for _, g := range f.games {
		if d == "" || g.Difficulty == d {
			out = append(out, g)
		}
	}
	return out, nil
}

func TestScoreboardTabs(t *testing.T) {
	src := fakeSource{games: []storage.GameRecord{
		{GameID: "a", Score: 9, Difficulty: config.DifficultyHard, Length: 10, CreatedAt: time.Now()},
		{GameID: "b", Score: 3, Difficulty: config.DifficultyEasy, Length: 4, CreatedAt: time.Now()},
	}}
	m := NewScoreboardModel(src, 100, 30)

	view := m.View()
	if !strings.Contains(view, "HIGH SCORE 9") || !strings.Contains(view, "2024-03-09") {
		t.Errorf("view missing records:\n%s", view)
	}
	if len(m.games) != 2 {
		t.Fatalf("All tab has %d games, want 2", len(m.games))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	sm := next.(ScoreboardModel)
	if sm.tabs[sm.tabCursor].difficulty != config.DifficultyEasy || len(sm.games) != 1 {
		t.Errorf("easy tab: cursor %d games %d", sm.tabCursor, len(sm.games))
	}

	next, _ = sm.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	sm = next.(ScoreboardModel)
	if sm.tabs[sm.tabCursor].difficulty != config.DifficultyHard {
		t.Errorf("wrapped to %q, want hard", sm.tabs[sm.tabCursor].difficulty)
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if !strings.Contains(m.View(), "No games recorded yet") {
		t.Error("expected empty message")
	}
}

func TestLeaderboardText(t *testing.T) {
	got := LeaderboardText([]snake.LeaderboardEntry{
		{Score: 9, Difficulty: config.DifficultyHard, Date: "2024-03-09"},
		{Score: 7, Difficulty: config.DifficultyEasy, Date: "2024-03-08"},
	})
	lines := strings.Split(got, "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "1.    9  Hard") {
		t.Errorf("LeaderboardText = %q", got)
	}
}
