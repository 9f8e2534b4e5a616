package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

func TestApplyEnv(t *testing.T) {
	var db, difficulty string
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVar(&db, "db", "default.db", "")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "")

	t.Setenv("SNAKE_DB", "env.db")
	t.Setenv("SNAKE_DIFFICULTY", "hard")
	if err := cmd.Flags().Parse([]string{"--difficulty", "easy"}); err != nil {
		t.Fatal(err)
	}

	if err := applyEnv(cmd); err != nil {
		t.Fatalf("applyEnv: %v", err)
	}
	if db != "env.db" {
		t.Errorf("db = %q, want env.db", db)
	}
	if difficulty != "easy" {
		t.Errorf("difficulty = %q, an explicit flag must win over the environment", difficulty)
	}
}

func TestOpenLoggerCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "snake.log")

	l, err := openLogger(path, true)
	if err != nil {
		t.Fatalf("openLogger: %v", err)
	}
	l.Debug("hello", "n", 1)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}
}

func TestLoadRecordsToleratesCorruptStore(t *testing.T) {
	rec := snake.NewMemoryRecords()
	_ = rec.SaveHighScore(12)
	rec.Err = errors.New("corrupt")

	highScore, board := loadRecords(rec)
	if highScore != 0 || len(board) != 0 {
		t.Errorf("loadRecords = %d, %v, want 0 and empty", highScore, board)
	}
}
