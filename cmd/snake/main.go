// snake is the classic snake game for the terminal.
//
// Usage:
//
//	snake play               - Play (shows the difficulty menu)
//	snake scores             - Show high score, leaderboard and history
//	snake difficulties       - List difficulty presets
//	snake replay [file]      - Watch a recorded game
//
// Global flags:
//
//	--seed <value>   - Set RNG seed for reproducible food placement
//	--db <path>      - Set database path (default: ~/.snake/snake.db)
//	--config <path>  - Use a custom config file
//	--log <path>     - Set log file (default: ~/.snake/snake.log)
//
// Flags left unset fall back to SNAKE_DB, SNAKE_CONFIG, SNAKE_LOG and
// SNAKE_DIFFICULTY, which may also come from a .env file.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogPath string
	flagDebug   bool

	logger = log.New(os.Stderr)
)

// envFlags maps persistent and command flags to environment variables.
var envFlags = map[string]string{
	"db":         "SNAKE_DB",
	"config":     "SNAKE_CONFIG",
	"log":        "SNAKE_LOG",
	"difficulty": "SNAKE_DIFFICULTY",
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: could not load .env: %v\n", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake on a wrapping grid. Eat food to grow; running into
yourself ends the game. Edges wrap around.

Available commands:
  play          - Play a game
  scores        - View high score, leaderboard and history
  difficulties  - List difficulty presets
  replay        - Watch a recorded game

Examples:
  snake play
  snake play --difficulty hard
  snake scores
  snake replay`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/snake.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.snake/snake.log", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug messages")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(difficultiesCmd)
	rootCmd.AddCommand(replayCmd)
}

// setup applies environment defaults and opens the log file.
func setup(cmd *cobra.Command, _ []string) error {
	if err := applyEnv(cmd); err != nil {
		return err
	}
	l, err := openLogger(flagLogPath, flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging to stderr: %v\n", err)
		return nil
	}
	logger = l
	return nil
}

// applyEnv sets every flag the user did not pass from its environment
// variable, if present.
func applyEnv(cmd *cobra.Command) error {
	for name, env := range envFlags {
		f := cmd.Flags().Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		v, ok := os.LookupEnv(env)
		if !ok || v == "" {
			continue
		}
		if err := f.Value.Set(v); err != nil {
			return fmt.Errorf("%s: %w", env, err)
		}
	}
	return nil
}

// openLogger creates the file logger. The TUI owns the terminal, so logs
// never go to stdout or stderr while a game runs.
func openLogger(path string, debug bool) (*log.Logger, error) {
	path = config.ExpandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if debug {
		l.SetLevel(log.DebugLevel)
	}
	return l, nil
}

// loadConfig loads the game config, exiting on a bad --config file.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// runtimeConfig reads the terminal size.
func runtimeConfig() core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.Seed = flagSeed
	return rt
}
