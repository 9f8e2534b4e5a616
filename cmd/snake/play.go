package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/effects"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/replay"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagDifficulty string
	flagMute       bool
	flagNoReplay   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of snake. Without --difficulty a menu asks for one.

Controls:
  Arrows/WASD/HJKL  - Steer (the first move starts the game)
  Enter             - Start
  Space/P           - Pause / resume
  R                 - Restart
  M                 - Mute
  Ctrl+S            - Save a text screenshot
  Q/Esc/Ctrl+C      - Quit

Difficulty options:
  easy    - 150ms per move
  medium  - 100ms per move ("normal" also works)
  hard    - 60ms per move

Examples:
  snake play
  snake play --difficulty hard
  snake play --seed 42 --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty: easy, medium, hard")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().BoolVar(&flagNoReplay, "no-replay", false, "Do not record replays")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	rt := runtimeConfig()

	// Open score storage; the game still works without it
	var records snake.Records
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		records = snake.NewMemoryRecords()
	} else {
		defer store.Close()
		records = store
	}

	difficulty := cfg.Difficulty.Default
	if flagDifficulty != "" {
		d, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		difficulty = d
	} else {
		highScore, _ := records.LoadHighScore()
		d, ok, err := tui.RunDifficultyMenu(cfg.TickPeriods(), difficulty, highScore, rt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if !ok {
			return
		}
		difficulty = d
	}

	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	gameCfg := snake.ConfigFrom(cfg, difficulty, rt.Seed)
	gameCfg.Logger = logger
	clock := tui.NewTeaClock()
	game, err := snake.New(gameCfg, clock, records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	particles := effects.New(cfg.Particles, cfg.Grid.TileCount, rt.Seed)
	game.Subscribe(particles)

	audioCfg := cfg.Audio
	if flagMute {
		audioCfg.Enabled = false
	}
	player := audio.NewPlayer(audioCfg, logger)
	//nolint:errcheck // Init logs its own failure and leaves the player muted
	player.Init()
	defer player.Close()
	game.Subscribe(player)

	if store != nil {
		game.Subscribe(storage.NewHistoryWriter(store, logger))
	}

	var recorder *replay.Recorder
	if cfg.Replay.Enabled && !flagNoReplay {
		recorder = replay.NewRecorder(cfg.Replay.Dir, cfg.Grid.TileCount, logger)
		game.Subscribe(recorder)
	}

	logger.Info("session started", "difficulty", difficulty, "seed", rt.Seed)
	runErr := tui.Run(tui.Session{
		Game:      game,
		Clock:     clock,
		Particles: particles,
		Audio:     player,
		Logger:    logger,
		Runtime:   rt,
	})
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	fmt.Printf("High score: %d\n", game.HighScore())
	if recorder != nil && recorder.LastPath() != "" {
		fmt.Printf("Last replay: %s\n", recorder.LastPath())
	}
}
