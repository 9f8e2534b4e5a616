package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/replay"
)

var flagReplayList bool

var replayCmd = &cobra.Command{
	Use:   "replay [file]",
	Short: "Watch a recorded game",
	Long: `Play back a recorded game. Without a file the most recent
recording is shown.

Controls:
  Space    - Play / pause
  Left     - Step back
  Right    - Step forward
  +/-      - Change speed
  R        - Rewind
  Q/Esc    - Quit

Examples:
  snake replay
  snake replay --list
  snake replay ~/.snake/replays/<id>.snakereplay`,
	Args: cobra.MaximumNArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplayList, "list", false, "List recordings instead of playing one")
}

func runReplay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	if flagReplayList || len(args) == 0 {
		files, err := replay.List(cfg.Replay.Dir)
		if err != nil || len(files) == 0 {
			fmt.Println("No recordings yet. Play 'snake play' to record one.")
			return
		}
		if flagReplayList {
			for _, f := range files {
				fmt.Println(f)
			}
			return
		}
		args = []string{files[0]}
	}

	rec, err := replay.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("replay loaded", "game", rec.GameID, "frames", len(rec.Frames))

	if err := tui.RunReplay(rec, runtimeConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
