package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresReset bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high score, leaderboard and history",
	Long: `Display the high score, the top-5 leaderboard and per-difficulty
statistics of finished games.

Examples:
  snake scores
  snake scores --limit 20
  snake scores --tui
  snake scores --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of history rows to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresReset, "reset", false, "Clear the high score, leaderboard and history")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresReset {
		if err := store.ResetRecords(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := store.ClearHistory(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Info("records cleared")
		fmt.Println("Scores cleared.")
		return
	}

	if flagScoresTUI {
		if err := tui.RunScoreboard(store, runtimeConfig()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	highScore, board := loadRecords(store)

	fmt.Printf("High score: %d\n", highScore)
	fmt.Println()
	fmt.Println("Leaderboard")
	fmt.Println(tui.LeaderboardText(board))

	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}
	if len(stats) == 0 {
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return
	}

	fmt.Println()
	fmt.Printf("  %-8s  %5s  %4s  %6s  %4s  %s\n", "Level", "Games", "Best", "Avg", "Wins", "Last played")
	fmt.Printf("  %-8s  %5s  %4s  %6s  %4s  %s\n", "-----", "-----", "----", "---", "----", "-----------")
	for _, d := range config.Difficulties() {
		st, ok := stats[d]
		if !ok {
			continue
		}
		fmt.Printf("  %-8s  %5d  %4d  %6.1f  %4d  %s\n",
			d.Label(), st.GamesCount, st.HighScore, st.AvgScore, st.Wins,
			st.LastPlayed.Local().Format("2006-01-02 15:04"))
	}

	games, err := store.RecentGames(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()
	fmt.Println("Recent games")
	for _, g := range games {
		result := ""
		if g.Won {
			result = "  board cleared"
		}
		fmt.Printf("  %s  %-6s  %4d  len %-4d%s\n",
			g.CreatedAt.Local().Format("2006-01-02 15:04"), g.Difficulty.Label(), g.Score, g.Length, result)
	}
}

// loadRecords reads the high score and leaderboard. A corrupt value is
// logged and shown as zero or empty.
func loadRecords(records snake.Records) (int, []snake.LeaderboardEntry) {
	highScore, err := records.LoadHighScore()
	if err != nil {
		logger.Warn("failed to load high score", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: high score unreadable: %v\n", err)
		highScore = 0
	}
	board, err := records.LoadLeaderboard()
	if err != nil {
		logger.Warn("failed to load leaderboard", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: leaderboard unreadable: %v\n", err)
		board = nil
	}
	return highScore, board
}
