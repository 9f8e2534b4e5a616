package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var difficultiesCmd = &cobra.Command{
	Use:   "difficulties",
	Short: "List difficulty presets",
	Long:  `Shows each difficulty and its time per move, from the active config.`,
	Args:  cobra.NoArgs,
	Run:   runDifficulties,
}

func runDifficulties(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	periods := cfg.TickPeriods()

	fmt.Println("Difficulties:")
	fmt.Println()
	fmt.Printf("  %-8s  %s\n", "Name", "Move every")
	fmt.Printf("  %-8s  %s\n", "----", "----------")
	for _, d := range config.Difficulties() {
		marker := ""
		if d == cfg.Difficulty.Default {
			marker = "  (default)"
		}
		fmt.Printf("  %-8s  %v%s\n", d, periods[d], marker)
	}

	fmt.Println()
	fmt.Printf("Grid: %dx%d, leaderboard keeps %d entries.\n",
		cfg.Grid.TileCount, cfg.Grid.TileCount, cfg.Leaderboard.Size)
	fmt.Println("Run 'snake play --difficulty <name>' to skip the menu.")
}
