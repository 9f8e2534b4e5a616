package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults/snake.yaml
// and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Grid: GridConfig{
			TileCount: 21,
			StartX:    10,
			StartY:    10,
		},
		Difficulty: DifficultyTable{
			Default: DifficultyMedium,
			TickMS: map[Difficulty]int{
				DifficultyEasy:   150,
				DifficultyMedium: 100,
				DifficultyHard:   60,
			},
		},
		Food: FoodConfig{
			ScanThreshold: 0.5,
		},
		Leaderboard: LeaderboardConfig{
			Size: 5,
		},
		Particles: ParticleConfig{
			Enabled:  true,
			Count:    10,
			Lifetime: 6,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.25,
		},
		Replay: ReplayConfig{
			Enabled: true,
			Dir:     "~/.snake/replays",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
