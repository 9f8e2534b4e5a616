// Package config provides YAML-based configuration for the snake game:
// grid geometry, the difficulty tick table and tuning for the decorative
// subsystems.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is the complete game configuration.
type Config struct {
	Grid        GridConfig        `yaml:"grid"`
	Difficulty  DifficultyTable   `yaml:"difficulty"`
	Food        FoodConfig        `yaml:"food"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
	Particles   ParticleConfig    `yaml:"particles"`
	Audio       AudioConfig       `yaml:"audio"`
	Replay      ReplayConfig      `yaml:"replay"`
}

// GridConfig defines the square play field. TileCount is fixed for a session.
type GridConfig struct {
	TileCount int `yaml:"tile_count"`
	StartX    int `yaml:"start_x"`
	StartY    int `yaml:"start_y"`
}

// DifficultyTable maps each difficulty to its tick period in milliseconds.
type DifficultyTable struct {
	Default Difficulty         `yaml:"default"`
	TickMS  map[Difficulty]int `yaml:"tick_ms"`
}

// FoodConfig tunes the food spawner.
type FoodConfig struct {
	ScanThreshold float64 `yaml:"scan_threshold"` // 0.0-1.0 occupancy fraction
}

// LeaderboardConfig bounds the persisted leaderboard.
type LeaderboardConfig struct {
	Size int `yaml:"size"`
}

// ParticleConfig tunes the food-eaten particle bursts.
type ParticleConfig struct {
	Enabled  bool `yaml:"enabled"`
	Count    int  `yaml:"count"`    // Particles per burst
	Lifetime int  `yaml:"lifetime"` // Ticks a particle lives
}

// AudioConfig tunes the procedural sound effects.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0-1.0
}

// ReplayConfig controls recording of finished games.
type ReplayConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// TickPeriod returns the tick period for a difficulty.
func (c Config) TickPeriod(d Difficulty) (time.Duration, error) {
	ms, ok := c.Difficulty.TickMS[d]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, d)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// TickPeriods returns the whole difficulty table as durations.
func (c Config) TickPeriods() map[Difficulty]time.Duration {
	out := make(map[Difficulty]time.Duration, len(c.Difficulty.TickMS))
	for d, ms := range c.Difficulty.TickMS {
		out[d] = time.Duration(ms) * time.Millisecond
	}
	return out
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	g := c.Grid
	if g.TileCount < 2 {
		return fmt.Errorf("%w: grid.tile_count must be at least 2, got %d", ErrInvalidConfig, g.TileCount)
	}
	if g.StartX < 0 || g.StartX >= g.TileCount || g.StartY < 0 || g.StartY >= g.TileCount {
		return fmt.Errorf("%w: start (%d, %d) outside %dx%d grid", ErrInvalidConfig, g.StartX, g.StartY, g.TileCount, g.TileCount)
	}

	for _, d := range Difficulties() {
		ms, ok := c.Difficulty.TickMS[d]
		if !ok {
			return fmt.Errorf("%w: difficulty.tick_ms missing %q", ErrInvalidConfig, d)
		}
		if ms <= 0 {
			return fmt.Errorf("%w: difficulty.tick_ms[%s] must be positive, got %d", ErrInvalidConfig, d, ms)
		}
	}
	if !c.Difficulty.Default.Valid() {
		return fmt.Errorf("%w: difficulty.default %q", ErrInvalidConfig, c.Difficulty.Default)
	}

	if c.Food.ScanThreshold < 0 || c.Food.ScanThreshold > 1 {
		return fmt.Errorf("%w: food.scan_threshold must be within [0, 1], got %g", ErrInvalidConfig, c.Food.ScanThreshold)
	}
	if c.Leaderboard.Size < 1 {
		return fmt.Errorf("%w: leaderboard.size must be at least 1, got %d", ErrInvalidConfig, c.Leaderboard.Size)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume must be within [0, 1], got %g", ErrInvalidConfig, c.Audio.Volume)
	}
	return nil
}
