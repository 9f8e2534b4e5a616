// Package snake implements the snake game simulation: a fixed-period state
// machine over a wrapping square grid. It has no terminal dependency; time
// comes from a Clock and persistence from Records, and everything the
// presentation layer needs is pushed to observers as events.
package snake

import (
	"fmt"
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Config holds the per-session game settings.
type Config struct {
	TileCount       int
	Start           Point
	Difficulty      config.Difficulty
	Periods         map[config.Difficulty]time.Duration
	LeaderboardSize int
	ScanThreshold   float64
	Seed            int64
	Logger          *log.Logger // nil discards
}

// ConfigFrom builds a game Config from the loaded configuration.
func ConfigFrom(cfg config.Config, d config.Difficulty, seed int64) Config {
	return Config{
		TileCount:       cfg.Grid.TileCount,
		Start:           Point{X: cfg.Grid.StartX, Y: cfg.Grid.StartY},
		Difficulty:      d,
		Periods:         cfg.TickPeriods(),
		LeaderboardSize: cfg.Leaderboard.Size,
		ScanThreshold:   cfg.Food.ScanThreshold,
		Seed:            seed,
	}
}

// DefaultConfig returns the built-in settings at the given difficulty.
func DefaultConfig(d config.Difficulty) Config {
	return ConfigFrom(config.Default(), d, 1)
}

// Game is the snake state machine. It is not safe for concurrent use: the
// clock's callbacks and all input must arrive on one goroutine.
type Game struct {
	cfg     Config
	clock   Clock
	records Records
	logger  *log.Logger

	grid    Grid
	body    *Body
	spawner *FoodSpawner

	gameID     string
	phase      Phase
	won        bool
	difficulty config.Difficulty
	period     time.Duration
	timer      TimerHandle
	tick       uint64

	current Direction
	pending Direction

	food    Point
	hasFood bool

	score       int
	highScore   int
	leaderboard []LeaderboardEntry

	observers []Observer
}

// New creates a game in the Idle phase. The high score and leaderboard are
// loaded from records; a failing store is logged and treated as empty.
func New(cfg Config, clock Clock, records Records) (*Game, error) {
	if cfg.TileCount < 2 {
		return nil, fmt.Errorf("snake: tile count must be at least 2, got %d", cfg.TileCount)
	}
	if !NewGrid(cfg.TileCount).Contains(cfg.Start) {
		return nil, fmt.Errorf("snake: start %v outside %dx%d grid", cfg.Start, cfg.TileCount, cfg.TileCount)
	}
	period, ok := cfg.Periods[cfg.Difficulty]
	if !ok || period <= 0 {
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownDifficulty, cfg.Difficulty)
	}
	if cfg.LeaderboardSize <= 0 {
		cfg.LeaderboardSize = 5
	}
	if records == nil {
		records = NewMemoryRecords()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		cfg:        cfg,
		clock:      clock,
		records:    records,
		logger:     logger,
		grid:       NewGrid(cfg.TileCount),
		body:       NewBody(cfg.Start),
		spawner:    NewFoodSpawner(rand.New(rand.NewSource(cfg.Seed)), cfg.ScanThreshold),
		difficulty: cfg.Difficulty,
		period:     period,
	}
	g.loadRecords()
	g.Reset()
	return g, nil
}

func (g *Game) loadRecords() {
	hs, err := g.records.LoadHighScore()
	if err != nil {
		g.logger.Warn("failed to load high score", "error", err)
		hs = 0
	}
	g.highScore = hs

	board, err := g.records.LoadLeaderboard()
	if err != nil {
		g.logger.Warn("failed to load leaderboard", "error", err)
		board = nil
	}
	// Normalise whatever was stored.
	g.leaderboard = nil
	for _, e := range board {
		g.leaderboard = InsertLeaderboard(g.leaderboard, e, g.cfg.LeaderboardSize)
	}
}

// Subscribe registers an observer. Observers are called in registration
// order, synchronously, after each state change.
func (g *Game) Subscribe(o Observer) {
	g.observers = append(g.observers, o)
}

func (g *Game) emit(e Event) {
	for _, o := range g.observers {
		o.OnEvent(e)
	}
}

// Reset returns the game to Idle with a fresh single-segment snake and new
// food. The running timer, if any, is cancelled.
func (g *Game) Reset() {
	g.disarm()

	g.gameID = uuid.NewString()
	g.phase = PhaseIdle
	g.won = false
	g.tick = 0
	g.score = 0
	g.current = None
	g.pending = None
	g.body.Reset(g.cfg.Start)
	g.food, g.hasFood = g.spawner.Spawn(g.body, g.grid)

	g.logger.Debug("game reset", "game", g.gameID)
	g.emit(ResetEvent{GameID: g.gameID})
}

// Start begins a game from Idle, resumes from Paused, or resets and starts
// again from GameOver. It does nothing while Running.
func (g *Game) Start() {
	switch g.phase {
	case PhaseRunning:
		return
	case PhasePaused:
		g.resume()
		return
	case PhaseGameOver:
		g.Reset()
	}

	if g.current.IsZero() {
		g.pending = Right
	}
	g.phase = PhaseRunning
	g.arm()

	g.logger.Info("game started", "game", g.gameID, "difficulty", g.difficulty, "period", g.period)
	g.emit(StartedEvent{GameID: g.gameID, Difficulty: g.difficulty, Period: g.period})
}

// Pause toggles between Running and Paused. It does nothing in other phases.
func (g *Game) Pause() {
	switch g.phase {
	case PhaseRunning:
		g.phase = PhasePaused
		g.disarm()
		g.emit(PausedEvent{})
	case PhasePaused:
		g.resume()
	}
}

func (g *Game) resume() {
	g.phase = PhaseRunning
	g.arm()
	g.emit(ResumedEvent{})
}

// Restart is Reset followed by Start.
func (g *Game) Restart() {
	g.Reset()
	g.Start()
}

// SetDirection queues a direction change for the next tick. A 180° turn
// relative to the committed direction is ignored. In Idle the first
// direction starts the game; in Paused and GameOver input is dropped.
func (g *Game) SetDirection(d Direction) {
	if d.IsZero() {
		return
	}
	switch g.phase {
	case PhasePaused, PhaseGameOver:
		return
	case PhaseIdle:
		g.Start()
	}
	if d.Reverses(g.current) {
		return
	}
	g.pending = d
}

// SetDifficulty changes the tick period. It only applies between games and
// reports whether the difficulty was accepted.
func (g *Game) SetDifficulty(d config.Difficulty) bool {
	if g.phase == PhaseRunning || g.phase == PhasePaused {
		return false
	}
	period, ok := g.cfg.Periods[d]
	if !ok || period <= 0 {
		return false
	}
	g.difficulty = d
	g.period = period
	return true
}

// Tick advances the simulation by one step. It is called by the clock and
// does nothing unless the game is Running.
func (g *Game) Tick() {
	if g.phase != PhaseRunning {
		return
	}
	g.tick++
	g.current = g.pending

	if g.current.IsZero() {
		g.emit(TickEvent{Snapshot: g.Snapshot()})
		return
	}

	proposed := g.body.Next(g.grid, g.current)
	if SelfCollision(g.body, proposed) {
		g.endGame(false)
		return
	}

	g.body.Move(proposed)

	ate := g.hasFood && FoodCollision(proposed, g.food)
	if ate {
		g.score++
		g.body.Grow()
	}
	// No-op right after Grow.
	g.body.Shrink()

	if !ate {
		g.emit(TickEvent{Snapshot: g.Snapshot()})
		return
	}

	eaten := g.food
	g.food, g.hasFood = g.spawner.Spawn(g.body, g.grid)
	g.emit(FoodEatenEvent{At: eaten, Score: g.score})
	g.emit(TickEvent{Snapshot: g.Snapshot()})

	if !g.hasFood {
		g.endGame(true)
	}
}

// endGame records the result and moves to GameOver.
func (g *Game) endGame(won bool) {
	g.disarm()
	g.phase = PhaseGameOver
	g.won = won

	newHigh := g.score > g.highScore
	if newHigh {
		g.highScore = g.score
		if err := g.records.SaveHighScore(g.highScore); err != nil {
			g.logger.Warn("failed to save high score", "score", g.highScore, "error", err)
		}
	}

	now := g.clock.Now()
	g.leaderboard = InsertLeaderboard(g.leaderboard, LeaderboardEntry{
		Score:      g.score,
		Difficulty: g.difficulty,
		Date:       now.Format(DateLayout),
	}, g.cfg.LeaderboardSize)
	if err := g.records.SaveLeaderboard(g.leaderboard); err != nil {
		g.logger.Warn("failed to save leaderboard", "error", err)
	}

	g.logger.Info("game over",
		"game", g.gameID,
		"score", g.score,
		"high", newHigh,
		"won", won,
		"length", g.body.Len(),
		"ticks", g.tick,
	)
	g.emit(GameOverEvent{
		GameID:       g.gameID,
		Score:        g.score,
		HighScore:    g.highScore,
		NewHighScore: newHigh,
		Won:          won,
		Difficulty:   g.difficulty,
		Length:       g.body.Len(),
		Ticks:        g.tick,
		EndedAt:      now,
	})
}

// arm schedules the tick timer, replacing any existing one so at most one
// timer is ever live.
func (g *Game) arm() {
	g.disarm()
	g.timer = g.clock.ScheduleRepeating(g.period, g.Tick)
}

func (g *Game) disarm() {
	if g.timer != 0 {
		g.clock.Cancel(g.timer)
		g.timer = 0
	}
}

// Close cancels the tick timer.
func (g *Game) Close() {
	g.disarm()
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase { return g.phase }

// Won reports whether the last game ended with a full board.
func (g *Game) Won() bool { return g.won }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// HighScore returns the best score seen, including this session.
func (g *Game) HighScore() int { return g.highScore }

// Leaderboard returns a copy of the leaderboard, best first.
func (g *Game) Leaderboard() []LeaderboardEntry { return slices.Clone(g.leaderboard) }

// GameID returns the identifier of the current game.
func (g *Game) GameID() string { return g.gameID }

// Difficulty returns the active difficulty.
func (g *Game) Difficulty() config.Difficulty { return g.difficulty }

// Period returns the active tick period.
func (g *Game) Period() time.Duration { return g.period }

// Grid returns the play field.
func (g *Game) Grid() Grid { return g.grid }
