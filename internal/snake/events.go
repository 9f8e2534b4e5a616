package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Event is emitted by Game to its observers after a state change.
type Event interface {
	event()
}

// StartedEvent is sent when a game leaves Idle and starts running.
type StartedEvent struct {
	GameID     string
	Difficulty config.Difficulty
	Period     time.Duration
}

func (StartedEvent) event() {}

// PausedEvent is sent when a running game is paused.
type PausedEvent struct{}

func (PausedEvent) event() {}

// ResumedEvent is sent when a paused game runs again.
type ResumedEvent struct{}

func (ResumedEvent) event() {}

// TickEvent carries the state after every simulated tick.
type TickEvent struct {
	Snapshot Snapshot
}

func (TickEvent) event() {}

// FoodEatenEvent is sent when the head lands on food. At is where the food
// was, before it respawned.
type FoodEatenEvent struct {
	At    Point
	Score int
}

func (FoodEatenEvent) event() {}

// GameOverEvent is sent once per game, after scores are persisted.
type GameOverEvent struct {
	GameID       string
	Score        int
	HighScore    int
	NewHighScore bool
	Won          bool // The snake filled the board
	Difficulty   config.Difficulty
	Length       int
	Ticks        uint64
	EndedAt      time.Time
}

func (GameOverEvent) event() {}

// ResetEvent is sent when the board is reinitialised. Observers drop any
// per-game state, e.g. in-flight particles.
type ResetEvent struct {
	GameID string
}

func (ResetEvent) event() {}

// Observer receives game events. Observers must not call back into the Game.
type Observer interface {
	OnEvent(e Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(e Event)

// OnEvent calls f(e).
func (f ObserverFunc) OnEvent(e Event) {
	f(e)
}
