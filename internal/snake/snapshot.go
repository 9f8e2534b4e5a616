package snake

import "github.com/vovakirdan/tui-snake/internal/config"

// Phase is the lifecycle state of a game.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Snapshot captures the complete game state for rendering, replay and
// determinism tests. Snake is a copy and may be kept by the caller.
type Snapshot struct {
	GameID     string
	Tick       uint64
	Phase      Phase
	Won        bool
	Score      int
	HighScore  int
	Snake      []Point // Head first
	Food       Point
	HasFood    bool
	Direction  Direction
	Pending    Direction
	Difficulty config.Difficulty
	TileCount  int
}

// Head returns the first snake segment.
func (s Snapshot) Head() Point {
	if len(s.Snake) == 0 {
		return Point{}
	}
	return s.Snake[0]
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		GameID:     g.gameID,
		Tick:       g.tick,
		Phase:      g.phase,
		Won:        g.won,
		Score:      g.score,
		HighScore:  g.highScore,
		Snake:      g.body.Segments(),
		Food:       g.food,
		HasFood:    g.hasFood,
		Direction:  g.current,
		Pending:    g.pending,
		Difficulty: g.difficulty,
		TileCount:  g.grid.TileCount,
	}
}
