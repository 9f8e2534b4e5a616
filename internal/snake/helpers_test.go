package snake

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var epoch = time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)

func newTestGame(t *testing.T, tileCount int, records Records) (*Game, *ManualClock) {
	t.Helper()
	cfg := DefaultConfig(config.DifficultyMedium)
	cfg.TileCount = tileCount
	cfg.Start = Point{X: tileCount / 2, Y: tileCount / 2}
	clock := NewManualClock(epoch)
	g, err := New(cfg, clock, records)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(g.Close)
	return g, clock
}

// setSnake replaces the body, head first. Food is left where it was.
func setSnake(g *Game, segments ...Point) {
	g.body.segments = append([]Point(nil), segments...)
	g.body.cells = make(map[Point]int, len(segments))
	for _, p := range segments {
		g.body.cells[p]++
	}
	g.body.growing = false
}

func setFood(g *Game, p Point) {
	g.food = p
	g.hasFood = true
}

// recorder collects events.
type recorder struct {
	events []Event
}

func (r *recorder) OnEvent(e Event) {
	r.events = append(r.events, e)
}

func (r *recorder) gameOvers() []GameOverEvent {
	var out []GameOverEvent
	for _, e := range r.events {
		if ev, ok := e.(GameOverEvent); ok {
			out = append(out, ev)
		}
	}
	return out
}
