// Package tui provides the Bubble Tea front end for the snake game: the
// clock that drives the simulation, the game screen, the difficulty menu,
// the scoreboard and the replay viewer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// clockTickMsg is delivered when a TeaClock timer fires.
type clockTickMsg struct {
	handle snake.TimerHandle
	at     time.Time
}

type teaTimer struct {
	period time.Duration
	fn     func()
}

// TeaClock implements snake.Clock on top of tea.Tick. Timer callbacks run
// inside Update, so the game is only ever touched from the Bubble Tea
// goroutine. Scheduling produces commands that the model must collect with
// Drain after every call into the game.
type TeaClock struct {
	now     func() time.Time
	last    snake.TimerHandle
	timers  map[snake.TimerHandle]teaTimer
	pending []tea.Cmd
}

// NewTeaClock creates a clock backed by the wall clock.
func NewTeaClock() *TeaClock {
	return &TeaClock{
		now:    time.Now,
		timers: make(map[snake.TimerHandle]teaTimer),
	}
}

// ScheduleRepeating implements snake.Clock.
func (c *TeaClock) ScheduleRepeating(period time.Duration, fn func()) snake.TimerHandle {
	if period <= 0 || fn == nil {
		return 0
	}
	c.last++
	c.timers[c.last] = teaTimer{period: period, fn: fn}
	c.pending = append(c.pending, tickCmd(c.last, period))
	return c.last
}

// Cancel implements snake.Clock. A tick already in flight for h is dropped
// when it arrives.
func (c *TeaClock) Cancel(h snake.TimerHandle) {
	delete(c.timers, h)
}

// Now implements snake.Clock.
func (c *TeaClock) Now() time.Time {
	return c.now()
}

// Active returns the number of live timers.
func (c *TeaClock) Active() int {
	return len(c.timers)
}

// Handle runs the callback for a tick message and schedules the next one.
// Messages for cancelled timers are ignored.
func (c *TeaClock) Handle(msg clockTickMsg) tea.Cmd {
	t, ok := c.timers[msg.handle]
	if !ok {
		return c.Drain()
	}
	t.fn()

	// The callback may have cancelled its own timer, e.g. on game over.
	if _, ok := c.timers[msg.handle]; ok {
		c.pending = append(c.pending, tickCmd(msg.handle, t.period))
	}
	return c.Drain()
}

// Drain returns the commands scheduled since the last call, or nil.
func (c *TeaClock) Drain() tea.Cmd {
	if len(c.pending) == 0 {
		return nil
	}
	cmds := c.pending
	c.pending = nil
	return tea.Batch(cmds...)
}

// tickCmd returns a Bubble Tea command that fires one tick for h after period.
func tickCmd(h snake.TimerHandle, period time.Duration) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return clockTickMsg{handle: h, at: t}
	})
}
