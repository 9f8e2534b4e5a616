package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

func TestTeaClockSchedulesOnce(t *testing.T) {
	c := NewTeaClock()
	calls := 0
	h := c.ScheduleRepeating(50*time.Millisecond, func() { calls++ })

	if c.Drain() == nil {
		t.Fatal("scheduling should queue a tick command")
	}
	if c.Drain() != nil {
		t.Fatal("Drain should empty the queue")
	}

	if cmd := c.Handle(clockTickMsg{handle: h}); cmd == nil {
		t.Error("live timer should schedule its next tick")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestTeaClockDropsCancelledTicks(t *testing.T) {
	c := NewTeaClock()
	calls := 0
	h := c.ScheduleRepeating(50*time.Millisecond, func() { calls++ })
	c.Drain()
	c.Cancel(h)

	if cmd := c.Handle(clockTickMsg{handle: h}); cmd != nil {
		t.Error("cancelled timer should not reschedule")
	}
	if calls != 0 {
		t.Errorf("cancelled callback ran %d times", calls)
	}
	if c.Active() != 0 {
		t.Errorf("Active = %d", c.Active())
	}
}

func TestTeaClockSelfCancel(t *testing.T) {
	c := NewTeaClock()
	var h snake.TimerHandle
	h = c.ScheduleRepeating(10*time.Millisecond, func() { c.Cancel(h) })
	c.Drain()

	if cmd := c.Handle(clockTickMsg{handle: h}); cmd != nil {
		t.Error("timer cancelled by its callback should not reschedule")
	}
}

func TestTeaClockRejectsBadPeriod(t *testing.T) {
	c := NewTeaClock()
	if h := c.ScheduleRepeating(0, func() {}); h != 0 {
		t.Errorf("handle = %d, want 0", h)
	}
	if c.Drain() != nil {
		t.Error("nothing should be queued")
	}
}
