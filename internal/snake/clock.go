package snake

import (
	"sort"
	"time"
)

// TimerHandle identifies a repeating timer. The zero handle is never issued.
type TimerHandle uint64

// Clock schedules the game's fixed-period tick. Implementations must invoke
// callbacks on the same goroutine that drives the game, one at a time.
type Clock interface {
	// ScheduleRepeating calls fn every period until the handle is cancelled.
	ScheduleRepeating(period time.Duration, fn func()) TimerHandle

	// Cancel stops a timer. Cancelling an unknown or zero handle is a no-op.
	Cancel(h TimerHandle)

	// Now returns the clock's current time.
	Now() time.Time
}

// ManualClock is a Clock driven explicitly by Advance, for deterministic
// tests and headless simulation.
type ManualClock struct {
	now    time.Time
	last   TimerHandle
	timers map[TimerHandle]*manualTimer
}

type manualTimer struct {
	period time.Duration
	due    time.Time
	fn     func()
}

// NewManualClock creates a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{
		now:    start,
		timers: make(map[TimerHandle]*manualTimer),
	}
}

// ScheduleRepeating registers fn to fire every period. A non-positive period
// schedules nothing and returns the zero handle.
func (c *ManualClock) ScheduleRepeating(period time.Duration, fn func()) TimerHandle {
	if period <= 0 || fn == nil {
		return 0
	}
	c.last++
	c.timers[c.last] = &manualTimer{
		period: period,
		due:    c.now.Add(period),
		fn:     fn,
	}
	return c.last
}

// Cancel removes a timer.
func (c *ManualClock) Cancel(h TimerHandle) {
	delete(c.timers, h)
}

// Now returns the simulated time.
func (c *ManualClock) Now() time.Time {
	return c.now
}

// Active returns the number of live timers.
func (c *ManualClock) Active() int {
	return len(c.timers)
}

// Advance moves time forward by d, firing every callback that falls due in
// time order. It returns the number of callbacks fired.
func (c *ManualClock) Advance(d time.Duration) int {
	target := c.now.Add(d)
	fired := 0

	for {
		t := c.nextDue(target)
		if t == nil {
			break
		}
		c.now = t.due
		t.due = t.due.Add(t.period)
		t.fn()
		fired++
	}

	c.now = target
	return fired
}

// nextDue returns the earliest timer due at or before target. Ties go to the
// older handle.
func (c *ManualClock) nextDue(target time.Time) *manualTimer {
	handles := make([]TimerHandle, 0, len(c.timers))
	for h, t := range c.timers {
		if !t.due.After(target) {
			handles = append(handles, h)
		}
	}
	if len(handles) == 0 {
		return nil
	}

	sort.Slice(handles, func(i, j int) bool {
		a, b := c.timers[handles[i]], c.timers[handles[j]]
		if !a.due.Equal(b.due) {
			return a.due.Before(b.due)
		}
		return handles[i] < handles[j]
	})
	return c.timers[handles[0]]
}
