package testutil

import (
	"sync"
	"time"
)

// ManualClock is a clock that only moves when told to.
//
// Runnables under test call Advance to simulate how long they took, which
// makes measured durations exact and reports byte-stable.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock creates a clock stopped at a fixed instant.
func NewManualClock() *ManualClock {
	return &ManualClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current simulated time.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// StepClock advances by a fixed step after every reading, so each timed
// invocation measures exactly one step.
type StepClock struct {
	clock *ManualClock
	step  time.Duration
}

// NewStepClock creates a clock starting at the ManualClock epoch.
func NewStepClock(step time.Duration) *StepClock {
	return &StepClock{clock: NewManualClock(), step: step}
}

// Now returns the current time, then moves the clock forward by one step.
func (c *StepClock) Now() time.Time {
	c.clock.mu.Lock()
	defer c.clock.mu.Unlock()
	now := c.clock.now
	c.clock.now = now.Add(c.step)
	return now
}
