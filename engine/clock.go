package engine

import "time"

// TimeProvider supplies monotonic time
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the system clock; time.Now carries a monotonic reading
type MonotonicTimeProvider struct{}

func (MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// PausableClock subtracts paused intervals from its source
// Not safe for concurrent use; owned by the session
type PausableClock struct {
	src         TimeProvider
	paused      bool
	pausedAt    time.Time
	totalPaused time.Duration
}

func NewPausableClock(src TimeProvider) *PausableClock {
	if src == nil {
		src = MonotonicTimeProvider{}
	}
	return &PausableClock{src: src}
}

// Now returns source time minus paused time; frozen while paused
func (c *PausableClock) Now() time.Time {
	if c.paused {
		return c.pausedAt.Add(-c.totalPaused)
	}
	return c.src.Now().Add(-c.totalPaused)
}

// Pause freezes the clock; repeated calls are no-ops
func (c *PausableClock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = c.src.Now()
}

// Resume accumulates the pause interval; no-op when running
func (c *PausableClock) Resume() {
	if !c.paused {
		return
	}
	c.totalPaused += c.src.Now().Sub(c.pausedAt)
	c.paused = false
	c.pausedAt = time.Time{}
}

// TotalPaused returns the accumulated paused duration, excluding a pause in progress
func (c *PausableClock) TotalPaused() time.Duration {
	return c.totalPaused
}
