package core

import "time"

// Clock reports elapsed seconds from an arbitrary origin. Only monotonicity
// of the readings matters to the scheduler.
type Clock interface {
	Now() float64
}

// MonotonicClock measures seconds elapsed since a fixed start instant.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock returns a clock anchored at start. A zero start anchors
// at the current time.
func NewMonotonicClock(start time.Time) *MonotonicClock {
	if start.IsZero() {
		start = time.Now()
	}
	return &MonotonicClock{start: start}
}

// Now returns seconds since the start instant.
func (c *MonotonicClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

// ManualClock returns whatever time it was last set to. It is used by
// headless runs and tests to script the passage of time.
type ManualClock struct {
	now float64
}

// NewManualClock returns a clock reading start.
func NewManualClock(start float64) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the scripted time.
func (c *ManualClock) Now() float64 { return c.now }

// Set moves the clock to t. Earlier values are ignored.
func (c *ManualClock) Set(t float64) {
	if t > c.now {
		c.now = t
	}
}

// Advance moves the clock forward by d seconds.
func (c *ManualClock) Advance(d float64) {
	if d > 0 {
		c.now += d
	}
}
