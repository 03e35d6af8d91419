package core

import "math"

const (
	// MinInterval is the shortest supported step interval in seconds.
	MinInterval = 0.1
	// MaxInterval is the longest supported step interval in seconds.
	MaxInterval = 2.0
	// DefaultInterval is the step interval used when none is configured.
	DefaultInterval = 0.5
)

// Scheduler gates generation steps on elapsed time. It is a polling design:
// the host calls Tick once per frame and the scheduler reports whether a
// step is due.
type Scheduler struct {
	playing  bool
	interval float64
	last     float64
}

// NewScheduler returns a paused scheduler whose last step happened at start.
func NewScheduler(interval, start float64) *Scheduler {
	s := &Scheduler{interval: DefaultInterval, last: start}
	s.SetInterval(interval)
	return s
}

// ClampInterval limits seconds to [MinInterval, MaxInterval]. NaN yields
// DefaultInterval.
func ClampInterval(seconds float64) float64 {
	if math.IsNaN(seconds) {
		return DefaultInterval
	}
	if seconds < MinInterval {
		return MinInterval
	}
	if seconds > MaxInterval {
		return MaxInterval
	}
	return seconds
}

// SetInterval changes the step interval, clamped to the supported range. NaN
// leaves the interval untouched. It returns the stored value and takes effect
// on the next Tick.
func (s *Scheduler) SetInterval(seconds float64) float64 {
	if math.IsNaN(seconds) {
		return s.interval
	}
	s.interval = ClampInterval(seconds)
	return s.interval
}

// Interval returns the step interval in seconds.
func (s *Scheduler) Interval() float64 { return s.interval }

// Last returns the time of the most recent fired step.
func (s *Scheduler) Last() float64 { return s.last }

// Playing reports whether ticks may fire steps.
func (s *Scheduler) Playing() bool { return s.playing }

// Play enables stepping.
func (s *Scheduler) Play() { s.playing = true }

// Pause disables stepping. The last step time is kept, so resuming does not
// force a catch-up step.
func (s *Scheduler) Pause() { s.playing = false }

// Reset moves the last step time to now.
func (s *Scheduler) Reset(now float64) { s.last = now }

// Tick reports whether a step is due at now. When it is, the last step time
// advances to now.
func (s *Scheduler) Tick(now float64) bool {
	if !s.playing {
		return false
	}
	if now-s.last < s.interval {
		return false
	}
	s.last = now
	return true
}
