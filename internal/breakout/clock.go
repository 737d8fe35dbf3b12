package breakout

import "time"

// Clock reports monotonic time as an offset from an arbitrary origin.
// All effect deadlines in a World are values of this clock.
type Clock interface {
	Now() time.Duration
}

type monotonicClock struct {
	start time.Time
}

// NewMonotonicClock returns a Clock backed by the runtime's monotonic time.
func NewMonotonicClock() Clock {
	return monotonicClock{start: time.Now()}
}

func (c monotonicClock) Now() time.Duration {
	return time.Since(c.start)
}

// ManualClock is a Clock that only moves when told to. Headless runs and
// tests drive it one frame at a time.
type ManualClock struct {
	now time.Duration
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by d. Negative values are ignored.
func (c *ManualClock) Advance(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}
