package timer

import "time"

// Timer is an interval gate: it reports whether interval has passed since
// the last reset.
type Timer struct {
	interval time.Duration
	start    time.Time
	clock    Clock
}

// New starts a timer on clock. A nil clock means SystemClock.
func New(interval time.Duration, clock Clock) *Timer {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Timer{
		interval: interval,
		start:    clock.Now(),
		clock:    clock,
	}
}

// HasElapsed reports whether at least interval has passed since start.
func (t *Timer) HasElapsed() bool {
	return t.clock.Now().Sub(t.start) >= t.interval
}

// Reset restarts the interval from now.
func (t *Timer) Reset() {
	t.start = t.clock.Now()
}

// Interval returns the configured interval.
func (t *Timer) Interval() time.Duration {
	return t.interval
}

// Remaining returns how long until the timer elapses, or zero.
func (t *Timer) Remaining() time.Duration {
	left := t.interval - t.clock.Now().Sub(t.start)
	if left < 0 {
		return 0
	}
	return left
}
