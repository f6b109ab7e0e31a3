package core

import "time"

// Tick delay bounds, matching the speed slider of the desktop host.
const (
	MinDelay     = 10 * time.Millisecond
	MaxDelay     = 200 * time.Millisecond
	DefaultDelay = 75 * time.Millisecond
)

// ClampDelay forces d into [MinDelay, MaxDelay].
func ClampDelay(d time.Duration) time.Duration {
	return min(max(d, MinDelay), MaxDelay)
}

// FixedStep paces simulation ticks at a fixed delay inside a faster frame loop.
type FixedStep struct {
	delay       time.Duration
	accumulator time.Duration
	last        time.Time

	now func() time.Time
}

// NewFixedStep constructs a FixedStep that fires once per delay. The first
// call to ShouldStep fires immediately.
func NewFixedStep(delay time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetDelay(delay)
	fs.accumulator = fs.delay
	return fs
}

// SetDelay changes the tick interval. It is safe to call from the main loop.
func (f *FixedStep) SetDelay(d time.Duration) {
	if d <= 0 {
		d = DefaultDelay
	}
	f.delay = ClampDelay(d)
	if f.accumulator > f.delay {
		f.accumulator = f.delay
	}
}

// Delay returns the current tick interval.
func (f *FixedStep) Delay() time.Duration { return f.delay }

// ShouldStep reports whether the simulation should advance by one tick.
// Calling it repeatedly in the same frame drains ticks that are overdue.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.delay {
		f.accumulator -= f.delay
		return true
	}
	return false
}
