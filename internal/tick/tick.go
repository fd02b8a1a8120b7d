// Package tick rate-limits periodic work inside hot loops.
//
// Batch reads the clock only every N calls, so a loop that runs millions
// of iterations per second can ask "is it time to report?" on every
// iteration for the price of an increment and a compare.
package tick

import "time"

// Batch fires at most once per interval, checking the clock every N calls.
//
// Example: With every=4096 and interval=time.Second, the clock is read
// once per 4096 calls to Tick, and Tick returns true when a second or
// more has passed since the last tick.
//
// A Batch is not safe for concurrent use; give each worker its own.
type Batch struct {
	interval time.Duration
	every    int
	count    int
	lastTick time.Time
	now      func() time.Time
}

// NewBatch creates a Batch that checks the clock every N calls.
// every < 1 is treated as 1.
func NewBatch(interval time.Duration, every int) *Batch {
	return newBatch(interval, every, time.Now)
}

func newBatch(interval time.Duration, every int, now func() time.Time) *Batch {
	if every < 1 {
		every = 1
	}
	return &Batch{
		interval: interval,
		every:    every,
		lastTick: now(),
		now:      now,
	}
}

// Tick returns true if the interval has elapsed since the last tick.
func (b *Batch) Tick() bool {
	b.count++
	if b.count < b.every {
		return false
	}
	b.count = 0

	now := b.now()
	if now.Sub(b.lastTick) >= b.interval {
		b.lastTick = now
		return true
	}
	return false
}

// Reset restarts the interval from now.
func (b *Batch) Reset() {
	b.count = 0
	b.lastTick = b.now()
}

// Interval returns the ticker's interval.
func (b *Batch) Interval() time.Duration {
	return b.interval
}
