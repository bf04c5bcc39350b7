package bench

import "time"

// batchTicker checks the clock only every N calls to tick.
//
// The runner calls tick once per measurement. With every=1 the clock is
// read each time; larger values amortize the check across measurements.
type batchTicker struct {
	interval time.Duration
	every    int
	count    int
	lastTick time.Time
	now      func() time.Time
}

func newBatchTicker(interval time.Duration, every int, now func() time.Time) *batchTicker {
	if every < 1 {
		every = 1
	}
	return &batchTicker{
		interval: interval,
		every:    every,
		lastTick: now(),
		now:      now,
	}
}

// tick returns true if interval has elapsed since the last true result.
// A non-positive interval never ticks.
func (b *batchTicker) tick() bool {
	if b.interval <= 0 {
		return false
	}
	b.count++
	if b.count%b.every != 0 {
		return false
	}

	now := b.now()
	if now.Sub(b.lastTick) >= b.interval {
		b.lastTick = now
		return true
	}
	return false
}
