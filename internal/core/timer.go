package core

import "time"

// maxCatchUp bounds how many missed steps are remembered after a stall.
const maxCatchUp = 4

// FixedStep decides when to advance a simulation running at a ticks-per-second
// rate on top of a faster frame loop. A rate of zero never steps.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time

	now func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	return newFixedStep(tps, time.Now)
}

func newFixedStep(tps int, now func() time.Time) *FixedStep {
	fs := &FixedStep{now: now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		f.step = 0
		f.accumulator = 0
		return
	}
	f.step = time.Second / time.Duration(tps)
	if f.step <= 0 {
		f.step = time.Nanosecond
	}
}

// Paused reports whether the configured rate is zero.
func (f *FixedStep) Paused() bool { return f.step == 0 }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	if f.step == 0 {
		return false
	}
	f.accumulator += delta
	if limit := f.step * maxCatchUp; f.accumulator > limit {
		f.accumulator = limit
	}
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
