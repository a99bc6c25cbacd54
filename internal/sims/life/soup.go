package life

import (
	"context"
	"slices"
)

// SoupResult summarizes a headless run of a random soup.
type SoupResult struct {
	Seed           int64
	Generations    int
	Population     int
	PeakPopulation int
	// SettledAt is the first generation identical to the one before it, or
	// -1 if the soup never settled into a still life.
	SettledAt int
}

// RunSoup seeds a fresh engine with seed and runs it for up to generations
// steps, stopping early once the grid stops changing. It returns ctx.Err()
// if the context is cancelled mid-run.
func RunSoup(ctx context.Context, cfg Config, seed int64, generations int) (SoupResult, error) {
	e := New(cfg)
	e.Randomize(seed)
	e.ToggleRun()
	res, err := runUntilSettled(ctx, e, generations)
	res.Seed = seed
	return res, err
}

func runUntilSettled(ctx context.Context, e *Engine, generations int) (SoupResult, error) {
	res := SoupResult{SettledAt: -1, PeakPopulation: e.Population()}
	for i := 0; i < generations; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if !e.Step() {
			break
		}
		pop := e.Population()
		res.PeakPopulation = max(res.PeakPopulation, pop)
		if e.settled() {
			res.SettledAt = e.generation
			break
		}
	}
	res.Generations = e.generation
	res.Population = e.Population()
	return res, nil
}

// settled reports whether the last computed generation equals its source.
func (e *Engine) settled() bool {
	return slices.Equal(e.cur.Cells(), e.prev.Cells())
}
