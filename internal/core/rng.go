package core

import (
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// FillSoup sets every cell to alive or dead with equal probability.
func (r *RNG) FillSoup(buf []Cell) {
	for i := range buf {
		buf[i] = Dead
		if r.Bool() {
			buf[i] = Alive
		}
	}
}

// SeedSource hands out seeds for random soups. A fixed base seed yields a
// reproducible sequence; zero falls back to the clock.
type SeedSource struct {
	next int64
	now  func() time.Time
}

// NewSeedSource returns a SeedSource starting at base.
func NewSeedSource(base int64) *SeedSource {
	return &SeedSource{next: base, now: time.Now}
}

// Next returns the seed for the next soup.
func (s *SeedSource) Next() int64 {
	if s.next == 0 {
		return s.now().UnixNano()
	}
	seed := s.next
	s.next++
	return seed
}
