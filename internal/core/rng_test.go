package core

import (
	"slices"
	"testing"
	"time"
)

func TestFillSoupDeterministic(t *testing.T) {
	a := make([]Cell, 256)
	b := make([]Cell, 256)
	NewRNG(11).FillSoup(a)
	NewRNG(11).FillSoup(b)
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different soups")
	}
	for i, c := range a {
		if c != Dead && c != Alive {
			t.Fatalf("cell %d holds invalid state %d", i, c)
		}
	}
}

func TestSeedSource(t *testing.T) {
	fixed := NewSeedSource(7)
	if a, b := fixed.Next(), fixed.Next(); a != 7 || b != 8 {
		t.Fatalf("fixed seeds = %d, %d", a, b)
	}

	clock := NewSeedSource(0)
	clock.now = func() time.Time { return time.Unix(0, 1234) }
	if got := clock.Next(); got != 1234 {
		t.Fatalf("clock seed = %d", got)
	}
}
