package app

import (
	"flag"
	"fmt"

	"toruslife/internal/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Life  life.Config
	Scale int
	Seed  int64
	Grid  bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Life: life.DefaultConfig(), Scale: 16, Grid: true}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Life.Size, "size", c.Life.Size, "grid side length in cells")
	fs.IntVar(&c.Life.Speed, "speed", c.Life.Speed, "initial generations per second")
	fs.IntVar(&c.Life.MinSpeed, "min-speed", c.Life.MinSpeed, "lowest speed reachable by slowing down")
	fs.IntVar(&c.Life.SpeedStep, "speed-step", c.Life.SpeedStep, "speed change per key press")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell (GUI only)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random soups; 0 uses the clock")
	fs.BoolVar(&c.Grid, "grid", c.Grid, "draw grid lines (GUI only)")
}

// Validate reports flag combinations that cannot start a simulation.
func (c *Config) Validate() error {
	if err := c.Life.Validate(); err != nil {
		return fmt.Errorf("invalid simulation config: %w", err)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	return nil
}
