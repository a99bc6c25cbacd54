package life

import "fmt"

// Config holds the construction parameters of an Engine.
type Config struct {
	// Size is the side length N of the square grid.
	Size int
	// Speed is the initial rate in generations per second.
	Speed int
	// MinSpeed is the floor applied by AdjustSpeed.
	MinSpeed int
	// SpeedStep is the delta used by IncreaseSpeed and DecreaseSpeed events.
	SpeedStep int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Size: 50, Speed: 10, MinSpeed: 1, SpeedStep: 1}
}

// Validate reports configuration values the engine would otherwise have to
// silently correct.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("grid size must be positive, got %d", c.Size)
	}
	if c.MinSpeed < 0 {
		return fmt.Errorf("minimum speed must not be negative, got %d", c.MinSpeed)
	}
	if c.Speed < c.MinSpeed {
		return fmt.Errorf("speed %d is below the minimum speed %d", c.Speed, c.MinSpeed)
	}
	if c.SpeedStep <= 0 {
		return fmt.Errorf("speed step must be positive, got %d", c.SpeedStep)
	}
	return nil
}

// normalized clamps every field into its legal range.
func (c Config) normalized() Config {
	if c.Size <= 0 {
		c.Size = 1
	}
	if c.MinSpeed < 0 {
		c.MinSpeed = 0
	}
	if c.Speed < c.MinSpeed {
		c.Speed = c.MinSpeed
	}
	if c.SpeedStep <= 0 {
		c.SpeedStep = 1
	}
	return c
}
