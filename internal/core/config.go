package core

import "time"

// World dimensions of the canvas in world units, matching the 1200x900 window.
const (
	WorldWidth  = 1200
	WorldHeight = 900
)

// RuntimeConfig contains configuration passed to a frontend at startup.
// Frontends use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW    int           // Screen width in characters (terminal) or pixels (window)
	ScreenH    int           // Screen height in characters (terminal) or pixels (window)
	FrameDelay time.Duration // Pause between redraws
	Seed       int64         // RNG seed, 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		FrameDelay: 40 * time.Millisecond,
		Seed:       0, // 0 means use current time in platform layer
	}
}

// ResolveSeed returns the configured seed, or a time-based one when unset.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
