package core

import "time"

// RuntimeConfig is what the platform knows about the terminal and clock
// when a session starts.
type RuntimeConfig struct {
	ScreenW  int           // Screen width in characters
	ScreenH  int           // Screen height in characters
	TickRate int           // Simulation ticks per second
	Seed     int64         // RNG seed; 0 means the platform picks one
	MaxDelta time.Duration // Upper bound on a single simulation step
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		MaxDelta: 50 * time.Millisecond,
	}
}

// TickInterval returns the wall time between ticks.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// StepDelta converts elapsed wall time into a simulation delta in seconds,
// capped at MaxDelta. Non-positive elapsed time yields one nominal tick.
func (c RuntimeConfig) StepDelta(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		elapsed = c.TickInterval()
	}
	if c.MaxDelta > 0 && elapsed > c.MaxDelta {
		elapsed = c.MaxDelta
	}
	return elapsed.Seconds()
}
