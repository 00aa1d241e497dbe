package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Frontend surface width (cells or pixels)
	ScreenH  int   // Frontend surface height (cells or pixels)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic platform speeds
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a run.
type GameState struct {
	Won    bool // Player has reached the target in this run
	Paused bool // Simulation is paused
	Ticks  int  // Frames simulated since the last reset
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// WonThisTick is true only on the tick the win message fired.
	WonThisTick bool
}
