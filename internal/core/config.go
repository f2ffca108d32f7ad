package core

// RuntimeConfig carries the platform settings a session is started with.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second
	Seed     int64  // RNG seed, 0 means derive from the current time
	Profile  string // Player profile the best score is stored under
	Muted    bool   // Disable sound effects
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Profile:  "local",
	}
}
