package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Hosts fill it from the drawing surface and CLI flags.
type RuntimeConfig struct {
	CanvasW  float64 // Canvas width in pixels
	CanvasH  float64 // Canvas height in pixels
	TickRate int     // Host refresh rate in ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		CanvasW:  800,
		CanvasH:  600,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
