package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Host frames per second
	SeedText string // World seed; empty means the configured default
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned to the platform to communicate status.
type GameState struct {
	Score    int  // Current score
	Round    int  // Current round, starting at 1
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}
