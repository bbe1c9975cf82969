package core

// RuntimeConfig carries what the platform knows about the terminal.
// Games use it to lay themselves out and to pace their moves.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// GameState is what the platform needs to know after every tick.
type GameState struct {
	Length   int  // Current snake length
	GameOver bool // Whether the snake has collided
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Moved bool // Whether the snake advanced during this tick
}
