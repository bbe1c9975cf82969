package tui

import "github.com/vovakirdan/tui-snake/internal/core"

// Game is what the platform needs from a game to run it in a terminal.
// Games hold pure logic; the platform owns timing, input and output.
type Game interface {
	// ID returns a stable identifier used in logs.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh round sized for the given config.
	Reset(cfg core.RuntimeConfig)

	// Resize adapts the layout to a new screen size without restarting.
	Resize(w, h int)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}
