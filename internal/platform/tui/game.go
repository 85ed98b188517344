package tui

import (
	"time"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Game is what the platform drives. Games contain pure logic with no
// Bubble Tea dependency; the platform handles input mapping, timing and
// terminal output.
type Game interface {
	// ID returns a unique identifier, used for screenshot names.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game state from the runtime config and seed.
	Reset(cfg core.RuntimeConfig)

	// Step applies the frame's input and advances the simulation by dt.
	Step(in core.InputFrame, dt time.Duration) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The game clears the screen itself.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}
