// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StateInitializing is the state before the cave is generated.
	StateInitializing State = iota
	// StatePlaying is the turn loop.
	StatePlaying
	// StateWon means the Wumpus was shot.
	StateWon
	// StateLost means the player fell into a pit or was caught.
	StateLost
	// StateQuit means the player left or input ended.
	StateQuit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// IsOver returns true for terminal states.
func (s State) IsOver() bool {
	return s == StateWon || s == StateLost || s == StateQuit
}
