// Package game provides the turn loop and session state management.
package game

// State represents the current game state.
type State int

const (
	// StatePlaying is the default state while the player explores.
	StatePlaying State = iota
	// StateEscaped means the player left through the exit with treasure.
	StateEscaped
	// StateWon means the player walked through the door of the last level.
	StateWon
	// StateCaptured means a monster reached the player.
	StateCaptured
	// StateQuit means the player gave up.
	StateQuit
	// StateAborted means the next level failed to load.
	StateAborted
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateEscaped:
		return "escaped"
	case StateWon:
		return "won"
	case StateCaptured:
		return "captured"
	case StateQuit:
		return "quit"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// IsOver reports whether no more turns can be played.
func (s State) IsOver() bool {
	return s != StatePlaying
}
