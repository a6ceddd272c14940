package engine

import "github.com/samdwyer/dungeonescape/internal/world"

// Movement and control keys.
const (
	KeyUp    = 'w'
	KeyDown  = 's'
	KeyLeft  = 'a'
	KeyRight = 'd'
	KeyQuit  = 'q'
)

// ResolveDirection returns the cell reached from pos by the given key.
// Unrecognized keys leave pos unchanged.
func ResolveDirection(input rune, pos world.Position) world.Position {
	switch input {
	case KeyUp:
		return pos.Add(world.Up)
	case KeyDown:
		return pos.Add(world.Down)
	case KeyLeft:
		return pos.Add(world.Left)
	case KeyRight:
		return pos.Add(world.Right)
	default:
		return pos
	}
}

// IsMovementKey reports whether input is one of the four movement keys.
func IsMovementKey(input rune) bool {
	switch input {
	case KeyUp, KeyDown, KeyLeft, KeyRight:
		return true
	default:
		return false
	}
}
