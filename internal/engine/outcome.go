// Package engine applies player moves and monster steps to a dungeon grid.
package engine

// Outcome is the result of one movement attempt.
type Outcome int

const (
	// Stayed - the move was blocked; nothing changed.
	Stayed Outcome = iota
	// Moved - the player stepped onto an open cell.
	Moved
	// CollectedTreasure - the player picked up treasure.
	CollectedTreasure
	// CollectedAmulet - the player picked up the amulet.
	CollectedAmulet
	// LeftLevel - the player walked through a door.
	LeftLevel
	// Escaped - the player reached the exit carrying treasure.
	Escaped
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case Stayed:
		return "stayed"
	case Moved:
		return "moved"
	case CollectedTreasure:
		return "collected_treasure"
	case CollectedAmulet:
		return "collected_amulet"
	case LeftLevel:
		return "left_level"
	case Escaped:
		return "escaped"
	default:
		return "unknown"
	}
}
