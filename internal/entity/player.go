// Package entity provides the player record moved around the dungeon.
package entity

import (
	"github.com/google/uuid"

	"github.com/samdwyer/dungeonescape/internal/world"
)

// Player is the explorer's mutable state. The caller owns it for the whole
// session; the engine only updates its fields.
type Player struct {
	ID       uuid.UUID // Identifies the player in traces
	Row, Col int       // Current cell
	Treasure int       // Treasure collected so far (never decreases)
}

// NewPlayer creates a player with a fresh ID and no treasure.
func NewPlayer() *Player {
	return &Player{ID: uuid.New()}
}

// Position returns the player's current cell.
func (p *Player) Position() world.Position {
	return world.Position{Row: p.Row, Col: p.Col}
}

// MoveTo sets the player's current cell.
func (p *Player) MoveTo(pos world.Position) {
	p.Row = pos.Row
	p.Col = pos.Col
}

// AddTreasure records one more collected treasure.
func (p *Player) AddTreasure() {
	p.Treasure++
}

// HasTreasure reports whether the exit will open for this player.
func (p *Player) HasTreasure() bool {
	return p.Treasure > 0
}
