package engine

import (
	"github.com/samdwyer/dungeonescape/internal/entity"
	"github.com/samdwyer/dungeonescape/internal/world"
)

// TryMove attempts to move the player onto target.
// The grid and player are only changed when the outcome is not Stayed.
func TryMove(g *world.Grid, p *entity.Player, target world.Position) Outcome {
	if !g.Contains(target) {
		return Stayed
	}

	tile := g.Get(target)
	switch tile {
	case world.TilePillar, world.TileMonster:
		return Stayed
	case world.TileExit:
		// Locked until the player carries treasure
		if !p.HasTreasure() {
			return Stayed
		}
	}

	var outcome Outcome
	switch tile {
	case world.TileOpen:
		outcome = Moved
	case world.TileTreasure:
		outcome = CollectedTreasure
	case world.TileAmulet:
		outcome = CollectedAmulet
	case world.TileDoor:
		outcome = LeftLevel
	case world.TileExit:
		outcome = Escaped
	default:
		return Stayed
	}

	relocate(g, p, target)
	if outcome == CollectedTreasure {
		p.AddTreasure()
	}
	return outcome
}

// relocate clears the player's old cell and marks target as theirs.
func relocate(g *world.Grid, p *entity.Player, target world.Position) {
	g.Put(p.Position(), world.TileOpen)
	g.Put(target, world.TilePlayer)
	p.MoveTo(target)
}
