package engine

import (
	"github.com/samdwyer/dungeonescape/internal/entity"
	"github.com/samdwyer/dungeonescape/internal/world"
)

// rays are scanned in this order: up, down, left, right.
var rays = []world.Delta{world.Up, world.Down, world.Left, world.Right}

// AdvanceMonsters moves every monster with line of sight to the player one
// cell closer and reports whether a monster now stands on the player's cell.
//
// Each ray starts one cell away from the player and stops at the first
// pillar or the grid edge. Every monster met before that steps toward the
// player and the scan continues behind it. Capture is checked once, after
// all four rays.
func AdvanceMonsters(g *world.Grid, p *entity.Player) bool {
	origin := p.Position()

	for _, dir := range rays {
		toward := world.Delta{DRow: -dir.DRow, DCol: -dir.DCol}
		for cell := origin.Add(dir); g.Contains(cell); cell = cell.Add(dir) {
			tile := g.Get(cell)
			if tile == world.TilePillar {
				break
			}
			if tile == world.TileMonster {
				g.Put(cell, world.TileOpen)
				g.Put(cell.Add(toward), world.TileMonster)
			}
		}
	}

	return g.Get(origin) == world.TileMonster
}
