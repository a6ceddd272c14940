// Package world provides the dungeon tile grid and its storage rules.
package world

// Tile represents a single map tile.
type Tile rune

const (
	// TileOpen is an empty, walkable cell.
	TileOpen Tile = '-'
	// TilePlayer marks the player's cell. Exactly one per grid.
	TilePlayer Tile = 'o'
	// TileTreasure is collected by walking onto it.
	TileTreasure Tile = '$'
	// TileAmulet doubles the level when collected.
	TileAmulet Tile = '@'
	// TileMonster blocks the player and hunts along straight lines.
	TileMonster Tile = 'M'
	// TilePillar blocks movement and line of sight.
	TilePillar Tile = '+'
	// TileDoor leads to the next level.
	TileDoor Tile = '?'
	// TileExit ends the game, but only opens for a player carrying treasure.
	TileExit Tile = '!'
)

// AllTiles lists every valid tile in declaration order.
var AllTiles = []Tile{
	TileOpen,
	TilePlayer,
	TileTreasure,
	TileAmulet,
	TileMonster,
	TilePillar,
	TileDoor,
	TileExit,
}

// ParseTile converts a level-file symbol into a Tile.
func ParseTile(r rune) (Tile, bool) {
	t := Tile(r)
	return t, t.Valid()
}

// Valid reports whether t is one of the known tiles.
func (t Tile) Valid() bool {
	switch t {
	case TileOpen, TilePlayer, TileTreasure, TileAmulet,
		TileMonster, TilePillar, TileDoor, TileExit:
		return true
	default:
		return false
	}
}

// IsEscape returns true for tiles that lead off the level.
func (t Tile) IsEscape() bool {
	return t == TileDoor || t == TileExit
}

// String returns the tile name.
func (t Tile) String() string {
	switch t {
	case TileOpen:
		return "open"
	case TilePlayer:
		return "player"
	case TileTreasure:
		return "treasure"
	case TileAmulet:
		return "amulet"
	case TileMonster:
		return "monster"
	case TilePillar:
		return "pillar"
	case TileDoor:
		return "door"
	case TileExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
