package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonescape/internal/world"
)

// TileStyleDef describes how one tile is drawn, loaded from JSON.
type TileStyleDef struct {
	Symbol string `json:"symbol"` // Level-file symbol (e.g., "M")
	Name   string `json:"name"`   // Legend label (e.g., "Monster")
	Color  string `json:"color"`  // Hex color code (e.g., "#FF0000")
	Bold   bool   `json:"bold"`
}

// Tile returns the tile this definition styles.
func (d *TileStyleDef) Tile() (world.Tile, bool) {
	runes := []rune(d.Symbol)
	if len(runes) != 1 {
		return 0, false
	}
	return world.ParseTile(runes[0])
}

// Style returns the tcell style for this tile.
func (d *TileStyleDef) Style() tcell.Style {
	style := tcell.StyleDefault.Bold(d.Bold)
	color, err := ParseHexColor(d.Color)
	if err != nil {
		return style // default foreground
	}
	return style.Foreground(color)
}

// TilesFile represents the structure of tiles.json.
type TilesFile struct {
	Tiles []TileStyleDef `json:"tiles"`
}

// TileStyles maps each tile to its display definition.
type TileStyles map[world.Tile]TileStyleDef

// LoadTileStyles loads tile display definitions from the embedded tiles.json.
// Every known tile must be defined exactly once.
func LoadTileStyles() (TileStyles, error) {
	file, err := Load[TilesFile]("tiles.json")
	if err != nil {
		return nil, fmt.Errorf("load tileset: %w", err)
	}

	styles := make(TileStyles, len(file.Tiles))
	for _, def := range file.Tiles {
		tile, ok := def.Tile()
		if !ok {
			return nil, fmt.Errorf("tiles.json: unknown symbol %q", def.Symbol)
		}
		if _, dup := styles[tile]; dup {
			return nil, fmt.Errorf("tiles.json: symbol %q defined twice", def.Symbol)
		}
		styles[tile] = def
	}

	for _, tile := range world.AllTiles {
		if _, ok := styles[tile]; !ok {
			return nil, fmt.Errorf("tiles.json: no style for %v", tile)
		}
	}
	return styles, nil
}

// MustLoadTileStyles loads tile styles, panicking on error.
func MustLoadTileStyles() TileStyles {
	styles, err := LoadTileStyles()
	if err != nil {
		panic(err)
	}
	return styles
}

// Style returns the style for t, or the default style for unknown tiles.
func (s TileStyles) Style(t world.Tile) tcell.Style {
	def, ok := s[t]
	if !ok {
		return tcell.StyleDefault
	}
	return def.Style()
}

// Name returns the legend label for t.
func (s TileStyles) Name(t world.Tile) string {
	if def, ok := s[t]; ok {
		return def.Name
	}
	return t.String()
}
