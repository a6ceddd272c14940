package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonescape/internal/gamedata"
	"github.com/samdwyer/dungeonescape/internal/world"
)

// HUD is the status shown under the map.
type HUD struct {
	Level     int
	LevelName string
	Treasure  int
	Turns     int
	Message   string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	styles gamedata.TileStyles
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, styles gamedata.TileStyles) *Renderer {
	return &Renderer{screen: screen, styles: styles}
}

// Render draws the grid and the HUD. Tiles are spaced one column apart so
// the map keeps the look of a level file.
func (r *Renderer) Render(grid *world.Grid, hud HUD) {
	r.screen.Clear()

	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			tile := grid.At(row, col)
			r.screen.SetContent(col*2, row, tile.Rune(), r.styles.Style(tile))
		}
	}

	y := grid.Rows() + 1
	status := fmt.Sprintf("Level %d", hud.Level)
	if hud.LevelName != "" {
		status += " (" + hud.LevelName + ")"
	}
	status += fmt.Sprintf("  Treasure %d  Turn %d", hud.Treasure, hud.Turns)
	r.RenderMessage(status, y)
	r.RenderMessage(hud.Message, y+1)

	r.screen.Show()
}

// RenderMessage displays a message on row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := 0
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}
