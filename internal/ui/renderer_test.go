package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonescape/internal/gamedata"
	"github.com/samdwyer/dungeonescape/internal/world"
)

func newTestScreen(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := Wrap(sim)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	sim.SetSize(40, 10)
	t.Cleanup(screen.Close)
	return screen, sim
}

func TestRenderDrawsTiles(t *testing.T) {
	screen, sim := newTestScreen(t)
	r := NewRenderer(screen, gamedata.MustLoadTileStyles())

	grid, err := world.NewGrid(2, 3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	grid.Set(0, 0, world.TilePlayer)
	grid.Set(1, 2, world.TileExit)

	r.Render(grid, HUD{Level: 1, Treasure: 2, Message: "hello"})

	cases := []struct {
		x, y int
		want rune
	}{
		{0, 0, 'o'},
		{2, 0, '-'},
		{4, 1, '!'},
		{0, 3, 'L'},
		{0, 4, 'h'},
	}
	for _, c := range cases {
		got, _, _, _ := sim.GetContent(c.x, c.y)
		if got != c.want {
			t.Errorf("cell (%d,%d) = %q, want %q", c.x, c.y, got, c.want)
		}
	}
}

func TestRenderStatusShowsLevelName(t *testing.T) {
	screen, sim := newTestScreen(t)
	r := NewRenderer(screen, gamedata.MustLoadTileStyles())

	grid, err := world.NewGrid(1, 2)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	r.Render(grid, HUD{Level: 2, LevelName: "level2.txt", Treasure: 1, Turns: 7})

	var line []rune
	for x := 0; x < 40; x++ {
		ch, _, _, _ := sim.GetContent(x, 2)
		line = append(line, ch)
	}
	want := "Level 2 (level2.txt)  Treasure 1  Turn 7"
	if got := string(line[:len(want)]); got != want {
		t.Errorf("status line = %q, want %q", got, want)
	}
}
