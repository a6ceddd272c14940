package engine

import (
	"testing"

	"github.com/samdwyer/dungeonescape/internal/entity"
	"github.com/samdwyer/dungeonescape/internal/world"
)

// setupLevel builds a grid from compact rows and places a player on its 'o'.
func setupLevel(t *testing.T, rows ...string) (*world.Grid, *entity.Player) {
	t.Helper()
	g, err := world.NewGrid(len(rows), len([]rune(rows[0])))
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	for r, line := range rows {
		for c, ch := range []rune(line) {
			g.Set(r, c, world.Tile(ch))
		}
	}

	p := entity.NewPlayer()
	pos, ok := g.Find(world.TilePlayer)
	if !ok {
		t.Fatal("layout has no player")
	}
	p.MoveTo(pos)
	return g, p
}

// layout renders a grid back into compact rows for comparison.
func layout(g *world.Grid) []string {
	rows := make([]string, g.Rows())
	for r := range rows {
		line := make([]rune, g.Cols())
		for c := range line {
			line[c] = g.At(r, c).Rune()
		}
		rows[r] = string(line)
	}
	return rows
}

func assertLayout(t *testing.T, g *world.Grid, want ...string) {
	t.Helper()
	got := layout(g)
	if len(got) != len(want) {
		t.Fatalf("grid has %d rows, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
}
