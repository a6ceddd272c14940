package gamedata

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonescape/internal/world"
)

func TestLoadTileStyles(t *testing.T) {
	styles, err := LoadTileStyles()
	if err != nil {
		t.Fatalf("Failed to load tile styles: %v", err)
	}

	if len(styles) != len(world.AllTiles) {
		t.Errorf("Expected %d tile styles, got %d", len(world.AllTiles), len(styles))
	}

	if got := styles.Name(world.TileMonster); got != "Monster" {
		t.Errorf("Name(monster) = %q, want %q", got, "Monster")
	}
	if got := styles.Name(world.Tile('#')); got != "unknown" {
		t.Errorf("Name('#') = %q, want %q", got, "unknown")
	}
}

func TestLoadMissingFileNamesIt(t *testing.T) {
	_, err := Load[TilesFile]("missing.json")
	if err == nil {
		t.Fatal("Load(missing.json) should fail")
	}
	if !strings.Contains(err.Error(), "game data missing.json") {
		t.Errorf("error %q does not name the file", err)
	}
}

func TestTileStyleDefStyle(t *testing.T) {
	def := TileStyleDef{Symbol: "M", Color: "#FF0000", Bold: true}

	want := tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xFF, 0, 0)).Bold(true)
	if got := def.Style(); got != want {
		t.Errorf("Style() = %v, want bold red", got)
	}

	bad := TileStyleDef{Symbol: "M", Color: "nope"}
	if got := bad.Style(); got != tcell.StyleDefault {
		t.Errorf("invalid color style = %v, want default", got)
	}
}

func TestTileStyleDefTile(t *testing.T) {
	tests := []struct {
		symbol string
		ok     bool
	}{
		{"M", true},
		{"!", true},
		{"", false},
		{"MM", false},
		{"#", false},
	}

	for _, tt := range tests {
		def := TileStyleDef{Symbol: tt.symbol}
		if _, ok := def.Tile(); ok != tt.ok {
			t.Errorf("TileStyleDef{%q}.Tile() ok = %v, want %v", tt.symbol, ok, tt.ok)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}
