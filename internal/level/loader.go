// Package level parses dungeon level files into grids.
package level

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/dungeonescape/data"
	"github.com/samdwyer/dungeonescape/internal/telemetry"
	"github.com/samdwyer/dungeonescape/internal/world"
)

// Load failures. Every error returned by Load wraps one of these.
var (
	ErrMalformed         = errors.New("malformed level")
	ErrInvalidDimensions = errors.New("invalid level dimensions")
	ErrSpawnOutOfBounds  = errors.New("spawn outside level")
	ErrInvalidTile       = errors.New("invalid tile")
	ErrTrailingData      = errors.New("trailing data after tiles")
	ErrNoEscape          = errors.New("level has no door or exit")
	ErrSpawnOccupied     = errors.New("spawn cell is not open")
)

// Level is a freshly loaded dungeon level.
type Level struct {
	Name  string
	Grid  *world.Grid    // Owned by the caller once returned
	Spawn world.Position // Where the player starts; holds TilePlayer
}

// LoadFile reads a level from a file on disk.
func LoadFile(ctx context.Context, path string) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open level %s: %w", path, err)
	}
	defer f.Close()

	lvl, err := Load(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	lvl.Name = path
	return lvl, nil
}

// LoadEmbedded reads one of the levels bundled with the game.
func LoadEmbedded(ctx context.Context, name string) (*Level, error) {
	content, err := data.ReadLevel(name)
	if err != nil {
		return nil, err
	}
	defer content.Close()

	lvl, err := Load(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	lvl.Name = name
	return lvl, nil
}

// Load parses a level: "rows cols", "spawnRow spawnCol", then rows*cols tile
// symbols in row-major order. Tile symbols may be separated by whitespace or
// written back to back. On failure no grid is returned.
func Load(ctx context.Context, r io.Reader) (*Level, error) {
	tracer := telemetry.Tracer("level")
	_, span := tracer.Start(ctx, "level.load")
	defer span.End()

	lvl, err := parse(newTokenizer(r))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "level load failed")
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("level.rows", lvl.Grid.Rows()),
		attribute.Int("level.cols", lvl.Grid.Cols()),
		attribute.Int("level.spawn_row", lvl.Spawn.Row),
		attribute.Int("level.spawn_col", lvl.Spawn.Col),
		attribute.Int("level.monsters", lvl.Grid.Count(world.TileMonster)),
		attribute.Int("level.treasure", lvl.Grid.Count(world.TileTreasure)),
	)
	return lvl, nil
}

// initialTiles caps the tile buffer allocated before any tile is read.
const initialTiles = 1024

func parse(tok *tokenizer) (*Level, error) {
	rows, cols, err := tok.pair("dimensions")
	if err != nil {
		return nil, err
	}
	if err := world.CheckDimensions(rows, cols); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDimensions, err)
	}

	spawnRow, spawnCol, err := tok.pair("spawn")
	if err != nil {
		return nil, err
	}
	spawn := world.Position{Row: spawnRow, Col: spawnCol}
	if spawnRow < 0 || spawnRow >= rows || spawnCol < 0 || spawnCol >= cols {
		return nil, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrSpawnOutOfBounds,
			spawnRow, spawnCol, rows, cols)
	}

	tiles, err := readTiles(tok, rows, cols)
	if err != nil {
		return nil, err
	}

	if ch, err := tok.symbol(); err == nil {
		return nil, fmt.Errorf("%w: %q", ErrTrailingData, ch)
	} else if !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	idx := spawnRow*cols + spawnCol
	if got := tiles[idx]; got != world.TileOpen {
		return nil, fmt.Errorf("%w: (%d,%d) holds %v", ErrSpawnOccupied, spawnRow, spawnCol, got)
	}
	tiles[idx] = world.TilePlayer

	grid, err := world.GridFromTiles(rows, cols, tiles)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDimensions, err)
	}
	return &Level{Grid: grid, Spawn: spawn}, nil
}

// readTiles reads rows*cols tile symbols in row-major order and checks that
// at least one of them is a way out.
func readTiles(tok *tokenizer, rows, cols int) ([]world.Tile, error) {
	n := rows * cols
	tiles := make([]world.Tile, 0, min(n, initialTiles))

	hasEscape := false
	for i := 0; i < n; i++ {
		r, c := i/cols, i%cols
		ch, err := tok.symbol()
		if err != nil {
			return nil, fmt.Errorf("%w: tile (%d,%d): %w", ErrMalformed, r, c, err)
		}
		tile, ok := world.ParseTile(ch)
		if !ok {
			return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidTile, ch, r, c)
		}
		if tile.IsEscape() {
			hasEscape = true
		}
		tiles = append(tiles, tile)
	}

	if !hasEscape {
		return nil, ErrNoEscape
	}
	return tiles, nil
}

// tokenizer reads whitespace-separated integers and single tile symbols.
type tokenizer struct {
	r *bufio.Reader
}

func newTokenizer(r io.Reader) *tokenizer {
	return &tokenizer{r: bufio.NewReader(r)}
}

// skipSpace consumes whitespace and returns io.EOF at end of input.
func (t *tokenizer) skipSpace() error {
	for {
		ch, _, err := t.r.ReadRune()
		if err != nil {
			return err
		}
		if !unicode.IsSpace(ch) {
			return t.r.UnreadRune()
		}
	}
}

// symbol returns the next non-whitespace rune.
func (t *tokenizer) symbol() (rune, error) {
	if err := t.skipSpace(); err != nil {
		return 0, err
	}
	ch, _, err := t.r.ReadRune()
	return ch, err
}

// word returns the next whitespace-delimited token.
func (t *tokenizer) word() (string, error) {
	if err := t.skipSpace(); err != nil {
		return "", err
	}
	var buf []rune
	for {
		ch, _, err := t.r.ReadRune()
		if errors.Is(err, io.EOF) {
			return string(buf), nil
		}
		if err != nil {
			return "", err
		}
		if unicode.IsSpace(ch) {
			return string(buf), nil
		}
		buf = append(buf, ch)
	}
}

// pair reads two integers.
func (t *tokenizer) pair(what string) (int, int, error) {
	var out [2]int
	for i := range out {
		w, err := t.word()
		if err != nil {
			return 0, 0, fmt.Errorf("%w: reading %s: %w", ErrMalformed, what, err)
		}
		n, err := strconv.Atoi(w)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %s %q is not an integer", ErrMalformed, what, w)
		}
		out[i] = n
	}
	return out[0], out[1], nil
}
