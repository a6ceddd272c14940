package world

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
)

// MaxCells bounds rows*cols so every cell stays addressable by a 32-bit index.
const MaxCells = math.MaxInt32

// ErrInvalidDimensions is returned when a grid cannot be built with the
// requested size.
var ErrInvalidDimensions = errors.New("invalid grid dimensions")

// Grid is a rectangular dungeon level stored row-major in a single buffer.
// A Grid has one owner at a time; Doubled consumes its receiver.
type Grid struct {
	rows, cols int
	cells      []Tile
}

// NewGrid allocates a rows x cols grid with every cell open.
func NewGrid(rows, cols int) (*Grid, error) {
	if err := CheckDimensions(rows, cols); err != nil {
		return nil, err
	}

	cells := make([]Tile, rows*cols)
	for i := range cells {
		cells[i] = TileOpen
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// GridFromTiles builds a rows x cols grid over tiles, which must hold exactly
// rows*cols cells in row-major order. The grid takes ownership of tiles.
func GridFromTiles(rows, cols int, tiles []Tile) (*Grid, error) {
	if err := CheckDimensions(rows, cols); err != nil {
		return nil, err
	}
	if len(tiles) != rows*cols {
		return nil, fmt.Errorf("%w: %d tiles for %dx%d", ErrInvalidDimensions, len(tiles), rows, cols)
	}
	return &Grid{rows: rows, cols: cols, cells: tiles}, nil
}

// CheckDimensions reports whether a rows x cols grid can be built without
// allocating it.
func CheckDimensions(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	if rows > MaxCells/cols {
		return fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidDimensions, rows, cols, MaxCells)
	}
	return nil
}

// Release drops the grid's storage. Safe to call more than once.
func (g *Grid) Release() {
	if g == nil {
		return
	}
	g.cells = nil
	g.rows = 0
	g.cols = 0
}

// Released reports whether the grid no longer owns any storage.
func (g *Grid) Released() bool {
	return g == nil || g.cells == nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	if g == nil {
		return 0
	}
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	if g == nil {
		return 0
	}
	return g.cols
}

// InBounds reports whether (row, col) is inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return g != nil && row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Contains reports whether p is inside the grid.
func (g *Grid) Contains(p Position) bool {
	return g.InBounds(p.Row, p.Col)
}

// At returns the tile at (row, col). Cells outside the grid read as pillars
// so callers scanning past an edge see a blocker.
func (g *Grid) At(row, col int) Tile {
	if !g.InBounds(row, col) {
		return TilePillar
	}
	return g.cells[row*g.cols+col]
}

// Get returns the tile at p.
func (g *Grid) Get(p Position) Tile {
	return g.At(p.Row, p.Col)
}

// Set replaces the tile at (row, col). Writes outside the grid are ignored.
func (g *Grid) Set(row, col int, t Tile) {
	if !g.InBounds(row, col) {
		return
	}
	g.cells[row*g.cols+col] = t
}

// Put replaces the tile at p.
func (g *Grid) Put(p Position, t Tile) {
	g.Set(p.Row, p.Col, t)
}

// Count returns how many cells hold t.
func (g *Grid) Count(t Tile) int {
	if g == nil {
		return 0
	}
	n := 0
	for _, c := range g.cells {
		if c == t {
			n++
		}
	}
	return n
}

// Find returns the first cell, in row-major order, holding t.
func (g *Grid) Find(t Tile) (Position, bool) {
	if g == nil {
		return Position{}, false
	}
	for i, c := range g.cells {
		if c == t {
			return Position{Row: i / g.cols, Col: i % g.cols}, true
		}
	}
	return Position{}, false
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	if g.Released() {
		return &Grid{}
	}
	cells := make([]Tile, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Doubled returns a grid with twice the rows and twice the columns.
//
// The top-left quadrant is an exact copy of g. The other three quadrants
// repeat g's layout with the player cell written as open, so the new grid
// still holds a single player. On success g is released; on failure g is
// left untouched.
func (g *Grid) Doubled() (*Grid, error) {
	if g.Released() || g.rows < 1 || g.cols < 1 {
		return nil, fmt.Errorf("%w: cannot double an empty grid", ErrInvalidDimensions)
	}
	if g.rows > MaxCells/2 || g.cols > MaxCells/2 {
		return nil, fmt.Errorf("%w: %dx%d cannot be doubled", ErrInvalidDimensions, g.rows, g.cols)
	}

	out, err := NewGrid(g.rows*2, g.cols*2)
	if err != nil {
		return nil, err
	}

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			t := g.At(r, c)
			out.Set(r, c, t)

			if t == TilePlayer {
				t = TileOpen
			}
			out.Set(r, c+g.cols, t)
			out.Set(r+g.rows, c, t)
			out.Set(r+g.rows, c+g.cols, t)
		}
	}

	g.Release()
	return out, nil
}

// WriteTo writes the tile layout, one row per line with tiles separated by
// spaces, matching the tile block of a level file.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, g.String())
	return int64(n), err
}

// String returns the tile layout as written by WriteTo.
func (g *Grid) String() string {
	if g.Released() {
		return ""
	}
	var sb strings.Builder
	sb.Grow(g.rows * g.cols * 2)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(g.At(r, c).Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
