package world

import "fmt"

// Grid is an immutable row-major tile map. Coordinates are in cell units:
// cell (x, y) covers the half-open square [x, x+1) x [y, y+1).
type Grid struct {
	Width  int
	Height int
	cells  []Tile
}

// NewGrid builds a grid from row strings. Row 0 is the lowest row (smallest
// y); every row must be exactly width characters of the tile alphabet.
func NewGrid(width, height int, rows []string) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions %dx%d", width, height)
	}
	if len(rows) != height {
		return nil, fmt.Errorf("expected %d rows, got %d", height, len(rows))
	}

	cells := make([]Tile, 0, width*height)
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d is %d cells wide, expected %d", y, len(row), width)
		}
		for x, r := range row {
			t := Tile(r)
			if !t.Valid() {
				return nil, fmt.Errorf("unknown tile %q at (%d,%d)", r, x, y)
			}
			cells = append(cells, t)
		}
	}

	return &Grid{Width: width, Height: height, cells: cells}, nil
}

// At returns the tile at integer cell coordinates.
// The caller must ensure the coordinates are in bounds.
func (g *Grid) At(x, y int) Tile {
	return g.cells[y*g.Width+x]
}

// IsWall reports whether the cell containing the continuous point (x, y) is
// a wall. Coordinates are truncated to cell indices; the caller must have
// already established that the truncated point is in bounds.
func (g *Grid) IsWall(x, y float64) bool {
	return g.At(int(x), int(y)) == TileWall
}

// OutOfBounds reports whether the integer cell (x, y) lies beyond the grid.
// Only the upper bounds are checked: callers pass saturated non-negative
// magnitudes (see render.CastColumn).
func (g *Grid) OutOfBounds(x, y int) bool {
	return x >= g.Width || y >= g.Height
}

// IsBorderSolid reports whether the outermost ring of cells is entirely
// walls. Levels need a solid ring so movement and ray marching never leave
// the grid.
func (g *Grid) IsBorderSolid() bool {
	for x := 0; x < g.Width; x++ {
		if g.At(x, 0) != TileWall || g.At(x, g.Height-1) != TileWall {
			return false
		}
	}
	for y := 0; y < g.Height; y++ {
		if g.At(0, y) != TileWall || g.At(g.Width-1, y) != TileWall {
			return false
		}
	}
	return true
}
