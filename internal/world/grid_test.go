package world

import "testing"

var testRows = []string{
	"########",
	"#......#",
	"#..##..#",
	"#......#",
	"#...#..#",
	"#...#..#",
	"#......#",
	"########",
}

func mustGrid(t *testing.T, width, height int, rows []string) *Grid {
	t.Helper()
	g, err := NewGrid(width, height, rows)
	if err != nil {
		t.Fatalf("Failed to build grid: %v", err)
	}
	return g
}

func TestIsWallMatchesLayout(t *testing.T) {
	g := mustGrid(t, 8, 8, testRows)

	// Every cell must agree with the source rows, probed from a point
	// inside the cell.
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			want := testRows[y][x] == '#'
			got := g.IsWall(float64(x)+0.5, float64(y)+0.5)
			if got != want {
				t.Errorf("IsWall(%d.5, %d.5) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestIsWallTruncates(t *testing.T) {
	g := mustGrid(t, 8, 8, testRows)

	// All probes within cell (3,2) resolve to the same wall cell.
	for _, frac := range []float64{0.0, 0.25, 0.999} {
		if !g.IsWall(3+frac, 2+frac) {
			t.Errorf("IsWall(%v, %v) = false, want true", 3+frac, 2+frac)
		}
	}
}

func TestOutOfBounds(t *testing.T) {
	g := mustGrid(t, 8, 8, testRows)

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, false},
		{7, 7, false},
		{8, 0, true},
		{0, 8, true},
		{8, 8, true},
		{100, 3, true},
		{3, 100, true},
	}

	for _, tc := range tests {
		if got := g.OutOfBounds(tc.x, tc.y); got != tc.want {
			t.Errorf("OutOfBounds(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestNewGridValidation(t *testing.T) {
	if _, err := NewGrid(8, 8, testRows[:7]); err == nil {
		t.Error("Expected error for missing row")
	}

	short := append([]string{}, testRows...)
	short[3] = "#...#"
	if _, err := NewGrid(8, 8, short); err == nil {
		t.Error("Expected error for short row")
	}

	bad := append([]string{}, testRows...)
	bad[3] = "#..@...#"
	if _, err := NewGrid(8, 8, bad); err == nil {
		t.Error("Expected error for unknown tile")
	}

	if _, err := NewGrid(0, 0, nil); err == nil {
		t.Error("Expected error for empty dimensions")
	}
}

func TestIsBorderSolid(t *testing.T) {
	g := mustGrid(t, 8, 8, testRows)
	if !g.IsBorderSolid() {
		t.Error("Expected solid border for ringed layout")
	}

	open := append([]string{}, testRows...)
	open[0] = "####.###"
	g = mustGrid(t, 8, 8, open)
	if g.IsBorderSolid() {
		t.Error("Expected non-solid border for layout with a gap")
	}
}

func TestTilePassability(t *testing.T) {
	if TileWall.IsPassable() {
		t.Error("Wall tiles must not be passable")
	}
	if !TileFloor.IsPassable() {
		t.Error("Floor tiles must be passable")
	}
	if Tile('@').Valid() {
		t.Error("Unknown runes must not be valid tiles")
	}
}
