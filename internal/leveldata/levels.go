package leveldata

import (
	"fmt"
	"image/color"

	"github.com/samdwyer/raywalk/internal/render"
	"github.com/samdwyer/raywalk/internal/world"
)

// LevelDef defines a level loaded from JSON.
type LevelDef struct {
	ID           string   `json:"id"`           // Unique identifier (e.g., "atrium")
	Name         string   `json:"name"`         // Display name
	FloorColor   string   `json:"floorColor"`   // Hex color for the floor band (e.g., "#8C2805")
	SpawnX       float64  `json:"spawnX"`       // Player start position, cell units
	SpawnY       float64  `json:"spawnY"`       //
	SpawnHeading float64  `json:"spawnHeading"` // Player start heading, radians
	Rows         []string `json:"rows"`         // Row-major layout, row 0 at the lowest y
}

// LevelsFile represents the structure of levels.json.
type LevelsFile struct {
	Levels []LevelDef `json:"levels"`
}

// Grid validates the layout and builds the immutable tile grid.
// The border ring must be solid wall and the spawn must land on a floor
// cell; either violation is a data error, caught here rather than mid-frame.
func (l *LevelDef) Grid() (*world.Grid, error) {
	if len(l.Rows) == 0 {
		return nil, fmt.Errorf("level %s has no rows", l.ID)
	}
	g, err := world.NewGrid(len(l.Rows[0]), len(l.Rows), l.Rows)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	if !g.IsBorderSolid() {
		return nil, fmt.Errorf("level %s: border ring is not solid wall", l.ID)
	}
	if g.OutOfBounds(int(l.SpawnX), int(l.SpawnY)) || g.IsWall(l.SpawnX, l.SpawnY) {
		return nil, fmt.Errorf("level %s: spawn (%v,%v) is not on a floor cell", l.ID, l.SpawnX, l.SpawnY)
	}
	return g, nil
}

// Palette returns the shader palette for this level, falling back to the
// default floor color when the hex string is absent or malformed.
func (l *LevelDef) Palette() render.Palette {
	if l.FloorColor == "" {
		return render.DefaultPalette()
	}
	c, err := ParseHexColor(l.FloorColor)
	if err != nil {
		return render.DefaultPalette()
	}
	return render.Palette{Floor: c}
}

// FloorRGBA returns the parsed floor color, or an error for bad data.
func (l *LevelDef) FloorRGBA() (color.RGBA, error) {
	return ParseHexColor(l.FloorColor)
}

// LoadLevels loads level definitions from the embedded levels.json file.
func LoadLevels() ([]LevelDef, error) {
	file, err := Load[LevelsFile]("levels.json")
	if err != nil {
		return nil, err
	}
	return file.Levels, nil
}
