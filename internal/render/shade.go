package render

import "image/color"

const (
	// Wall shading: grayscale, linear in distance. At distance 0 the wall
	// is near white (235); at distance 16 it is near black (20). Re-derive
	// both constants if MaxDepth changes.
	wallShadeSlope = -13.4375
	wallShadeBase  = 235.0

	// Floor shading falls off linearly from 1.0 at the nearest row to
	// 0.05 at the floor/wall boundary.
	floorShadeFalloff = -0.95

	// minShadeDistance guards the boundary division. The march never
	// reports less than one step, so this only matters for direct calls.
	minShadeDistance = 1e-6
)

// ColumnBands holds the precomputed shading for one screen column. Rows are
// logical, bottom-origin: row 0 is the closest floor row.
type ColumnBands struct {
	floorRow      int
	ceilingRow    int
	floorBoundary float64
	wallShade     uint8
}

// BandsFor computes the floor/wall/ceiling banding for a column with the
// given hit distance. The single extent parameter is used for both axes of
// the boundary math: the viewport is treated as square regardless of the
// actual buffer height.
func BandsFor(distance float64, extent int) ColumnBands {
	if distance < minShadeDistance {
		distance = minShadeDistance
	}

	floorBoundary := float64(extent)/2 - float64(extent)/distance
	ceilingBoundary := float64(extent) - floorBoundary

	return ColumnBands{
		floorRow:      truncRow(floorBoundary),
		ceilingRow:    truncRow(ceilingBoundary),
		floorBoundary: floorBoundary,
		wallShade:     clamp8(wallShadeSlope*distance + wallShadeBase),
	}
}

// RowColor returns the color of logical row y within the column.
func (b ColumnBands) RowColor(y int, pal Palette) color.RGBA {
	switch {
	case y < b.floorRow:
		shade := float64(y)*(floorShadeFalloff/b.floorBoundary) + 1.0
		return color.RGBA{
			R: clamp8(float64(pal.Floor.R) * shade),
			G: clamp8(float64(pal.Floor.G) * shade),
			B: clamp8(float64(pal.Floor.B) * shade),
			A: 255,
		}
	case y > b.floorRow && y <= b.ceilingRow:
		return color.RGBA{R: b.wallShade, G: b.wallShade, B: b.wallShade, A: 255}
	default:
		return color.RGBA{A: 255}
	}
}

// WallShade exposes the column's wall gray level.
func (b ColumnBands) WallShade() uint8 {
	return b.wallShade
}

// FloorRows returns the number of floor rows at the bottom of the column.
func (b ColumnBands) FloorRows() int {
	return b.floorRow
}

// truncRow truncates a boundary to a row index, saturating at zero the way
// the float-to-unsigned cast it replaces did.
func truncRow(v float64) int {
	if v < 0 {
		return 0
	}
	return int(v)
}

// clamp8 converts to an 8-bit channel with saturation at both ends.
func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
