// Package world provides the tile grid the renderer casts rays against.
package world

// Tile represents a single map cell.
type Tile rune

const (
	// TileWall represents an impassable, ray-blocking cell.
	TileWall Tile = '#'
	// TileFloor represents an open cell the player can occupy.
	TileFloor Tile = '.'
)

// IsPassable returns true if the tile can be walked through.
func (t Tile) IsPassable() bool {
	return t == TileFloor
}

// Valid returns true if the tile is part of the map alphabet.
func (t Tile) Valid() bool {
	return t == TileWall || t == TileFloor
}
