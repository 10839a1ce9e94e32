// Package render implements the per-column ray caster and the band shader
// that turn a grid and a viewer pose into pixels.
package render

import "image/color"

// View holds the read-only viewing parameters, set once at startup.
type View struct {
	// FOV is the total angular width of the visible scene, in radians.
	FOV float64
	// MaxDepth is the furthest distance a ray is marched, in map units.
	// The wall shading constants are tuned for a depth of 16.
	MaxDepth float64
}

// Palette holds the per-level colors the shader scales by distance and row.
type Palette struct {
	// Floor is the floor color at full brightness (nearest row).
	Floor color.RGBA
}

// DefaultPalette returns the standard rust-orange floor.
func DefaultPalette() Palette {
	return Palette{Floor: color.RGBA{R: 140, G: 40, B: 5, A: 255}}
}
