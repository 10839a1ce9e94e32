// Package entity provides the viewer moving through the world.
package entity

import "math"

// Player is the single first-person viewer. Position is continuous, in
// map-cell units; Heading is in radians with 0 facing the +y axis.
type Player struct {
	X, Y    float64
	Heading float64
}

// NewPlayer creates a player at the given pose.
func NewPlayer(x, y, heading float64) *Player {
	return &Player{X: x, Y: y, Heading: heading}
}

// Rotate turns the player by delta radians. The heading accumulates without
// normalization; only its sine and cosine are ever consumed.
func (p *Player) Rotate(delta float64) {
	p.Heading += delta
}

// Walk moves the player step units along its heading. The update is purely
// additive, so Walk(-step) reverts a Walk(step) exactly.
func (p *Player) Walk(step float64) {
	p.X += math.Sin(p.Heading) * step
	p.Y += math.Cos(p.Heading) * step
}

// Position returns the current x, y coordinates.
func (p *Player) Position() (float64, float64) {
	return p.X, p.Y
}
