package render

import (
	"math"

	"github.com/samdwyer/raywalk/internal/entity"
	"github.com/samdwyer/raywalk/internal/world"
)

// rayStep is the fixed march increment in map units. Walls sit on integer
// cell boundaries, so a step well under one cell cannot skip over them.
const rayStep = 0.1

// CastColumn casts the ray for one screen column and returns the distance
// to the nearest wall, in map units. Rays are distributed linearly across
// the field of view, which keeps the original mild fisheye. The result is
// always in [0, MaxDepth]: a ray that leaves the grid or escapes without a
// hit reports exactly MaxDepth.
func CastColumn(g *world.Grid, p *entity.Player, v View, column, screenWidth int) float64 {
	rayAngle := p.Heading - v.FOV/2 + (float64(column)/float64(screenWidth))*v.FOV
	dirX := math.Sin(rayAngle)
	dirY := math.Cos(rayAngle)

	distance := 0.0
	for distance < v.MaxDepth {
		distance += rayStep

		testX := int(p.X + dirX*distance)
		testY := int(p.Y + dirY*distance)
		// Saturate at zero so a ray grazing the origin corner indexes
		// cell 0 instead of a negative cell.
		if testX < 0 {
			testX = 0
		}
		if testY < 0 {
			testY = 0
		}

		if g.OutOfBounds(testX, testY) {
			// Off the grid renders as maximally distant.
			return v.MaxDepth
		}
		if g.At(testX, testY) == world.TileWall {
			break
		}
	}

	if distance > v.MaxDepth {
		distance = v.MaxDepth
	}
	return distance
}
