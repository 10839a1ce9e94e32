package render

import (
	"github.com/samdwyer/raywalk/internal/entity"
	"github.com/samdwyer/raywalk/internal/world"
)

// Frame composites one full frame into pix, a width*height*4 RGBA buffer
// laid out top-down as ebiten expects. Every pixel is written exactly once.
// The banding math is bottom-origin, so rows are flipped on write.
func Frame(g *world.Grid, p *entity.Player, v View, pal Palette, pix []byte, width, height int) {
	for x := 0; x < width; x++ {
		distance := CastColumn(g, p, v, x, width)
		bands := BandsFor(distance, width)

		for sy := 0; sy < height; sy++ {
			y := height - 1 - sy
			c := bands.RowColor(y, pal)
			i := (sy*width + x) * 4
			pix[i] = c.R
			pix[i+1] = c.G
			pix[i+2] = c.B
			pix[i+3] = c.A
		}
	}
}
