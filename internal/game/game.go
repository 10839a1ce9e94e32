package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/samdwyer/raywalk/internal/render"
)

// Game is the windowed frontend: it owns the persistent pixel buffer and
// drives the simulation from ebiten's frame callbacks.
type Game struct {
	state  *State
	width  int
	height int
	pixels []byte
}

// New creates the windowed frontend around an initialized state.
func New(state *State, cfg Config) *Game {
	return &Game{
		state:  state,
		width:  cfg.Width,
		height: cfg.Height,
		pixels: make([]byte, cfg.Width*cfg.Height*4),
	}
}

// Update translates the keyboard into at most one command and applies it.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.state.Apply(LatestCommand(inpututil.KeyPressDuration))
	return nil
}

// Draw composites the frame into the pixel buffer and presents it.
func (g *Game) Draw(screen *ebiten.Image) {
	render.Frame(g.state.Grid, g.state.Player, g.state.View, g.state.Palette, g.pixels, g.width, g.height)
	screen.WritePixels(g.pixels)
}

// Layout reports the fixed canvas size regardless of the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until the player quits.
func (g *Game) Run(cfg Config) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	return ebiten.RunGame(g)
}
