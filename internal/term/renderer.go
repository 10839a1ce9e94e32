package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/raywalk/internal/game"
	"github.com/samdwyer/raywalk/internal/render"
)

// tick fixes the frame rate; terminal cells repaint cheaply enough that a
// 15ms cadence stays smooth.
const tick = 15 * time.Millisecond

var (
	wallStyle  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorDarkSlateBlue)
	floorStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorDarkGoldenrod)
	skyStyle   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
)

// Run drives the terminal frame loop until the player quits or the context
// is canceled. One command is applied per tick: the most recent key event
// since the previous tick wins, mirroring the windowed frontend.
func Run(ctx context.Context, state *game.State) error {
	screen, err := NewScreen()
	if err != nil {
		return err
	}
	defer screen.Close()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	pending := game.CmdNone
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quitKey(ev) {
					return nil
				}
				if cmd, ok := keyCommand(ev); ok {
					pending = cmd
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			state.Apply(pending)
			pending = game.CmdNone
			drawFrame(screen, state)
		}
	}
}

func quitKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')
}

func keyCommand(ev *tcell.EventKey) (game.Command, bool) {
	if ev.Key() != tcell.KeyRune {
		return game.CmdNone, false
	}
	switch ev.Rune() {
	case 'a', 'A':
		return game.CmdTurnLeft, true
	case 'd', 'D':
		return game.CmdTurnRight, true
	case 'w', 'W':
		return game.CmdForward, true
	case 's', 'S':
		return game.CmdBack, true
	}
	return game.CmdNone, false
}

// drawFrame casts one ray per terminal column and paints ceiling, wall and
// floor glyphs. Terminal cells are not square, so the vertical banding uses
// the terminal height rather than the pixel shader's square-extent rule.
func drawFrame(screen *Screen, state *game.State) {
	width, height := screen.Size()
	if width <= 0 || height <= 0 {
		return
	}

	for x := 0; x < width; x++ {
		distance := render.CastColumn(state.Grid, state.Player, state.View, x, width)

		ceiling := float64(height)/2 - float64(height)/distance
		floor := float64(height) - ceiling
		wall := WallGlyph(distance, state.View.MaxDepth)

		for y := 0; y < height; y++ {
			switch {
			case float64(y) < ceiling:
				screen.SetContent(x, y, ' ', skyStyle)
			case float64(y) <= floor:
				screen.SetContent(x, y, wall, wallStyle)
			default:
				screen.SetContent(x, y, FloorGlyph(y, height), floorStyle)
			}
		}
	}

	screen.Show()
}

// WallGlyph picks a block glyph by distance: nearer walls render denser.
func WallGlyph(distance, maxDepth float64) rune {
	switch {
	case distance <= maxDepth/4:
		return '█'
	case distance <= maxDepth/3:
		return '▓'
	case distance <= maxDepth/2:
		return '▒'
	case distance < maxDepth:
		return '░'
	default:
		return ' '
	}
}

// FloorGlyph picks a floor glyph by row: rows nearer the viewer render denser.
func FloorGlyph(y, height int) rune {
	b := 1.0 - (float64(y)-float64(height)/2)/(float64(height)/2)
	switch {
	case b < 0.25:
		return '#'
	case b < 0.5:
		return 'x'
	case b < 0.75:
		return '.'
	case b < 0.9:
		return '-'
	default:
		return ' '
	}
}
