package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Command is a discrete player action, at most one per frame.
type Command int

const (
	// CmdNone performs no action this frame.
	CmdNone Command = iota
	// CmdTurnLeft rotates the view counterclockwise.
	CmdTurnLeft
	// CmdTurnRight rotates the view clockwise.
	CmdTurnRight
	// CmdForward walks along the heading, reverting on collision.
	CmdForward
	// CmdBack walks against the heading, reverting on collision.
	CmdBack
)

// String returns a human-readable command name.
func (c Command) String() string {
	switch c {
	case CmdNone:
		return "none"
	case CmdTurnLeft:
		return "turn-left"
	case CmdTurnRight:
		return "turn-right"
	case CmdForward:
		return "forward"
	case CmdBack:
		return "back"
	default:
		return "unknown"
	}
}

var keyCommands = map[ebiten.Key]Command{
	ebiten.KeyA: CmdTurnLeft,
	ebiten.KeyD: CmdTurnRight,
	ebiten.KeyW: CmdForward,
	ebiten.KeyS: CmdBack,
}

// commandKeys fixes the iteration order so equal press durations resolve
// deterministically.
var commandKeys = []ebiten.Key{ebiten.KeyW, ebiten.KeyS, ebiten.KeyA, ebiten.KeyD}

// LatestCommand returns the command for the most recently pressed movement
// key, or CmdNone when none is held. pressDuration reports how many frames a
// key has been down (0 if released); the smallest positive duration wins, so
// only the latest key matters and chords are ignored.
func LatestCommand(pressDuration func(ebiten.Key) int) Command {
	latest := CmdNone
	latestDuration := math.MaxInt

	for _, key := range commandKeys {
		d := pressDuration(key)
		if d > 0 && d < latestDuration {
			latestDuration = d
			latest = keyCommands[key]
		}
	}
	return latest
}
