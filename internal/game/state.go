// Package game provides the simulation state, input translation and the
// windowed frame loop.
package game

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/raywalk/internal/entity"
	"github.com/samdwyer/raywalk/internal/leveldata"
	"github.com/samdwyer/raywalk/internal/render"
	"github.com/samdwyer/raywalk/internal/telemetry"
	"github.com/samdwyer/raywalk/internal/world"
)

// State is the complete cross-frame simulation state. The grid, view and
// palette are read-only after construction; the player is the only mutable
// piece and is owned exclusively by the frame loop.
type State struct {
	Grid    *world.Grid
	Player  *entity.Player
	View    render.View
	Palette render.Palette

	MoveStep float64
	TurnStep float64
}

// NewState builds the simulation state for the configured level.
func NewState(ctx context.Context, cfg Config) (*State, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	s := &State{
		View:     render.View{FOV: cfg.FOV, MaxDepth: cfg.MaxDepth},
		MoveStep: cfg.MoveStep,
		TurnStep: cfg.TurnStep,
	}

	if cfg.Level == GeneratedLevel {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))
		grid, spawnX, spawnY := world.Generate(ctx, GeneratedWidth, GeneratedHeight, rng)

		s.Grid = grid
		s.Player = entity.NewPlayer(spawnX, spawnY, 0)
		s.Palette = render.DefaultPalette()

		span.SetAttributes(
			attribute.String("level.id", GeneratedLevel),
			attribute.Int64("level.seed", seed),
		)
	} else {
		registry, err := leveldata.LoadRegistry()
		if err != nil {
			return nil, err
		}

		def := registry.Default()
		if cfg.Level != "" {
			def, err = registry.ByID(cfg.Level)
			if err != nil {
				return nil, err
			}
		}

		grid, err := def.Grid()
		if err != nil {
			return nil, err
		}

		s.Grid = grid
		s.Player = entity.NewPlayer(def.SpawnX, def.SpawnY, def.SpawnHeading)
		s.Palette = def.Palette()

		span.SetAttributes(
			attribute.String("level.id", def.ID),
			attribute.Int("level.width", grid.Width),
			attribute.Int("level.height", grid.Height),
		)
	}

	return s, nil
}

// TryMove walks the player by step along its heading, then reverts the walk
// if the new position lands in a wall. Returns whether the move held.
// The revert restores the exact previous position because Walk is additive.
func (s *State) TryMove(step float64) bool {
	s.Player.Walk(step)
	if s.Grid.IsWall(s.Player.X, s.Player.Y) {
		s.Player.Walk(-step)
		return false
	}
	return true
}

// Apply executes at most one discrete command against the state.
func (s *State) Apply(cmd Command) {
	switch cmd {
	case CmdTurnLeft:
		s.Player.Rotate(-s.TurnStep)
	case CmdTurnRight:
		s.Player.Rotate(s.TurnStep)
	case CmdForward:
		s.TryMove(s.MoveStep)
	case CmdBack:
		s.TryMove(-s.MoveStep)
	}
}
