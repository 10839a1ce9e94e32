package game

import (
	"math"
	"os"
	"strconv"
)

// Startup defaults. The canvas is square; the shader's banding math assumes
// it and reuses the width for the vertical extent.
const (
	DefaultWidth    = 512
	DefaultHeight   = 512
	DefaultTitle    = "Raywalk"
	DefaultMaxDepth = 16.0
	DefaultMoveStep = 0.2
	DefaultTurnStep = 0.1

	// DefaultFOV is the total field of view in radians.
	DefaultFOV = math.Pi / 4
)

// GeneratedLevel is the level id that selects the procedural generator
// instead of an embedded layout.
const GeneratedLevel = "generated"

// Generated level dimensions.
const (
	GeneratedWidth  = 24
	GeneratedHeight = 24
)

// Config holds renderer configuration, read once at startup.
type Config struct {
	Width    int     // canvas width in pixels
	Height   int     // canvas height in pixels
	Title    string  // window title
	FOV      float64 // field of view, radians
	MaxDepth float64 // maximum ray depth, map units
	MoveStep float64 // forward/back step per command, map units
	TurnStep float64 // rotation per command, radians
	Level    string  // level id; empty selects the first embedded level
	Seed     int64   // seed for generated levels; 0 means time-based
	Terminal bool    // render to the terminal instead of a window
}

// LoadConfig builds a Config from RAYWALK_* environment variables,
// falling back to the defaults above. main loads .env beforehand.
func LoadConfig() Config {
	return Config{
		Width:    envInt("RAYWALK_WIDTH", DefaultWidth),
		Height:   envInt("RAYWALK_HEIGHT", DefaultHeight),
		Title:    envString("RAYWALK_TITLE", DefaultTitle),
		FOV:      envFloat("RAYWALK_FOV", DefaultFOV),
		MaxDepth: envFloat("RAYWALK_MAX_DEPTH", DefaultMaxDepth),
		MoveStep: envFloat("RAYWALK_MOVE_STEP", DefaultMoveStep),
		TurnStep: envFloat("RAYWALK_TURN_STEP", DefaultTurnStep),
		Level:    envString("RAYWALK_LEVEL", ""),
		Seed:     envInt64("RAYWALK_SEED", 0),
		Terminal: envBool("RAYWALK_TERMINAL", false),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
