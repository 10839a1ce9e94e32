package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/raywalk/internal/telemetry"
)

const (
	minRoomSize   = 2
	maxRoomSize   = 5
	placeAttempts = 40
)

type room struct {
	x, y          int
	width, height int
}

func (r room) center() (float64, float64) {
	return float64(r.x) + float64(r.width)/2, float64(r.y) + float64(r.height)/2
}

func (r room) overlaps(o room) bool {
	// One cell of padding so rooms keep a wall between them.
	return r.x-1 < o.x+o.width && o.x-1 < r.x+r.width &&
		r.y-1 < o.y+o.height && o.y-1 < r.y+r.height
}

// Generate builds a random room-and-corridor level of the given size.
// The outermost ring is always solid wall. It returns the grid and a spawn
// point inside the first room. The same seed always produces the same level.
func Generate(ctx context.Context, width, height int, rng *rand.Rand) (*Grid, float64, float64) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "level.generate")
	defer span.End()

	startTime := time.Now()

	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = make([]rune, width)
		for x := range cells[y] {
			cells[y][x] = rune(TileWall)
		}
	}

	rooms := placeRooms(cells, width, height, rng)
	for i := 1; i < len(rooms); i++ {
		carveCorridor(cells, rooms[i-1], rooms[i])
	}

	rows := make([]string, height)
	for y := range cells {
		rows[y] = string(cells[y])
	}
	grid, err := NewGrid(width, height, rows)
	if err != nil {
		// Unreachable: the carver only writes tiles from the map alphabet
		// and never touches the border ring.
		panic(err)
	}

	spawnX, spawnY := rooms[0].center()

	span.SetAttributes(
		attribute.Int("level.width", width),
		attribute.Int("level.height", height),
		attribute.Int("level.room_count", len(rooms)),
		attribute.Int64("level.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return grid, spawnX, spawnY
}

// placeRooms carves non-overlapping rooms, guaranteeing at least one.
func placeRooms(cells [][]rune, width, height int, rng *rand.Rand) []room {
	var rooms []room
	for i := 0; i < placeAttempts; i++ {
		w := minRoomSize + rng.Intn(maxRoomSize-minRoomSize+1)
		h := minRoomSize + rng.Intn(maxRoomSize-minRoomSize+1)
		if w >= width-2 || h >= height-2 {
			continue
		}
		r := room{
			x:      1 + rng.Intn(width-w-2),
			y:      1 + rng.Intn(height-h-2),
			width:  w,
			height: h,
		}

		blocked := false
		for _, placed := range rooms {
			if r.overlaps(placed) {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}

		for y := r.y; y < r.y+r.height; y++ {
			for x := r.x; x < r.x+r.width; x++ {
				cells[y][x] = rune(TileFloor)
			}
		}
		rooms = append(rooms, r)
	}

	if len(rooms) == 0 {
		// Degenerate dimensions: fall back to a single centered cell room.
		r := room{x: width / 2, y: height / 2, width: 1, height: 1}
		cells[r.y][r.x] = rune(TileFloor)
		rooms = append(rooms, r)
	}
	return rooms
}

// carveCorridor connects two rooms with an L-shaped corridor.
func carveCorridor(cells [][]rune, a, b room) {
	ax, ay := a.center()
	bx, by := b.center()
	x1, y1 := int(ax), int(ay)
	x2, y2 := int(bx), int(by)

	for x := min(x1, x2); x <= max(x1, x2); x++ {
		cells[y1][x] = rune(TileFloor)
	}
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		cells[y][x2] = rune(TileFloor)
	}
}
