package leveldata

import (
	"image/color"
	"testing"
)

func TestLoadLevels(t *testing.T) {
	levels, err := LoadLevels()
	if err != nil {
		t.Fatalf("Failed to load levels: %v", err)
	}

	if len(levels) != 2 {
		t.Errorf("Expected 2 levels, got %d", len(levels))
	}

	// Verify expected levels exist
	expectedIDs := map[string]bool{"atrium": false, "warrens": false}
	for _, l := range levels {
		if _, ok := expectedIDs[l.ID]; ok {
			expectedIDs[l.ID] = true
		}
	}

	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected level %q not found", id)
		}
	}
}

func TestRegistry(t *testing.T) {
	registry, err := LoadRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 2 {
		t.Errorf("Expected 2 levels, got %d", registry.Count())
	}

	if registry.Default().ID != "atrium" {
		t.Errorf("Default level = %q, want atrium", registry.Default().ID)
	}

	if _, err := registry.ByID("warrens"); err != nil {
		t.Errorf("ByID(warrens) failed: %v", err)
	}

	if _, err := registry.ByID("nonexistent"); err == nil {
		t.Error("Expected error for unknown level id")
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	levels := []LevelDef{{ID: "a"}, {ID: "a"}}
	if _, err := NewRegistry(levels); err == nil {
		t.Error("Expected error for duplicate level ids")
	}
	if _, err := NewRegistry(nil); err == nil {
		t.Error("Expected error for empty level list")
	}
}

func TestEmbeddedLevelsAreWellFormed(t *testing.T) {
	registry := MustLoadRegistry()

	for _, id := range registry.IDs() {
		def, err := registry.ByID(id)
		if err != nil {
			t.Fatalf("ByID(%s): %v", id, err)
		}

		grid, err := def.Grid()
		if err != nil {
			t.Fatalf("Level %s failed validation: %v", id, err)
		}

		if grid.Width != 16 || grid.Height != 16 {
			t.Errorf("Level %s is %dx%d, want 16x16", id, grid.Width, grid.Height)
		}
		if grid.IsWall(def.SpawnX, def.SpawnY) {
			t.Errorf("Level %s spawn is inside a wall", id)
		}
		if _, err := def.FloorRGBA(); err != nil {
			t.Errorf("Level %s floor color: %v", id, err)
		}
	}
}

func TestAtriumFloorColor(t *testing.T) {
	registry := MustLoadRegistry()
	atrium, err := registry.ByID("atrium")
	if err != nil {
		t.Fatal(err)
	}

	want := color.RGBA{R: 140, G: 40, B: 5, A: 255}
	got, err := atrium.FloorRGBA()
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("Atrium floor color = %v, want %v", got, want)
	}

	if atrium.Palette().Floor != want {
		t.Errorf("Atrium palette floor = %v, want %v", atrium.Palette().Floor, want)
	}
}

func TestGridValidationRejectsBadData(t *testing.T) {
	open := LevelDef{
		ID:     "open",
		SpawnX: 1.5, SpawnY: 1.5,
		Rows: []string{
			"###.",
			"#..#",
			"#..#",
			"####",
		},
	}
	if _, err := open.Grid(); err == nil {
		t.Error("Expected error for non-solid border")
	}

	walled := LevelDef{
		ID:     "walled",
		SpawnX: 0.5, SpawnY: 0.5,
		Rows: []string{
			"####",
			"#..#",
			"#..#",
			"####",
		},
	}
	if _, err := walled.Grid(); err == nil {
		t.Error("Expected error for spawn inside a wall")
	}

	empty := LevelDef{ID: "empty"}
	if _, err := empty.Grid(); err == nil {
		t.Error("Expected error for level with no rows")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#FF0000", color.RGBA{R: 255, A: 255}, false},
		{"00FF00", color.RGBA{G: 255, A: 255}, false},
		{"#8C2805", color.RGBA{R: 140, G: 40, B: 5, A: 255}, false},
		{"#FFF", color.RGBA{}, true},
		{"#GGGGGG", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}

	for _, tc := range tests {
		got, err := ParseHexColor(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseHexColor(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHexColor(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestPaletteFallsBackOnBadColor(t *testing.T) {
	def := LevelDef{ID: "x", FloorColor: "not-a-color"}
	if def.Palette().Floor.A != 255 {
		t.Error("Fallback palette must be opaque")
	}

	blank := LevelDef{ID: "y"}
	if blank.Palette().Floor.A != 255 {
		t.Error("Default palette must be opaque")
	}
}
