package leveldata

import (
	"errors"
	"fmt"
)

// Registry holds loaded level definitions keyed by id.
type Registry struct {
	levels []LevelDef
	byID   map[string]*LevelDef
}

// NewRegistry creates a registry from loaded level definitions.
func NewRegistry(levels []LevelDef) (*Registry, error) {
	if len(levels) == 0 {
		return nil, errors.New("no levels provided")
	}
	byID := make(map[string]*LevelDef, len(levels))
	for i := range levels {
		l := &levels[i]
		if _, dup := byID[l.ID]; dup {
			return nil, fmt.Errorf("duplicate level id %q", l.ID)
		}
		byID[l.ID] = l
	}
	return &Registry{levels: levels, byID: byID}, nil
}

// LoadRegistry loads and creates a registry from the embedded levels.json.
func LoadRegistry() (*Registry, error) {
	levels, err := LoadLevels()
	if err != nil {
		return nil, err
	}
	return NewRegistry(levels)
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// ByID returns the level with the given id.
func (r *Registry) ByID(id string) (*LevelDef, error) {
	l, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("unknown level %q", id)
	}
	return l, nil
}

// Default returns the first level in the file.
func (r *Registry) Default() *LevelDef {
	return &r.levels[0]
}

// Count returns the number of loaded levels.
func (r *Registry) Count() int {
	return len(r.levels)
}

// IDs returns the level ids in file order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.levels))
	for i, l := range r.levels {
		ids[i] = l.ID
	}
	return ids
}
