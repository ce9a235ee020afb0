// Package registry maps world ids to their builders.
// Worlds register themselves in init() functions, so the CLI can list and
// build them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/homeward/internal/world"
)

// Factory builds a world. A zero seed means the world's own default seed.
type Factory func(seed int64) (*world.World, error)

// WorldInfo contains metadata about a registered world.
type WorldInfo struct {
	ID    string
	Title string
}

type entry struct {
	title   string
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a world factory to the registry.
// Panics if a world with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: world %q already registered", id))
	}
	entries[id] = entry{title: title, factory: f}
}

// List returns all registered worlds, sorted by ID.
func List() []WorldInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]WorldInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, WorldInfo{ID: id, Title: e.title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create builds a world by its ID.
func Create(id string, seed int64) (*world.World, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown world %q", id)
	}
	w, err := e.factory(seed)
	if err != nil {
		return nil, fmt.Errorf("registry: build %q: %w", id, err)
	}
	return w, nil
}

// Exists checks if a world with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
