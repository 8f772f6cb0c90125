// Package registry provides a global registry of built-in worlds.
// Worlds register themselves in init() functions, allowing the CLI to
// discover and load them without hardcoded dependencies.
package registry

import (
	"fmt"
	"io/fs"
	"sort"
	"sync"
)

// WorldInfo contains metadata about a registered world.
type WorldInfo struct {
	ID    string
	Title string
}

// Factory returns the file system holding a world's room files and
// riddles.txt.
type Factory func() fs.FS

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a world to the registry.
// Typically called from an init() function.
// Panics if a world with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: world %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered worlds, sorted by ID.
func List() []WorldInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]WorldInfo, 0, len(factories))
	for id := range factories {
		result = append(result, WorldInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create returns the files of a world by its ID.
// Returns an error if the world ID is not registered.
func Create(id string) (fs.FS, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown world %q", id)
	}

	return f(), nil
}

// Exists checks if a world with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
