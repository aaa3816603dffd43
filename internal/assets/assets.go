// Package assets handles mesh loading and caching for the server.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/Faultbox/meshfold/pkg/formats"
	"github.com/Faultbox/meshfold/pkg/unfold"
)

var (
	ErrNotFound    = errors.New("mesh not found")
	ErrInvalidName = errors.New("invalid mesh name")
)

// Mesh is a loaded STL together with its triangles.
type Mesh struct {
	Name      string
	STL       *formats.STL
	Triangles []unfold.Triangle
}

// Manager handles mesh loading from a list of directories.
type Manager struct {
	dirs  []string
	cache *Cache
	mu    sync.RWMutex
}

// NewManager creates a new mesh manager.
func NewManager() *Manager {
	return &Manager{
		cache: NewCache(),
	}
}

// AddDir adds a directory to the search list.
// Directories are searched in reverse order (last added = highest priority).
func (m *Manager) AddDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("opening mesh directory %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("opening mesh directory %s: not a directory", path)
	}

	m.mu.Lock()
	m.dirs = append(m.dirs, path)
	m.mu.Unlock()

	return nil
}

// Load returns the mesh stored under name, parsing it on first use.
func (m *Manager) Load(name string) (*Mesh, error) {
	if !filepath.IsLocal(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	// Check cache first
	if mesh, ok := m.cache.Get(name); ok {
		return mesh, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.dirs) - 1; i >= 0; i-- {
		stl, err := formats.LoadSTL(filepath.Join(m.dirs[i], name))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("loading mesh %s: %w", name, err)
		}

		mesh := &Mesh{
			Name:      name,
			STL:       stl,
			Triangles: unfold.FromSTL(stl),
		}
		m.cache.Set(name, mesh)
		return mesh, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Dirs returns the search directories in priority order, highest first.
func (m *Manager) Dirs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	dirs := make([]string, 0, len(m.dirs))
	for i := len(m.dirs) - 1; i >= 0; i-- {
		dirs = append(dirs, m.dirs[i])
	}
	return dirs
}

// Close drops all directories and cached meshes.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.dirs = nil
	m.cache.Clear()
}

// Cache is a simple in-memory cache for loaded meshes.
type Cache struct {
	data map[string]*Mesh
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string]*Mesh),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) (*Mesh, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	mesh, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return mesh, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, mesh *Mesh) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = mesh
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]*Mesh)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
