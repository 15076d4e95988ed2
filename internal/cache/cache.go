package cache

import (
	"sort"
	"sync"

	"langchecker/internal/parser"
)

// ParseCache keeps reference-locale parse results for the lifetime of the
// process. Entries are never invalidated.
type ParseCache struct {
	mu    sync.RWMutex
	files map[string]*parser.LangFile // path → parsed file
}

// NewParseCache creates an empty cache.
func NewParseCache() *ParseCache {
	return &ParseCache{
		files: make(map[string]*parser.LangFile),
	}
}

// Get retrieves a cached parse result.
func (c *ParseCache) Get(path string) (*parser.LangFile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	lf, ok := c.files[path]
	return lf, ok
}

// Set stores a parse result, replacing any previous one for path.
func (c *ParseCache) Set(path string, lf *parser.LangFile) {
	c.mu.Lock()
	c.files[path] = lf
	c.mu.Unlock()
}

func (c *ParseCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.files)
}

// Paths returns the cached paths, sorted.
func (c *ParseCache) Paths() []string {
	c.mu.RLock()
	paths := make([]string, 0, len(c.files))
	for p := range c.files {
		paths = append(paths, p)
	}
	c.mu.RUnlock()

	sort.Strings(paths)
	return paths
}
