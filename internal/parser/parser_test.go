package parser_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"langchecker/internal/cache"
	"langchecker/internal/parser"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingLoader serves lines from memory and counts reads per path.
type countingLoader struct {
	mu    sync.Mutex
	files map[string][]string
	calls map[string]int
}

func newCountingLoader(files map[string][]string) *countingLoader {
	return &countingLoader{files: files, calls: make(map[string]int)}
}

func (l *countingLoader) Load(path string) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls[path]++
	lines, ok := l.files[path]
	if !ok {
		return nil, parser.ErrMissingFile
	}
	return lines, nil
}

func (l *countingLoader) count(path string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls[path]
}

var referenceLines = []string{
	"## active ##",
	"# Page title",
	"## TAG: header",
	";Hello",
	"Hello",
	";Hello",
	"Hi",
}

func TestParse_missingFile(t *testing.T) {
	var buf bytes.Buffer
	c := cache.NewParseCache()
	p := parser.New(c, parser.WithLogger(zerolog.New(&buf)))

	lf := p.Parse(filepath.Join(t.TempDir(), "missing.lang"), true)

	assert.False(t, lf.Activated)
	assert.Equal(t, 0, lf.Strings.Len())
	assert.Nil(t, lf.Comments)
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
	assert.Contains(t, buf.String(), "does not exist")
	assert.Equal(t, 0, c.Len())
}

func TestParse_missingFileQuiet(t *testing.T) {
	var buf bytes.Buffer
	p := parser.New(cache.NewParseCache(), parser.WithLogger(zerolog.New(&buf)), parser.WithShowErrors(false))

	lf := p.Parse(filepath.Join(t.TempDir(), "missing.lang"), false)

	assert.Equal(t, 0, lf.Strings.Len())
	assert.Empty(t, buf.String())
}

func TestParse_missingFileRetried(t *testing.T) {
	path := filepath.Join(t.TempDir(), "late.lang")
	p := parser.New(cache.NewParseCache(), parser.WithLogger(zerolog.Nop()))

	lf := p.Parse(path, true)
	require.Equal(t, 0, lf.Strings.Len())

	require.NoError(t, os.WriteFile(path, []byte(";Hello\nBonjour\n"), 0o644))
	lf = p.Parse(path, true)
	got, ok := lf.Strings.Get("Hello")
	require.True(t, ok)
	assert.Equal(t, "Bonjour", got)
}

func TestParse_activeAfterBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bom.lang")
	require.NoError(t, os.WriteFile(path, []byte("\xEF\xBB\xBF## active ##\n;Hello\nBonjour\n"), 0o644))

	lf := parser.New(cache.NewParseCache()).Parse(path, false)
	assert.True(t, lf.Activated)
}

func TestParse_referenceCachedWithoutReread(t *testing.T) {
	loader := newCountingLoader(map[string][]string{"en-US/main.lang": referenceLines})
	c := cache.NewParseCache()
	p := parser.New(c, parser.WithLoader(loader))

	first := p.Parse("en-US/main.lang", true)
	second := p.Parse("en-US/main.lang", true)

	assert.Same(t, first, second)
	assert.Equal(t, 1, loader.count("en-US/main.lang"))
	assert.Equal(t, []string{"Hello"}, second.Duplicates)
	assert.Equal(t, []string{"Page title"}, second.Comments["Hello"])
	assert.Equal(t, "header", second.TagBindings["Hello"])
	assert.Equal(t, []string{"en-US/main.lang"}, c.Paths())
}

func TestParse_localeNotCached(t *testing.T) {
	loader := newCountingLoader(map[string][]string{"fr/main.lang": {";Hello", "Bonjour"}})
	c := cache.NewParseCache()
	p := parser.New(c, parser.WithLoader(loader))

	p.Parse("fr/main.lang", false)
	p.Parse("fr/main.lang", false)

	assert.Equal(t, 2, loader.count("fr/main.lang"))
	assert.Equal(t, 0, c.Len())
}

func TestParse_cacheIgnoresLocaleFlag(t *testing.T) {
	loader := newCountingLoader(map[string][]string{"en-US/main.lang": referenceLines})
	p := parser.New(cache.NewParseCache(), parser.WithLoader(loader))

	plain := p.Parse("en-US/main.lang", false)
	assert.Nil(t, plain.Comments)
	assert.Nil(t, plain.Duplicates)

	ref := p.Parse("en-US/main.lang", true)
	assert.NotNil(t, ref.Comments)
	assert.Equal(t, 2, loader.count("en-US/main.lang"))

	// Once cached, a plain request gets the reference-decorated result.
	again := p.Parse("en-US/main.lang", false)
	assert.Same(t, ref, again)
	assert.Equal(t, 2, loader.count("en-US/main.lang"))
}

func TestParse_separateCachesAreIsolated(t *testing.T) {
	loader := newCountingLoader(map[string][]string{"en-US/main.lang": referenceLines})

	parser.New(cache.NewParseCache(), parser.WithLoader(loader)).Parse("en-US/main.lang", true)
	parser.New(cache.NewParseCache(), parser.WithLoader(loader)).Parse("en-US/main.lang", true)

	assert.Equal(t, 2, loader.count("en-US/main.lang"))
}

func TestParse_concurrentSamePath(t *testing.T) {
	loader := newCountingLoader(map[string][]string{"en-US/main.lang": referenceLines})
	p := parser.New(cache.NewParseCache(), parser.WithLoader(loader))

	const n = 16
	results := make([]*parser.LangFile, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = p.Parse("en-US/main.lang", true)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Same(t, results[0], r)
	}
	assert.Equal(t, 1, loader.count("en-US/main.lang"))
}
