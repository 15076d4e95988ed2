package parser

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrMissingFile is returned when a path does not name a readable regular file.
var ErrMissingFile = errors.New("lang file does not exist")

// LineLoader reads a lang file into cleaned lines.
type LineLoader interface {
	Load(path string) ([]string, error)
}

// FileLoader reads lang files from disk.
type FileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a loader logging to the global logger.
func NewFileLoader() *FileLoader {
	return &FileLoader{logger: log.Logger}
}

// NewFileLoaderWithLogger creates a loader logging to logger.
func NewFileLoaderWithLogger(logger zerolog.Logger) *FileLoader {
	return &FileLoader{logger: logger}
}

// Load returns the non-empty lines of path with line terminators removed and
// a leading byte-order mark stripped. A path that is not a regular file
// yields an error wrapping ErrMissingFile.
func (l *FileLoader) Load(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", path, ErrMissingFile)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lang file: %w", err)
	}
	defer file.Close()

	// BOMOverride only rewrites input that starts with a BOM; everything
	// else goes through the Nop fallback untouched.
	r := transform.NewReader(file, unicode.BOMOverride(transform.Nop))

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	var lines []string
	invalid := false
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if !invalid && !utf8.ValidString(line) {
			invalid = true
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan lang file: %w", err)
	}

	if invalid {
		l.logger.Warn().Str("path", path).Msg("Lang file is not valid UTF-8")
	}

	return lines, nil
}
