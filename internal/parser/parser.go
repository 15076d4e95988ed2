package parser

import (
	"errors"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// Cache stores reference-locale parse results by path.
type Cache interface {
	Get(path string) (*LangFile, bool)
	Set(path string, lf *LangFile)
}

// Parser reads lang files and memoizes reference-locale results in a Cache
// owned by the caller.
type Parser struct {
	cache      Cache
	loader     LineLoader
	logger     zerolog.Logger
	showErrors bool
	group      singleflight.Group
}

// Option configures a Parser.
type Option func(*Parser)

// WithLoader replaces the disk loader.
func WithLoader(l LineLoader) Option {
	return func(p *Parser) { p.loader = l }
}

// WithLogger sets the logger used for missing-file diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Parser) { p.logger = logger }
}

// WithShowErrors toggles the diagnostic logged for missing files.
func WithShowErrors(show bool) Option {
	return func(p *Parser) { p.showErrors = show }
}

// New creates a Parser backed by cache.
func New(cache Cache, opts ...Option) *Parser {
	p := &Parser{
		cache:      cache,
		logger:     log.Logger,
		showErrors: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.loader == nil {
		p.loader = NewFileLoaderWithLogger(p.logger)
	}
	return p
}

// Parse returns the content of the lang file at path.
//
// A path found in the cache is returned as cached whatever referenceLocale
// says now. Only reference-locale parses are cached, so a path first read
// as a plain locale is read again when the reference is asked for, while a
// path first read as reference keeps its comments and bindings for every
// later caller.
//
// A file that can't be read gives an empty, inactive result which is not
// cached, so a later call will try again.
func (p *Parser) Parse(path string, referenceLocale bool) *LangFile {
	if lf, ok := p.cache.Get(path); ok {
		return lf
	}

	key := strconv.FormatBool(referenceLocale) + ":" + path
	v, _, _ := p.group.Do(key, func() (any, error) {
		if lf, ok := p.cache.Get(path); ok {
			return lf, nil
		}
		return p.parse(path, referenceLocale), nil
	})
	return v.(*LangFile)
}

func (p *Parser) parse(path string, referenceLocale bool) *LangFile {
	lines, err := p.loader.Load(path)
	if err != nil {
		if p.showErrors {
			if errors.Is(err, ErrMissingFile) {
				p.logger.Warn().Str("path", path).Msg("Lang file does not exist")
			} else {
				p.logger.Warn().Err(err).Str("path", path).Msg("Cannot read lang file")
			}
		}
		return newLangFile()
	}

	lf := ParseLines(lines, referenceLocale)
	if referenceLocale {
		p.cache.Set(path, lf)
		p.logger.Debug().Str("path", path).Int("strings", lf.Strings.Len()).Msg("Cached reference lang file")
	}
	return lf
}
