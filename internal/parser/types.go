package parser

// Translation is the value side of a string entry. An untranslated entry
// keeps the reference text as its Text so that callers reading plain
// strings see the reference echoed back, while Translated still tells the
// two cases apart.
type Translation struct {
	Text       string
	Translated bool
}

// Translated wraps a translation read from the file.
func Translated(text string) Translation {
	return Translation{Text: text, Translated: true}
}

// Untranslated marks reference as having no translation.
func Untranslated(reference string) Translation {
	return Translation{Text: reference}
}

// Strings maps reference texts to translations, remembering the order in
// which each reference was first seen.
type Strings struct {
	keys   []string
	values map[string]Translation
}

// NewStrings returns an empty table.
func NewStrings() *Strings {
	return &Strings{values: make(map[string]Translation)}
}

// Set stores t under reference. A reference already present keeps its
// original position and takes the new value.
func (s *Strings) Set(reference string, t Translation) {
	if _, ok := s.values[reference]; !ok {
		s.keys = append(s.keys, reference)
	}
	s.values[reference] = t
}

// Get returns the translation text for reference. Untranslated entries
// return the reference itself.
func (s *Strings) Get(reference string) (string, bool) {
	t, ok := s.values[reference]
	return t.Text, ok
}

// Lookup returns the tagged translation for reference.
func (s *Strings) Lookup(reference string) (Translation, bool) {
	t, ok := s.values[reference]
	return t, ok
}

func (s *Strings) Has(reference string) bool {
	_, ok := s.values[reference]
	return ok
}

func (s *Strings) Len() int {
	return len(s.keys)
}

// Keys returns the references in first-seen order.
func (s *Strings) Keys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Map returns a plain reference → translation copy.
func (s *Strings) Map() map[string]string {
	m := make(map[string]string, len(s.values))
	for k, t := range s.values {
		m[k] = t.Text
	}
	return m
}

// LangFile holds everything extracted from one .lang file.
//
// Comments, TagBindings, MaxLengths and Duplicates are only filled when the
// file was parsed as the reference locale.
type LangFile struct {
	// Activated is set by a first line reading "## active ##".
	Activated bool
	// Description collects "## NOTE:" lines found before the first string.
	Description []string
	// URL is the first "## URL:" value found before the first string.
	URL string
	// Tags are free "## name ##" lines found before the first string.
	Tags []string
	// Strings maps reference texts to translations.
	Strings *Strings
	// Duplicates lists every repeated occurrence of a reference text.
	Duplicates []string
	// Comments holds the "#" lines above each string, top to bottom.
	Comments map[string][]string
	// TagBindings holds the "## TAG:" binding of each string.
	TagBindings map[string]string
	// MaxLengths holds the "## MAX_LENGTH:" limit of each string.
	MaxLengths map[string]int
}

func newLangFile() *LangFile {
	return &LangFile{Strings: NewStrings()}
}
