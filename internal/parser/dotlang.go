package parser

import (
	"strings"

	"langchecker/internal/textutil"
)

// ParseLines runs the extraction over already loaded lines. Comments, tag
// bindings, max lengths and duplicates are only collected when
// referenceLocale is set.
func ParseLines(lines []string, referenceLocale bool) *LangFile {
	lf := extractStrings(lines, referenceLocale)
	if referenceLocale {
		extractReferenceMeta(lines).mergeInto(lf)
	}
	return lf
}

// extractStrings is the forward pass: file metadata, which only counts
// before the first string, and reference/translation pairs.
func extractStrings(lines []string, referenceLocale bool) *LangFile {
	lf := newLangFile()
	urlSeen := false

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if i == 0 && textutil.TrimRight(line) == activeLine {
			lf.Activated = true
			continue
		}

		if lf.Strings.Len() == 0 {
			switch {
			case strings.HasPrefix(line, notePrefix):
				lf.Description = append(lf.Description, textutil.LeftStrip(line, notePrefix))
				continue
			case !urlSeen && strings.HasPrefix(line, urlPrefix):
				lf.URL = textutil.LeftStrip(line, urlPrefix)
				urlSeen = true
				continue
			case strings.HasPrefix(line, metaPrefix) && !IsMetaTag(line):
				lf.Tags = append(lf.Tags, textutil.Trim(strings.ReplaceAll(line, metaPrefix, "")))
				continue
			}
		}

		// The last line of the file can't be a string: there's nothing
		// left to read its translation from.
		if !strings.HasPrefix(line, stringPrefix) || i == len(lines)-1 {
			continue
		}

		reference := textutil.LeftStrip(line, stringPrefix)
		next := lines[i+1]

		if referenceLocale && lf.Strings.Has(reference) {
			lf.Duplicates = append(lf.Duplicates, reference)
		}

		// The next line is another string or a comment block for the
		// next string, so this one has no translation. Leave the cursor
		// on it so it gets read on its own.
		if textutil.StartsWithAny(next, stringPrefix, commentPrefix) {
			lf.Strings.Set(reference, Untranslated(reference))
			continue
		}

		lf.Strings.Set(reference, Translated(textutil.Trim(next)))
		i++
	}

	return lf
}

type referenceMeta struct {
	comments    map[string][]string
	tagBindings map[string]string
	maxLengths  map[string]int
}

func (m *referenceMeta) mergeInto(lf *LangFile) {
	if len(m.comments) > 0 {
		lf.Comments = m.comments
	}
	if len(m.tagBindings) > 0 {
		lf.TagBindings = m.tagBindings
	}
	if len(m.maxLengths) > 0 {
		lf.MaxLengths = m.maxLengths
	}
}

// extractReferenceMeta is the backward pass. Each string line owns the run
// of "#" lines directly above it. The run is read bottom-up, so when a
// TAG or MAX_LENGTH appears twice the topmost one is kept.
func extractReferenceMeta(lines []string) *referenceMeta {
	meta := &referenceMeta{
		comments:    make(map[string][]string),
		tagBindings: make(map[string]string),
		maxLengths:  make(map[string]int),
	}

	for i, line := range lines {
		if !strings.HasPrefix(line, stringPrefix) {
			continue
		}
		reference := textutil.LeftStrip(line, stringPrefix)

		var comments []string
		for j := i - 1; j >= 0; j-- {
			above := lines[j]
			if !strings.HasPrefix(above, commentPrefix) {
				break
			}

			switch {
			case !strings.HasPrefix(above, metaPrefix):
				comments = append(comments, textutil.LeftStrip(above, commentPrefix))
			case strings.HasPrefix(above, tagPrefix):
				meta.tagBindings[reference] = textutil.LeftStrip(above, tagPrefix)
			case strings.HasPrefix(above, maxLengthPrefix):
				meta.maxLengths[reference] = textutil.IntVal(textutil.LeftStrip(above, maxLengthPrefix))
			}
		}

		if len(comments) == 0 {
			continue
		}
		for l, r := 0, len(comments)-1; l < r; l, r = l+1, r-1 {
			comments[l], comments[r] = comments[r], comments[l]
		}
		meta.comments[reference] = comments
	}

	return meta
}
