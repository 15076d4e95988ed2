// Package langcheck compares a translated lang file with its reference.
package langcheck

import (
	"unicode/utf8"

	"langchecker/internal/parser"
	"langchecker/internal/placeholder"
)

// LengthViolation is a translation longer than its reference allows.
type LengthViolation struct {
	Reference   string
	Translation string
	Length      int
	Limit       int
}

// Report lists the problems of one locale file.
type Report struct {
	Locale string
	File   string
	// Activated mirrors the locale file's activation flag.
	Activated bool
	// Missing are reference strings absent from the locale file.
	Missing []string
	// Obsolete are locale strings no longer in the reference.
	Obsolete []string
	// Untranslated are strings present without a translation.
	Untranslated []string
	// TooLong are translations exceeding a MAX_LENGTH constraint.
	TooLong []LengthViolation
	// PlaceholderMismatch are translations whose variables differ from the
	// reference text.
	PlaceholderMismatch []string
	// Duplicates are reference strings defined more than once.
	Duplicates []string
}

// Complete reports whether every reference string has a usable translation.
func (r *Report) Complete() bool {
	return len(r.Missing) == 0 && len(r.Untranslated) == 0
}

// Compare checks locale against reference. Lists follow the order strings
// appear in their file.
func Compare(reference, locale *parser.LangFile) Report {
	var r Report
	r.Activated = locale.Activated
	r.Duplicates = reference.Duplicates

	for _, ref := range reference.Strings.Keys() {
		tr, ok := locale.Strings.Lookup(ref)
		if !ok {
			r.Missing = append(r.Missing, ref)
			continue
		}
		if !tr.Translated {
			r.Untranslated = append(r.Untranslated, ref)
			continue
		}

		if limit, ok := reference.MaxLengths[ref]; ok && limit > 0 {
			if n := utf8.RuneCountInString(tr.Text); n > limit {
				r.TooLong = append(r.TooLong, LengthViolation{
					Reference:   ref,
					Translation: tr.Text,
					Length:      n,
					Limit:       limit,
				})
			}
		}

		if !placeholder.Same(ref, tr.Text) {
			r.PlaceholderMismatch = append(r.PlaceholderMismatch, ref)
		}
	}

	for _, ref := range locale.Strings.Keys() {
		if !reference.Strings.Has(ref) {
			r.Obsolete = append(r.Obsolete, ref)
		}
	}

	return r
}

// Summary aggregates counts over several reports.
type Summary struct {
	Files        int
	Complete     int
	Missing      int
	Untranslated int
	Obsolete     int
	Errors       int
}

// Summarize counts the problems in reports. Errors counts length and
// placeholder violations.
func Summarize(reports []Report) Summary {
	var s Summary
	for i := range reports {
		r := &reports[i]
		s.Files++
		if r.Complete() {
			s.Complete++
		}
		s.Missing += len(r.Missing)
		s.Untranslated += len(r.Untranslated)
		s.Obsolete += len(r.Obsolete)
		s.Errors += len(r.TooLong) + len(r.PlaceholderMismatch)
	}
	return s
}
