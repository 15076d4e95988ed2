package store

import (
	"strings"

	"langchecker/internal/parser"
	"langchecker/internal/textutil"
)

// StringRow is one string of a parsed lang file, flattened with its
// reference metadata.
type StringRow struct {
	Hash        string `json:"hash"`
	Locale      string `json:"locale"`
	File        string `json:"file"`
	Reference   string `json:"reference"`
	Translation string `json:"translation"`
	Translated  bool   `json:"translated"`
	Tag         string `json:"tag,omitempty"`
	MaxLength   *int   `json:"max_length,omitempty"`
	Comment     string `json:"comment,omitempty"`
}

// Rows flattens lf in file order. Comments are joined with newlines.
func Rows(locale, file string, lf *parser.LangFile) []StringRow {
	rows := make([]StringRow, 0, lf.Strings.Len())
	for _, ref := range lf.Strings.Keys() {
		tr, _ := lf.Strings.Lookup(ref)
		row := StringRow{
			Hash:        rowHash(locale, file, ref),
			Locale:      locale,
			File:        file,
			Reference:   ref,
			Translation: tr.Text,
			Translated:  tr.Translated,
			Tag:         lf.TagBindings[ref],
			Comment:     strings.Join(lf.Comments[ref], "\n"),
		}
		if n, ok := lf.MaxLengths[ref]; ok {
			row.MaxLength = &n
		}
		rows = append(rows, row)
	}
	return rows
}

func rowHash(locale, file, reference string) string {
	return textutil.Hash(locale + "\x00" + file + "\x00" + reference)
}
