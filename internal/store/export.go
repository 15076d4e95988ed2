package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"langchecker/internal/parser"

	"github.com/rs/zerolog/log"
)

// FileDump is the JSON form of a parsed lang file.
type FileDump struct {
	Locale      string      `json:"locale"`
	File        string      `json:"file"`
	Activated   bool        `json:"activated"`
	Description []string    `json:"description,omitempty"`
	URL         string      `json:"url,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
	Duplicates  []string    `json:"duplicates,omitempty"`
	Strings     []StringRow `json:"strings"`
}

// NewFileDump builds the JSON form of lf.
func NewFileDump(locale, file string, lf *parser.LangFile) FileDump {
	return FileDump{
		Locale:      locale,
		File:        file,
		Activated:   lf.Activated,
		Description: lf.Description,
		URL:         lf.URL,
		Tags:        lf.Tags,
		Duplicates:  lf.Duplicates,
		Strings:     Rows(locale, file, lf),
	}
}

// WriteTSV writes rows as tab-separated values with a header line.
func WriteTSV(w io.Writer, rows []StringRow) error {
	if _, err := fmt.Fprintln(w, "reference\ttranslation\ttranslated\ttag\tmax_length\tcomment"); err != nil {
		return fmt.Errorf("write TSV header: %w", err)
	}

	for _, r := range rows {
		maxLength := ""
		if r.MaxLength != nil {
			maxLength = strconv.Itoa(*r.MaxLength)
		}
		_, err := fmt.Fprintf(w, "%s\t%s\t%t\t%s\t%s\t%s\n",
			escapeTSV(r.Reference),
			escapeTSV(r.Translation),
			r.Translated,
			escapeTSV(r.Tag),
			maxLength,
			escapeTSV(r.Comment),
		)
		if err != nil {
			return fmt.Errorf("write TSV row: %w", err)
		}
	}
	return nil
}

// WriteJSON writes dump as indented JSON.
func WriteJSON(w io.Writer, dump FileDump) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(dump); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

// ExportTSV writes the strings of lf to a TSV file.
func ExportTSV(outputPath, locale, file string, lf *parser.LangFile) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create TSV file: %w", err)
	}
	defer f.Close()

	rows := Rows(locale, file, lf)
	if err := WriteTSV(f, rows); err != nil {
		return err
	}

	log.Info().Str("path", outputPath).Int("strings", len(rows)).Msg("Exported lang file to TSV")
	return nil
}

// ExportJSON writes lf to a JSON file.
func ExportJSON(outputPath, locale, file string, lf *parser.LangFile) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create JSON file: %w", err)
	}
	defer f.Close()

	if err := WriteJSON(f, NewFileDump(locale, file, lf)); err != nil {
		return err
	}

	log.Info().Str("path", outputPath).Int("strings", lf.Strings.Len()).Msg("Exported lang file to JSON")
	return nil
}

// escapeTSV replaces tabs and newlines in a string for TSV safety.
func escapeTSV(s string) string {
	s = strings.ReplaceAll(s, "\t", "\\t")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	return s
}
