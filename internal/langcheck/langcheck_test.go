package langcheck

import (
	"testing"

	"langchecker/internal/parser"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	reference := parser.ParseLines([]string{
		"## MAX_LENGTH: 8",
		";Download",
		"Download",
		";Hello %(user)s",
		"Hello %(user)s",
		";Privacy",
		"Privacy",
		";Terms",
		"Terms",
		";Terms",
		"Terms",
	}, true)

	locale := parser.ParseLines([]string{
		"## active ##",
		";Download",
		"Télécharger maintenant",
		";Hello %(user)s",
		"Bonjour",
		";Privacy",
		";Old string",
		"Vieille chaîne",
	}, false)

	r := Compare(reference, locale)

	assert.True(t, r.Activated)
	assert.Equal(t, []string{"Terms"}, r.Missing)
	assert.Equal(t, []string{"Privacy"}, r.Untranslated)
	assert.Equal(t, []string{"Old string"}, r.Obsolete)
	assert.Equal(t, []string{"Hello %(user)s"}, r.PlaceholderMismatch)
	assert.Equal(t, []string{"Terms"}, r.Duplicates)
	assert.Equal(t, []LengthViolation{{
		Reference:   "Download",
		Translation: "Télécharger maintenant",
		Length:      22,
		Limit:       8,
	}}, r.TooLong)
	assert.False(t, r.Complete())
}

func TestCompare_complete(t *testing.T) {
	reference := parser.ParseLines([]string{";OK", "OK", ";Save", "Save"}, true)
	locale := parser.ParseLines([]string{";OK", "OK", ";Save", "Enregistrer"}, false)

	r := Compare(reference, locale)
	assert.True(t, r.Complete())
	assert.Empty(t, r.Untranslated)
	assert.Empty(t, r.PlaceholderMismatch)
}

func TestCompare_missingLocaleFile(t *testing.T) {
	reference := parser.ParseLines([]string{";A", "A", ";B", "B"}, true)

	r := Compare(reference, parser.ParseLines(nil, false))
	assert.Equal(t, []string{"A", "B"}, r.Missing)
	assert.False(t, r.Activated)
}

func TestSummarize(t *testing.T) {
	reports := []Report{
		{Missing: []string{"a"}, Obsolete: []string{"x"}},
		{},
		{Untranslated: []string{"b", "c"}, PlaceholderMismatch: []string{"d"}},
	}

	assert.Equal(t, Summary{
		Files:        3,
		Complete:     1,
		Missing:      1,
		Untranslated: 2,
		Obsolete:     1,
		Errors:       1,
	}, Summarize(reports))
}
