package parser

import "langchecker/internal/textutil"

// Line prefixes of the lang format.
const (
	activeLine    = "## active ##"
	stringPrefix  = ";"
	commentPrefix = "#"
	metaPrefix    = "##"

	notePrefix      = "## NOTE:"
	urlPrefix       = "## URL:"
	tagPrefix       = "## TAG:"
	maxLengthPrefix = "## MAX_LENGTH:"
)

// metaTagNames is the closed set of structured comment keywords. Anything
// else starting with "##" before the first string is a file tag.
var metaTagNames = []string{"NOTE", "TAG", "MAX_LENGTH", "URL"}

var metaTags = renderMetaTags(metaTagNames)

func renderMetaTags(names []string) []string {
	tags := make([]string, len(names))
	for i, name := range names {
		tags[i] = "## " + name + ":"
	}
	return tags
}

// MetaTags returns the recognized meta-tag prefixes in "## NAME:" form.
func MetaTags() []string {
	out := make([]string, len(metaTags))
	copy(out, metaTags)
	return out
}

// IsMetaTag reports whether line starts with a recognized meta-tag prefix.
func IsMetaTag(line string) bool {
	return textutil.StartsWithAny(line, metaTags...)
}
