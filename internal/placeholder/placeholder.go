package placeholder

import (
	"regexp"
	"sort"
)

// match stores a detected variable position.
type match struct {
	start, end int
	value      string
}

// patterns to detect variables in web strings.
var patterns = []*regexp.Regexp{
	regexp.MustCompile(`%\([a-z0-9._-]+\)s`),                  // %(name)s
	regexp.MustCompile(`\$\{[a-zA-Z_][a-zA-Z0-9_]*\}`),         // ${value}
	regexp.MustCompile(`\{[0-9]+\}`),                           // {0}, {1}
	regexp.MustCompile(`%[-+0-9]*\.?[0-9]*[dsfieEgGxXoubcpq]`), // %d, %s, %2d
	regexp.MustCompile(`%%`),                                   // escaped percent literal
}

// Extract returns the variables found in text, left to right. Overlapping
// matches keep the one starting first, then the longest.
func Extract(text string) []string {
	var all []match
	for _, p := range patterns {
		for _, loc := range p.FindAllStringIndex(text, -1) {
			all = append(all, match{start: loc[0], end: loc[1], value: text[loc[0]:loc[1]]})
		}
	}
	if len(all) == 0 {
		return nil
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].start != all[j].start {
			return all[i].start < all[j].start
		}
		return all[i].end-all[i].start > all[j].end-all[j].start
	})

	var vars []string
	lastEnd := -1
	for _, m := range all {
		if m.start >= lastEnd {
			vars = append(vars, m.value)
			lastEnd = m.end
		}
	}
	return vars
}

// Same reports whether a and b use the same variables, ignoring order.
func Same(a, b string) bool {
	va, vb := Extract(a), Extract(b)
	if len(va) != len(vb) {
		return false
	}

	counts := make(map[string]int, len(va))
	for _, v := range va {
		counts[v]++
	}
	for _, v := range vb {
		if counts[v] == 0 {
			return false
		}
		counts[v]--
	}
	return true
}
