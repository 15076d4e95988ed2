package textutil

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// space is what lang file values are trimmed of. Unicode spaces such as
// U+00A0 are significant in translations and are kept.
const space = " \t\n\r\x00\x0B"

// Trim removes leading and trailing ASCII whitespace and NUL bytes.
func Trim(s string) string {
	return strings.Trim(s, space)
}

// TrimRight removes trailing ASCII whitespace and NUL bytes.
func TrimRight(s string) string {
	return strings.TrimRight(s, space)
}

// LeftStrip drops the first len(prefix) bytes of s and trims the rest.
// The caller is expected to have checked that s starts with prefix.
func LeftStrip(s, prefix string) string {
	if len(prefix) >= len(s) {
		return ""
	}
	return Trim(s[len(prefix):])
}

// StartsWithAny reports whether s starts with one of the prefixes.
func StartsWithAny(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// IntVal converts the leading integer of s, after optional whitespace and
// sign. Trailing garbage is ignored: "12px" is 12, "abc" is 0.
func IntVal(s string) int {
	s = strings.TrimLeft(s, space)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
	}
	if neg {
		return -n
	}
	return n
}

// Hash computes a SHA-256 hex hash of a string for row identity.
func Hash(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}

// Truncate shortens a string to maxLen runes, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen]) + "..."
}
