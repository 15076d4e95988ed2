package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeftStrip(t *testing.T) {
	tests := []struct {
		in, prefix, want string
	}{
		{"## NOTE: hello ", "## NOTE:", "hello"},
		{";Hello", ";", "Hello"},
		{"; Hello\t", ";", "Hello"},
		{"#", "#", ""},
		{"## TAG:", "## TAG:", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LeftStrip(tt.in, tt.prefix), "LeftStrip(%q, %q)", tt.in, tt.prefix)
	}
}

func TestTrimKeepsNonBreakingSpace(t *testing.T) {
	assert.Equal(t, "\u00a0Bonjour\u00a0", Trim("  \u00a0Bonjour\u00a0 \r\n"))
	assert.Equal(t, "## active ##", TrimRight("## active ##  \t"))
}

func TestStartsWithAny(t *testing.T) {
	assert.True(t, StartsWithAny("#comment", ";", "#"))
	assert.True(t, StartsWithAny(";str", ";", "#"))
	assert.False(t, StartsWithAny("Bonjour", ";", "#"))
	assert.False(t, StartsWithAny("anything"))
}

func TestIntVal(t *testing.T) {
	tests := map[string]int{
		"10":     10,
		" 42 ":   42,
		"12px":   12,
		"abc":    0,
		"":       0,
		"-5":     -5,
		"+7":     7,
		"3.9":    3,
		"  0010": 10,
	}
	for in, want := range tests {
		assert.Equal(t, want, IntVal(in), "IntVal(%q)", in)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "Übers...", Truncate("Übersetzung", 5))
}

func TestHash(t *testing.T) {
	assert.Len(t, Hash("Hello"), 64)
	assert.Equal(t, Hash("Hello"), Hash("Hello"))
	assert.NotEqual(t, Hash("Hello"), Hash("hello"))
}
