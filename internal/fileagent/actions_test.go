// ABOUTME: Tests for the local TODO extractor and grapheme-safe truncation
// ABOUTME: Pins the bullet format and the marker-line pattern

package fileagent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTodos(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"mixed", "TODO: fix this\n# FIXME something\nregular line", "- TODO: fix this\n- FIXME something"},
		{"none", "nothing to see\nhere", NoTodos},
		{"case insensitive", "todo lower\n  Fixme: mixed", "- todo lower\n- Fixme: mixed"},
		{"indented comment leader", "func x() {\n\t#   XXX hack\n}", "- XXX hack"},
		{"marker must be a word", "TODOS are fine\nFIXMEs too", NoTodos},
		{"not at line start", "x := 1 // TODO later", NoTodos},
		{"leader without space", "#TODO tighten", "- TODO tighten"},
		{"crlf", "TODO one\r\nFIXME two\r\n", "- TODO one\n- FIXME two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExtractTodos(tt.text))
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", truncate("", 5))
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abc", 2))

	// Flag emoji and combining accents count as one character each.
	assert.Equal(t, "🇮🇹é", truncate("🇮🇹éxyz", 2))

	long := strings.Repeat("é", MaxInputChars+10)
	assert.Equal(t, strings.Repeat("é", MaxInputChars), truncate(long, MaxInputChars))
}
