package streaming

import "testing"

// Plain palette makes every style an identity transform, so these tests can
// assert exact output.
func TestTransformInlinePlain(t *testing.T) {
	p := PlainPalette()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bold", "has **bold** text", "has bold text"},
		{"italic", "has *italic* text", "has italic text"},
		{"italic at start", "*whole* word", "whole word"},
		{"inline code", "run `make` now", "run make now"},
		{"link keeps text drops url", "see [docs](https://example.com) here", "see docs here"},
		{"strikethrough", "it is ~~dead~~ gone", "it is dead gone"},
		{"bold then italic", "**a** *b*", "a b"},
		{"stray asterisk", "2 * 3 = 6", "2 * 3 = 6"},
		{"stray backtick", "one ` only", "one ` only"},
		{"unmatched bold", "**open only", "**open only"},
		{"list marker not italic", "* item with *em* inside", "* item with em inside"},
		{"empty line", "", ""},
		{"no markdown", "plain sentence", "plain sentence"},
		{"link with empty url", "[text]()", "text"},
	}

	for _, tt := range tests {
		if got := transformInline(tt.in, p); got != tt.want {
			t.Errorf("%s: transformInline(%q) = %q, want %q", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestItalicGuardDoesNotEatSpacePadded(t *testing.T) {
	p := PlainPalette()
	// "* spaced *" has space-adjacent delimiters; the guard leaves it literal.
	in := "a * spaced * pair"
	if got := transformInline(in, p); got != in {
		t.Errorf("transformInline(%q) = %q, want unchanged", in, got)
	}
}
