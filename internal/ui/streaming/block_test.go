package streaming

import (
	"strings"
	"testing"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		in         string
		wantKind   lineKind
		wantPrefix int
	}{
		{"# Title", kindHeading1, 2},
		{"## Sub", kindHeading2, 3},
		{"### Minor", kindHeading3, 4},
		{"---", kindRule, 0},
		{"  ***  ", kindRule, 0},
		{"___", kindRule, 0},
		{"- item", kindUnorderedItem, 2},
		{"* item", kindUnorderedItem, 2},
		{"  - nested", kindUnorderedItem, 4},
		{"1. first", kindOrderedItem, 3},
		{"12. twelfth", kindOrderedItem, 4},
		{"> quoted", kindBlockquote, 2},
		{"plain text", kindParagraph, 0},
		{"", kindParagraph, 0},
		{"#nospace", kindParagraph, 0},
		{"--", kindParagraph, 0},
		{"-no space", kindParagraph, 0},
		{"1.no space", kindParagraph, 0},
	}

	for _, tt := range tests {
		kind, prefix := classifyLine(tt.in)
		if kind != tt.wantKind || prefix != tt.wantPrefix {
			t.Errorf("classifyLine(%q) = (%v, %d), want (%v, %d)",
				tt.in, kind, prefix, tt.wantKind, tt.wantPrefix)
		}
	}
}

func TestRenderBlockPlain(t *testing.T) {
	r := New()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"heading strips marker", "# Title", "Title"},
		{"h2 strips marker", "## Sub", "Sub"},
		{"h3 strips marker", "### Minor", "Minor"},
		{"bullet replaced", "- item", "• item"},
		{"asterisk bullet replaced", "* item", "• item"},
		{"nested bullet keeps indent", "  - nested", "  • nested"},
		{"ordered keeps number", "2. second", "2. second"},
		{"quote gets bar", "> words", "│ words"},
		{"paragraph untouched", "just text", "just text"},
		{"heading with bold", "# A **B** C", "A B C"},
	}

	for _, tt := range tests {
		if got := r.renderBlock(tt.in); got != tt.want {
			t.Errorf("%s: renderBlock(%q) = %q, want %q", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestRenderBlockRuleWidth(t *testing.T) {
	r := New(WithRuleWidth(10))
	got := r.renderBlock("---")
	if got != strings.Repeat("─", 10) {
		t.Errorf("rule = %q, want 10 rule chars", got)
	}
}
