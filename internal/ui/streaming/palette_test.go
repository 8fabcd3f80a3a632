package streaming

import (
	"strings"
	"testing"
)

func TestPlainPaletteIsIdentity(t *testing.T) {
	p := PlainPalette()
	inputs := []string{"x", "some words", ""}
	for _, in := range inputs {
		if got := p.Bold.Render(in); got != in {
			t.Errorf("Bold.Render(%q) = %q, want identity", in, got)
		}
		if got := p.Heading1.Render(in); got != in {
			t.Errorf("Heading1.Render(%q) = %q, want identity", in, got)
		}
		if got := p.FenceBorder.Render(in); got != in {
			t.Errorf("FenceBorder.Render(%q) = %q, want identity", in, got)
		}
	}
}

// The styled test palette must actually style: the renderer profile has to
// be pinned explicitly because detection on a non-terminal writer degrades
// every style to a no-op.
func TestStyledPaletteEmitsANSI(t *testing.T) {
	p := styledPalette()
	if got := p.Bold.Render("x"); !strings.Contains(got, "\x1b[") {
		t.Errorf("Bold.Render(\"x\") = %q, want ANSI escapes", got)
	}
	if got := p.Heading1.Render("x"); !strings.Contains(got, "\x1b[") {
		t.Errorf("Heading1.Render(\"x\") = %q, want ANSI escapes", got)
	}
}
